package ollama

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kbukum/ollamakit/httpclient"
)

// Option configures a Client at construction time.
type Option func(*settings)

type settings struct {
	cfg httpclient.Config
	log zerolog.Logger
}

// WithBaseURL sets the server address. Defaults to http://localhost:11434.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) { s.cfg.BaseURL = baseURL }
}

// WithToken sets a bearer token added as "Authorization: Bearer <token>"
// on every request. An empty token leaves requests unauthenticated.
func WithToken(token string) Option {
	return func(s *settings) { s.cfg.Auth = httpclient.BearerAuth(token) }
}

// WithTimeout sets the timeout for single-shot calls. Streaming calls are
// governed by their context instead.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) { s.cfg.Timeout = timeout }
}

// WithTLS sets TLS options for the transport.
func WithTLS(tls *httpclient.TLSConfig) Option {
	return func(s *settings) { s.cfg.TLS = tls }
}

// WithHeaders sets additional headers applied to every request.
func WithHeaders(headers map[string]string) Option {
	return func(s *settings) { s.cfg.Headers = headers }
}

// WithLogger sets the logger for debug-level request events.
// The client is silent without one.
func WithLogger(log zerolog.Logger) Option {
	return func(s *settings) { s.log = log }
}
