package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/ollamakit/version"
)

const tracerName = "github.com/kbukum/ollamakit/httpclient"

// Client is a configurable HTTP client with built-in auth and TLS.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	log        zerolog.Logger
	tracer     trace.Tracer
}

// New creates a new HTTP client with the given configuration.
func New(cfg Config) (*Client, error) {
	return NewWithLogger(cfg, zerolog.Nop())
}

// NewWithLogger creates a new HTTP client that emits debug events to log.
func NewWithLogger(cfg Config, log zerolog.Logger) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    log,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// BaseURL returns the resolved base URL of the client.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Do executes an HTTP request and returns the complete response.
// A non-2xx status is returned as a classified *Error alongside the response.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, c.transportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("request completed")

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		span.SetStatus(codes.Error, classErr.Message)
		return result, classErr
	}

	return result, nil
}

// DoStream executes an HTTP request and returns a streaming response.
// The status code is checked before any streaming begins: a non-2xx status
// drains the body into the returned error and closes the connection.
// On success the caller owns the StreamResponse and must close it.
func (c *Client) DoStream(ctx context.Context, req Request) (*StreamResponse, error) {
	ctx, span := c.startSpan(ctx, req)
	defer span.End()

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// No global timeout for streaming; the context governs cancellation.
	streamClient := &http.Client{
		Transport: c.httpClient.Transport,
	}

	resp, err := streamClient.Do(httpReq)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, c.transportError(ctx, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		classErr := ClassifyStatusCode(resp.StatusCode, body)
		span.SetStatus(codes.Error, classErr.Message)
		return nil, classErr
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", resp.StatusCode).
		Msg("stream opened")

	return &StreamResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       resp.Body,
		rawResp:    resp,
	}, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	url := joinURL(c.config.BaseURL, req.Path)

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewEncodeError(fmt.Errorf("encode body: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	// Apply default headers
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}

	// Apply request-specific headers (override defaults)
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", version.UserAgent())
	}
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	c.config.Auth.apply(httpReq)

	return httpReq, nil
}

// transportError classifies a send failure as timeout or connection error.
func (c *Client) transportError(ctx context.Context, err error) *Error {
	if ctx.Err() != nil {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

func (c *Client) startSpan(ctx context.Context, req Request) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "ollama.http "+req.Method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.Path),
		),
	)
}

// encodeBody converts a body value into an io.Reader holding its JSON form.
func encodeBody(body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// joinURL appends a path to a base URL without doubling slashes.
func joinURL(base, path string) string {
	if path == "" || path == "/" {
		return strings.TrimRight(base, "/") + "/"
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
