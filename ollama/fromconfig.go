package ollama

import (
	"github.com/kbukum/ollamakit/config"
	"github.com/kbukum/ollamakit/logger"
)

// NewFromConfig creates a client from loaded configuration, wiring the
// host, token, timeout and logger in one step:
//
//	cfg, err := config.Load()
//	client, err := ollama.NewFromConfig(cfg)
func NewFromConfig(cfg *config.Client) (*Client, error) {
	return New(
		WithBaseURL(cfg.Host),
		WithToken(cfg.Token),
		WithTimeout(cfg.Timeout),
		WithLogger(logger.New(cfg.Log)),
	)
}
