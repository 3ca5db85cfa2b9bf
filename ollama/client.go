package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/kbukum/ollamakit/api"
	"github.com/kbukum/ollamakit/httpclient"
)

// Client talks to one Ollama server. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	http *httpclient.Client
	log  zerolog.Logger
}

// New creates a client for the server at http://localhost:11434, or
// wherever WithBaseURL points it.
func New(opts ...Option) (*Client, error) {
	s := settings{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&s)
	}

	hc, err := httpclient.NewWithLogger(s.cfg, s.log)
	if err != nil {
		return nil, err
	}

	return &Client{http: hc, log: s.log}, nil
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string { return c.http.BaseURL() }

// Heartbeat checks that the server is up.
func (c *Client) Heartbeat(ctx context.Context) error {
	_, err := call[struct{}](ctx, c, api.EndpointRoot, nil)
	return err
}

// List returns the models available locally on the server.
func (c *Client) List(ctx context.Context) (*api.ListResponse, error) {
	return call[api.ListResponse](ctx, c, api.EndpointListModels, nil)
}

// Show returns detailed information about one model.
func (c *Client) Show(ctx context.Context, req *api.ShowRequest) (*api.ShowResponse, error) {
	return call[api.ShowResponse](ctx, c, api.EndpointModelInfo, req)
}

// Copy duplicates a model under a new name.
func (c *Client) Copy(ctx context.Context, req *api.CopyRequest) error {
	_, err := call[struct{}](ctx, c, api.EndpointCopyModel, req)
	return err
}

// Delete removes a model from the server.
func (c *Client) Delete(ctx context.Context, req *api.DeleteRequest) error {
	_, err := call[struct{}](ctx, c, api.EndpointDeleteModel, req)
	return err
}

// Pull downloads a model from the registry and returns the final status.
// The request is forced to stream=false so the server answers with a single
// record once the download finishes.
func (c *Client) Pull(ctx context.Context, req *api.PullRequest) (*api.PullResponse, error) {
	r := *req
	if r.Stream == nil {
		stream := false
		r.Stream = &stream
	}
	return call[api.PullResponse](ctx, c, api.EndpointPullModel, &r)
}

// Embeddings computes an embedding vector for the request prompt.
func (c *Client) Embeddings(ctx context.Context, req *api.EmbeddingsRequest) (*api.EmbeddingsResponse, error) {
	return call[api.EmbeddingsResponse](ctx, c, api.EndpointEmbeddings, req)
}

// ChatFunc receives one chat record. Returning an error stops the stream
// and surfaces that error from Chat.
type ChatFunc func(api.ChatResponse) error

// Chat streams a chat completion, invoking fn for each record in arrival
// order on the calling goroutine. It returns nil when the server closes the
// stream cleanly, or the terminal error otherwise.
func (c *Client) Chat(ctx context.Context, req *api.ChatRequest, fn ChatFunc) error {
	return stream(ctx, c, api.EndpointChat, req, func(resp *api.ChatResponse) error {
		return fn(*resp)
	})
}

// GenerateFunc receives one generate record. Returning an error stops the
// stream and surfaces that error from Generate.
type GenerateFunc func(api.GenerateResponse) error

// Generate streams a text completion, invoking fn for each record in
// arrival order on the calling goroutine.
func (c *Client) Generate(ctx context.Context, req *api.GenerateRequest, fn GenerateFunc) error {
	return stream(ctx, c, api.EndpointGenerate, req, func(resp *api.GenerateResponse) error {
		return fn(*resp)
	})
}

// call resolves an endpoint through the routing table, executes it, and
// decodes the buffered JSON response.
func call[T any](ctx context.Context, c *Client, endpoint api.Endpoint, body any) (*T, error) {
	c.log.Debug().Str("endpoint", endpoint.String()).Msg("calling endpoint")

	var (
		out *T
		err error
	)
	switch endpoint.Method() {
	case http.MethodGet:
		out, err = httpclient.Get[T](ctx, c.http, endpoint.Path())
	case http.MethodHead:
		out, err = new(T), httpclient.Head(ctx, c.http, endpoint.Path())
	case http.MethodDelete:
		out, err = httpclient.Delete[T](ctx, c.http, endpoint.Path(), body)
	default:
		out, err = httpclient.Post[T](ctx, c.http, endpoint.Path(), body)
	}
	if err != nil {
		return nil, apiError(err)
	}
	return out, nil
}

// apiError folds the server's error descriptor ({"error": "..."}) into the
// classified transport error, when one was returned alongside the status.
func apiError(err error) error {
	var httpErr *httpclient.Error
	if errors.As(err, &httpErr) && len(httpErr.Body) > 0 {
		var desc api.ErrorResponse
		if json.Unmarshal(httpErr.Body, &desc) == nil && desc.Error != "" {
			httpErr.Message = desc.Error
		}
	}
	return err
}
