package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Typed JSON helpers for single-shot endpoints. Each sends one request,
// decodes the buffered response into T, and surfaces transport or decode
// failures as classified errors.

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	return do[T](ctx, c, http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	return do[T](ctx, c, http.MethodPost, path, body)
}

// Delete performs a DELETE request with a JSON body and decodes the response into type T.
func Delete[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	return do[T](ctx, c, http.MethodDelete, path, body)
}

// Head performs a HEAD request and returns only the transport outcome.
func Head(ctx context.Context, c *Client, path string) error {
	_, err := c.Do(ctx, Request{Method: http.MethodHead, Path: path})
	return err
}

// do executes a request and decodes the JSON response.
func do[T any](ctx context.Context, c *Client, method, path string, body any) (*T, error) {
	resp, err := c.Do(ctx, Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	var data T
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return nil, NewDecodeError(fmt.Errorf("decode response: %w", err))
		}
	}
	return &data, nil
}
