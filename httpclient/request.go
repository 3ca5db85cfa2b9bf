package httpclient

import (
	"io"
	"net/http"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, HEAD, POST, DELETE).
	Method string
	// Path is appended to the client's BaseURL.
	Path string
	// Headers are request-specific headers (merged with client defaults).
	Headers map[string]string
	// Body is the request body. Any non-nil value is JSON-encoded.
	Body any
}

// Response is the result of a buffered HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// StreamResponse wraps a streaming HTTP response. The status code and
// headers are available before the body completes; the caller owns the
// body and must close it on every exit path.
type StreamResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Body is the incrementally readable response body.
	Body io.ReadCloser

	rawResp *http.Response
}

// Close releases the underlying connection.
func (r *StreamResponse) Close() error {
	if r.Body != nil {
		return r.Body.Close()
	}
	if r.rawResp != nil && r.rawResp.Body != nil {
		return r.rawResp.Body.Close()
	}
	return nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
