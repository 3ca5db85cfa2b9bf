// Package httpclient is the HTTP transport layer underneath the ollama
// client facade. It owns URL resolution, bearer authentication, JSON body
// encoding, TLS, and the classification of transport failures into typed
// errors.
//
// Two exchange styles are offered:
//
//   - [Client.Do] sends a request and returns the fully buffered response.
//     Non-2xx status codes are classified into a typed [*Error] carrying
//     the raw response body.
//   - [Client.DoStream] sends a request and hands back the response body as
//     an incrementally readable stream. The status code is checked before
//     any streaming begins; a non-2xx response never reaches the caller as
//     a stream.
//
// Typed JSON helpers wrap Do for single-shot endpoints:
//
//	tags, err := httpclient.Get[ListResponse](ctx, client, "/api/tags")
//
// The package performs no retries, caching, or connection management of its
// own; deadlines come from the caller's context or the configured timeout.
package httpclient
