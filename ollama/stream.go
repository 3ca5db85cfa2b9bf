package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/kbukum/ollamakit/api"
	"github.com/kbukum/ollamakit/httpclient"
)

// maxLineSize bounds a single NDJSON record. Generate responses can carry
// large context arrays on their final line.
const maxLineSize = 1024 * 1024

// errStopStream is returned by the pull-surface adapter when the consumer
// breaks out of the range loop. It never escapes this package.
var errStopStream = errors.New("ollama: stream consumer stopped")

// ChatSeq streams a chat completion as a pull-based sequence. The caller
// receives records one at a time as they arrive; a failure is yielded once
// as the final (nil, err) pair. Breaking out of the loop closes the
// connection immediately. The sequence is single-use: iterate it at most
// once, and issue a new call to restart.
func (c *Client) ChatSeq(ctx context.Context, req *api.ChatRequest) iter.Seq2[*api.ChatResponse, error] {
	return seq[api.ChatResponse](ctx, c, api.EndpointChat, req)
}

// GenerateSeq streams a text completion as a pull-based sequence, with the
// same contract as ChatSeq.
func (c *Client) GenerateSeq(ctx context.Context, req *api.GenerateRequest) iter.Seq2[*api.GenerateResponse, error] {
	return seq[api.GenerateResponse](ctx, c, api.EndpointGenerate, req)
}

// seq adapts the push-based decode loop into a range-over-func sequence.
func seq[T any](ctx context.Context, c *Client, endpoint api.Endpoint, body any) iter.Seq2[*T, error] {
	return func(yield func(*T, error) bool) {
		err := stream(ctx, c, endpoint, body, func(rec *T) error {
			if !yield(rec, nil) {
				return errStopStream
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopStream) {
			yield(nil, err)
		}
	}
}

// stream opens the endpoint and decodes its NDJSON body, delivering each
// record to fn as soon as its terminating newline is received.
func stream[T any](ctx context.Context, c *Client, endpoint api.Endpoint, body any, fn func(*T) error) error {
	c.log.Debug().Str("endpoint", endpoint.String()).Msg("opening stream")

	resp, err := c.http.DoStream(ctx, httpclient.Request{
		Method: endpoint.Method(),
		Path:   endpoint.Path(),
		Body:   body,
	})
	if err != nil {
		return apiError(err)
	}

	return decodeStream(ctx, resp.Body, fn)
}

// decodeStream is the shared line-splitting/decoding core behind both
// consumption surfaces. It reads newline-delimited JSON records from body
// and delivers each to fn in arrival order, one at a time.
//
// Blank lines are skipped. A record that fails to decode terminates the
// stream with a decode error; no partial record is delivered and no further
// lines are processed. A record with its done flag set is delivered like
// any other, and the loop keeps draining until the server closes the body.
// fn returning an error stops decoding and surfaces that error.
//
// The deferred close is the single release point for the connection: every
// exit path, whether completion, failure, consumer stop, or cancellation,
// tears the transport down.
func decodeStream[T any](ctx context.Context, body io.ReadCloser, fn func(*T) error) error {
	defer func() { _ = body.Close() }()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			return httpclient.NewDecodeError(fmt.Errorf("decode stream record: %w", err))
		}

		if err := fn(&rec); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return httpclient.NewConnectionError(fmt.Errorf("read stream: %w", err))
	}
	return nil
}
