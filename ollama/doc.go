// Package ollama is a typed client for the Ollama HTTP API.
//
// A Client exposes one method per server endpoint. Single-shot endpoints
// (list, show, copy, delete, pull, embeddings, heartbeat) return one decoded
// value or fail. Chat and generate stream their responses as newline-delimited
// JSON records, and offer two equivalent consumption styles backed by the
// same decoder:
//
// Push: a callback invoked per record on the calling goroutine; the method
// returns once the stream completes or fails:
//
//	err := client.Chat(ctx, req, func(resp api.ChatResponse) error {
//	    fmt.Print(resp.Message.Content)
//	    return nil
//	})
//
// Pull: a range-over-func sequence; breaking out of the loop closes the
// connection immediately:
//
//	for resp, err := range client.ChatSeq(ctx, req) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Print(resp.Message.Content)
//	}
//
// Errors are classified httpclient errors: encoding failures surface before
// any network activity, non-2xx statuses become transport errors carrying
// the server's error payload, and malformed stream records terminate the
// stream with a decode error. The client never retries.
package ollama
