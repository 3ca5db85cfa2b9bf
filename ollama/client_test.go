package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kbukum/ollamakit/api"
	"github.com/kbukum/ollamakit/httpclient"
)

// recordingServer captures the method and path of each request and answers
// with a canned body.
func recordingServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	c, err := New(append([]Option{WithBaseURL(srv.URL)}, opts...)...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestClient_Heartbeat(t *testing.T) {
	srv, seen := recordingServer(t, 200, "")
	c := newTestClient(t, srv)

	if err := c.Heartbeat(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "HEAD /" {
		t.Errorf("expected HEAD /, got %s", (*seen)[0])
	}
}

func TestClient_List(t *testing.T) {
	srv, seen := recordingServer(t, 200, `{"models":[{"name":"llama3:latest","size":4661224676,"digest":"sha256:abc"}]}`)
	c := newTestClient(t, srv)

	resp, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "GET /api/tags" {
		t.Errorf("expected GET /api/tags, got %s", (*seen)[0])
	}
	if len(resp.Models) != 1 || resp.Models[0].Name != "llama3:latest" {
		t.Errorf("unexpected models: %+v", resp.Models)
	}
}

func TestClient_Show(t *testing.T) {
	srv, seen := recordingServer(t, 200, `{"template":"{{ .Prompt }}","details":{"family":"llama","format":"gguf"}}`)
	c := newTestClient(t, srv)

	resp, err := c.Show(context.Background(), &api.ShowRequest{Model: "llama3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "POST /api/show" {
		t.Errorf("expected POST /api/show, got %s", (*seen)[0])
	}
	if resp.Details.Family != "llama" {
		t.Errorf("unexpected details: %+v", resp.Details)
	}
}

func TestClient_Copy(t *testing.T) {
	srv, seen := recordingServer(t, 200, "")
	c := newTestClient(t, srv)

	if err := c.Copy(context.Background(), &api.CopyRequest{Source: "llama3", Destination: "backup"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "POST /api/copy" {
		t.Errorf("expected POST /api/copy, got %s", (*seen)[0])
	}
}

func TestClient_Delete(t *testing.T) {
	srv, seen := recordingServer(t, 200, "")
	c := newTestClient(t, srv)

	if err := c.Delete(context.Background(), &api.DeleteRequest{Model: "backup"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "DELETE /api/delete" {
		t.Errorf("expected DELETE /api/delete, got %s", (*seen)[0])
	}
}

func TestClient_Pull_ForcesSingleShot(t *testing.T) {
	var gotStream *bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.PullRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotStream = req.Stream
		w.Write([]byte(`{"status":"success"}`))
	}))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, err := c.Pull(context.Background(), &api.PullRequest{Model: "llama3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("unexpected status %q", resp.Status)
	}
	if gotStream == nil || *gotStream {
		t.Error("pull should request stream=false")
	}
}

func TestClient_Embeddings(t *testing.T) {
	srv, seen := recordingServer(t, 200, `{"embedding":[0.1,0.2,0.3]}`)
	c := newTestClient(t, srv)

	resp, err := c.Embeddings(context.Background(), &api.EmbeddingsRequest{Model: "nomic-embed-text", Prompt: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if (*seen)[0] != "POST /api/embeddings" {
		t.Errorf("expected POST /api/embeddings, got %s", (*seen)[0])
	}
	if len(resp.Embedding) != 3 {
		t.Errorf("unexpected embedding: %v", resp.Embedding)
	}
}

func TestClient_ErrorDescriptorFolding(t *testing.T) {
	srv, _ := recordingServer(t, 404, `{"error":"model 'missing' not found"}`)
	c := newTestClient(t, srv)

	_, err := c.Show(context.Background(), &api.ShowRequest{Model: "missing"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !httpclient.IsNotFound(err) {
		t.Errorf("expected not_found classification, got %v", err)
	}
	if !strings.Contains(err.Error(), "model 'missing' not found") {
		t.Errorf("server error descriptor should surface in the message, got %v", err)
	}
}

func TestClient_NonJSONErrorBodyKeepsStatusMessage(t *testing.T) {
	srv, _ := recordingServer(t, 502, "Bad Gateway")
	c := newTestClient(t, srv)

	_, err := c.List(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if !httpclient.IsServerError(err) {
		t.Errorf("expected server classification, got %v", err)
	}
	if !strings.Contains(err.Error(), "HTTP 502") {
		t.Errorf("expected HTTP 502 in message, got %v", err)
	}
}

func TestClient_BearerTokenOnEveryOperation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("%s %s: expected bearer header, got %q", r.Method, r.URL.Path, got)
		}
		w.Write([]byte("{}"))
	}))
	defer srv.Close()
	c := newTestClient(t, srv, WithToken("tok"))

	ctx := context.Background()
	c.Heartbeat(ctx)
	c.List(ctx)
	c.Show(ctx, &api.ShowRequest{Model: "m"})
	c.Copy(ctx, &api.CopyRequest{Source: "a", Destination: "b"})
	c.Delete(ctx, &api.DeleteRequest{Model: "m"})
	c.Pull(ctx, &api.PullRequest{Model: "m"})
	c.Embeddings(ctx, &api.EmbeddingsRequest{Model: "m", Prompt: "p"})
	c.Chat(ctx, &api.ChatRequest{Model: "m"}, func(api.ChatResponse) error { return nil })
	c.Generate(ctx, &api.GenerateRequest{Model: "m", Prompt: "p"}, func(api.GenerateResponse) error { return nil })
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(WithBaseURL("::not-a-url"))
	if err == nil {
		t.Fatal("expected construction to fail")
	}
}
