package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func TestGet_Typed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"llama3:latest"}]}`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tags, err := Get[tagsResponse](context.Background(), c, "/api/tags")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags.Models) != 1 || tags.Models[0].Name != "llama3:latest" {
		t.Errorf("unexpected decode result: %+v", tags)
	}
}

func TestPost_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`this is not json`))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Post[tagsResponse](context.Background(), c, "/api/show", map[string]string{"model": "llama3"})
	if err == nil {
		t.Fatal("expected decode error")
	}
	if !IsDecode(err) {
		t.Errorf("expected decode classification, got %v", err)
	}
}

func TestPost_EmptyBodyDecodesZeroValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := Post[tagsResponse](context.Background(), c, "/api/copy", map[string]string{"source": "a", "destination": "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Models) != 0 {
		t.Errorf("expected zero value, got %+v", resp)
	}
}

func TestDelete_SendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := Delete[struct{}](context.Background(), c, "/api/delete", map[string]string{"model": "llama3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Head(context.Background(), c, "/"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
