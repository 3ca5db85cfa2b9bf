package api

import (
	"net/http"
	"testing"
)

func TestEndpointTable(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		path     string
		method   string
		body     bool
	}{
		{EndpointRoot, "/", http.MethodHead, false},
		{EndpointListModels, "/api/tags", http.MethodGet, false},
		{EndpointModelInfo, "/api/show", http.MethodPost, true},
		{EndpointGenerate, "/api/generate", http.MethodPost, true},
		{EndpointChat, "/api/chat", http.MethodPost, true},
		{EndpointCopyModel, "/api/copy", http.MethodPost, true},
		{EndpointDeleteModel, "/api/delete", http.MethodDelete, true},
		{EndpointPullModel, "/api/pull", http.MethodPost, true},
		{EndpointEmbeddings, "/api/embeddings", http.MethodPost, true},
	}

	if len(tests) != len(Endpoints()) {
		t.Fatalf("table covers %d endpoints, package declares %d", len(tests), len(Endpoints()))
	}

	for _, tt := range tests {
		if got := tt.endpoint.Path(); got != tt.path {
			t.Errorf("%s: path = %q, want %q", tt.endpoint, got, tt.path)
		}
		if got := tt.endpoint.Method(); got != tt.method {
			t.Errorf("%s: method = %q, want %q", tt.endpoint, got, tt.method)
		}
		if got := tt.endpoint.RequiresBody(); got != tt.body {
			t.Errorf("%s: requiresBody = %v, want %v", tt.endpoint, got, tt.body)
		}
	}
}

func TestEndpoint_String(t *testing.T) {
	if EndpointChat.String() != "chat" {
		t.Errorf("unexpected name %q", EndpointChat.String())
	}
	if Endpoint(99).String() != "unknown" {
		t.Errorf("out-of-range endpoints should read unknown, got %q", Endpoint(99).String())
	}
}

func TestEndpoint_Deterministic(t *testing.T) {
	for _, e := range Endpoints() {
		if e.Path() != e.Path() || e.Method() != e.Method() {
			t.Fatalf("%s: resolution must be deterministic", e)
		}
	}
}
