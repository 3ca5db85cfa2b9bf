package api

import "net/http"

// Endpoint enumerates the remote operations exposed by an Ollama server.
// The set is closed: every client operation maps to exactly one variant.
type Endpoint int

const (
	// EndpointRoot is the server heartbeat.
	EndpointRoot Endpoint = iota
	// EndpointListModels lists locally available models.
	EndpointListModels
	// EndpointModelInfo returns details about one model.
	EndpointModelInfo
	// EndpointGenerate streams a text completion.
	EndpointGenerate
	// EndpointChat streams a chat completion.
	EndpointChat
	// EndpointCopyModel duplicates a model under a new name.
	EndpointCopyModel
	// EndpointDeleteModel removes a model.
	EndpointDeleteModel
	// EndpointPullModel downloads a model from the registry.
	EndpointPullModel
	// EndpointEmbeddings computes an embedding vector for a prompt.
	EndpointEmbeddings
)

// endpointSpec is one row of the fixed routing table.
type endpointSpec struct {
	name         string
	path         string
	method       string
	requiresBody bool
}

var endpointTable = [...]endpointSpec{
	EndpointRoot:        {"root", "/", http.MethodHead, false},
	EndpointListModels:  {"list_models", "/api/tags", http.MethodGet, false},
	EndpointModelInfo:   {"model_info", "/api/show", http.MethodPost, true},
	EndpointGenerate:    {"generate", "/api/generate", http.MethodPost, true},
	EndpointChat:        {"chat", "/api/chat", http.MethodPost, true},
	EndpointCopyModel:   {"copy_model", "/api/copy", http.MethodPost, true},
	EndpointDeleteModel: {"delete_model", "/api/delete", http.MethodDelete, true},
	EndpointPullModel:   {"pull_model", "/api/pull", http.MethodPost, true},
	EndpointEmbeddings:  {"embeddings", "/api/embeddings", http.MethodPost, true},
}

// Endpoints returns all endpoint variants in declaration order.
func Endpoints() []Endpoint {
	out := make([]Endpoint, len(endpointTable))
	for i := range endpointTable {
		out[i] = Endpoint(i)
	}
	return out
}

func (e Endpoint) spec() endpointSpec {
	if int(e) < 0 || int(e) >= len(endpointTable) {
		return endpointSpec{name: "unknown"}
	}
	return endpointTable[e]
}

// Path returns the URL path of the endpoint.
func (e Endpoint) Path() string { return e.spec().path }

// Method returns the HTTP method of the endpoint.
func (e Endpoint) Method() string { return e.spec().method }

// RequiresBody reports whether the endpoint carries a JSON request payload.
func (e Endpoint) RequiresBody() bool { return e.spec().requiresBody }

// String returns the endpoint name for logging.
func (e Endpoint) String() string { return e.spec().name }
