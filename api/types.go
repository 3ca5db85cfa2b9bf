package api

import (
	"encoding/json"
	"time"
)

// Message is a single chat message. Role is "system", "user", "assistant"
// or "tool".
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	Images    []string   `json:"images,omitempty"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Tool describes a function the model may call during a chat.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction is the callable half of a Tool definition.
type ToolFunction struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ToolCall is the model's request to invoke a tool.
type ToolCall struct {
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction carries the tool name and its JSON arguments.
type ToolCallFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// Options are model generation parameters. Pointer fields distinguish
// "unset" from a deliberate zero, so absent options never reach the wire.
type Options struct {
	NumCtx        *int     `json:"num_ctx,omitempty"`
	NumPredict    *int     `json:"num_predict,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	TopK          *int     `json:"top_k,omitempty"`
	TopP          *float64 `json:"top_p,omitempty"`
	RepeatPenalty *float64 `json:"repeat_penalty,omitempty"`
	Seed          *int     `json:"seed,omitempty"`
	Stop          []string `json:"stop,omitempty"`
}

// ChatRequest is the payload for the chat endpoint.
type ChatRequest struct {
	Model     string          `json:"model"`
	Messages  []Message       `json:"messages"`
	Tools     []Tool          `json:"tools,omitempty"`
	Format    json.RawMessage `json:"format,omitempty"`
	Options   *Options        `json:"options,omitempty"`
	Stream    *bool           `json:"stream,omitempty"`
	KeepAlive string          `json:"keep_alive,omitempty"`
}

// ChatResponse is one decoded record of a chat stream. Done marks the
// final record, which also carries the aggregate Metrics.
type ChatResponse struct {
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
	Message    Message   `json:"message"`
	Done       bool      `json:"done"`
	DoneReason string    `json:"done_reason,omitempty"`

	Metrics
}

// GenerateRequest is the payload for the generate endpoint.
type GenerateRequest struct {
	Model     string          `json:"model"`
	Prompt    string          `json:"prompt"`
	Suffix    string          `json:"suffix,omitempty"`
	System    string          `json:"system,omitempty"`
	Template  string          `json:"template,omitempty"`
	Context   []int           `json:"context,omitempty"`
	Images    []string        `json:"images,omitempty"`
	Raw       bool            `json:"raw,omitempty"`
	Format    json.RawMessage `json:"format,omitempty"`
	Options   *Options        `json:"options,omitempty"`
	Stream    *bool           `json:"stream,omitempty"`
	KeepAlive string          `json:"keep_alive,omitempty"`
}

// GenerateResponse is one decoded record of a generate stream.
type GenerateResponse struct {
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
	Response   string    `json:"response"`
	Done       bool      `json:"done"`
	DoneReason string    `json:"done_reason,omitempty"`
	Context    []int     `json:"context,omitempty"`

	Metrics
}

// Metrics reports timing and token counts on the final record of a stream.
// Durations arrive as nanoseconds.
type Metrics struct {
	TotalDuration      int64 `json:"total_duration,omitempty"`
	LoadDuration       int64 `json:"load_duration,omitempty"`
	PromptEvalCount    int   `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration int64 `json:"prompt_eval_duration,omitempty"`
	EvalCount          int   `json:"eval_count,omitempty"`
	EvalDuration       int64 `json:"eval_duration,omitempty"`
}

// TotalTime returns the total request duration.
func (m Metrics) TotalTime() time.Duration { return time.Duration(m.TotalDuration) }

// EvalTime returns the response generation duration.
func (m Metrics) EvalTime() time.Duration { return time.Duration(m.EvalDuration) }

// TokensPerSecond returns the generation rate of the final record.
func (m Metrics) TokensPerSecond() float64 {
	if m.EvalDuration <= 0 {
		return 0
	}
	return float64(m.EvalCount) / (float64(m.EvalDuration) / float64(time.Second))
}

// ModelDetails describes a model's format and parameters.
type ModelDetails struct {
	Format            string   `json:"format"`
	Family            string   `json:"family"`
	Families          []string `json:"families,omitempty"`
	ParameterSize     string   `json:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level"`
}

// ListResponse is the payload returned by the list-models endpoint.
type ListResponse struct {
	Models []ListModelResponse `json:"models"`
}

// ListModelResponse is one locally available model.
type ListModelResponse struct {
	Name       string       `json:"name"`
	Model      string       `json:"model,omitempty"`
	ModifiedAt time.Time    `json:"modified_at"`
	Size       int64        `json:"size"`
	Digest     string       `json:"digest"`
	Details    ModelDetails `json:"details"`
}

// ShowRequest is the payload for the model-info endpoint.
type ShowRequest struct {
	Model   string `json:"model"`
	Verbose bool   `json:"verbose,omitempty"`
}

// ShowResponse describes one model in detail.
type ShowResponse struct {
	Modelfile  string          `json:"modelfile,omitempty"`
	Parameters string          `json:"parameters,omitempty"`
	Template   string          `json:"template,omitempty"`
	System     string          `json:"system,omitempty"`
	Details    ModelDetails    `json:"details"`
	ModelInfo  map[string]any  `json:"model_info,omitempty"`
	Messages   []Message       `json:"messages,omitempty"`
	ModifiedAt time.Time       `json:"modified_at,omitempty"`
	License    json.RawMessage `json:"license,omitempty"`
}

// CopyRequest is the payload for the copy-model endpoint.
type CopyRequest struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// DeleteRequest is the payload for the delete-model endpoint.
type DeleteRequest struct {
	Model string `json:"model"`
}

// PullRequest is the payload for the pull-model endpoint. The client sends
// stream=false and reports the single final status record.
type PullRequest struct {
	Model    string `json:"model"`
	Insecure bool   `json:"insecure,omitempty"`
	Stream   *bool  `json:"stream,omitempty"`
}

// PullResponse is the pull status record.
type PullResponse struct {
	Status    string `json:"status"`
	Digest    string `json:"digest,omitempty"`
	Total     int64  `json:"total,omitempty"`
	Completed int64  `json:"completed,omitempty"`
}

// EmbeddingsRequest is the payload for the embeddings endpoint.
type EmbeddingsRequest struct {
	Model     string   `json:"model"`
	Prompt    string   `json:"prompt"`
	Options   *Options `json:"options,omitempty"`
	KeepAlive string   `json:"keep_alive,omitempty"`
}

// EmbeddingsResponse carries the embedding vector for one prompt.
type EmbeddingsResponse struct {
	Embedding []float64 `json:"embedding"`
}

// ErrorResponse is the error descriptor the server returns alongside a
// non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
