package domain

import "context"

// CompletionRequest is a single-shot completion request as understood by Ollama's /api/generate.
type CompletionRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images,omitempty"` // base64-encoded images, for multimodal models such as llava
	// Format "json" restricts the output to valid JSON.
	Format string `json:"format,omitempty"`
	// Options additional model parameters such as temperature (see Ollama's Modelfile docs).
	Options  map[string]any `json:"options,omitempty"`
	System   string         `json:"system,omitempty"`
	Template string         `json:"template,omitempty"`
	Context  []int          `json:"context,omitempty"`
	// Stream is always sent as false: we want one complete response.
	Stream bool `json:"stream"`
	Raw    bool `json:"raw,omitempty"`
}

// CompletionResponse is the complete (non-streamed) response. Durations are in nanoseconds.
type CompletionResponse struct {
	Model              string `json:"model"`
	CreatedAt          string `json:"created_at"`
	Response           string `json:"response"`
	Done               bool   `json:"done"`
	Context            []int  `json:"context,omitempty"`
	TotalDuration      int64  `json:"total_duration,omitempty"`
	LoadDuration       int64  `json:"load_duration,omitempty"`
	PromptEvalCount    int    `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration int64  `json:"prompt_eval_duration,omitempty"`
	EvalCount          int    `json:"eval_count,omitempty"`
	EvalDuration       int64  `json:"eval_duration,omitempty"`
}

// CompletionModel is a large language model served over the network which completes a prompt in one go.
type CompletionModel interface {
	// Name the name of the model (or of the server). Useful for debugging.
	Name() string
	// Complete sends the request and waits for the whole response. It either returns the full response or an error,
	// never a partial result.
	Complete(ctx context.Context, request *CompletionRequest) (*CompletionResponse, error)
}
