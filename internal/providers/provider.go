// Package providers holds LLM client implementations and their registry.
package providers

import (
	"context"
	"time"
)

// LLMClient is the interface for single-shot text generation requests.
type LLMClient interface {
	// Generate sends one prompt and returns the model's text reply.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error)

	// Name returns the client identifier (e.g., "gemini").
	Name() string
}

// GenerateRequest is a request to an LLM.
type GenerateRequest struct {
	// Prompt is the full request text (instructions plus document text).
	Prompt string

	// Model selection (uses client default if empty).
	Model string

	// Generation parameters.
	Temperature float64
	MaxTokens   int
}

// GenerateResult is the complete response from an LLM call.
type GenerateResult struct {
	// Content is the raw model reply text.
	Content string `json:"content"`

	// Token counts (zero when the provider omits usage).
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`

	// Provider info and timing.
	Provider      string        `json:"provider"`
	ModelUsed     string        `json:"model_used"`
	ExecutionTime time.Duration `json:"execution_time"`
}
