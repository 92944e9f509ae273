// Package llm provides the text-generation backends used to synthesize
// historical summaries, event details and event lists.
package llm

import "context"

// Client defines the interface for text generation.
// Use this interface for dependency injection to enable mocking in tests.
type Client interface {
	// GenerateResponse generates a completion for the prompt.
	GenerateResponse(ctx context.Context, prompt string, systemMessage string, temperature float64) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetProvider returns the backend name ("openai" or "anthropic").
	GetProvider() string
}
