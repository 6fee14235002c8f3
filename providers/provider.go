// Package providers defines the interface for AI text-generation
// backends.
//
// The resolver only needs one operation from an AI service: turn a
// rendered prompt into raw text. Keeping the surface this small allows
// swapping backends (Anthropic, a recorded fixture, a test double)
// without touching the resolution pipeline.
package providers

import "context"

// Provider is the interface all generation backends implement.
type Provider interface {
	// Generate sends a rendered prompt and returns the raw response
	// text. The context bounds the call; a provider must return
	// promptly once it is cancelled.
	Generate(ctx context.Context, prompt string) (string, error)

	// Name returns the provider name (e.g., "anthropic").
	Name() string
}

// GenerateFunc adapts a plain function to the Provider interface.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GenerateFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Name returns "func".
func (f GenerateFunc) Name() string {
	return "func"
}
