// Package anthropic provides an Anthropic API implementation of the
// Provider interface.
package anthropic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"
)

// DefaultModel is the default model used by the Anthropic provider.
const DefaultModel = "claude-sonnet-4-20250514"

// DefaultSystemPrompt keeps responses terse and on task: bare names,
// one per line, no prose.
const DefaultSystemPrompt = "You generate only short, valuable domain names based on the text provided. " +
	"Respond with one name per line and no explanations. Be consistent and practical."

// DefaultMaxTokens bounds the response; name lists are tiny.
const DefaultMaxTokens = 256

// Provider implements the providers.Provider interface using the
// Anthropic API.
type Provider struct {
	client    anthropic.Client
	model     string
	system    string
	maxTokens int
}

// Config contains configuration for the Anthropic provider.
type Config struct {
	// APIKey for Anthropic (defaults to ANTHROPIC_API_KEY env var)
	APIKey string

	// Model to use (defaults to DefaultModel)
	Model string

	// System overrides the default system prompt.
	System string

	// MaxTokens bounds the response (defaults to DefaultMaxTokens).
	MaxTokens int
}

// New creates a new Anthropic provider.
func New(config Config) (*Provider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	system := config.System
	if system == "" {
		system = DefaultSystemPrompt
	}
	maxTokens := config.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Provider{
		client:    anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		system:    system,
		maxTokens: maxTokens,
	}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "anthropic"
}

// Generate sends the prompt and returns the concatenated text blocks of
// the response.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	params := p.buildParams(prompt)

	resp, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	text := collectText(resp)
	log.Debug().
		Str("provider", p.Name()).
		Str("model", p.model).
		Int("response_len", len(text)).
		Msg("Generation call completed")

	return text, nil
}

// buildParams converts a prompt to Anthropic API parameters.
func (p *Provider) buildParams(prompt string) anthropic.MessageNewParams {
	return anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(p.maxTokens),
		System:    []anthropic.TextBlockParam{{Text: p.system}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
}

// collectText concatenates the text blocks of a response.
func collectText(resp *anthropic.Message) string {
	if resp == nil {
		return ""
	}
	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	return out.String()
}
