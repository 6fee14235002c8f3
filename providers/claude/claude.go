// Package claude provides a Claude Code CLI implementation of the
// Provider interface.
//
// This provider uses the `claude` CLI as the generation backend,
// allowing resolution sessions to run without an Anthropic API key.
package claude

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultSystemPrompt matches the API provider: bare names, one per
// line, no prose.
const DefaultSystemPrompt = "You generate only short, valuable domain names based on the text provided. " +
	"Respond with one name per line and no explanations. Be consistent and practical."

// Provider implements the providers.Provider interface by shelling out
// to the claude CLI.
type Provider struct {
	config Config
}

// Config contains configuration for the Claude CLI provider.
type Config struct {
	// Model overrides the CLI's default model (optional).
	Model string

	// System overrides the default system prompt.
	System string
}

// New creates a new Claude CLI provider.
func New(config Config) (*Provider, error) {
	if !Available() {
		return nil, fmt.Errorf("claude CLI not found in PATH")
	}
	if config.System == "" {
		config.System = DefaultSystemPrompt
	}
	return &Provider{config: config}, nil
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "claude"
}

// Available checks if the claude CLI is installed and available.
func Available() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}

// Generate runs one non-interactive claude invocation and returns its
// text output.
func (p *Provider) Generate(ctx context.Context, prompt string) (string, error) {
	args := p.buildArgs(prompt)

	cmd := exec.CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("claude execution failed: %w\nStderr: %s", err, exitErr.Stderr)
		}
		return "", fmt.Errorf("claude execution failed: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// buildArgs constructs the CLI arguments for one generation call.
func (p *Provider) buildArgs(prompt string) []string {
	args := []string{"--print", "--output-format", "text"}
	if p.config.System != "" {
		args = append(args, "--system-prompt", p.config.System)
	}
	if p.config.Model != "" {
		args = append(args, "--model", p.config.Model)
	}
	return append(args, prompt)
}
