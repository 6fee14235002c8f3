package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nameforge/nameforge-go/config"
	"github.com/nameforge/nameforge-go/extract"
	"github.com/nameforge/nameforge-go/oracle"
	"github.com/nameforge/nameforge-go/oracle/loopia"
	"github.com/nameforge/nameforge-go/oracle/rdap"
	"github.com/nameforge/nameforge-go/prompt"
	"github.com/nameforge/nameforge-go/providers"
	"github.com/nameforge/nameforge-go/providers/anthropic"
	"github.com/nameforge/nameforge-go/providers/claude"
	"github.com/nameforge/nameforge-go/resolver"
	"github.com/nameforge/nameforge-go/session"
)

// resolveOptions collects the resolve command flags.
type resolveOptions struct {
	url      string
	text     string
	textFile string

	promptInline string
	promptFile   string
	profilePath  string

	maxAttempts  int
	alternatives int
	rank         bool

	providerName string
	oracleName   string
	tld          string
	model        string

	output string
}

func newResolveCommand() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve an available domain name",
		Long: `Resolve drives the full pipeline: extract or accept content text,
prompt the AI backend for candidates, validate them, verify
availability, and retry with failure context until a name resolves.

Content comes from exactly one of --url, --text, or --text-file. The
prompt template comes from --prompt, --prompt-file, or a --profile;
with none of these the built-in template is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runResolve(cmd.Context(), opts, verbose)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "Source URL to extract content from")
	cmd.Flags().StringVar(&opts.text, "text", "", "Content text to name")
	cmd.Flags().StringVar(&opts.textFile, "text-file", "", "File containing the content text")
	cmd.Flags().StringVar(&opts.promptInline, "prompt", "", "Inline prompt template")
	cmd.Flags().StringVar(&opts.promptFile, "prompt-file", "", "File containing the prompt template")
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "Prompt profile (YAML file or directory)")
	cmd.Flags().IntVar(&opts.maxAttempts, "max-attempts", 0, "Retry budget (default from environment)")
	cmd.Flags().IntVar(&opts.alternatives, "alternatives", 0, "Names to request per generation call")
	cmd.Flags().BoolVar(&opts.rank, "rank", false, "Order candidates by brandability score")
	cmd.Flags().StringVar(&opts.providerName, "provider", "", "Generation backend: anthropic or claude")
	cmd.Flags().StringVar(&opts.oracleName, "oracle", "", "Availability oracle: rdap or loopia")
	cmd.Flags().StringVar(&opts.tld, "tld", "", "TLD used for availability checks")
	cmd.Flags().StringVar(&opts.model, "model", "", "Model for the generation backend")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the outcome report (JSON) to this path")

	return cmd
}

func runResolve(ctx context.Context, opts resolveOptions, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return &configError{err}
	}
	setupLogging(verbose, cfg.LogLevel)
	applyFlagOverrides(cfg, opts)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	template, profile, err := resolveTemplate(opts)
	if err != nil {
		return err
	}
	if profile != nil {
		if profile.Alternatives > 0 && opts.alternatives == 0 {
			cfg.Alternatives = profile.Alternatives
		}
		if profile.System != "" && cfg.SystemPrompt == "" {
			cfg.SystemPrompt = profile.System
		}
		opts.rank = opts.rank || profile.Rank
	}

	content, err := resolveContent(ctx, opts)
	if err != nil {
		return err
	}

	provider, err := newProvider(cfg)
	if err != nil {
		return &configError{err}
	}

	checker, err := newChecker(cfg)
	if err != nil {
		return &configError{err}
	}

	r := resolver.New(resolver.Config{
		MaxAttempts:         cfg.MaxAttempts,
		Alternatives:        cfg.Alternatives,
		GenerationTimeout:   cfg.GenerationTimeout,
		AvailabilityTimeout: cfg.AvailabilityTimeout,
		Rank:                opts.rank,
	}, provider, checker)

	sess := session.New(content, template)
	log.Info().
		Str("provider", provider.Name()).
		Str("oracle", checker.Name()).
		Int("max_attempts", cfg.MaxAttempts).
		Msg("Starting resolution session")

	outcome, err := r.Resolve(ctx, sess)
	if err != nil {
		return &externalError{fmt.Errorf("resolution aborted: %w", err)}
	}

	if opts.output != "" {
		if werr := outcome.WriteFile(opts.output); werr != nil {
			log.Error().Err(werr).Str("path", opts.output).Msg("Failed to write outcome report")
		}
	}

	if !outcome.Resolved {
		fmt.Fprintf(os.Stderr, "No available name after %d attempts (last failure: %s)\n",
			outcome.Attempts, outcome.LastFailure)
		for _, rej := range outcome.Rejections {
			fmt.Fprintf(os.Stderr, "  - %s (%s)\n", rej.Name, rej.Reason)
		}
		return errExhausted
	}

	fmt.Println(outcome.Name)
	return nil
}

// applyFlagOverrides lets flags win over environment values.
func applyFlagOverrides(cfg *config.Config, opts resolveOptions) {
	if opts.maxAttempts > 0 {
		cfg.MaxAttempts = opts.maxAttempts
	}
	if opts.alternatives > 0 {
		cfg.Alternatives = opts.alternatives
	}
	if opts.oracleName != "" {
		cfg.Oracle = opts.oracleName
	}
	if opts.tld != "" {
		cfg.TLD = opts.tld
	}
	if opts.model != "" {
		cfg.Model = opts.model
	}
	if opts.providerName != "" {
		cfg.Provider = opts.providerName
	}
}

// newProvider builds the configured generation backend.
func newProvider(cfg *config.Config) (providers.Provider, error) {
	switch cfg.Provider {
	case "anthropic", "":
		return anthropic.New(anthropic.Config{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.Model,
			System: cfg.SystemPrompt,
		})
	case "claude":
		return claude.New(claude.Config{
			Model:  cfg.Model,
			System: cfg.SystemPrompt,
		})
	default:
		return nil, fmt.Errorf("unknown provider %q (want anthropic or claude)", cfg.Provider)
	}
}

// resolveTemplate picks the prompt template from the profile or the
// prompt flags. With no source at all, the built-in template is used.
func resolveTemplate(opts resolveOptions) (string, *prompt.Profile, error) {
	if opts.profilePath != "" {
		if opts.promptInline != "" || opts.promptFile != "" {
			return "", nil, &configError{prompt.ErrConflictingTemplates}
		}
		profile, err := prompt.LoadProfile(opts.profilePath)
		if err != nil {
			return "", nil, &configError{err}
		}
		template, err := profile.Resolve()
		if err != nil {
			return "", nil, &configError{err}
		}
		return template, profile, nil
	}

	if opts.promptInline == "" && opts.promptFile == "" {
		return prompt.DefaultTemplate, nil, nil
	}
	template, err := prompt.ResolveTemplate(opts.promptInline, opts.promptFile)
	if err != nil {
		return "", nil, &configError{err}
	}
	return template, nil, nil
}

// resolveContent produces the {TEXT} binding from exactly one source.
func resolveContent(ctx context.Context, opts resolveOptions) (string, error) {
	sources := 0
	for _, s := range []string{opts.url, opts.text, opts.textFile} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return "", &configError{fmt.Errorf("exactly one of --url, --text, or --text-file is required")}
	}

	switch {
	case opts.text != "":
		return opts.text, nil
	case opts.textFile != "":
		data, err := os.ReadFile(opts.textFile)
		if err != nil {
			return "", &configError{fmt.Errorf("failed to read text file: %w", err)}
		}
		return string(data), nil
	default:
		extractor := extract.New(extract.Config{})
		text, err := extractor.Extract(ctx, opts.url)
		if err != nil {
			return "", &externalError{err}
		}
		return text, nil
	}
}

// newChecker builds the configured availability oracle.
func newChecker(cfg *config.Config) (oracle.Checker, error) {
	switch cfg.Oracle {
	case "rdap", "":
		return rdap.New(rdap.Config{
			BaseURL: cfg.RDAPBaseURL,
			TLD:     cfg.TLD,
			Timeout: cfg.AvailabilityTimeout,
		}), nil
	case "loopia":
		return loopia.New(loopia.Config{
			Username: cfg.LoopiaUsername,
			Password: cfg.LoopiaPassword,
			TLD:      cfg.TLD,
			Timeout:  cfg.AvailabilityTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown oracle %q (want rdap or loopia)", cfg.Oracle)
	}
}
