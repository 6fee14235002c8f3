// Package main provides the entry point for the nameforge CLI.
//
// nameforge turns descriptive text (or the text content of a URL) into
// a verified, currently-available domain name. It prompts an AI
// backend for candidate names, validates them, checks availability
// against a registry oracle, and retries with failure context until a
// name resolves or the attempt budget runs out.
//
// Exit codes:
//
//	0  a name resolved; it is printed to standard output
//	1  usage or unexpected error
//	2  retry budget exhausted without an available name
//	3  configuration error (conflicting prompt sources, missing keys)
//	4  unrecoverable external-service error
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nameforge/nameforge-go/prompt"
	"github.com/nameforge/nameforge-go/version"
)

const (
	exitExhausted = 2
	exitConfig    = 3
	exitExternal  = 4
)

// errExhausted signals that the retry budget ran out.
var errExhausted = errors.New("retry budget exhausted without an available name")

// externalError wraps unrecoverable external-service failures.
type externalError struct {
	err error
}

func (e *externalError) Error() string { return e.err.Error() }
func (e *externalError) Unwrap() error { return e.err }

// configError wraps failures that abort before any attempt.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nameforge",
		Version: version.Version(),
		Short:   "Resolve an available domain name for a piece of content",
		Long: `nameforge drives an AI backend to propose domain names for a piece of
content, validates each proposal, verifies availability against a
registry oracle, and retries with failure context until a name is
found or the attempt budget runs out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}

func setupLogging(verbose bool, level string) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.StampMicro,
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
}

func main() {
	root := newRootCommand()
	root.AddCommand(newResolveCommand())
	root.AddCommand(newScoreCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cfgErr *configError
	var extErr *externalError
	switch {
	case errors.Is(err, errExhausted):
		return exitExhausted
	case errors.As(err, &cfgErr),
		errors.Is(err, prompt.ErrConflictingTemplates),
		errors.Is(err, prompt.ErrNoTemplate):
		return exitConfig
	case errors.As(err, &extErr):
		return exitExternal
	default:
		return 1
	}
}
