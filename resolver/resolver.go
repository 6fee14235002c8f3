// Package resolver drives the candidate generation and resolution
// pipeline.
//
// One resolution run is an explicit state machine:
//
//	INIT -> GENERATING -> PARSING -> VALIDATING -> CHECKING
//	     -> {RESOLVED | RETRYING | EXHAUSTED}
//
// Every retryable failure (generation error, unusable response, all
// candidates invalid, taken or unverifiable proposal) increments the
// session attempt counter, so the loop terminates within the configured
// attempt budget. Before issuing a fresh generation call, the resolver
// first works through the remaining alternatives of the current
// response; a single {COUNT}-driven response can therefore survive
// several rejected proposals.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nameforge/nameforge-go/candidates"
	"github.com/nameforge/nameforge-go/oracle"
	"github.com/nameforge/nameforge-go/prompt"
	"github.com/nameforge/nameforge-go/providers"
	"github.com/nameforge/nameforge-go/session"
)

// state is the resolver's position in the attempt loop.
type state int

const (
	stateInit state = iota
	stateGenerating
	stateParsing
	stateValidating
	stateChecking
	stateRetrying
	stateResolved
	stateExhausted
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "init"
	case stateGenerating:
		return "generating"
	case stateParsing:
		return "parsing"
	case stateValidating:
		return "validating"
	case stateChecking:
		return "checking-availability"
	case stateRetrying:
		return "retrying"
	case stateResolved:
		return "resolved"
	case stateExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Config configures a resolution run.
type Config struct {
	// MaxAttempts bounds the retry loop.
	MaxAttempts int

	// Alternatives binds {COUNT}: how many names each generation call
	// asks for.
	Alternatives int

	// GenerationTimeout bounds each generation call.
	GenerationTimeout time.Duration

	// AvailabilityTimeout bounds each availability check.
	AvailabilityTimeout time.Duration

	// Rank orders each response's candidates by brandability score
	// before validation instead of keeping response order.
	Rank bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:         5,
		Alternatives:        5,
		GenerationTimeout:   60 * time.Second,
		AvailabilityTimeout: 10 * time.Second,
	}
}

// Resolver converges on an available domain name for a session.
type Resolver struct {
	config   Config
	provider providers.Provider
	checker  oracle.Checker
}

// New creates a Resolver. Zero config fields fall back to defaults.
func New(config Config, provider providers.Provider, checker oracle.Checker) *Resolver {
	def := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = def.MaxAttempts
	}
	if config.Alternatives <= 0 {
		config.Alternatives = def.Alternatives
	}
	if config.GenerationTimeout <= 0 {
		config.GenerationTimeout = def.GenerationTimeout
	}
	if config.AvailabilityTimeout <= 0 {
		config.AvailabilityTimeout = def.AvailabilityTimeout
	}
	return &Resolver{config: config, provider: provider, checker: checker}
}

// Resolve runs the state machine for one session until it produces a
// terminal outcome or ctx is cancelled. Both resolution and exhaustion
// return a non-nil outcome with a nil error; an error is returned only
// for cancellation.
func (r *Resolver) Resolve(ctx context.Context, sess *session.Session) (*session.Outcome, error) {
	st := stateInit

	var (
		su          *supply
		raw         string
		proposal    string
		lastFailure string
	)

	// fail converts a retryable attempt failure into a RETRYING
	// transition. Every failure counts against the attempt budget.
	fail := func(reason string) {
		lastFailure = reason
		sess.Attempts++
		log.Warn().
			Int("attempt", sess.Attempts).
			Int("max_attempts", r.config.MaxAttempts).
			Str("reason", reason).
			Msg("Attempt failed")
		st = stateRetrying
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch st {
		case stateInit:
			st = stateGenerating

		case stateGenerating:
			rendered := prompt.Render(sess.Template, prompt.Bindings{
				Text:         sess.Content,
				FailedDomain: sess.LastFailedProposal(),
				Count:        r.config.Alternatives,
			})

			gctx, cancel := context.WithTimeout(ctx, r.config.GenerationTimeout)
			var err error
			raw, err = r.provider.Generate(gctx, rendered)
			cancel()

			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				fail(fmt.Sprintf("generation failed: %v", err))
				continue
			}
			st = stateParsing

		case stateParsing:
			su = newSupply(raw, r.config.Rank)
			st = stateValidating

		case stateValidating:
			proposal = ""
			for {
				name, ok := su.next()
				if !ok {
					break
				}
				verr := candidates.Validate(name, sess.IsRejected)
				if verr == nil {
					proposal = name
					break
				}
				log.Debug().Str("candidate", name).Str("rule", string(verr.Rule)).Msg("Candidate rejected by validator")
				// Record invalid names so they are never re-proposed.
				// Duplicates are already in the rejected-set.
				if verr.Rule != candidates.RuleDuplicate {
					sess.Reject(name, session.ReasonInvalid)
				}
			}

			switch {
			case proposal != "":
				su.fresh = false
				st = stateChecking
			case su.fresh && su.parseErr() != nil:
				su = nil
				fail("response contained no usable candidates")
			case su.fresh:
				su = nil
				fail("all candidates in response failed validation")
			default:
				// A previously consumed response ran out of
				// alternatives. The availability failure that led
				// here was already counted, so regenerate without
				// touching the attempt budget.
				su = nil
				st = stateGenerating
			}

		case stateChecking:
			cctx, cancel := context.WithTimeout(ctx, r.config.AvailabilityTimeout)
			verdict, err := r.checker.Check(cctx, proposal)
			cancel()

			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			switch verdict {
			case oracle.Available:
				st = stateResolved
			case oracle.Taken:
				sess.RejectProposal(proposal, session.ReasonTaken)
				fail(fmt.Sprintf("proposal %s is taken", proposal))
			default:
				// Unknown is never surfaced as success. The session
				// marks the entry recheckable for out-of-band review.
				sess.RejectProposal(proposal, session.ReasonUnverified)
				fail(fmt.Sprintf("availability of %s unknown: %v", proposal, err))
			}

		case stateRetrying:
			switch {
			case sess.Attempts >= r.config.MaxAttempts:
				st = stateExhausted
			case su != nil:
				// Reuse the current response before generating again.
				st = stateValidating
			default:
				st = stateGenerating
			}

		case stateResolved:
			log.Info().
				Str("name", proposal).
				Int("attempts", sess.Attempts).
				Msg("Resolved available domain name")
			return sess.Resolved(proposal), nil

		case stateExhausted:
			log.Warn().
				Int("attempts", sess.Attempts).
				Str("last_failure", lastFailure).
				Msg("Retry budget exhausted")
			return sess.Exhausted(lastFailure), nil
		}
	}
}
