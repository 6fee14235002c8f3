// Package oracle defines the domain-availability oracle interface.
//
// An oracle reports whether a proposed name is registrable. The
// pipeline treats every oracle as read-only: checking a name must never
// have side effects, so a session can be cancelled at the availability
// boundary safely.
package oracle

import "context"

// Verdict is the oracle's answer for a single name.
type Verdict string

const (
	// Available: the name is registrable right now.
	Available Verdict = "available"

	// Taken: the name is already registered.
	Taken Verdict = "taken"

	// Unknown: the oracle could not produce an answer (failure,
	// timeout, rate limit). Never reported as success.
	Unknown Verdict = "unknown"
)

// Checker is the interface availability oracles implement.
type Checker interface {
	// Check reports the availability of a bare label (no TLD). An
	// error accompanies an Unknown verdict with the underlying cause;
	// Available and Taken are always returned with a nil error.
	Check(ctx context.Context, name string) (Verdict, error)

	// Name returns the oracle name (e.g., "rdap", "loopia").
	Name() string
}

// CheckFunc adapts a plain function to the Checker interface.
type CheckFunc func(ctx context.Context, name string) (Verdict, error)

// Check calls f.
func (f CheckFunc) Check(ctx context.Context, name string) (Verdict, error) {
	return f(ctx, name)
}

// Name returns "func".
func (f CheckFunc) Name() string {
	return "func"
}
