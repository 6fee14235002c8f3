package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nameforge/nameforge-go/score"
)

// Outcome is the terminal result of a session: either a resolved,
// verified name or exhaustion with the full rejection history.
type Outcome struct {
	Resolved bool    `json:"resolved"`
	Name     string  `json:"name,omitempty"`
	Score    float64 `json:"score,omitempty"`

	Attempts    int           `json:"attempts"`
	Rejections  []Rejection   `json:"rejections,omitempty"`
	LastFailure string        `json:"last_failure,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}

// Resolved builds the success outcome for a session.
func (s *Session) Resolved(name string) *Outcome {
	return &Outcome{
		Resolved:   true,
		Name:       name,
		Score:      score.Evaluate(name).Total,
		Attempts:   s.Attempts,
		Rejections: s.Rejections(),
		Duration:   time.Since(s.StartTime),
	}
}

// Exhausted builds the failure outcome for a session, carrying the
// reason for the last failed attempt.
func (s *Session) Exhausted(lastFailure string) *Outcome {
	return &Outcome{
		Resolved:    false,
		Attempts:    s.Attempts,
		Rejections:  s.Rejections(),
		LastFailure: lastFailure,
		Duration:    time.Since(s.StartTime),
	}
}

// WriteFile saves the outcome as indented JSON.
func (o *Outcome) WriteFile(path string) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write outcome file: %w", err)
	}
	return nil
}
