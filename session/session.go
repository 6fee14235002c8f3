// Package session tracks the mutable state of one resolution run.
//
// A session owns the rejected-set: every name tried and found unusable,
// with the reason it was rejected. The resolver threads a single
// session through the attempt loop; sessions are never shared across
// runs, so no locking is needed.
package session

import (
	"time"

	"github.com/nameforge/nameforge-go/score"
)

// RejectReason records why a name entered the rejected-set.
type RejectReason string

const (
	// ReasonTaken: the oracle reported the name as registered.
	ReasonTaken RejectReason = "taken"

	// ReasonInvalid: the name failed validation.
	ReasonInvalid RejectReason = "invalid"

	// ReasonUnverified: the oracle could not answer. The name is not
	// re-offered within the session, but the entry is marked so an
	// operator can re-check it out-of-band.
	ReasonUnverified RejectReason = "unverified"
)

// Rejection is one rejected-set entry.
type Rejection struct {
	Name        string       `json:"name"`
	Reason      RejectReason `json:"reason"`
	Recheckable bool         `json:"recheckable,omitempty"`
	Attempt     int          `json:"attempt"`
	Score       float64      `json:"score"`
}

// Session is the state for one end-to-end resolution run.
type Session struct {
	// Content is the extracted source text bound to {TEXT}.
	Content string

	// Template is the resolved prompt template.
	Template string

	// Attempts is the number of failed attempts so far.
	Attempts int

	// StartTime is when the session was created.
	StartTime time.Time

	rejected     map[string]struct{}
	rejections   []Rejection
	lastProposal string
}

// New creates a session for the given content and template.
func New(content, template string) *Session {
	return &Session{
		Content:   content,
		Template:  template,
		StartTime: time.Now(),
		rejected:  make(map[string]struct{}),
	}
}

// Reject adds a name to the rejected-set. Re-rejecting a name is a
// no-op: once recorded, an entry is never duplicated or re-emitted
// within the session.
func (s *Session) Reject(name string, reason RejectReason) {
	if _, ok := s.rejected[name]; ok {
		return
	}
	s.rejected[name] = struct{}{}
	s.rejections = append(s.rejections, Rejection{
		Name:        name,
		Reason:      reason,
		Recheckable: reason == ReasonUnverified,
		Attempt:     s.Attempts + 1,
		Score:       score.Evaluate(name).Total,
	})
}

// RejectProposal records a failed availability proposal. The name also
// becomes the {FAILED_DOMAIN} binding for the next attempt.
func (s *Session) RejectProposal(name string, reason RejectReason) {
	s.Reject(name, reason)
	s.lastProposal = name
}

// IsRejected reports rejected-set membership.
func (s *Session) IsRejected(name string) bool {
	_, ok := s.rejected[name]
	return ok
}

// LastFailedProposal returns the most recently rejected proposal, or ""
// before the first availability failure.
func (s *Session) LastFailedProposal() string {
	return s.lastProposal
}

// Rejections returns the rejected-set entries in rejection order.
func (s *Session) Rejections() []Rejection {
	out := make([]Rejection, len(s.rejections))
	copy(out, s.rejections)
	return out
}
