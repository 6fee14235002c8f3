package candidates

import (
	"errors"
	"strings"
)

// ErrNoCandidates is the parse failure reported when a response yields
// zero retained lines after normalization. It signals that the AI
// produced no usable candidates, which is distinct from every candidate
// failing validation.
var ErrNoCandidates = errors.New("response contained no usable candidates")

// Scan is a lazy, finite, non-restartable pass over one raw AI
// response. Each response is parsed exactly once; candidates are
// produced on demand in first-seen order with duplicates removed.
//
// Usage follows the bufio.Scanner pattern:
//
//	scan := candidates.Parse(raw)
//	for scan.Next() {
//		c := scan.Candidate()
//		...
//	}
//	if err := scan.Err(); err != nil {
//		// no usable candidates in the response
//	}
type Scan struct {
	rest    string
	cur     Candidate
	seen    map[string]struct{}
	yielded int
	done    bool
}

// Parse begins scanning a raw AI response for domain-name candidates.
func Parse(raw string) *Scan {
	return &Scan{
		rest: raw,
		seen: make(map[string]struct{}),
	}
}

// Next advances to the next candidate. It returns false when the
// response is exhausted; check Err afterwards to distinguish a clean
// end from a response with no usable candidates.
func (s *Scan) Next() bool {
	if s.done {
		return false
	}
	for {
		line, rest, more := cutLine(s.rest)
		s.rest = rest
		if !more && line == "" {
			s.done = true
			return false
		}

		name := Normalize(line)
		if !retained(name) {
			if !more {
				s.done = true
				return false
			}
			continue
		}
		if _, dup := s.seen[name]; dup {
			if !more {
				s.done = true
				return false
			}
			continue
		}

		s.seen[name] = struct{}{}
		s.cur = Candidate{Raw: line, Name: name}
		s.yielded++
		if !more {
			s.done = true
		}
		return true
	}
}

// Candidate returns the candidate produced by the last call to Next.
func (s *Scan) Candidate() Candidate {
	return s.cur
}

// Err returns ErrNoCandidates if the scan finished without producing a
// single candidate, and nil otherwise. The result is only meaningful
// once Next has returned false.
func (s *Scan) Err() error {
	if s.done && s.yielded == 0 {
		return ErrNoCandidates
	}
	return nil
}

// retained reports whether a normalized line is kept as a candidate.
// The commentary policy is deliberately simple and deterministic: a
// genuine label normalizes to a single token, so any line that still
// contains whitespace after normalization is prose ("Here are five
// names"), as is any line ending with a colon.
func retained(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, " \t") {
		return false
	}
	if strings.HasSuffix(name, ":") {
		return false
	}
	return true
}

// cutLine splits off the first line of s. more is false once the final
// line has been taken.
func cutLine(s string) (line, rest string, more bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSuffix(s[:i], "\r"), s[i+1:], true
	}
	return s, "", false
}
