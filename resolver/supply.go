package resolver

import (
	"github.com/nameforge/nameforge-go/candidates"
	"github.com/nameforge/nameforge-go/score"
)

// supply hands out the candidates of one generation response. In the
// default mode it pulls lazily from the parse scan; when ranking is
// enabled the response is drained up front and served in score order.
// Either way a response is consumed at most once.
type supply struct {
	scan   *candidates.Scan
	rank   bool
	ranked []string
	pos    int

	// fresh is true until the supply has produced a proposal. It lets
	// the resolver tell a response that never yielded anything usable
	// (an attempt failure) from one that simply ran dry after earlier
	// proposals were rejected.
	fresh bool
}

func newSupply(raw string, rank bool) *supply {
	s := &supply{
		scan:  candidates.Parse(raw),
		rank:  rank,
		fresh: true,
	}
	if rank {
		var names []string
		for s.scan.Next() {
			names = append(names, s.scan.Candidate().Name)
		}
		s.ranked = score.Rank(names)
	}
	return s
}

// next returns the next candidate name, or ok=false when the response
// is exhausted.
func (s *supply) next() (name string, ok bool) {
	if s.rank {
		if s.pos >= len(s.ranked) {
			return "", false
		}
		name = s.ranked[s.pos]
		s.pos++
		return name, true
	}
	if s.scan.Next() {
		return s.scan.Candidate().Name, true
	}
	return "", false
}

// parseErr reports whether the underlying response parsed to nothing.
// Only meaningful once next has returned false.
func (s *supply) parseErr() error {
	return s.scan.Err()
}
