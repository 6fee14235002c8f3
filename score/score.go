// Package score rates domain-name candidates for brandability.
//
// Scores are advisory: the resolver uses them to order candidates when
// ranking is enabled and attaches them to the session outcome so a
// reader can see how the alternatives compared. They never override
// validation or availability.
package score

import (
	"sort"
	"strings"
)

// Result holds the scoring breakdown for a single name.
type Result struct {
	Name string

	// Component scores, each in [0, 1].
	Length        float64
	Pronounceable float64
	Keyword       float64

	// DashPenalty and DigitPenalty are subtracted, each in [0, 1].
	DashPenalty  float64
	DigitPenalty float64

	// Total is the weighted overall score in [0, 1].
	Total float64
}

// Keywords that make a short name more marketable.
var keywords = []string{
	"web", "app", "tech", "code", "dev", "cloud", "data",
	"shop", "store", "buy", "sell", "market", "pay",
	"smart", "eco", "health", "learn", "travel", "food", "ai",
}

// Component weights. Length dominates: short names are what the whole
// pipeline is after.
const (
	lengthWeight       = 0.40
	pronounceWeight    = 0.25
	keywordWeight      = 0.15
	dashPenaltyWeight  = 0.12
	digitPenaltyWeight = 0.08
)

// Evaluate scores a normalized name. Deterministic and pure.
func Evaluate(name string) Result {
	r := Result{Name: name}
	if name == "" {
		return r
	}

	r.Length = lengthScore(len(name))
	r.Pronounceable = pronounceScore(name)
	r.Keyword = keywordScore(name)
	if strings.Contains(name, "-") {
		r.DashPenalty = 1.0
	}
	if strings.ContainsAny(name, "0123456789") {
		r.DigitPenalty = 0.5
	}

	r.Total = clamp(r.Length*lengthWeight +
		r.Pronounceable*pronounceWeight +
		r.Keyword*keywordWeight -
		r.DashPenalty*dashPenaltyWeight -
		r.DigitPenalty*digitPenaltyWeight)
	return r
}

// Rank sorts names by descending score. The sort is stable, so equal
// scores keep their first-seen order.
func Rank(names []string) []string {
	ranked := make([]string, len(names))
	copy(ranked, names)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Evaluate(ranked[i]).Total > Evaluate(ranked[j]).Total
	})
	return ranked
}

func lengthScore(n int) float64 {
	switch {
	case n <= 3:
		return 1.0
	case n <= 4:
		return 0.95
	case n <= 6:
		return 0.9
	case n <= 10:
		return 0.75
	default:
		return clamp(0.75 - float64(n-10)*0.05)
	}
}

// pronounceScore rewards vowel coverage and penalizes consonant runs,
// a rough proxy for how easily a name is said out loud.
func pronounceScore(name string) float64 {
	const vowels = "aeiouy"

	score := 0.0
	run := 0
	for i := 0; i < len(name); i++ {
		c := name[i]
		if strings.IndexByte(vowels, c) >= 0 {
			score += 1.0
			run = 0
			continue
		}
		if c >= 'a' && c <= 'z' {
			run++
			if run > 2 {
				score -= 1.0
			}
		}
	}
	return clamp(score * 2.5 / float64(len(name)))
}

func keywordScore(name string) float64 {
	for _, kw := range keywords {
		if !strings.Contains(name, kw) {
			continue
		}
		// Tighter matches are worth more.
		switch {
		case len(name) <= len(kw)+2:
			return 1.0
		case len(name) <= len(kw)+5:
			return 0.7
		default:
			return 0.4
		}
	}
	return 0.0
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
