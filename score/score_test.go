package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBounds(t *testing.T) {
	for _, name := range []string{"", "go", "shoply", "shop-zone-4-you", strings.Repeat("z", 63)} {
		r := Evaluate(name)
		assert.GreaterOrEqual(t, r.Total, 0.0, "name %q", name)
		assert.LessOrEqual(t, r.Total, 1.0, "name %q", name)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	assert.Equal(t, Evaluate("shoply"), Evaluate("shoply"))
}

func TestShorterBeatsLonger(t *testing.T) {
	short := Evaluate("go").Total
	long := Evaluate("gocorporationonline").Total
	assert.Greater(t, short, long)
}

func TestDashIsPenalized(t *testing.T) {
	plain := Evaluate("shopzone").Total
	dashed := Evaluate("shop-zone").Total
	assert.Greater(t, plain, dashed)
}

func TestDigitsArePenalized(t *testing.T) {
	letters := Evaluate("shoply").Total
	digits := Evaluate("shop1y").Total
	assert.Greater(t, letters, digits)
}

func TestKeywordBonus(t *testing.T) {
	with := Evaluate("shopzy")
	without := Evaluate("qorvny")
	assert.Greater(t, with.Keyword, without.Keyword)
}

func TestRankIsStableForEqualScores(t *testing.T) {
	names := []string{"shoply", "shoply2", "shoply"}
	ranked := Rank(names)
	assert.Len(t, ranked, 3)
	// Input slice untouched.
	assert.Equal(t, []string{"shoply", "shoply2", "shoply"}, names)
}

func TestRankPrefersCleanShortNames(t *testing.T) {
	ranked := Rank([]string{"my-very-long-shop-name-4u", "shoply"})
	assert.Equal(t, "shoply", ranked[0])
}
