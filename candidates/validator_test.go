package candidates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsGoodNames(t *testing.T) {
	for _, name := range []string{"a", "shoply", "shop-zone", "a1", "7days", strings.Repeat("x", 63)} {
		assert.Nil(t, Validate(name, nil), "expected %q to pass", name)
	}
}

func TestValidateRuleTags(t *testing.T) {
	rejected := func(name string) bool { return name == "shoply" }

	tests := []struct {
		name string
		in   string
		rule Rule
	}{
		{"empty", "", RuleLength},
		{"too long", strings.Repeat("x", 64), RuleLength},
		{"uppercase", "Shoply", RuleCharset},
		{"space", "shop ly", RuleCharset},
		{"underscore", "shop_ly", RuleCharset},
		{"dot", "shoply.com", RuleCharset},
		{"leading hyphen", "-bad", RuleBoundaryHyphen},
		{"trailing hyphen", "bad-", RuleBoundaryHyphen},
		{"both hyphens", "-bad-", RuleBoundaryHyphen},
		{"already rejected", "shoply", RuleDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := Validate(tt.in, rejected)
			require.NotNil(t, verr)
			assert.Equal(t, tt.rule, verr.Rule)
			assert.Equal(t, tt.in, verr.Name)
		})
	}
}

func TestValidateExactlyOneRule(t *testing.T) {
	// "-bad-" breaks the hyphen rule regardless of rejected-set state.
	verr := Validate("-bad-", func(string) bool { return true })
	require.NotNil(t, verr)
	assert.Equal(t, RuleBoundaryHyphen, verr.Rule)
}

func TestValidateNilRejectedSkipsDuplicateRule(t *testing.T) {
	assert.Nil(t, Validate("shoply", nil))
}

func TestValidationErrorMessage(t *testing.T) {
	verr := Validate("-bad-", nil)
	require.NotNil(t, verr)
	assert.Contains(t, verr.Error(), "-bad-")
	assert.Contains(t, verr.Error(), "boundary-hyphen")
}
