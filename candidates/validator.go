package candidates

import "fmt"

// Rule identifies the specific validation rule a candidate broke.
type Rule string

const (
	// RuleLength: the normalized name must be 1-63 characters.
	RuleLength Rule = "length"

	// RuleCharset: only lowercase letters, digits, and hyphens.
	RuleCharset Rule = "charset"

	// RuleBoundaryHyphen: the name must not start or end with a hyphen.
	RuleBoundaryHyphen Rule = "boundary-hyphen"

	// RuleDuplicate: the name is already in the session rejected-set.
	RuleDuplicate Rule = "duplicate"
)

// ValidationError reports the single rule a candidate broke. Rules are
// checked in a fixed order (length, charset, boundary-hyphen,
// duplicate) so every invalid name maps to exactly one rule.
type ValidationError struct {
	Name string
	Rule Rule
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("candidate %q failed validation: %s", e.Name, e.Rule)
}

// maxLabelLength is the DNS limit for a single label.
const maxLabelLength = 63

// Validate checks a normalized candidate name against the fixed naming
// policy. rejected reports session rejected-set membership; a nil
// rejected func skips the duplicate rule.
//
// Validate is total and pure: it never blocks and always returns either
// nil or a *ValidationError tagged with the broken rule.
func Validate(name string, rejected func(string) bool) *ValidationError {
	if len(name) < 1 || len(name) > maxLabelLength {
		return &ValidationError{Name: name, Rule: RuleLength}
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' {
			continue
		}
		return &ValidationError{Name: name, Rule: RuleCharset}
	}
	if name[0] == '-' || name[len(name)-1] == '-' {
		return &ValidationError{Name: name, Rule: RuleBoundaryHyphen}
	}
	if rejected != nil && rejected(name) {
		return &ValidationError{Name: name, Rule: RuleDuplicate}
	}
	return nil
}
