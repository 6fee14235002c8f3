package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Template source resolution errors. Both are configuration errors:
// they abort a session before any attempt is made.
var (
	// ErrNoTemplate is returned when neither an inline template nor a
	// template file was supplied.
	ErrNoTemplate = errors.New("no prompt template supplied")

	// ErrConflictingTemplates is returned when both an inline template
	// and a template file were supplied.
	ErrConflictingTemplates = errors.New("inline template and template file are mutually exclusive")
)

// DefaultTemplate asks for short, brandable names and threads the
// failure context back into retries.
const DefaultTemplate = `Based on this text description, generate {COUNT} short, simple, and memorable domain names that people might type directly:

{TEXT}

The names should be very short, easy to remember, and have broad appeal.
Previously tried and unavailable: {FAILED_DOMAIN}
Respond with one name per line and nothing else. Do not include a TLD.`

// ResolveTemplate resolves the session's template from exactly one of an
// inline string or a file path. Supplying neither or both is an error.
func ResolveTemplate(inline, file string) (string, error) {
	switch {
	case inline != "" && file != "":
		return "", ErrConflictingTemplates
	case inline != "":
		return inline, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		tmpl := strings.TrimRight(string(data), "\n")
		if tmpl == "" {
			return "", fmt.Errorf("template file %s is empty", file)
		}
		return tmpl, nil
	default:
		return "", ErrNoTemplate
	}
}
