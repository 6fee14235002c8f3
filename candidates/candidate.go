// Package candidates turns raw AI output into validated domain-name
// candidates.
//
// The parser scans a response line by line, discards commentary, and
// yields normalized candidates in first-seen order with duplicates
// removed. The validator enforces the naming rules a registrable label
// must satisfy, independent of anything the AI produced.
package candidates

import "strings"

// Candidate is a single proposed domain label.
type Candidate struct {
	// Raw is the line as it appeared in the AI response.
	Raw string

	// Name is the normalized form: trimmed, unquoted, lowercased, with
	// URL schemes, paths, and common TLD suffixes stripped.
	Name string
}

// TLD suffixes stripped during normalization. The AI is asked for bare
// labels but tends to append these anyway.
var strippedTLDs = []string{".com", ".org", ".net", ".io", ".co", ".app", ".dev"}

// Normalize produces the canonical form of a proposed name:
//
//  1. trim surrounding whitespace
//  2. strip list markers ("- ", "* ", "1. ", "1) ")
//  3. strip surrounding quotes and backticks
//  4. strip an http:// or https:// prefix
//  5. drop anything after the first "/"
//  6. strip one trailing TLD from the stripped set
//  7. lowercase
//
// Normalization is deterministic and never fails; validation of the
// result is the validator's job.
func Normalize(line string) string {
	s := strings.TrimSpace(line)
	s = stripListMarker(s)
	s = strings.Trim(s, "\"'`")
	s = strings.TrimSpace(s)

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}

	s = strings.ToLower(s)
	for _, tld := range strippedTLDs {
		if trimmed, ok := strings.CutSuffix(s, tld); ok {
			s = trimmed
			break
		}
	}
	return strings.TrimSpace(s)
}

// stripListMarker removes a leading bullet or enumeration marker.
func stripListMarker(s string) string {
	for _, marker := range []string{"- ", "* ", "• "} {
		if trimmed, ok := strings.CutPrefix(s, marker); ok {
			return strings.TrimSpace(trimmed)
		}
	}

	// Numbered markers: digits followed by "." or ")" and a space.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i+1 < len(s) && (s[i] == '.' || s[i] == ')') && s[i+1] == ' ' {
		return strings.TrimSpace(s[i+2:])
	}
	return s
}
