// Package prompt renders generation prompts from templates.
//
// Templates carry a closed set of recognized placeholders that are
// substituted with per-attempt bindings:
//
//   - {TEXT} - the extracted source content
//   - {FAILED_DOMAIN} - the most recently rejected proposal
//   - {COUNT} - how many alternatives to request
//
// Substitution is a single left-to-right pass, so substituted values are
// never re-scanned for placeholders. Unrecognized {...} tokens and stray
// braces pass through verbatim; there is no escaping mechanism.
package prompt

import (
	"strconv"
	"strings"
)

// Recognized placeholder tokens. Matching is case-sensitive and exact.
const (
	PlaceholderText         = "{TEXT}"
	PlaceholderFailedDomain = "{FAILED_DOMAIN}"
	PlaceholderCount        = "{COUNT}"
)

// Bindings holds the values substituted into a template for one attempt.
// Zero values mean the binding is absent for this attempt and the
// corresponding placeholder renders as an empty string. This keeps
// first-attempt prompts valid even when the template references
// failure-context placeholders.
type Bindings struct {
	// Text is the extracted source content bound to {TEXT}.
	Text string

	// FailedDomain is the most recently rejected proposal, bound to
	// {FAILED_DOMAIN}. Empty before the first failure.
	FailedDomain string

	// Count is the number of alternatives to request, bound to {COUNT}
	// as a base-10 integer. Values below 1 render as an empty string.
	Count int
}

// Render substitutes all recognized placeholders in template with their
// bound values. It is a pure function: no side effects, deterministic
// given identical inputs.
func Render(template string, b Bindings) string {
	var out strings.Builder
	out.Grow(len(template) + len(b.Text))

	rest := template
	for {
		i := strings.IndexByte(rest, '{')
		if i < 0 {
			out.WriteString(rest)
			return out.String()
		}
		out.WriteString(rest[:i])
		rest = rest[i:]

		token, value := matchPlaceholder(rest, b)
		if token == "" {
			// Not a recognized token; emit the brace and move on.
			out.WriteByte('{')
			rest = rest[1:]
			continue
		}
		out.WriteString(value)
		rest = rest[len(token):]
	}
}

// matchPlaceholder reports which recognized placeholder, if any, starts
// at the beginning of s, along with its rendered value.
func matchPlaceholder(s string, b Bindings) (token, value string) {
	switch {
	case strings.HasPrefix(s, PlaceholderText):
		return PlaceholderText, b.Text
	case strings.HasPrefix(s, PlaceholderFailedDomain):
		return PlaceholderFailedDomain, b.FailedDomain
	case strings.HasPrefix(s, PlaceholderCount):
		if b.Count < 1 {
			return PlaceholderCount, ""
		}
		return PlaceholderCount, strconv.Itoa(b.Count)
	}
	return "", ""
}
