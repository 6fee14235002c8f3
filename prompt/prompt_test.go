package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesAllPlaceholders(t *testing.T) {
	b := Bindings{
		Text:         "an online shoe store",
		FailedDomain: "shoply",
		Count:        5,
	}

	got := Render("Name for: {TEXT}. Avoid {FAILED_DOMAIN}. Give {COUNT} options.", b)

	assert.Equal(t, "Name for: an online shoe store. Avoid shoply. Give 5 options.", got)
}

func TestRenderAbsentBindingsAreEmpty(t *testing.T) {
	// First-attempt prompts must render cleanly even when the template
	// references failure-context placeholders.
	got := Render("Try again, not {FAILED_DOMAIN}, {COUNT} names for {TEXT}", Bindings{Text: "a bakery"})

	assert.Equal(t, "Try again, not ,  names for a bakery", got)
}

func TestRenderIsDeterministic(t *testing.T) {
	tmpl := "Name for: {TEXT} ({COUNT})"
	b := Bindings{Text: "x", Count: 3}

	assert.Equal(t, Render(tmpl, b), Render(tmpl, b))
}

func TestRenderUnrecognizedTokensPassThrough(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"unknown token", "hello {WORLD}", "hello {WORLD}"},
		{"lone open brace", "a { b", "a { b"},
		{"lone close brace", "a } b", "a } b"},
		{"lowercase token", "{text}", "{text}"},
		{"partial token", "{TEX}", "{TEX}"},
		{"empty braces", "{}", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.template, Bindings{Text: "x"}))
		})
	}
}

func TestRenderDoesNotRescanSubstitutedValues(t *testing.T) {
	// A value containing a placeholder token must not be expanded again.
	b := Bindings{Text: "{COUNT}", Count: 7}

	assert.Equal(t, "{COUNT}", Render("{TEXT}", b))
}

func TestRenderCountFormatting(t *testing.T) {
	assert.Equal(t, "12", Render("{COUNT}", Bindings{Count: 12}))
	assert.Equal(t, "", Render("{COUNT}", Bindings{Count: 0}))
	assert.Equal(t, "", Render("{COUNT}", Bindings{Count: -3}))
}

func TestRenderNoPlaceholderRemains(t *testing.T) {
	got := Render(DefaultTemplate, Bindings{Text: "a shop", FailedDomain: "shoply", Count: 5})

	assert.NotContains(t, got, PlaceholderText)
	assert.NotContains(t, got, PlaceholderFailedDomain)
	assert.NotContains(t, got, PlaceholderCount)
}

func TestResolveTemplateInline(t *testing.T) {
	tmpl, err := ResolveTemplate("Name for: {TEXT}", "")
	require.NoError(t, err)
	assert.Equal(t, "Name for: {TEXT}", tmpl)
}

func TestResolveTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("Name for: {TEXT}\n"), 0644))

	tmpl, err := ResolveTemplate("", path)
	require.NoError(t, err)
	assert.Equal(t, "Name for: {TEXT}", tmpl)
}

func TestResolveTemplateNeitherSupplied(t *testing.T) {
	_, err := ResolveTemplate("", "")
	assert.ErrorIs(t, err, ErrNoTemplate)
}

func TestResolveTemplateBothSupplied(t *testing.T) {
	_, err := ResolveTemplate("inline", "file.txt")
	assert.ErrorIs(t, err, ErrConflictingTemplates)
}

func TestResolveTemplateMissingFile(t *testing.T) {
	_, err := ResolveTemplate("", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestParseProfile(t *testing.T) {
	data := []byte(`name: short-names
template: "Name for: {TEXT}"
alternatives: 8
rank: true
`)

	profile, err := ParseProfile(data)
	require.NoError(t, err)
	assert.Equal(t, "short-names", profile.Name)
	assert.Equal(t, "Name for: {TEXT}", profile.Template)
	assert.Equal(t, 8, profile.Alternatives)
	assert.True(t, profile.Rank)

	tmpl, err := profile.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "Name for: {TEXT}", tmpl)
}

func TestLoadProfileFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultProfileFilename),
		[]byte("name: test\ntemplate_file: prompt.txt\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prompt.txt"),
		[]byte("From file: {TEXT}"), 0644))

	profile, err := LoadProfile(dir)
	require.NoError(t, err)

	tmpl, err := profile.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "From file: {TEXT}", tmpl)
}

func TestLoadProfileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{unclosed"), 0644))

	_, err := LoadProfile(path)
	assert.Error(t, err)
}
