package prompt

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultProfileFilename is the default name for prompt profile files.
const DefaultProfileFilename = "profile.yaml"

// Profile bundles a prompt template with the generation options that
// shape it. Profiles let a template, its alternatives count, and the
// provider system prompt travel together as one reusable file.
type Profile struct {
	// Name identifies the profile.
	Name string `yaml:"name"`

	// Template is the inline prompt template. Mutually exclusive with
	// TemplateFile.
	Template string `yaml:"template"`

	// TemplateFile is a path to the prompt template, relative to the
	// profile file. Mutually exclusive with Template.
	TemplateFile string `yaml:"template_file"`

	// System overrides the provider system prompt.
	System string `yaml:"system"`

	// Alternatives binds {COUNT}: how many names to request per call.
	Alternatives int `yaml:"alternatives"`

	// Rank orders parsed candidates by brandability score before
	// validation instead of keeping response order.
	Rank bool `yaml:"rank"`
}

// LoadProfile loads a prompt profile from the specified path. If path is
// a directory, it looks for profile.yaml in that directory.
func LoadProfile(path string) (*Profile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if info.IsDir() {
		path = filepath.Join(path, DefaultProfileFilename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	profile, err := ParseProfile(data)
	if err != nil {
		return nil, err
	}

	if profile.TemplateFile != "" && !filepath.IsAbs(profile.TemplateFile) {
		profile.TemplateFile = filepath.Join(filepath.Dir(path), profile.TemplateFile)
	}
	return profile, nil
}

// ParseProfile parses a prompt profile from YAML bytes.
func ParseProfile(data []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	return &profile, nil
}

// Resolve returns the profile's template text, applying the same
// inline/file exclusivity rule as ResolveTemplate.
func (p *Profile) Resolve() (string, error) {
	return ResolveTemplate(p.Template, p.TemplateFile)
}
