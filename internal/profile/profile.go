// Package profile loads named analysis configurations from YAML files. A
// profile bundles the knobs that used to vary between per-document copies of
// the same analysis: keyword defaults, match policy, and the
// document-specific boilerplate terms excluded from frequency counting.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/parascope/parascope/internal/analysis"
)

// Profile is a named, reusable analysis configuration.
type Profile struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Policy   string   `yaml:"policy" json:"policy"`
	Mode     string   `yaml:"mode" json:"mode"`

	MinParagraphLength int `yaml:"min_paragraph_length" json:"min_paragraph_length"`
	MinTokenLength     int `yaml:"min_token_length" json:"min_token_length"`

	// Boilerplate terms join the English stopword list for this profile's
	// documents (organization name, "annual", "report", ...).
	Boilerplate []string `yaml:"boilerplate" json:"boilerplate"`
}

// Validate checks the profile is usable for matching.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile: name is required")
	}
	keywords := 0
	for _, k := range p.Keywords {
		if strings.TrimSpace(k) != "" {
			keywords++
		}
	}
	if keywords == 0 {
		return fmt.Errorf("profile %s: at least one keyword is required", p.Name)
	}
	if _, err := analysis.ParsePolicy(p.Policy); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	if _, err := analysis.ParseMode(p.Mode); err != nil {
		return fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return nil
}

// Load reads and validates a single profile file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadDir loads every *.yaml / *.yml profile in dir, keyed by name.
// A missing directory yields an empty set, not an error.
func LoadDir(dir string) (map[string]*Profile, error) {
	profiles := make(map[string]*Profile)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return profiles, nil
		}
		return nil, fmt.Errorf("read profile dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		p, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := profiles[p.Name]; dup {
			return nil, fmt.Errorf("duplicate profile name %q", p.Name)
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Names returns the profile names sorted for stable listings.
func Names(profiles map[string]*Profile) []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
