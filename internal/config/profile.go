package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Profile is a YAML file holding defaults for a copy run, e.g. a
// deployment staging recipe checked into a repository.
//
//	source: ./site
//	destination: ../staging
//	recurse: true
//	ignore_file: .copyignore
//	exclude: [".git", "*.tmp"]
type Profile struct {
	Source      string   `yaml:"source"`
	Destination string   `yaml:"destination"`
	Recurse     *bool    `yaml:"recurse"`
	IgnoreFile  string   `yaml:"ignore_file"`
	Exclude     []string `yaml:"exclude"`
	GitIgnore   *bool    `yaml:"gitignore"`

	dir string
}

// LoadProfile reads a YAML profile. Unknown keys are rejected. Relative
// paths inside the profile are resolved against the profile's directory.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to open profile '%s': %w", path, err)
	}
	defer f.Close()

	var p Profile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse profile '%s': %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to resolve profile path '%s': %w", path, err)
	}
	p.dir = filepath.Dir(abs)
	p.Source = p.resolve(p.Source)
	p.Destination = p.resolve(p.Destination)
	p.IgnoreFile = p.resolve(p.IgnoreFile)

	return &p, nil
}

func (p *Profile) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || p.dir == "" {
		return path
	}
	return filepath.Join(p.dir, path)
}

// apply fills settings the command line left unset. Exclusion patterns
// from both sources are merged.
func (p *Profile) apply(c *Config, set map[string]bool) {
	if c.Source == "" {
		c.Source = p.Source
	}
	if c.Destination == "" {
		c.Destination = p.Destination
	}
	if p.Recurse != nil && !set["recurse"] && !set["r"] {
		c.Recurse = *p.Recurse
	}
	if c.IgnoreFile == "" {
		c.IgnoreFile = p.IgnoreFile
	}
	if p.GitIgnore != nil && !set["gitignore"] {
		c.GitIgnore = *p.GitIgnore
	}
	c.Exclude = append(append([]string(nil), p.Exclude...), c.Exclude...)
}
