package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Package is one entry of the dependency-ordered package list produced by
// the package manager. The order of entries is the execution order contract:
// leaf packages come first, so their install tasks run before their
// dependents' tasks.
type Package struct {
	Name    string                 `yaml:"name"`
	Version string                 `yaml:"version,omitempty"`
	Extra   map[string]interface{} `yaml:"extra,omitempty"`
}

// DisplayName returns the package's pretty name for logs and errors
func (p Package) DisplayName() string {
	if p.Version == "" {
		return p.Name
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Version)
}

// InstallMeta returns the raw install declaration from the package's extra
// metadata, and whether one is present. A single task is a map, multiple
// tasks a list of maps; validating the shape is the registry loader's job.
func (p Package) InstallMeta() (interface{}, bool) {
	if p.Extra == nil {
		return nil, false
	}
	raw, ok := p.Extra["install"]
	if !ok || raw == nil {
		return nil, false
	}
	return raw, true
}

// Manifest is the file handed over by the package manager: the resolved,
// dependency-ordered package list.
type Manifest struct {
	Packages []Package `yaml:"packages"`
}

// Load reads and parses a manifest file
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &m, nil
}
