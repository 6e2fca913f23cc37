// Package manifest handles pie.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Heyter/lua-pie/pie"
)

// Manifest represents a pie.toml project configuration.
type Manifest struct {
	Project Project `toml:"project"`
	Runtime Runtime `toml:"runtime"`

	// Dir is the directory containing the pie.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Runtime configures the object-model toggles. Warnings is a pointer so
// an absent key keeps the default (on) while an explicit false turns
// warnings off.
type Runtime struct {
	Warnings      *bool `toml:"warnings"`
	ForeignWrites bool  `toml:"foreign-writes"`
}

// Load parses a pie.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "pie.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	return &m, nil
}

// FindAndLoad walks up from startDir to find a pie.toml file, then
// loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "pie.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// Options converts the runtime section into catalog options, applying
// defaults for absent keys.
func (m *Manifest) Options() pie.Options {
	opts := pie.DefaultOptions()
	if m.Runtime.Warnings != nil {
		opts.Warnings = *m.Runtime.Warnings
	}
	opts.ForeignWrites = m.Runtime.ForeignWrites
	return opts
}
