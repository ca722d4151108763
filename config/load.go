// SPDX-License-Identifier: MIT

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NavalAName is the name under which the embedded definition is known.
const NavalAName = "naval-a"

//go:embed naval-a.conf
var navalA string

// NavalA returns a fresh copy of the embedded four-rotor naval definition.
func NavalA() *Definition {
	d, err := ParseText(strings.NewReader(navalA))
	if err != nil {
		panic(fmt.Sprintf("config: embedded %s: %v", NavalAName, err))
	}
	return d
}

// Load reads the definition at path. Files ending in .yaml or .yml are
// decoded as YAML, anything else as text. The name NavalAName resolves to
// the embedded definition without touching the filesystem.
func Load(path string) (*Definition, error) {
	if path == NavalAName {
		return NavalA(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return ParseText(f)
	}
}
