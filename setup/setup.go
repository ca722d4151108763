// SPDX-License-Identifier: MIT

package setup

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
)

// Marker opens a setup line.
const Marker = "*"

// Sentinel errors returned by this package.
var (
	// ErrNoMarker indicates a setup line that does not start with Marker.
	ErrNoMarker = fmt.Errorf("setup: no rotors in machine: %w", enigma.ErrConfigFormat)

	// ErrTooFewRotors indicates fewer rotor names than slots.
	ErrTooFewRotors = fmt.Errorf("setup: not enough rotors: %w", enigma.ErrRotorAssembly)

	// ErrMissingSetting indicates a line that ends after the rotor names.
	ErrMissingSetting = fmt.Errorf("setup: missing initial setting: %w", enigma.ErrSetting)

	// ErrTrailingSettings indicates a token after the plugboard cycles.
	ErrTrailingSettings = fmt.Errorf("setup: wrong number of settings: %w", enigma.ErrSetting)

	// ErrRingLength indicates a ring setting whose length is not numRotors-1.
	ErrRingLength = fmt.Errorf("setup: wrong ring setting length: %w", enigma.ErrSetting)

	// ErrRingSymbol indicates a ring setting symbol outside the alphabet.
	ErrRingSymbol = fmt.Errorf("setup: ring setting not on the wheel: %w", enigma.ErrSetting)

	// ErrPlugboard indicates plugboard cycles that do not form a valid
	// permutation of the alphabet.
	ErrPlugboard = fmt.Errorf("setup: invalid plugboard: %w", enigma.ErrSetting)
)

var cycleToken = regexp.MustCompile(`^\(.*\)$`)

// Line is a parsed setup line.
type Line struct {
	Rotors    []string // slot 0 first
	Initial   string
	Ring      string   // empty when absent
	Plugboard string   // cycles, space separated
}

// IsSetup reports whether line opens a message group.
func IsSetup(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// Parse splits a setup line for a machine with numRotors slots. Only syntax
// is checked; names, settings and cycles are validated by Apply.
func Parse(line string, numRotors int) (*Line, error) {
	if !IsSetup(line) {
		return nil, ErrNoMarker
	}
	fields := strings.Fields(strings.TrimPrefix(line, Marker))
	if len(fields) < numRotors {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrTooFewRotors, len(fields), numRotors)
	}

	l := &Line{Rotors: fields[:numRotors:numRotors]}
	rest := fields[numRotors:]
	if len(rest) == 0 || cycleToken.MatchString(rest[0]) {
		return nil, ErrMissingSetting
	}
	l.Initial, rest = rest[0], rest[1:]

	if len(rest) > 0 && !cycleToken.MatchString(rest[0]) {
		l.Ring, rest = rest[0], rest[1:]
	}

	var cycles []string
	for len(rest) > 0 && cycleToken.MatchString(rest[0]) {
		cycles = append(cycles, rest[0])
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected %q", ErrTrailingSettings, rest[0])
	}
	l.Plugboard = strings.Join(cycles, " ")

	return l, nil
}

// String renders l back into setup-line form.
func (l *Line) String() string {
	parts := append([]string{Marker}, l.Rotors...)
	parts = append(parts, l.Initial)
	if l.Ring != "" {
		parts = append(parts, l.Ring)
	}
	if l.Plugboard != "" {
		parts = append(parts, l.Plugboard)
	}
	return strings.Join(parts, " ")
}

// Apply configures m from l. Settings, ring and plugboard are validated
// before the machine is touched, and the rotor layout is checked before it is
// installed, so a rejected line leaves the previous configuration in place.
func Apply(m *machine.Machine, l *Line) error {
	plugboard, err := permutation.New(l.Plugboard, m.Alphabet())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPlugboard, err)
	}
	initPos, err := positions(m, l.Initial, machine.ErrSymbolNotInAlphabet, machine.ErrWrongSettingLength)
	if err != nil {
		return err
	}
	var ringPos []int
	if l.Ring != "" {
		if ringPos, err = positions(m, l.Ring, ErrRingSymbol, ErrRingLength); err != nil {
			return err
		}
	}

	if err := m.Assemble(l.Rotors...); err != nil {
		return err
	}

	initial := l.Initial
	if ringPos != nil {
		if initial, err = applyRing(m, initPos, ringPos); err != nil {
			return err
		}
	}
	if err := m.SetRotors(initial); err != nil {
		return err
	}
	return m.SetPlugboard(plugboard)
}

// Configure parses line and applies it to m.
func Configure(m *machine.Machine, line string) (*Line, error) {
	l, err := Parse(line, m.NumRotors())
	if err != nil {
		return nil, err
	}
	if err := Apply(m, l); err != nil {
		return nil, err
	}
	return l, nil
}
