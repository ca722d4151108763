// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/rotor"
)

// Wheel kinds as spelled in YAML definitions.
const (
	KindMoving    = "moving"
	KindFixed     = "fixed"
	KindReflector = "reflector"
)

// Sentinel errors returned by this package.
var (
	// ErrMissingAlphabet indicates a definition without an alphabet.
	ErrMissingAlphabet = fmt.Errorf("config: format missing alphabet: %w", enigma.ErrConfigFormat)

	// ErrReservedSymbol indicates an alphabet containing '*', '(' or ')'.
	ErrReservedSymbol = fmt.Errorf("config: banned characters in alphabet: %w", enigma.ErrInvalidAlphabet)

	// ErrMissingRotorCount indicates an absent or non-numeric slot count.
	ErrMissingRotorCount = fmt.Errorf("config: format missing number of rotors: %w", enigma.ErrConfigFormat)

	// ErrMissingPawls indicates an absent or non-numeric pawl count.
	ErrMissingPawls = fmt.Errorf("config: format missing pawls: %w", enigma.ErrConfigFormat)

	// ErrTruncatedRotor indicates a rotor name with no type token after it.
	ErrTruncatedRotor = fmt.Errorf("config: rotor description truncated: %w", enigma.ErrConfigFormat)

	// ErrUnexpectedNotch indicates notches given for a fixed rotor or reflector.
	ErrUnexpectedNotch = fmt.Errorf("config: only moving rotors have notches: %w", enigma.ErrConfigFormat)

	// ErrUnknownKind indicates a type token or kind other than moving, fixed
	// or reflector.
	ErrUnknownKind = fmt.Errorf("config: rotor type invalid: %w", enigma.ErrConfigFormat)

	// ErrDecode indicates a YAML document that could not be decoded.
	ErrDecode = fmt.Errorf("config: cannot decode definition: %w", enigma.ErrConfigFormat)
)

// Wheel describes one catalog rotor.
type Wheel struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Notches string `yaml:"notches,omitempty"`
	Cycles  string `yaml:"cycles"`
}

// Definition is a complete machine description.
type Definition struct {
	Alphabet string  `yaml:"alphabet"`
	Rotors   int     `yaml:"rotors"`
	Pawls    int     `yaml:"pawls"`
	Wheels   []Wheel `yaml:"wheels"`
}

// rotorKind maps a wheel kind to the rotor variant.
func rotorKind(kind string) (rotor.Kind, error) {
	switch kind {
	case KindMoving:
		return rotor.Moving, nil
	case KindFixed:
		return rotor.Fixed, nil
	case KindReflector:
		return rotor.Reflector, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
