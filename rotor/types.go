// SPDX-License-Identifier: MIT

package rotor

import (
	"fmt"

	"github.com/katalvlaran/enigma"
)

// Kind tags the rotor variant.
type Kind int

const (
	// Fixed rotors never advance.
	Fixed Kind = iota
	// Moving rotors advance and carry notches.
	Moving
	// Reflector rotors never advance and must be derangements.
	Reflector
)

// String returns the configuration-file letter of k: "N", "M" or "R".
func (k Kind) String() string {
	switch k {
	case Fixed:
		return "N"
	case Moving:
		return "M"
	case Reflector:
		return "R"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors returned by this package.
var (
	// ErrEmptyName indicates a rotor constructed without a name.
	ErrEmptyName = fmt.Errorf("rotor: empty name: %w", enigma.ErrConfigFormat)

	// ErrNilPermutation indicates a rotor constructed without wiring.
	ErrNilPermutation = fmt.Errorf("rotor: permutation is nil: %w", enigma.ErrConfigFormat)

	// ErrMissingNotch indicates a moving rotor with no notch.
	ErrMissingNotch = fmt.Errorf("rotor: moving rotor must have a notch: %w", enigma.ErrConfigFormat)

	// ErrNotchNotInAlphabet indicates a notch symbol absent from the alphabet.
	ErrNotchNotInAlphabet = fmt.Errorf("rotor: notch not on wheel: %w", enigma.ErrConfigFormat)

	// ErrNotMoving indicates a notch operation on a non-moving rotor.
	ErrNotMoving = fmt.Errorf("rotor: only moving rotors have notches: %w", enigma.ErrConfigFormat)

	// ErrReflectorNotDerangement indicates reflector wiring with a fixed point.
	ErrReflectorNotDerangement = fmt.Errorf("rotor: reflector permutation must be a derangement: %w", enigma.ErrRotorAssembly)

	// ErrReflectorFixed indicates an attempt to turn a reflector away from its
	// first position.
	ErrReflectorFixed = fmt.Errorf("rotor: reflector setting cannot change: %w", enigma.ErrSetting)
)
