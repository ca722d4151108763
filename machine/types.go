// SPDX-License-Identifier: MIT

package machine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/permutation"
)

// Sentinel errors returned by this package.
var (
	// ErrNilAlphabet indicates New was called without an alphabet.
	ErrNilAlphabet = fmt.Errorf("machine: alphabet is nil: %w", enigma.ErrConfigFormat)

	// ErrBadRotorCount indicates numRotors <= 1.
	ErrBadRotorCount = fmt.Errorf("machine: number of rotor slots must exceed 1: %w", enigma.ErrConfigFormat)

	// ErrBadPawlCount indicates numPawls outside [0, numRotors).
	ErrBadPawlCount = fmt.Errorf("machine: number of pawls must be in [0, numRotors): %w", enigma.ErrConfigFormat)

	// ErrNilRotor indicates a nil catalog entry.
	ErrNilRotor = fmt.Errorf("machine: nil rotor in catalog: %w", enigma.ErrConfigFormat)

	// ErrDuplicateCatalogName indicates two catalog rotors share a name.
	ErrDuplicateCatalogName = fmt.Errorf("machine: duplicate rotor name in catalog: %w", enigma.ErrConfigFormat)

	// ErrAlphabetMismatch indicates a rotor or plugboard over a different alphabet.
	ErrAlphabetMismatch = fmt.Errorf("machine: alphabet mismatch: %w", enigma.ErrConfigFormat)

	// ErrWrongRotorCount indicates an insertion list whose length is not numRotors.
	ErrWrongRotorCount = fmt.Errorf("machine: wrong number of rotors: %w", enigma.ErrRotorAssembly)

	// ErrUnknownRotorName indicates an insertion name missing from the catalog.
	ErrUnknownRotorName = fmt.Errorf("machine: unknown rotor name: %w", enigma.ErrRotorAssembly)

	// ErrDuplicateRotor indicates the same rotor named twice in one insertion.
	ErrDuplicateRotor = fmt.Errorf("machine: rotor repeated: %w", enigma.ErrRotorAssembly)

	// ErrReflectorPosition indicates slot 0 is not a reflector or a reflector
	// sits in another slot.
	ErrReflectorPosition = fmt.Errorf("machine: reflector must occupy slot 0 only: %w", enigma.ErrRotorAssembly)

	// ErrMovingBeforeFixed indicates a moving rotor left of a stationary one.
	ErrMovingBeforeFixed = fmt.Errorf("machine: moving rotor placed before fixed rotor: %w", enigma.ErrRotorAssembly)

	// ErrPawlMismatch indicates the number of moving rotors differs from numPawls.
	ErrPawlMismatch = fmt.Errorf("machine: moving rotors do not match pawls: %w", enigma.ErrRotorAssembly)

	// ErrNotAssembled indicates an operation that needs rotors before InsertRotors.
	ErrNotAssembled = fmt.Errorf("machine: no rotors in machine: %w", enigma.ErrRotorAssembly)

	// ErrSlotOutOfRange indicates a slot index outside [0, numRotors).
	ErrSlotOutOfRange = errors.New("machine: slot index out of range")

	// ErrWrongSettingLength indicates a setting string whose length is not numRotors-1.
	ErrWrongSettingLength = fmt.Errorf("machine: wrong number of settings: %w", enigma.ErrSetting)

	// ErrSymbolNotInAlphabet indicates a setting symbol outside the alphabet.
	ErrSymbolNotInAlphabet = fmt.Errorf("machine: setting is not on the wheel: %w", enigma.ErrSetting)

	// ErrMessageSymbol indicates a message symbol outside the alphabet.
	ErrMessageSymbol = fmt.Errorf("machine: message not in alphabet: %w", enigma.ErrMessageSymbol)
)

// Trace describes one converted symbol.
//
// Path lists the contact leaving each rotor in signal order: slots
// numRotors-1 down to 0, then 1 up to numRotors-1.
type Trace struct {
	Settings string // rotor settings after stepping, slot 1 first
	Input    rune   // symbol entering the plugboard
	Plugged  rune   // symbol after the plugboard
	Path     []rune // symbol after each rotor
	Output   rune   // symbol leaving the plugboard
}

// Tracer receives a Trace for every converted symbol.
type Tracer func(Trace)

// Options configures a Machine.
//
// Plugboard: initial plugboard; nil means identity.
// Tracer   : optional per-symbol callback; nil disables tracing.
type Options struct {
	Plugboard *permutation.Permutation
	Tracer    Tracer
}

// Option represents a functional option for New.
type Option func(*Options)

// WithPlugboard sets the initial plugboard.
func WithPlugboard(p *permutation.Permutation) Option {
	return func(o *Options) {
		o.Plugboard = p
	}
}

// WithTracer installs a per-symbol trace callback.
func WithTracer(t Tracer) Option {
	return func(o *Options) {
		o.Tracer = t
	}
}

// DefaultOptions returns the zero configuration: identity plugboard, no tracer.
func DefaultOptions() Options {
	return Options{}
}
