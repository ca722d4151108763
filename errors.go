// SPDX-License-Identifier: MIT
// Package enigma: error kinds shared by every subpackage.
//
// Subpackages declare their own precise sentinels and wrap exactly one of the
// kinds below, e.g.
//
//	ErrWrongRotorCount = fmt.Errorf("machine: wrong number of rotors: %w", enigma.ErrRotorAssembly)
//
// so callers may test either errors.Is(err, machine.ErrWrongRotorCount) or the
// coarser errors.Is(err, enigma.ErrRotorAssembly).

package enigma

import "errors"

var (
	// ErrConfigFormat reports a malformed or incomplete machine configuration.
	ErrConfigFormat = errors.New("enigma: configuration format error")

	// ErrInvalidAlphabet reports an alphabet that is empty, has duplicates, or
	// contains a reserved structural symbol.
	ErrInvalidAlphabet = errors.New("enigma: invalid alphabet")

	// ErrRotorAssembly reports an impossible rotor arrangement.
	ErrRotorAssembly = errors.New("enigma: rotor assembly error")

	// ErrSetting reports a bad initial or ring setting.
	ErrSetting = errors.New("enigma: setting error")

	// ErrMessageSymbol reports a message symbol outside the alphabet.
	ErrMessageSymbol = errors.New("enigma: message symbol error")
)

// Kind classifies an error produced by this module.
type Kind int

const (
	// KindUnknown is returned for nil errors and errors of foreign origin.
	KindUnknown Kind = iota
	KindConfigFormat
	KindInvalidAlphabet
	KindRotorAssembly
	KindSetting
	KindMessageSymbol
)

var kindNames = [...]string{
	KindUnknown:         "unknown",
	KindConfigFormat:    "config-format",
	KindInvalidAlphabet: "invalid-alphabet",
	KindRotorAssembly:   "rotor-assembly",
	KindSetting:         "setting",
	KindMessageSymbol:   "message-symbol",
}

// String returns a short lowercase name for k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// KindOf reports which error kind err wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfigFormat):
		return KindConfigFormat
	case errors.Is(err, ErrInvalidAlphabet):
		return KindInvalidAlphabet
	case errors.Is(err, ErrRotorAssembly):
		return KindRotorAssembly
	case errors.Is(err, ErrSetting):
		return KindSetting
	case errors.Is(err, ErrMessageSymbol):
		return KindMessageSymbol
	default:
		return KindUnknown
	}
}
