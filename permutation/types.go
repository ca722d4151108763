// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"

	"github.com/katalvlaran/enigma"
)

// Sentinel errors returned by New.
var (
	// ErrMalformedCycles indicates cycle notation that does not follow the
	// "(abc) (de) ..." grammar.
	ErrMalformedCycles = fmt.Errorf("permutation: malformed cycle notation: %w", enigma.ErrConfigFormat)

	// ErrSymbolNotInAlphabet indicates a cycle symbol absent from the alphabet.
	ErrSymbolNotInAlphabet = fmt.Errorf("permutation: cycle symbol not in alphabet: %w", enigma.ErrConfigFormat)

	// ErrDuplicateInCycles indicates a symbol listed more than once.
	ErrDuplicateInCycles = fmt.Errorf("permutation: symbol repeated in cycles: %w", enigma.ErrConfigFormat)

	// ErrNilAlphabet indicates a nil *alphabet.Alphabet.
	ErrNilAlphabet = fmt.Errorf("permutation: alphabet is nil: %w", enigma.ErrConfigFormat)
)

const (
	openCycle  = '('
	closeCycle = ')'
)
