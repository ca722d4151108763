// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/enigma"
)

// Reserved lists the symbols that carry structure in rotor, plugboard and
// setup-line syntax. Configuration readers refuse alphabets containing them.
const Reserved = "*()"

// Upper is the conventional 26-letter alphabet.
const Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sentinel errors returned by this package.
var (
	// ErrEmpty indicates an alphabet with no symbols.
	ErrEmpty = fmt.Errorf("alphabet: no symbols: %w", enigma.ErrInvalidAlphabet)

	// ErrDuplicateSymbol indicates the same symbol was listed twice.
	ErrDuplicateSymbol = fmt.Errorf("alphabet: duplicate symbol: %w", enigma.ErrInvalidAlphabet)

	// ErrInvalidSymbol indicates a symbol that is not a member of the alphabet.
	ErrInvalidSymbol = fmt.Errorf("alphabet: symbol not in alphabet: %w", enigma.ErrMessageSymbol)

	// ErrIndexOutOfRange indicates an index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("alphabet: index out of range")
)

// Alphabet is an immutable ordered set of distinct symbols.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// New builds an Alphabet from the runes of symbols, in order.
func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, ErrEmpty
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: runes, index: index}, nil
}

// MustNew is like New but panics on error. Intended for package-level
// fixtures built from constants.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int { return len(a.symbols) }

// Contains reports whether r is a member.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ContainsAny reports whether any rune of set is a member.
func (a *Alphabet) ContainsAny(set string) bool {
	for _, r := range set {
		if a.Contains(r) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of r. Callers are expected to have checked
// Contains; an absent symbol yields ErrInvalidSymbol.
func (a *Alphabet) IndexOf(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
	}
	return i, nil
}

// SymbolAt returns the symbol at index i, 0 <= i < Size().
func (a *Alphabet) SymbolAt(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// Rune returns the symbol at Wrap(p). It is total and never fails.
func (a *Alphabet) Rune(p int) rune { return a.symbols[a.Wrap(p)] }

// Wrap returns the canonical representative of p modulo Size(), in [0, Size()).
func (a *Alphabet) Wrap(p int) int {
	n := len(a.symbols)
	return ((p % n) + n) % n
}

// Validate checks that every rune of s is a member and reports the first
// offender with its position.
func (a *Alphabet) Validate(s string) error {
	pos := 0
	for _, r := range s {
		if !a.Contains(r) {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, r, pos)
		}
		pos++
	}
	return nil
}

// String returns the symbols in order.
func (a *Alphabet) String() string { return string(a.symbols) }

// Equal reports whether a and b list the same symbols in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return string(a.symbols) == string(b.symbols)
}
