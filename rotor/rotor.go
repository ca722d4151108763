// SPDX-License-Identifier: MIT

package rotor

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
)

// Rotor is a permutation plus a rotational offset.
type Rotor struct {
	name    string
	kind    Kind
	perm    *permutation.Permutation
	setting int

	// Moving rotors only.
	notches  []int
	previous []int
	base     []int
}

// NewFixed returns a non-moving, non-reflecting rotor.
func NewFixed(name string, perm *permutation.Permutation) (*Rotor, error) {
	return newRotor(name, Fixed, perm)
}

// NewReflector returns a reflector. perm must be a derangement.
func NewReflector(name string, perm *permutation.Permutation) (*Rotor, error) {
	r, err := newRotor(name, Reflector, perm)
	if err != nil {
		return nil, err
	}
	if !perm.IsDerangement() {
		return nil, fmt.Errorf("%w: %s", ErrReflectorNotDerangement, name)
	}
	return r, nil
}

// NewMoving returns a moving rotor whose notches sit at the symbols of notches.
// The rotor starts at the first symbol of its alphabet.
func NewMoving(name string, perm *permutation.Permutation, notches string) (*Rotor, error) {
	r, err := newRotor(name, Moving, perm)
	if err != nil {
		return nil, err
	}
	if notches == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingNotch, name)
	}
	idx, err := parseNotches(notches, perm.Alphabet())
	if err != nil {
		return nil, fmt.Errorf("%w (rotor %s)", err, name)
	}
	r.notches, r.previous, r.base = idx, idx, idx
	return r, nil
}

func newRotor(name string, kind Kind, perm *permutation.Permutation) (*Rotor, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if perm == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilPermutation, name)
	}
	return &Rotor{name: name, kind: kind, perm: perm}, nil
}

func parseNotches(notches string, a *alphabet.Alphabet) ([]int, error) {
	idx := make([]int, 0, len(notches))
	for _, c := range notches {
		i, err := a.IndexOf(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotchNotInAlphabet, c)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// Name returns the catalog name.
func (r *Rotor) Name() string { return r.name }

// Kind returns the variant tag.
func (r *Rotor) Kind() Kind { return r.kind }

// Alphabet returns the alphabet of the wiring.
func (r *Rotor) Alphabet() *alphabet.Alphabet { return r.perm.Alphabet() }

// Permutation returns the wiring at position 0.
func (r *Rotor) Permutation() *permutation.Permutation { return r.perm }

// Size returns the alphabet size.
func (r *Rotor) Size() int { return r.perm.Size() }

// Rotates reports whether the rotor has a ratchet and can move.
func (r *Rotor) Rotates() bool {
	switch r.kind {
	case Moving:
		return true
	case Fixed, Reflector:
		return false
	default:
		return false
	}
}

// Reflecting reports whether the rotor is a reflector.
func (r *Rotor) Reflecting() bool {
	switch r.kind {
	case Reflector:
		return true
	case Fixed, Moving:
		return false
	default:
		return false
	}
}

// Setting returns the symbol the rotor currently shows.
func (r *Rotor) Setting() rune { return r.perm.Alphabet().Rune(r.setting) }

// Set turns the rotor to Wrap(posn). A reflector only accepts position 0.
func (r *Rotor) Set(posn int) error {
	p := r.perm.Wrap(posn)
	switch r.kind {
	case Reflector:
		if p != 0 {
			return fmt.Errorf("%w: %s", ErrReflectorFixed, r.name)
		}
	case Fixed, Moving:
		r.setting = p
	}
	return nil
}

// SetSymbol turns the rotor so that it shows c.
func (r *Rotor) SetSymbol(c rune) error {
	i, err := r.perm.Alphabet().IndexOf(c)
	if err != nil {
		return err
	}
	return r.Set(i)
}

// ConvertForward maps contact p (entering from the right) through the wiring.
func (r *Rotor) ConvertForward(p int) int {
	contact := r.perm.Wrap(p + r.setting)
	return r.perm.Wrap(r.perm.Permute(contact) - r.setting)
}

// ConvertBackward maps contact e (entering from the left) through the inverse
// wiring.
func (r *Rotor) ConvertBackward(e int) int {
	contact := r.perm.Wrap(e + r.setting)
	return r.perm.Wrap(r.perm.Invert(contact) - r.setting)
}

// AtNotch reports whether the rotor is positioned to push its left neighbour.
func (r *Rotor) AtNotch() bool {
	switch r.kind {
	case Moving:
		for _, n := range r.notches {
			if n == r.setting {
				return true
			}
		}
		return false
	case Fixed, Reflector:
		return false
	default:
		return false
	}
}

// Advance steps a moving rotor by one position; other kinds ignore it.
func (r *Rotor) Advance() {
	switch r.kind {
	case Moving:
		r.setting = r.perm.Wrap(r.setting + 1)
	case Fixed, Reflector:
	}
}

// Notches returns the notch symbols in their configured order; empty for
// non-moving rotors.
func (r *Rotor) Notches() string { return r.symbols(r.notches) }

// PreviousNotches returns the notches in force before the last SetNotches or
// ResetNotches call.
func (r *Rotor) PreviousNotches() string { return r.symbols(r.previous) }

// SetNotches replaces the notch symbols, remembering the prior set. Used to
// apply a ring setting.
func (r *Rotor) SetNotches(notches string) error {
	switch r.kind {
	case Moving:
	case Fixed, Reflector:
		return fmt.Errorf("%w: %s is %s", ErrNotMoving, r.name, r.kind)
	}
	if notches == "" {
		return fmt.Errorf("%w: %s", ErrMissingNotch, r.name)
	}
	idx, err := parseNotches(notches, r.perm.Alphabet())
	if err != nil {
		return fmt.Errorf("%w (rotor %s)", err, r.name)
	}
	r.previous, r.notches = r.notches, idx
	return nil
}

// ResetNotches restores the notches the rotor was constructed with.
func (r *Rotor) ResetNotches() {
	switch r.kind {
	case Moving:
		r.previous, r.notches = r.notches, r.base
	case Fixed, Reflector:
	}
}

// Clone returns an independently owned copy with the same wiring (shared,
// immutable), setting and notch state.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}

// String implements fmt.Stringer.
func (r *Rotor) String() string {
	return fmt.Sprintf("Rotor %s", r.name)
}

func (r *Rotor) symbols(idx []int) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteRune(r.perm.Alphabet().Rune(i))
	}
	return sb.String()
}
