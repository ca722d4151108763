// SPDX-License-Identifier: MIT

package setup

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/machine"
)

// applyRing shifts the notches of every moving rotor in slot i back by
// ringPos[i-1] and returns the initial setting shifted the same way. Both
// position slices hold NumRotors()-1 alphabet indices.
func applyRing(m *machine.Machine, initPos, ringPos []int) (string, error) {
	a := m.Alphabet()

	for i := 1; i < m.NumRotors(); i++ {
		r, err := m.Rotor(i)
		if err != nil {
			return "", err
		}
		if !r.Rotates() {
			continue
		}
		var sb strings.Builder
		for _, c := range r.Notches() {
			p, _ := a.IndexOf(c)
			sb.WriteRune(a.Rune(p - ringPos[i-1]))
		}
		if err := r.SetNotches(sb.String()); err != nil {
			return "", err
		}
	}

	var sb strings.Builder
	for k, p := range initPos {
		sb.WriteRune(a.Rune(p - ringPos[k]))
	}
	return sb.String(), nil
}

// positions converts a per-slot setting string into alphabet indices. It
// fails with symErr for a symbol outside the alphabet and with lenErr unless
// there is exactly one symbol per non-reflector slot.
func positions(m *machine.Machine, s string, symErr, lenErr error) ([]int, error) {
	a := m.Alphabet()
	out := make([]int, 0, len(s))
	for _, c := range s {
		p, err := a.IndexOf(c)
		if err != nil {
			return nil, fmt.Errorf("%w: %q in %q", symErr, c, s)
		}
		out = append(out, p)
	}
	if want := m.NumRotors() - 1; len(out) != want {
		return nil, fmt.Errorf("%w: %q has %d symbols, want %d", lenErr, s, len(out), want)
	}
	return out, nil
}
