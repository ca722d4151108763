// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
)

// AdvanceRotors performs one stepping cycle. It is a no-op before assembly.
func (m *Machine) AdvanceRotors() {
	if m.slots == nil {
		return
	}
	n := m.numRotors
	stepped := m.stepped
	for i := range stepped {
		stepped[i] = false
	}

	for i := 1; i < n-1; i++ {
		if m.slots[i+1].AtNotch() && !stepped[i] && m.slots[i].Rotates() {
			m.slots[i].Advance()
			stepped[i] = true
			if i != n-2 && !stepped[i+1] && m.slots[i+1].Rotates() {
				m.slots[i+1].Advance()
				stepped[i+1] = true
			}
		}
	}
	m.slots[n-1].Advance()
}

// Convert advances the machine, then encodes the symbol with index c.
func (m *Machine) Convert(c int) (int, error) {
	if m.slots == nil {
		return 0, ErrNotAssembled
	}
	if c < 0 || c >= m.alpha.Size() {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", alphabet.ErrIndexOutOfRange, c, m.alpha.Size())
	}

	m.AdvanceRotors()
	if m.tracer != nil {
		return m.convertTraced(c), nil
	}

	c = m.plugboard.Permute(c)
	c = m.applyRotors(c)
	return m.plugboard.Invert(c), nil
}

// ConvertSymbol is Convert on runes.
func (m *Machine) ConvertSymbol(r rune) (rune, error) {
	i, err := m.alpha.IndexOf(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMessageSymbol, r)
	}
	out, err := m.Convert(i)
	if err != nil {
		return 0, err
	}
	return m.alpha.Rune(out), nil
}

// ConvertMessage converts every symbol of msg in order. The whole message is
// validated first; a symbol outside the alphabet fails without moving any
// rotor.
func (m *Machine) ConvertMessage(msg string) (string, error) {
	if m.slots == nil {
		return "", ErrNotAssembled
	}
	if err := m.alpha.Validate(msg); err != nil {
		return "", fmt.Errorf("%w: %w", ErrMessageSymbol, err)
	}

	var sb strings.Builder
	sb.Grow(len(msg))
	for _, r := range msg {
		out, err := m.ConvertSymbol(r)
		if err != nil {
			return "", err
		}
		sb.WriteRune(out)
	}
	return sb.String(), nil
}

// applyRotors runs c through the stack towards the reflector and back.
func (m *Machine) applyRotors(c int) int {
	for i := m.numRotors - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	for i := 1; i < m.numRotors; i++ {
		c = m.slots[i].ConvertBackward(c)
	}
	return c
}

// convertTraced mirrors the plain path while recording every intermediate
// contact for the tracer.
func (m *Machine) convertTraced(c int) int {
	t := Trace{
		Settings: m.Settings(),
		Input:    m.alpha.Rune(c),
		Path:     make([]rune, 0, 2*m.numRotors-1),
	}

	c = m.plugboard.Permute(c)
	t.Plugged = m.alpha.Rune(c)
	for i := m.numRotors - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
		t.Path = append(t.Path, m.alpha.Rune(c))
	}
	for i := 1; i < m.numRotors; i++ {
		c = m.slots[i].ConvertBackward(c)
		t.Path = append(t.Path, m.alpha.Rune(c))
	}
	c = m.plugboard.Invert(c)
	t.Output = m.alpha.Rune(c)

	m.tracer(t)
	return c
}
