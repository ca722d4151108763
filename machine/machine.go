// SPDX-License-Identifier: MIT

package machine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

// Machine is a complete rotor cipher machine.
type Machine struct {
	alpha     *alphabet.Alphabet
	numRotors int
	numPawls  int
	catalog   map[string]*rotor.Rotor
	slots     []*rotor.Rotor // nil until InsertRotors succeeds
	plugboard *permutation.Permutation
	tracer    Tracer
	stepped   []bool
}

// New returns a machine over a with numRotors slots and numPawls pawls, able
// to mount any rotor of catalog. The catalog entries are copied; later changes
// to the passed rotors do not affect the machine.
func New(a *alphabet.Alphabet, numRotors, numPawls int, catalog []*rotor.Rotor, opts ...Option) (*Machine, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	if numRotors <= 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadRotorCount, numRotors)
	}
	if numPawls < 0 || numPawls >= numRotors {
		return nil, fmt.Errorf("%w: got %d with %d slots", ErrBadPawlCount, numPawls, numRotors)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Machine{
		alpha:     a,
		numRotors: numRotors,
		numPawls:  numPawls,
		catalog:   make(map[string]*rotor.Rotor, len(catalog)),
		plugboard: permutation.Identity(a),
		tracer:    cfg.Tracer,
		stepped:   make([]bool, numRotors),
	}
	for _, r := range catalog {
		if r == nil {
			return nil, ErrNilRotor
		}
		if !r.Alphabet().Equal(a) {
			return nil, fmt.Errorf("%w: rotor %s", ErrAlphabetMismatch, r.Name())
		}
		if _, dup := m.catalog[r.Name()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCatalogName, r.Name())
		}
		m.catalog[r.Name()] = r.Clone()
	}
	if err := m.SetPlugboard(cfg.Plugboard); err != nil {
		return nil, err
	}

	return m, nil
}

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, and thus of moving rotors.
func (m *Machine) NumPawls() int { return m.numPawls }

// Alphabet returns the machine alphabet.
func (m *Machine) Alphabet() *alphabet.Alphabet { return m.alpha }

// Plugboard returns the current plugboard.
func (m *Machine) Plugboard() *permutation.Permutation { return m.plugboard }

// Assembled reports whether rotors have been inserted.
func (m *Machine) Assembled() bool { return m.slots != nil }

// Catalog returns the names of all available rotors, sorted.
func (m *Machine) Catalog() []string {
	names := make([]string, 0, len(m.catalog))
	for name := range m.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rotor returns the rotor in slot k (0 = reflector, NumRotors()-1 = fastest).
// The returned rotor is live: changing it changes the machine.
func (m *Machine) Rotor(k int) (*rotor.Rotor, error) {
	if m.slots == nil {
		return nil, ErrNotAssembled
	}
	if k < 0 || k >= m.numRotors {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSlotOutOfRange, k, m.numRotors)
	}
	return m.slots[k], nil
}

// Settings returns the settings of slots 1..NumRotors()-1 as a string, or ""
// before assembly.
func (m *Machine) Settings() string {
	if m.slots == nil {
		return ""
	}
	var sb strings.Builder
	for _, r := range m.slots[1:] {
		sb.WriteRune(r.Setting())
	}
	return sb.String()
}

// InsertRotors fills the slots with fresh copies of the named catalog rotors,
// names[0] being the reflector. Each inserted rotor starts at the first symbol
// with its original notches. On error the previous assembly is kept.
//
// InsertRotors does not check the layout; see Assemble and CheckAssembly.
func (m *Machine) InsertRotors(names ...string) error {
	slots, err := m.pick(names)
	if err != nil {
		return err
	}
	m.slots = slots
	return nil
}

// Assemble is InsertRotors followed by the layout rules of CheckAssembly,
// applied to the candidate slots. On any error the previous assembly is kept.
func (m *Machine) Assemble(names ...string) error {
	slots, err := m.pick(names)
	if err != nil {
		return err
	}
	if err := m.checkSlots(slots); err != nil {
		return err
	}
	m.slots = slots
	return nil
}

// pick returns fresh copies of the named catalog rotors.
func (m *Machine) pick(names []string) ([]*rotor.Rotor, error) {
	if len(names) != m.numRotors {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrWrongRotorCount, len(names), m.numRotors)
	}

	slots := make([]*rotor.Rotor, m.numRotors)
	used := make(map[string]bool, len(names))
	for i, name := range names {
		tmpl, ok := m.catalog[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRotorName, name)
		}
		if used[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRotor, name)
		}
		used[name] = true

		r := tmpl.Clone()
		r.ResetNotches()
		if err := r.Set(0); err != nil {
			return nil, err
		}
		slots[i] = r
	}
	return slots, nil
}

// CheckAssembly verifies the structural rules of the current assembly:
// exactly one reflector in slot 0, stationary rotors left of moving ones, and
// exactly NumPawls() moving rotors.
func (m *Machine) CheckAssembly() error {
	if m.slots == nil {
		return ErrNotAssembled
	}
	return m.checkSlots(m.slots)
}

func (m *Machine) checkSlots(slots []*rotor.Rotor) error {
	if !slots[0].Reflecting() {
		return fmt.Errorf("%w: %s in slot 0 does not reflect", ErrReflectorPosition, slots[0].Name())
	}

	moving := 0
	for i := 1; i < len(slots); i++ {
		r := slots[i]
		switch {
		case r.Reflecting():
			return fmt.Errorf("%w: %s in slot %d", ErrReflectorPosition, r.Name(), i)
		case r.Rotates():
			moving++
		case moving > 0:
			return fmt.Errorf("%w: %s in slot %d", ErrMovingBeforeFixed, r.Name(), i)
		}
	}
	if moving != m.numPawls {
		return fmt.Errorf("%w: %d moving, %d pawls", ErrPawlMismatch, moving, m.numPawls)
	}
	return nil
}

// SetRotors sets slots 1..NumRotors()-1 from setting, whose first symbol
// belongs to the leftmost non-reflector rotor.
func (m *Machine) SetRotors(setting string) error {
	if m.slots == nil {
		return ErrNotAssembled
	}
	symbols := []rune(setting)
	if len(symbols) != m.numRotors-1 {
		return fmt.Errorf("%w: %q has %d symbols, want %d", ErrWrongSettingLength, setting, len(symbols), m.numRotors-1)
	}

	positions := make([]int, len(symbols))
	for i, c := range symbols {
		p, err := m.alpha.IndexOf(c)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, c)
		}
		positions[i] = p
	}
	for i, p := range positions {
		if err := m.slots[i+1].Set(p); err != nil {
			return err
		}
	}
	return nil
}

// SetPlugboard replaces the plugboard; nil installs the identity.
func (m *Machine) SetPlugboard(p *permutation.Permutation) error {
	if p == nil {
		m.plugboard = permutation.Identity(m.alpha)
		return nil
	}
	if !p.Alphabet().Equal(m.alpha) {
		return fmt.Errorf("%w: plugboard", ErrAlphabetMismatch)
	}
	m.plugboard = p
	return nil
}

// SetTracer replaces the trace callback; nil disables tracing.
func (m *Machine) SetTracer(t Tracer) { m.tracer = t }
