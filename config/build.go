// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

// Build validates d and returns an unassembled machine carrying its catalog.
func (d *Definition) Build(opts ...machine.Option) (*machine.Machine, error) {
	a, catalog, err := d.Catalog()
	if err != nil {
		return nil, err
	}
	return machine.New(a, d.Rotors, d.Pawls, catalog, opts...)
}

// Catalog validates the alphabet and every wheel of d and returns them as
// engine values.
func (d *Definition) Catalog() (*alphabet.Alphabet, []*rotor.Rotor, error) {
	if d.Alphabet == "" {
		return nil, nil, ErrMissingAlphabet
	}
	a, err := alphabet.New(d.Alphabet)
	if err != nil {
		return nil, nil, err
	}
	if a.ContainsAny(alphabet.Reserved) {
		return nil, nil, fmt.Errorf("%w: %q", ErrReservedSymbol, d.Alphabet)
	}

	catalog := make([]*rotor.Rotor, 0, len(d.Wheels))
	for _, w := range d.Wheels {
		r, err := w.build(a)
		if err != nil {
			return nil, nil, err
		}
		catalog = append(catalog, r)
	}
	return a, catalog, nil
}

func (w Wheel) build(a *alphabet.Alphabet) (*rotor.Rotor, error) {
	kind, err := rotorKind(w.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w (rotor %s)", err, w.Name)
	}
	perm, err := permutation.New(w.Cycles, a)
	if err != nil {
		return nil, fmt.Errorf("%w (rotor %s)", err, w.Name)
	}

	switch kind {
	case rotor.Moving:
		return rotor.NewMoving(w.Name, perm, w.Notches)
	case rotor.Fixed, rotor.Reflector:
		if w.Notches != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedNotch, w.Name)
		}
		if kind == rotor.Fixed {
			return rotor.NewFixed(w.Name, perm)
		}
		return rotor.NewReflector(w.Name, perm)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, w.Name)
	}
}
