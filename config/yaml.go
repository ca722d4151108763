// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlDefinition mirrors Definition with the counts as pointers, so that an
// absent key can be told apart from an explicit zero.
type yamlDefinition struct {
	Alphabet string  `yaml:"alphabet"`
	Rotors   *int    `yaml:"rotors"`
	Pawls    *int    `yaml:"pawls"`
	Wheels   []Wheel `yaml:"wheels"`
}

// ParseYAML decodes a definition from a YAML document. Unknown keys are
// rejected, and the alphabet, rotors and pawls keys are required.
func ParseYAML(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var y yamlDefinition
	if err := dec.Decode(&y); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingAlphabet
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	switch {
	case y.Alphabet == "":
		return nil, ErrMissingAlphabet
	case y.Rotors == nil || *y.Rotors == 0:
		return nil, ErrMissingRotorCount
	case y.Pawls == nil:
		return nil, ErrMissingPawls
	}
	return &Definition{
		Alphabet: y.Alphabet,
		Rotors:   *y.Rotors,
		Pawls:    *y.Pawls,
		Wheels:   y.Wheels,
	}, nil
}

// WriteYAML encodes d as a YAML document.
func (d *Definition) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
