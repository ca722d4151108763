// SPDX-License-Identifier: MIT

package config

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/enigma/rotor"
)

// cycleToken matches a token that belongs to a cycle list.
var cycleToken = regexp.MustCompile(`^\(.*\)$`)

// ParseText decodes a definition in the whitespace-token text format.
func ParseText(r io.Reader) (*Definition, error) {
	tokens, err := scanTokens(r)
	if err != nil {
		return nil, err
	}

	var d Definition
	if len(tokens) == 0 {
		return nil, ErrMissingAlphabet
	}
	d.Alphabet = tokens[0]

	if len(tokens) < 2 {
		return nil, ErrMissingRotorCount
	}
	if d.Rotors, err = strconv.Atoi(tokens[1]); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingRotorCount, tokens[1])
	}
	if len(tokens) < 3 {
		return nil, ErrMissingPawls
	}
	if d.Pawls, err = strconv.Atoi(tokens[2]); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingPawls, tokens[2])
	}

	for i := 3; i < len(tokens); {
		name := tokens[i]
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("%w: %s", ErrTruncatedRotor, name)
		}
		w, err := parseTypeToken(name, tokens[i+1])
		if err != nil {
			return nil, err
		}
		i += 2

		var cycles []string
		for i < len(tokens) && cycleToken.MatchString(tokens[i]) {
			cycles = append(cycles, tokens[i])
			i++
		}
		w.Cycles = strings.Join(cycles, " ")
		d.Wheels = append(d.Wheels, w)
	}

	return &d, nil
}

// parseTypeToken decodes "M<notches>", "N" or "R".
func parseTypeToken(name, tok string) (Wheel, error) {
	w := Wheel{Name: name}
	switch tok[0] {
	case 'M':
		if len(tok) == 1 {
			return w, fmt.Errorf("%w: %s", rotor.ErrMissingNotch, name)
		}
		w.Kind, w.Notches = KindMoving, tok[1:]
	case 'N', 'R':
		if len(tok) != 1 {
			return w, fmt.Errorf("%w: %s %s", ErrUnexpectedNotch, name, tok)
		}
		w.Kind = KindFixed
		if tok[0] == 'R' {
			w.Kind = KindReflector
		}
	default:
		return w, fmt.Errorf("%w: %s %s", ErrUnknownKind, name, tok)
	}
	return w, nil
}

func scanTokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	return tokens, nil
}

// WriteText encodes d in the text format, one rotor per line.
func (d *Definition) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n", d.Alphabet, d.Rotors, d.Pawls)
	for _, wh := range d.Wheels {
		kind, err := rotorKind(wh.Kind)
		if err != nil {
			return err
		}
		typ := kind.String()
		if kind == rotor.Moving {
			typ += wh.Notches
		}
		fmt.Fprintf(bw, "%s %s %s\n", wh.Name, typ, wh.Cycles)
	}
	return bw.Flush()
}
