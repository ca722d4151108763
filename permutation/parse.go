// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/enigma/alphabet"
)

// parseCycles splits src into cycles of alphabet indices.
//
// Grammar (whitespace allowed anywhere between tokens):
//
//	list  := cycle*
//	cycle := '(' sym+ ')'
//
// Disjointness is checked across the whole list, including repeats inside a
// single cycle.
func parseCycles(src string, a *alphabet.Alphabet) ([][]int, error) {
	var (
		cycles [][]int
		cur    []int
		inside bool
		seen   = make(map[int]bool)
		pos    int
	)

	for _, r := range src {
		pos++
		switch {
		case unicode.IsSpace(r):
			continue
		case r == openCycle:
			if inside {
				return nil, fmt.Errorf("%w: nested '(' at %d", ErrMalformedCycles, pos)
			}
			inside, cur = true, nil
		case r == closeCycle:
			if !inside {
				return nil, fmt.Errorf("%w: unmatched ')' at %d", ErrMalformedCycles, pos)
			}
			if len(cur) == 0 {
				return nil, fmt.Errorf("%w: empty cycle at %d", ErrMalformedCycles, pos)
			}
			cycles = append(cycles, cur)
			inside, cur = false, nil
		default:
			if !inside {
				return nil, fmt.Errorf("%w: symbol %q outside a cycle at %d", ErrMalformedCycles, r, pos)
			}
			i, err := a.IndexOf(r)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrSymbolNotInAlphabet, r)
			}
			if seen[i] {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateInCycles, r)
			}
			seen[i] = true
			cur = append(cur, i)
		}
	}
	if inside {
		return nil, fmt.Errorf("%w: unterminated cycle", ErrMalformedCycles)
	}

	return cycles, nil
}
