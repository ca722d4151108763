// SPDX-License-Identifier: MIT

package permutation

import (
	"strings"

	"github.com/katalvlaran/enigma/alphabet"
)

// Permutation is a bijection over the indices of one Alphabet.
type Permutation struct {
	alpha  *alphabet.Alphabet
	cycles [][]int
	fwd    []int // fwd[i] = next symbol after i in its cycle (i if fixed)
	inv    []int // inv[i] = previous symbol before i in its cycle
}

// New parses cycles (cycle notation) over a. An empty or all-whitespace
// string yields the identity.
func New(cycles string, a *alphabet.Alphabet) (*Permutation, error) {
	if a == nil {
		return nil, ErrNilAlphabet
	}
	parsed, err := parseCycles(cycles, a)
	if err != nil {
		return nil, err
	}
	return build(parsed, a), nil
}

// MustNew is like New but panics on error.
func MustNew(cycles string, a *alphabet.Alphabet) *Permutation {
	p, err := New(cycles, a)
	if err != nil {
		panic(err)
	}
	return p
}

// Identity returns the permutation that fixes every symbol of a.
func Identity(a *alphabet.Alphabet) *Permutation {
	return build(nil, a)
}

func build(cycles [][]int, a *alphabet.Alphabet) *Permutation {
	n := a.Size()
	p := &Permutation{
		alpha:  a,
		cycles: cycles,
		fwd:    make([]int, n),
		inv:    make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.fwd[i], p.inv[i] = i, i
	}
	for _, c := range cycles {
		for k, from := range c {
			to := c[(k+1)%len(c)]
			p.fwd[from] = to
			p.inv[to] = from
		}
	}
	return p
}

// Alphabet returns the alphabet this permutation is defined over.
func (p *Permutation) Alphabet() *alphabet.Alphabet { return p.alpha }

// Size returns the alphabet size.
func (p *Permutation) Size() int { return p.alpha.Size() }

// Wrap reduces i modulo Size().
func (p *Permutation) Wrap(i int) int { return p.alpha.Wrap(i) }

// Permute returns the index following Wrap(i) in its cycle.
func (p *Permutation) Permute(i int) int { return p.fwd[p.alpha.Wrap(i)] }

// Invert returns the index preceding Wrap(i) in its cycle.
func (p *Permutation) Invert(i int) int { return p.inv[p.alpha.Wrap(i)] }

// PermuteSymbol applies the permutation to a symbol.
func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alpha.IndexOf(r)
	if err != nil {
		return 0, err
	}
	return p.alpha.Rune(p.fwd[i]), nil
}

// InvertSymbol applies the inverse permutation to a symbol.
func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alpha.IndexOf(r)
	if err != nil {
		return 0, err
	}
	return p.alpha.Rune(p.inv[i]), nil
}

// IsDerangement reports whether no symbol maps to itself. A 1-cycle counts as
// a fixed point.
func (p *Permutation) IsDerangement() bool {
	for i, j := range p.fwd {
		if i == j {
			return false
		}
	}
	return true
}

// IsInvolution reports whether applying the permutation twice is the identity,
// i.e. every cycle has length 1 or 2.
func (p *Permutation) IsInvolution() bool {
	for i, j := range p.fwd {
		if p.fwd[j] != i {
			return false
		}
	}
	return true
}

// Cycles returns a copy of the parsed cycles as alphabet indices, in
// the order they were written.
func (p *Permutation) Cycles() [][]int {
	out := make([][]int, len(p.cycles))
	for i, c := range p.cycles {
		out[i] = append([]int(nil), c...)
	}
	return out
}

// String renders the permutation in cycle notation, one space between cycles.
func (p *Permutation) String() string {
	var sb strings.Builder
	for k, c := range p.cycles {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(openCycle)
		for _, i := range c {
			sb.WriteRune(p.alpha.Rune(i))
		}
		sb.WriteRune(closeCycle)
	}
	return sb.String()
}
