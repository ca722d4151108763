// SPDX-License-Identifier: MIT
package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma"
	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

func TestAdvanceRotors_DoubleStep(t *testing.T) {
	m := wordleMachine(t)
	require.Equal(t, "MAA", m.Settings())

	for _, want := range []string{"MBB", "NCC", "NCD"} {
		m.AdvanceRotors()
		require.Equal(t, want, m.Settings())
	}
}

func TestAdvanceRotors_NavalDoubleStep(t *testing.T) {
	m, err := machine.New(az, 5, 3, buildCatalog(t, navalA))
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("B", "Beta", "I", "II", "III"))
	require.NoError(t, m.SetRotors("AADU"))

	for _, want := range []string{"AADV", "AAEW", "ABFX", "ABFY"} {
		m.AdvanceRotors()
		assert.Equal(t, want, m.Settings())
	}
}

func TestAdvanceRotors_StationaryNeverMove(t *testing.T) {
	m := navalMachine(t)
	for i := 0; i < 26*26*3; i++ {
		m.AdvanceRotors()
	}
	refl, err := m.Rotor(0)
	require.NoError(t, err)
	beta, err := m.Rotor(1)
	require.NoError(t, err)
	assert.Equal(t, 'A', refl.Setting())
	assert.Equal(t, 'A', beta.Setting())
}

func TestAdvanceRotors_TwoSlots(t *testing.T) {
	abcd := alphabet.MustNew("ABCD")
	refl, err := rotor.NewReflector("R", permutation.MustNew("(AC) (BD)", abcd))
	require.NoError(t, err)
	fast, err := rotor.NewMoving("Y", permutation.MustNew("(AB) (CD)", abcd), "A")
	require.NoError(t, err)

	m, err := machine.New(abcd, 2, 1, []*rotor.Rotor{refl, fast})
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("R", "Y"))
	require.NoError(t, m.CheckAssembly())

	for _, want := range []string{"B", "C", "D", "A"} {
		m.AdvanceRotors()
		require.Equal(t, want, m.Settings())
	}
}

func TestConvert_SmallAlphabet(t *testing.T) {
	abcd := alphabet.MustNew("ABCD")
	refl, err := rotor.NewReflector("R", permutation.MustNew("(AC) (BD)", abcd))
	require.NoError(t, err)
	x, err := rotor.NewMoving("X", permutation.MustNew("(ABCD)", abcd), "C")
	require.NoError(t, err)
	y, err := rotor.NewMoving("Y", permutation.MustNew("(AB) (CD)", abcd), "A")
	require.NoError(t, err)

	m, err := machine.New(abcd, 3, 2, []*rotor.Rotor{refl, x, y})
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("R", "X", "Y"))
	require.NoError(t, m.SetRotors("AA"))

	out, err := m.ConvertMessage("AAAABBBB")
	require.NoError(t, err)
	assert.Equal(t, "CCCCDDDD", out)
	assert.Equal(t, "CA", m.Settings())
}

func TestConvertMessage_Naval(t *testing.T) {
	m := navalMachine(t, machine.WithPlugboard(plug(t, "(HQ) (EX) (IP) (TR) (BY)")))
	out, err := m.ConvertMessage("FROMHISSHOULDERHIAWATHA")
	require.NoError(t, err)
	assert.Equal(t, "QVPQSOKOILPUBKJZPISFXDW", out)
	assert.Equal(t, "AXMB", m.Settings())
}

func TestConvertMessage_Reciprocal(t *testing.T) {
	const plain = "FROMHISSHOULDERHIAWATHA"
	pb := plug(t, "(HQ) (EX) (IP) (TR) (BY)")

	enc := navalMachine(t, machine.WithPlugboard(pb))
	cipher, err := enc.ConvertMessage(plain)
	require.NoError(t, err)

	dec := navalMachine(t, machine.WithPlugboard(pb))
	back, err := dec.ConvertMessage(cipher)
	require.NoError(t, err)
	assert.Equal(t, plain, back)
}

func TestConvertMessage_SecondCatalog(t *testing.T) {
	m, err := machine.New(az, 5, 3, buildCatalog(t, navalA))
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("C", "Gamma", "VI", "VII", "VIII"))
	require.NoError(t, m.CheckAssembly())
	require.NoError(t, m.SetRotors("XRAY"))
	require.NoError(t, m.SetPlugboard(plug(t, "(AM) (FI) (NV) (PS) (TU) (WZ)")))

	out, err := m.ConvertMessage("HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "KOUTNQAXVA", out)
}

func TestConvertMessage_Wordle(t *testing.T) {
	m := wordleMachine(t)
	require.NoError(t, m.SetPlugboard(plug(t, "(AZ) (MN)")))
	out, err := m.ConvertMessage("AJC")
	require.NoError(t, err)
	assert.Equal(t, "WOS", out)
	assert.Equal(t, "NCD", m.Settings())
}

func TestConvert_Index(t *testing.T) {
	m := navalMachine(t, machine.WithPlugboard(plug(t, "(YF) (HZ)")))
	got, err := m.Convert(24)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	_, err = m.Convert(26)
	require.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)
	_, err = m.Convert(-1)
	require.ErrorIs(t, err, alphabet.ErrIndexOutOfRange)
	assert.Equal(t, "AXLF", m.Settings(), "rejected index must not step")
}

func TestConvertMessage_RejectsForeignSymbol(t *testing.T) {
	m := navalMachine(t)
	_, err := m.ConvertMessage("HELLO WORLD")
	require.ErrorIs(t, err, machine.ErrMessageSymbol)
	require.ErrorIs(t, err, alphabet.ErrInvalidSymbol)
	assert.Equal(t, enigma.KindMessageSymbol, enigma.KindOf(err))
	assert.Equal(t, "AXLE", m.Settings(), "no rotor moves on a rejected message")

	_, err = m.ConvertSymbol('a')
	require.ErrorIs(t, err, machine.ErrMessageSymbol)
}

func TestConvertMessage_Empty(t *testing.T) {
	m := navalMachine(t)
	out, err := m.ConvertMessage("")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "AXLE", m.Settings())
}

func TestConvert_Deterministic(t *testing.T) {
	a := navalMachine(t)
	b := navalMachine(t)
	for i := 0; i < 500; i++ {
		x, err := a.Convert(i % 26)
		require.NoError(t, err)
		y, err := b.Convert(i % 26)
		require.NoError(t, err)
		require.Equal(t, x, y, "step %d", i)
		require.Equal(t, a.Settings(), b.Settings())
	}
}

func TestConvert_NeverFixedPoint(t *testing.T) {
	// A derangement reflector guarantees no symbol encrypts to itself.
	m := navalMachine(t, machine.WithPlugboard(plug(t, "(HQ) (EX) (IP) (TR) (BY)")))
	for i := 0; i < 26*20; i++ {
		got, err := m.Convert(i % 26)
		require.NoError(t, err)
		require.NotEqual(t, i%26, got)
	}
}

func TestTracer(t *testing.T) {
	var traces []machine.Trace
	m := navalMachine(t,
		machine.WithPlugboard(plug(t, "(HQ) (EX) (IP) (TR) (BY)")),
		machine.WithTracer(func(tr machine.Trace) { traces = append(traces, tr) }),
	)

	out, err := m.ConvertMessage("FROM")
	require.NoError(t, err)
	require.Equal(t, "QVPQ", out)
	require.Len(t, traces, 4)

	first := traces[0]
	assert.Equal(t, "AXLF", first.Settings)
	assert.Equal(t, 'F', first.Input)
	assert.Equal(t, 'F', first.Plugged)
	assert.Equal(t, "IVJWHXZJH", string(first.Path))
	assert.Equal(t, 'Q', first.Output)

	for i, tr := range traces {
		assert.Len(t, tr.Path, 2*m.NumRotors()-1)
		assert.Equal(t, rune(out[i]), tr.Output)
	}

	m.SetTracer(nil)
	_, err = m.ConvertMessage("HIS")
	require.NoError(t, err)
	assert.Len(t, traces, 4)
}
