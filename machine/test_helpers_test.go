// SPDX-License-Identifier: MIT
package machine_test

// Shared fixtures: the Naval-A rotor set and the small double-step rotor set.

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/enigma/alphabet"
	"github.com/katalvlaran/enigma/machine"
	"github.com/katalvlaran/enigma/permutation"
	"github.com/katalvlaran/enigma/rotor"
)

var az = alphabet.MustNew(alphabet.Upper)

// rotorDef describes one catalog entry: kind letter, notches, wiring.
type rotorDef struct {
	kind    rotor.Kind
	notches string
	cycles  string
}

// navalA holds the rotors of the Naval-A machine used by the end-to-end vectors.
var navalA = map[string]rotorDef{
	"I":     {rotor.Moving, "Q", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"},
	"II":    {rotor.Moving, "E", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)"},
	"III":   {rotor.Moving, "V", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)"},
	"IV":    {rotor.Moving, "J", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)"},
	"V":     {rotor.Moving, "Z", "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)"},
	"VI":    {rotor.Moving, "ZM", "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)"},
	"VII":   {rotor.Moving, "ZM", "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)"},
	"VIII":  {rotor.Moving, "ZM", "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)"},
	"Beta":  {rotor.Fixed, "", "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
	"Gamma": {rotor.Fixed, "", "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
	"B":     {rotor.Reflector, "", "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
	"C":     {rotor.Reflector, "", "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
}

// wordle is the small rotor set of the double-step scenario.
var wordle = map[string]rotorDef{
	"B":   {rotor.Reflector, "", "(AZ) (BY) (CX) (DW) (EV) (FU) (GT) (HS) (IR) (JQ) (KP) (LO) (MN)"},
	"I":   {rotor.Moving, "A", "(WORDLE) (IS) (FUN)"},
	"II":  {rotor.Moving, "B", "(TEARS) (BOING) (LUCKY)"},
	"III": {rotor.Moving, "M", "(QUACK) (FROZE) (TWINS) (GLYPH)"},
}

// buildCatalog materialises defs over az.
func buildCatalog(t testing.TB, defs map[string]rotorDef) []*rotor.Rotor {
	t.Helper()
	out := make([]*rotor.Rotor, 0, len(defs))
	for name, d := range defs {
		p, err := permutation.New(d.cycles, az)
		require.NoError(t, err)

		var r *rotor.Rotor
		switch d.kind {
		case rotor.Moving:
			r, err = rotor.NewMoving(name, p, d.notches)
		case rotor.Fixed:
			r, err = rotor.NewFixed(name, p)
		case rotor.Reflector:
			r, err = rotor.NewReflector(name, p)
		}
		require.NoError(t, err)
		out = append(out, r)
	}
	return out
}

// navalMachine returns a 5-slot, 3-pawl machine set to B Beta III IV I / AXLE.
func navalMachine(t testing.TB, opts ...machine.Option) *machine.Machine {
	t.Helper()
	m, err := machine.New(az, 5, 3, buildCatalog(t, navalA), opts...)
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("B", "Beta", "III", "IV", "I"))
	require.NoError(t, m.CheckAssembly())
	require.NoError(t, m.SetRotors("AXLE"))
	return m
}

// wordleMachine returns a 4-slot, 3-pawl machine set to B III II I / MAA.
func wordleMachine(t testing.TB) *machine.Machine {
	t.Helper()
	m, err := machine.New(az, 4, 3, buildCatalog(t, wordle))
	require.NoError(t, err)
	require.NoError(t, m.InsertRotors("B", "III", "II", "I"))
	require.NoError(t, m.SetRotors("MAA"))
	return m
}

func plug(t testing.TB, cycles string) *permutation.Permutation {
	t.Helper()
	p, err := permutation.New(cycles, az)
	require.NoError(t, err)
	return p
}
