// SPDX-License-Identifier: MIT

// Package config reads machine definitions: the alphabet, the number of
// rotor slots and pawls, and the catalog of rotors a machine may mount.
//
// Two encodings are understood.
//
// Text (whitespace-separated tokens, line breaks insignificant):
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	I     MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta  N   (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B     R   (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)
//
// Each rotor is a name, a type token and the run of following tokens written
// as parenthesised cycles. The type token is M followed by the notch symbols
// (moving), N (fixed) or R (reflector).
//
// YAML:
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	rotors: 5
//	pawls: 3
//	wheels:
//	  - {name: I, kind: moving, notches: Q, cycles: "(AELTPHQXRU) (BKNW) ..."}
//
// Load picks the decoder from the file extension. NavalA returns the embedded
// definition of the four-rotor naval machine with its eight moving rotors,
// two fixed rotors and two thin reflectors.
//
// Parsing only checks syntax; Build performs every semantic check (alphabet
// validity, cycle syntax, notches, reflector derangement, slot and pawl
// counts) and returns a ready, unassembled *machine.Machine.
package config
