// SPDX-License-Identifier: MIT

// Package enigma is an in-memory simulator of electromechanical rotor cipher
// machines: a stack of rotating permutation wheels, a reflector and a
// plugboard, combined into a reciprocal substitution whose mapping changes
// with every symbol processed.
//
// What is inside?
//
//	A small, deterministic, dependency-light engine plus the plumbing to drive it:
//		• alphabet/   : finite ordered symbol sets, symbol ↔ index, modular wrap
//		• permutation/: bijections in cycle notation, forward & inverse lookup
//		• rotor/      : fixed rotors, moving rotors (notches) and reflectors
//		• machine/    : slot array, double-step stepping, signal path, trace hook
//		• config/     : machine definitions (text or YAML) and the Naval-A preset
//		• setup/      : per-message-group setup lines, ring settings, plugboard
//		• session/    : message streams, group boundaries, five-letter output
//		• cmd/enigma  : the command-line front end
//
// Signal path for every symbol:
//
//	advance rotors → plugboard → rotors (fast → reflector) → rotors (reflector → fast) → plugboard⁻¹
//
// Stepping always precedes encoding, and encryption and decryption are the
// same operation: a machine reset to the same configuration maps the
// ciphertext back to the plaintext.
//
// Errors:
//
// Every package returns sentinel errors that wrap one of five kinds declared
// here (ErrConfigFormat, ErrInvalidAlphabet, ErrRotorAssembly, ErrSetting,
// ErrMessageSymbol). Branch with errors.Is on either the precise sentinel or
// the kind; KindOf reports the kind of any error produced by this module.
//
// Concurrency:
//
// A Machine is stateful and order-dependent. It is not safe for concurrent use;
// independent messages processed in parallel need independently built machines.
//
//	go get github.com/katalvlaran/enigma
package enigma
