// SPDX-License-Identifier: MIT

// Package alphabet provides the finite ordered symbol set every other part of
// the machine is expressed over.
//
// Overview:
//
//   - An Alphabet is an immutable sequence of N ≥ 1 distinct runes.
//   - The K-th symbol has index K; IndexOf and SymbolAt convert both ways.
//   - Wrap maps any integer (including negative offsets) onto [0, N).
//     All rotor arithmetic goes through Wrap, so intermediate values never
//     need to be normalised by hand.
//
// Error handling (sentinel errors):
//
//   - ErrEmpty, ErrDuplicateSymbol: construction failures (kind ErrInvalidAlphabet).
//   - ErrInvalidSymbol: IndexOf/Validate on an absent symbol (kind ErrMessageSymbol).
//   - ErrIndexOutOfRange: SymbolAt outside [0, N). Indices produced by Wrap
//     never trigger it.
//
// Thread safety:
//
//   - Alphabets are read-only after New and may be shared freely.
package alphabet
