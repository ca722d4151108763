// SPDX-License-Identifier: MIT

// Package permutation implements bijections over an alphabet written in cycle
// notation, e.g. "(AELTPHQXRU) (BKNW) (CMOY)".
//
// Overview:
//
//   - Each parenthesised group is a cycle c0 → c1 → … → cm → c0.
//   - Symbols that appear in no cycle are fixed points; a 1-cycle "(S)" is an
//     explicit fixed point and behaves identically.
//   - Whitespace is insignificant, both between and inside cycles.
//   - Cycles must be disjoint: a symbol may occur at most once in the whole
//     list.
//
// Cycles are kept as index slices (the source of truth for Cycles and String);
// forward and inverse lookup tables are derived once at construction so that
// Permute and Invert are O(1).
//
// Error handling (sentinel errors):
//
//   - ErrMalformedCycles:     unbalanced or nested parentheses, symbols outside a
//     cycle, empty "()" cycles.
//   - ErrSymbolNotInAlphabet: a cycle names a symbol the alphabet lacks.
//   - ErrDuplicateInCycles:   a symbol occurs twice.
//   - ErrNilAlphabet:         New called without an alphabet.
//
// Thread safety:
//
//   - A Permutation is immutable after New and may be shared by many rotors.
package permutation
