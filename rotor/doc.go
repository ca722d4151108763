// SPDX-License-Identifier: MIT

// Package rotor models the wired wheels of a rotor machine.
//
// A Rotor is a tagged variant over three kinds:
//
//   - Fixed    : never moves during operation; its setting may be chosen at setup.
//   - Moving   : ratchet-advanced by a pawl; carries notch positions that let it
//     push its left neighbour.
//   - Reflector: fixed at the first symbol, wired as a derangement, folds the
//     signal back through the stack.
//
// Behaviour that differs per kind (Rotates, Reflecting, AtNotch, Advance, Set,
// SetNotches) is implemented with exhaustive switches on Kind, so "only a
// moving rotor advances" is visible in one place.
//
// Signal conversion:
//
//	convertForward(p)  = wrap(perm.Permute(wrap(p + s)) - s)
//	convertBackward(e) = wrap(perm.Invert(wrap(e + s)) - s)
//
// where s is the index of the current setting. The offset models the
// physical rotation of the wired contacts.
//
// Ownership:
//
// Catalog rotors are templates. A machine takes a Clone per slot, so setting
// and notch changes made during one message group never leak into the
// catalog or into another machine.
package rotor
