// SPDX-License-Identifier: MIT

// Package machine assembles rotors into a working cipher machine.
//
// Overview:
//
//   - A Machine has numRotors slots. Slot 0 holds the reflector, slot
//     numRotors-1 the fastest rotor. The rightmost numPawls non-reflector slots
//     hold moving rotors; everything to their left is stationary.
//   - Rotors come from a catalog (name → template). InsertRotors places a fresh
//     copy of each named template into the slots, so one message group can
//     never leak rotor state into the next.
//   - A plugboard permutation (identity by default) is applied on the way in
//     and inverted on the way out.
//
// Stepping (AdvanceRotors), performed before every symbol:
//
//  1. stepped[i] = false for all slots.
//  2. For i in 1..numRotors-2: if slot i+1 is at a notch, slot i has not
//     stepped and slot i rotates, advance slot i. If additionally i is not the
//     second-to-last slot, slot i+1 has not stepped and slot i+1 rotates,
//     advance slot i+1 as well (the double step).
//  3. Advance slot numRotors-1.
//
// Notch tests always see the state left by earlier iterations of the same
// cycle; the stepped flags stop a slot from moving twice in one cycle.
//
// Signal path (Convert):
//
//	AdvanceRotors → plugboard.Permute → ConvertForward(n-1 … 0) → ConvertBackward(1 … n-1) → plugboard.Invert
//
// Setup order used by package setup: Assemble (InsertRotors plus the
// CheckAssembly rules, atomically) →
// ring setting (rotor.SetNotches) → SetRotors → SetPlugboard.
//
// Tracing:
//
// WithTracer installs a callback receiving one Trace per converted symbol.
// It replaces any notion of a global verbose flag; the engine itself never
// writes anywhere.
//
// Thread safety:
//
//   - A Machine is mutable and order-dependent; use one per goroutine.
package machine
