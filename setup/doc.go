// SPDX-License-Identifier: MIT

// Package setup applies setup lines to a machine. A setup line opens every
// message group:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//	* B Beta III IV I AXLE BCDE (YF) (ZH)
//
// It names one rotor per slot, reflector first, then the initial setting of
// slots 1..n-1, an optional ring setting of the same length, and the plugboard
// as cycles. Application order is fixed: insert rotors, check the assembly,
// shift notches and initial setting by the ring setting, set the rotors,
// install the plugboard.
//
// A ring setting r turns every moving rotor's alphabet ring against its
// wiring: the notches of the rotor in slot i move back by r[i-1], and so does
// the initial setting of that slot.
package setup
