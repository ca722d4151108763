// SPDX-License-Identifier: MIT

// Package session runs a machine over a stream of message groups.
//
// Input is line oriented. A line starting with '*' is a setup line (see
// package setup) and reconfigures the machine; every other line is a message.
// Whitespace inside a message is dropped, the remaining symbols are converted
// in order, and the result is written in blocks of five separated by single
// spaces, one output line per message line:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//	FROM HIS SHOULDER HIAWATHA
//
// produces
//
//	QVPQS OKOIL PUBKJ ZPISF XDW
//
// The first non-blank line must be a setup line. Setup lines produce no output;
// blank message lines produce blank output lines. Processing stops at the
// first error, which carries the 1-based input line number.
package session
