// Package fullcycle is a small toolkit for issuing every element of a
// finite domain exactly once, in pseudorandom-looking order, as a
// human-readable code — serial numbers, vouchers, short IDs.
//
// 🚀 What is fullcycle?
//
//	A deterministic library built from two independent, composable pieces:
//		• lcg/    — full-period integer sequencers: a linear congruential
//		            recurrence whose parameters are chosen (Hull–Dobell) so
//		            that it visits all N residues exactly once per cycle,
//		            in O(1) time and O(1) memory per value
//		• radix/  — a mixed-radix codec: maps each integer in [0,N) to a
//		            fixed-shape symbolic code (e.g. AB123) and back
//		• serial/ — the composition: a ready-to-use unique-code generator
//
// ✨ Why choose fullcycle?
//
//   - No bookkeeping – uniqueness comes from number theory, not from a
//     hash set of everything issued so far
//   - Deterministic – same parameters & seed ⇒ identical sequence,
//     on every platform, across restarts
//   - Invertible – every issued code decodes back to its integer index
//   - Pure Go – no cgo, no hidden runtime deps
//
// Quick example:
//
//	positions, _ := radix.AlphaNum(2, 3)       // [A-Z]{2}[0-9]{3}, N = 676000
//	codec, _ := radix.New(positions)
//	gen, _ := serial.New(codec, serial.DefaultOptions())
//	fmt.Println(gen.Next())                    // a fresh 5-character code
//
// Not a goal: cryptographic unpredictability. Sequences are reproducible
// and invertible by design; do not use them as secrets.
//
//	go get github.com/katalvlaran/fullcycle
package fullcycle
