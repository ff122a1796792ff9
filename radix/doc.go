// Package radix provides a mixed-radix symbolic codec: a bijection
// between the integers [0, N) and fixed-shape alphanumeric codes such as
// AB123, where each character position draws from its own alphabet.
//
// What:
//
//   - Position describes one output character: a base (alphabet size)
//     and an offset (the symbol for digit value 0, e.g. 'A' or '0').
//   - Codec holds an ordered position list, most-significant first, and
//     converts integers to codes (Encode) and back (Decode).
//   - AlphaNum builds the classic [A-Z]{letters}[0-9]{digits} layout.
//
// Why:
//
//   - Human-facing identifiers: serial numbers, voucher codes, seat or
//     batch labels — compact, typeable, and exactly invertible.
//   - Paired with a full-period sequencer (lcg/), the codec turns a
//     residue stream into a duplicate-free stream of printable codes.
//
// Digit order:
//
//	Positions are configured and rendered most-significant first, so the
//	code reads like a number: in AB123 the two base-26 letters carry the
//	high digits and the three base-10 characters the low ones.
//	Decomposition itself runs least-significant first (successive
//	division), filling the code right to left; after the last position
//	the quotient is exactly 0 — guaranteed by ∏ bases = N and v < N,
//	not defensively checked.
//
// Complexity:
//
//   - Encode: O(k) time for k positions, one small allocation (the code).
//   - Decode: O(k) time, zero allocations beyond the rune scan.
//
// Errors:
//
//   - ErrNoPositions:   the position list is empty.
//   - ErrBadBase:       a position's base is < 1.
//   - ErrBadCount:      AlphaNum got a negative count.
//   - ErrDomainOverflow: ∏ bases exceeds MaxDomain (1<<32).
//   - ErrValueRange:    Encode input ≥ N (precondition breach).
//   - ErrCodeLength:    Decode input has the wrong shape.
//   - ErrBadSymbol:     Decode input has a symbol outside its alphabet.
//
// A Codec is immutable after construction and safe for concurrent use.
package radix
