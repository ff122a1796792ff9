// Package lcg defines the core Sequencer type and sentinel errors
// for the lcg subpackage of github.com/katalvlaran/fullcycle.
package lcg

import "errors"

// MaxModulus is the largest supported domain size (inclusive).
// With m ≤ 1<<32, both a and state stay below 2³², so the update
// a·state + c fits in a uint64 without overflow.
const MaxModulus uint64 = 1 << 32

// Sentinel errors for sequencer construction. All of them are
// configuration errors: they are returned only by constructors and by
// Validate/DeriveParams, never by Next.
var (
	// ErrZeroModulus indicates m = 0; the domain must hold at least one value.
	ErrZeroModulus = errors.New("lcg: modulus must be positive")
	// ErrModulusTooLarge indicates m > MaxModulus.
	ErrModulusTooLarge = errors.New("lcg: modulus must not exceed 1<<32")
	// ErrBadMultiplier indicates a violates the full-period divisibility
	// conditions (some prime factor of m does not divide a−1, or 4 | m
	// while 4 ∤ a−1).
	ErrBadMultiplier = errors.New("lcg: multiplier violates the full-period conditions")
	// ErrBadIncrement indicates gcd(c, m) ≠ 1.
	ErrBadIncrement = errors.New("lcg: increment must be coprime to the modulus")
)

// Sequencer enumerates all residues of [0, m) exactly once per cycle via
// the recurrence state ← (a·state + c) mod m. Parameters are fixed at
// construction and are guaranteed to satisfy the Hull–Dobell conditions,
// so Next can never fail and never repeats a value within one cycle.
//
// The zero value is not usable; build instances with New, NewExplicit or
// NewAdditive.
type Sequencer struct {
	a     uint64 // multiplier, reduced mod m
	c     uint64 // increment, reduced mod m
	m     uint64 // modulus = domain size
	state uint64 // current residue in [0, m)
}
