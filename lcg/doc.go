// Package lcg provides full-period integer sequencers over a finite
// domain [0, m): linear congruential recurrences whose parameters are
// chosen so that every residue is visited exactly once per cycle.
//
// What:
//
//   - Sequencer advances state ← (a·state + c) mod m and returns it.
//   - New derives (a, c) from m automatically; NewExplicit accepts
//     caller-supplied parameters and validates them.
//   - NewAdditive builds the a = 1 special case: a pure rotation
//     state ← (state + step) mod m with gcd(step, m) = 1.
//   - DeriveParams and Validate are exported as standalone pure
//     functions, usable without constructing a Sequencer.
//
// Why:
//
//   - Unique serial numbers, voucher codes, short IDs: enumerate a whole
//     keyspace with no duplicates and no memory of what was issued.
//   - Randomized-looking scans over a fixed range (ports, buckets, seats)
//     in O(1) time and O(1) memory per value.
//
// Full-period guarantee (Hull–Dobell):
//
//	The recurrence has period exactly m, for every seed, iff
//	 1. gcd(c, m) = 1,
//	 2. every prime factor of m divides a − 1,
//	 3. if 4 divides m, then 4 divides a − 1.
//	Validate checks exactly these three conditions; construction never
//	succeeds with a short-cycle parameter set.
//
// Complexity:
//
//   - Next:         O(1) time, zero allocations.
//   - DeriveParams: O(√m) time (trial-division factoring), O(1) memory.
//   - Validate:     O(√m) time, O(1) memory.
//
// Errors:
//
//   - ErrZeroModulus:    m = 0 (the empty domain is invalid).
//   - ErrModulusTooLarge: m exceeds MaxModulus (1<<32).
//   - ErrBadMultiplier:  a violates Hull–Dobell conditions 2 or 3.
//   - ErrBadIncrement:   gcd(c, m) ≠ 1.
//
// Concurrency:
//
//   - A Sequencer is a single mutable integer with no internal locking.
//     Do not share one instance across goroutines without external
//     serialization; independent instances are fully parallel-safe.
//
// Not a goal: cryptographic unpredictability. The sequence is
// reproducible and invertible by design.
package lcg
