package lcg

// New builds a full-period Sequencer over [0, m) with automatically
// derived parameters (see DeriveParams) and the given starting seed.
// Any seed is accepted and reduced mod m: every seed yields a full
// traversal; it only shifts the starting point within the cycle.
//
// Returns ErrZeroModulus or ErrModulusTooLarge for an invalid domain.
//
// Complexity: O(√m) construction (parameter derivation), O(1) memory.
func New(m, seed uint64) (*Sequencer, error) {
	a, c, err := DeriveParams(m)
	if err != nil {
		return nil, err
	}

	return NewExplicit(a, c, m, seed)
}

// NewExplicit builds a Sequencer from caller-supplied parameters,
// validated against the Hull–Dobell full-period conditions. Use it to
// reproduce a known sequence (a, c, m, seed fix the order exactly) or to
// bring parameters derived elsewhere.
//
// Returns ErrZeroModulus, ErrModulusTooLarge, ErrBadIncrement or
// ErrBadMultiplier; a Sequencer is never partially constructed from an
// invalid parameter set.
//
// Complexity: O(√m) construction (validation), O(1) memory.
func NewExplicit(a, c, m, seed uint64) (*Sequencer, error) {
	if err := Validate(a, c, m); err != nil {
		return nil, err
	}

	return &Sequencer{
		a:     a % m,
		c:     c % m,
		m:     m,
		state: seed % m,
	}, nil
}

// NewAdditive builds the a = 1 rotation sequencer: state ← (state + step)
// mod m, full-period iff gcd(step, m) = 1. The traversal order is a plain
// arithmetic progression — trivially predictable, but the cheapest
// possible full-period walk. Prefer New when apparent randomness matters.
//
// Complexity: O(√m) construction (validation), O(1) memory.
func NewAdditive(m, step, seed uint64) (*Sequencer, error) {
	return NewExplicit(1, step, m, seed)
}

// Next advances the recurrence one step and returns the new residue.
// Within one cycle of m calls every residue of [0, m) is returned exactly
// once; the (m+1)-th call returns the same value as the first. Next never
// fails and never allocates.
//
// Complexity: O(1).
func (s *Sequencer) Next() uint64 {
	// a, state < m ≤ 1<<32, so the product fits a uint64 (see MaxModulus).
	s.state = (s.a*s.state + s.c) % s.m

	return s.state
}

// State returns the current residue without advancing. Immediately after
// construction this is the reduced seed; after n calls to Next it equals
// the n-th generated value.
//
// Complexity: O(1).
func (s *Sequencer) State() uint64 {
	return s.state
}

// Params returns the recurrence parameters (a, c, m), reduced mod m.
//
// Complexity: O(1).
func (s *Sequencer) Params() (a, c, m uint64) {
	return s.a, s.c, s.m
}

// Modulus returns the domain size m.
//
// Complexity: O(1).
func (s *Sequencer) Modulus() uint64 {
	return s.m
}
