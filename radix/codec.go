package radix

// New builds a Codec from a position list, most-significant first.
// The list is copied, so later mutation of the argument cannot break the
// codec's invariants.
//
// Returns ErrNoPositions for an empty list, ErrBadBase for a base < 1,
// or ErrDomainOverflow when the product of bases exceeds MaxDomain.
//
// Complexity: O(k) time and space for k positions.
func New(positions []Position) (*Codec, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositions
	}

	var domain uint64 = 1
	for _, pos := range positions {
		if pos.Base < 1 {
			return nil, ErrBadBase
		}
		// Reject before multiplying: a wrapped product could land back
		// under the cap and pass a post-hoc check.
		if uint64(pos.Base) > MaxDomain/domain {
			return nil, ErrDomainOverflow
		}
		domain *= uint64(pos.Base)
	}

	// Private copy; the codec is immutable from here on.
	owned := make([]Position, len(positions))
	copy(owned, positions)

	return &Codec{positions: owned, domain: domain}, nil
}

// AlphaNum returns the position list for the classic serial layout
// [A-Z]{letters}[0-9]{digits}: uppercase letters in the high positions,
// decimal digits in the low ones. Feed the result to New.
//
// Returns ErrBadCount for a negative count and ErrNoPositions when both
// counts are zero.
//
// Complexity: O(letters + digits).
func AlphaNum(letters, digits int) ([]Position, error) {
	if letters < 0 || digits < 0 {
		return nil, ErrBadCount
	}
	if letters+digits == 0 {
		return nil, ErrNoPositions
	}

	positions := make([]Position, 0, letters+digits)
	for i := 0; i < letters; i++ {
		positions = append(positions, Position{Base: 26, Offset: 'A'})
	}
	for i := 0; i < digits; i++ {
		positions = append(positions, Position{Base: 10, Offset: '0'})
	}

	return positions, nil
}

// Domain returns N, the number of distinct codes (the product of all
// position bases).
//
// Complexity: O(1).
func (c *Codec) Domain() uint64 {
	return c.domain
}

// Len returns the number of positions, i.e. the code length in symbols.
//
// Complexity: O(1).
func (c *Codec) Len() int {
	return len(c.positions)
}

// Encode renders v as a code. For v in [0, N) it cannot fail; a value
// ≥ N breaches the contract and returns ErrValueRange.
//
// Successive division, least-significant position first: each step takes
// v's remainder by the position base as the digit and continues with the
// quotient. The quotient after the most-significant position is exactly
// 0, since ∏ bases = N and v < N.
//
// Complexity: O(k) for k positions; allocates only the resulting code.
func (c *Codec) Encode(v uint64) (string, error) {
	if v >= c.domain {
		return "", ErrValueRange
	}

	out := make([]rune, len(c.positions))
	remaining := v
	var i int
	for i = len(c.positions) - 1; i >= 0; i-- {
		base := uint64(c.positions[i].Base)
		digit := remaining % base
		remaining /= base
		out[i] = c.positions[i].Offset + rune(digit)
	}

	return string(out), nil
}

// Decode parses a code back to its integer value, the exact inverse of
// Encode. The walk runs most-significant first with multiply-accumulate:
// v ← v·base + digit, validating every symbol against its position's
// alphabet.
//
// Returns ErrCodeLength when the symbol count differs from the
// configured shape, or ErrBadSymbol when a symbol falls outside its
// position's alphabet.
//
// Complexity: O(k) for k positions.
func (c *Codec) Decode(code string) (uint64, error) {
	symbols := []rune(code)
	if len(symbols) != len(c.positions) {
		return 0, ErrCodeLength
	}

	var v uint64
	for i, pos := range c.positions {
		digit := int64(symbols[i]) - int64(pos.Offset)
		if digit < 0 || digit >= int64(pos.Base) {
			return 0, ErrBadSymbol
		}
		v = v*uint64(pos.Base) + uint64(digit)
	}

	return v, nil
}
