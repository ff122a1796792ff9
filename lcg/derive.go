// Package lcg - parameter derivation and validation for full-period
// linear congruential sequencers.
//
// This file is the mathematical core of the package. It is deliberately
// pure: DeriveParams is a standalone function from a modulus to a valid
// (a, c) pair, invoked once at construction time, with no shared state.
//
// Multiplier heuristic:
//
//	Hull–Dobell fixes the admissible multipliers to a = 1 + k·L, where L
//	is the product of m's distinct prime factors (doubled when 4 | m and
//	4 ∤ L). Any k yields a full period, but k near the trivial minimum
//	makes the sequence visibly near-arithmetic. We aim a at m/φ
//	(φ = golden ratio), the classic low-discrepancy target, and round k
//	accordingly. When L = m the group of admissible multipliers collapses
//	to a ≡ 1 (e.g. squarefree m), so apparent randomness must come from
//	the increment instead: c is then aimed at m/φ as well and slid down
//	to the nearest value coprime to m.
package lcg

// invPhi is 1/φ (the golden ratio conjugate), the classic multiplicative
// low-discrepancy constant. Used only as an aiming point; correctness
// never depends on it.
const invPhi = 0.6180339887498949

// gcd returns the greatest common divisor of a and b (Euclid).
// gcd(0, b) = b by convention.
//
// Complexity: O(log min(a,b)).
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// primeFactors returns the distinct prime factors of m in ascending order
// via trial division. m must be ≥ 2.
//
// Complexity: O(√m) time, O(log m) space for the result.
func primeFactors(m uint64) []uint64 {
	var factors []uint64

	// Pull out the even factor first so the main loop can step by 2.
	if m%2 == 0 {
		factors = append(factors, 2)
		for m%2 == 0 {
			m /= 2
		}
	}

	var p uint64
	for p = 3; p*p <= m; p += 2 {
		if m%p != 0 {
			continue
		}
		factors = append(factors, p)
		for m%p == 0 {
			m /= p
		}
	}

	// Whatever remains above 1 is a single prime larger than √(original m).
	if m > 1 {
		factors = append(factors, m)
	}

	return factors
}

// multiplierStride returns L such that the admissible full-period
// multipliers for modulus m are exactly a = 1 + k·L: the product of m's
// distinct prime factors, doubled when 4 | m but 4 ∤ the product.
// m must be ≥ 2. L always divides m.
//
// Complexity: O(√m) (dominated by factoring).
func multiplierStride(m uint64) uint64 {
	var stride uint64 = 1
	for _, p := range primeFactors(m) {
		stride *= p
	}
	if m%4 == 0 && stride%4 != 0 {
		stride *= 2
	}

	return stride
}

// Validate reports whether (a, c, m) satisfy the Hull–Dobell full-period
// conditions. nil means the recurrence state ← (a·state + c) mod m has
// period exactly m for every starting state.
//
// Checks, in order: modulus bounds, gcd(c, m) = 1 (ErrBadIncrement),
// then the multiplier divisibility conditions (ErrBadMultiplier).
// a and c are taken mod m, so congruent parameters validate identically.
//
// Complexity: O(√m) time, O(1) extra space.
func Validate(a, c, m uint64) error {
	if m == 0 {
		return ErrZeroModulus
	}
	if m > MaxModulus {
		return ErrModulusTooLarge
	}
	// The one-element domain is degenerate: every (a, c) collapses to 0.
	if m == 1 {
		return nil
	}

	if gcd(c%m, m) != 1 {
		return ErrBadIncrement
	}

	// a ≡ 0 (mod m) can never satisfy condition 2; reduce first so the
	// a−1 arithmetic below cannot underflow.
	ar := a % m
	if ar == 0 {
		return ErrBadMultiplier
	}
	for _, p := range primeFactors(m) {
		if (ar-1)%p != 0 {
			return ErrBadMultiplier
		}
	}
	if m%4 == 0 && (ar-1)%4 != 0 {
		return ErrBadMultiplier
	}

	return nil
}

// DeriveParams picks a full-period (a, c) pair for modulus m.
//
// The returned pair always satisfies Validate(a, c, m) == nil. The
// selection heuristic (documented in the file header) aims the multiplier
// — or, when the multiplier group collapses to {1}, the increment — at
// m/φ for decent apparent randomness; correctness depends only on the
// divisibility conditions, never on the aim.
//
// Complexity: O(√m) time, O(1) extra space.
func DeriveParams(m uint64) (a, c uint64, err error) {
	if m == 0 {
		return 0, 0, ErrZeroModulus
	}
	if m > MaxModulus {
		return 0, 0, ErrModulusTooLarge
	}
	if m == 1 {
		// Degenerate one-value domain; any parameters collapse to 0.
		return 1, 1, nil
	}

	stride := multiplierStride(m)

	// Aiming point for the dominant free parameter.
	target := uint64(float64(m) * invPhi)
	if target == 0 {
		target = 1
	}

	if stride == m {
		// Admissible multipliers are a ≡ 1 (mod m): a pure rotation.
		// Spend the aim on the increment; slide down to a coprime value.
		// gcd(1, m) = 1 guarantees termination.
		a = 1
		for c = target; gcd(c, m) != 1; c-- {
		}

		return a, c, nil
	}

	// General case: a = 1 + k·stride with k rounded toward the aim and
	// clamped so that 1 < a < m. stride divides m, hence m/stride ≥ 2.
	kMax := m/stride - 1
	k := (target - 1 + stride/2) / stride
	if k < 1 {
		k = 1
	}
	if k > kMax {
		k = kMax
	}

	return 1 + k*stride, 1, nil
}
