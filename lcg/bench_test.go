package lcg_test

import (
	"testing"

	"github.com/katalvlaran/fullcycle/lcg"
)

// BenchmarkSequencer_Next measures the raw state-advance cost; this is
// the whole per-value price of the full-period walk.
func BenchmarkSequencer_Next(b *testing.B) {
	s, err := lcg.NewExplicit(261, 1, 676000, 123456)
	if err != nil {
		b.Fatalf("NewExplicit failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Next()
	}
}

// BenchmarkDeriveParams_Composite measures parameter derivation for a
// composite modulus with repeated factors (trial division dominates).
func BenchmarkDeriveParams_Composite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, err := lcg.DeriveParams(676000)
		if err != nil {
			b.Fatalf("DeriveParams failed: %v", err)
		}
	}
}

// BenchmarkDeriveParams_Prime measures the worst factoring case: a prime
// modulus forces the full √m trial-division sweep.
func BenchmarkDeriveParams_Prime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, err := lcg.DeriveParams(999983)
		if err != nil {
			b.Fatalf("DeriveParams failed: %v", err)
		}
	}
}

// BenchmarkValidate measures the Hull–Dobell predicate on the reference
// parameter set.
func BenchmarkValidate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if err := lcg.Validate(261, 1, 676000); err != nil {
			b.Fatalf("Validate failed: %v", err)
		}
	}
}
