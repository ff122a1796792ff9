package serial_test

import (
	"regexp"
	"testing"

	"github.com/katalvlaran/fullcycle/lcg"
	"github.com/katalvlaran/fullcycle/radix"
	"github.com/katalvlaran/fullcycle/serial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAlphaNumCodec builds the [A-Z]{letters}[0-9]{digits} codec or fails
// the test.
func newAlphaNumCodec(t *testing.T, letters, digits int) *radix.Codec {
	t.Helper()

	positions, err := radix.AlphaNum(letters, digits)
	require.NoError(t, err)
	codec, err := radix.New(positions)
	require.NoError(t, err)

	return codec
}

// TestGenerator_ReferenceScenario pins the reference configuration:
// N=676000, AA000 layout, seed=123456, a=261, c=1. The first codes are
// fixed forever; every code matches [A-Z]{2}[0-9]{3}.
func TestGenerator_ReferenceScenario(t *testing.T) {
	codec := newAlphaNumCodec(t, 2, 3)
	gen, err := serial.New(codec, serial.Options{Seed: 123456, Multiplier: 261, Increment: 1})
	require.NoError(t, err)

	want := []string{"RI017", "TM438", "NW319", "DB260", "PQ861"}
	shape := regexp.MustCompile(`^[A-Z]{2}[0-9]{3}$`)
	for i, w := range want {
		code := gen.Next()
		assert.Equal(t, w, code, "code %d", i)
		assert.Regexp(t, shape, code)
	}
}

// TestGenerator_FullCycleUniqueness issues the entire 676000-code domain
// and verifies no duplicates, then that the next call restarts the cycle
// with the very first code.
func TestGenerator_FullCycleUniqueness(t *testing.T) {
	codec := newAlphaNumCodec(t, 2, 3)
	gen, err := serial.New(codec, serial.Options{Seed: 123456, Multiplier: 261, Increment: 1})
	require.NoError(t, err)

	issued := make([]bool, gen.Domain())
	first := gen.Next()
	v, err := gen.Decode(first)
	require.NoError(t, err)
	issued[v] = true

	var i uint64
	for i = 1; i < gen.Domain(); i++ {
		v, err = gen.Decode(gen.Next())
		require.NoError(t, err)
		require.False(t, issued[v], "code index %d issued twice within one cycle", v)
		issued[v] = true
	}

	assert.Equal(t, first, gen.Next(), "the cycle must restart with the first code")
}

// TestGenerator_DerivedParameters exercises the automatic-derivation
// path over a 2600-code domain: one full cycle, no duplicates.
func TestGenerator_DerivedParameters(t *testing.T) {
	codec := newAlphaNumCodec(t, 1, 2)
	gen, err := serial.New(codec, serial.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, uint64(2600), gen.Domain())

	issued := make([]bool, gen.Domain())
	var i uint64
	for i = 0; i < gen.Domain(); i++ {
		v, err := gen.Decode(gen.Next())
		require.NoError(t, err)
		require.False(t, issued[v], "duplicate at step %d", i)
		issued[v] = true
	}
}

// TestGenerator_Determinism verifies two generators with identical
// options produce identical code streams.
func TestGenerator_Determinism(t *testing.T) {
	opts := serial.Options{Seed: 7}
	g1, err := serial.New(newAlphaNumCodec(t, 1, 2), opts)
	require.NoError(t, err)
	g2, err := serial.New(newAlphaNumCodec(t, 1, 2), opts)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		require.Equal(t, g1.Next(), g2.Next(), "streams diverged at step %d", i)
	}
}

// TestGenerator_DegenerateDomain verifies a one-code domain (a single
// base-1 position) returns the same code on every call indefinitely.
func TestGenerator_DegenerateDomain(t *testing.T) {
	codec, err := radix.New([]radix.Position{{Base: 1, Offset: 'X'}})
	require.NoError(t, err)
	gen, err := serial.New(codec, serial.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, uint64(1), gen.Domain())

	for i := 0; i < 10; i++ {
		assert.Equal(t, "X", gen.Next())
	}
}

// TestGenerator_DecodeValidation verifies Decode passes through the
// codec's sentinels and does not advance the cycle.
func TestGenerator_DecodeValidation(t *testing.T) {
	codec := newAlphaNumCodec(t, 2, 3)
	gen, err := serial.New(codec, serial.Options{Seed: 123456, Multiplier: 261, Increment: 1})
	require.NoError(t, err)

	_, err = gen.Decode("bogus!")
	assert.ErrorIs(t, err, radix.ErrCodeLength)
	_, err = gen.Decode("AB12x")
	assert.ErrorIs(t, err, radix.ErrBadSymbol)

	// Decoding must not have consumed any sequence state.
	assert.Equal(t, "RI017", gen.Next())
}

// TestNew_Rejections verifies construction failure modes: nil codec and
// invalid explicit parameters.
func TestNew_Rejections(t *testing.T) {
	_, err := serial.New(nil, serial.DefaultOptions())
	assert.ErrorIs(t, err, serial.ErrNilCodec)

	codec := newAlphaNumCodec(t, 2, 3)
	_, err = serial.New(codec, serial.Options{Multiplier: 2, Increment: 1})
	assert.ErrorIs(t, err, lcg.ErrBadMultiplier)
	_, err = serial.New(codec, serial.Options{Multiplier: 261, Increment: 26})
	assert.ErrorIs(t, err, lcg.ErrBadIncrement)
}

// TestGenerator_Params verifies the reproduction parameters are exposed.
func TestGenerator_Params(t *testing.T) {
	codec := newAlphaNumCodec(t, 2, 3)
	gen, err := serial.New(codec, serial.Options{Seed: 123456, Multiplier: 261, Increment: 1})
	require.NoError(t, err)

	a, c, m := gen.Params()
	assert.Equal(t, uint64(261), a)
	assert.Equal(t, uint64(1), c)
	assert.Equal(t, uint64(676000), m)
}
