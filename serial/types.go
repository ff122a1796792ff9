// Package serial defines the Generator type, its Options, and sentinel
// errors for the serial subpackage of github.com/katalvlaran/fullcycle.
package serial

import (
	"errors"

	"github.com/katalvlaran/fullcycle/lcg"
	"github.com/katalvlaran/fullcycle/radix"
)

// ErrNilCodec indicates New was called without a codec.
var ErrNilCodec = errors.New("serial: codec must not be nil")

// defaultSeed is the fixed "zero" seed used by DefaultOptions. The value
// is arbitrary but stable to keep reproducible defaults.
const defaultSeed uint64 = 1

// Options configures a Generator.
//
// Multiplier and Increment both zero selects automatic derivation from
// the codec's domain size; any other combination is passed to
// lcg.NewExplicit verbatim and validated there. (Increment 0 with a
// non-zero Multiplier is never a full-period configuration, so the zero
// Options value cannot silently mean something else.)
type Options struct {
	// Seed is the starting residue; any value is accepted and reduced
	// mod the domain size. It shifts the starting point within the
	// cycle, never the set of codes issued.
	Seed uint64
	// Multiplier is the explicit recurrence multiplier a; zero together
	// with a zero Increment selects derivation.
	Multiplier uint64
	// Increment is the explicit recurrence increment c; zero together
	// with a zero Multiplier selects derivation.
	Increment uint64
}

// DefaultOptions returns the reproducible default configuration:
// derived parameters and the fixed default seed.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Seed: defaultSeed}
}

// Generator issues every code of its codec's domain exactly once per
// cycle, in pseudorandom-looking order. Build instances with New; the
// zero value is not usable.
type Generator struct {
	seq   *lcg.Sequencer
	codec *radix.Codec
}
