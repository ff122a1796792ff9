package serial

import (
	"github.com/katalvlaran/fullcycle/lcg"
	"github.com/katalvlaran/fullcycle/radix"
)

// New builds a Generator over codec's domain. With zero Multiplier and
// Increment the recurrence parameters are derived from the domain size;
// otherwise the explicit pair is validated against the full-period
// conditions. The binding invariant ∏ bases = N holds by construction:
// the sequencer's modulus is taken from the codec itself.
//
// Returns ErrNilCodec or an lcg construction sentinel; a Generator is
// never partially constructed.
//
// Complexity: O(√N) construction, O(1) memory.
func New(codec *radix.Codec, opts Options) (*Generator, error) {
	if codec == nil {
		return nil, ErrNilCodec
	}

	var (
		seq *lcg.Sequencer
		err error
	)
	if opts.Multiplier == 0 && opts.Increment == 0 {
		seq, err = lcg.New(codec.Domain(), opts.Seed)
	} else {
		seq, err = lcg.NewExplicit(opts.Multiplier, opts.Increment, codec.Domain(), opts.Seed)
	}
	if err != nil {
		return nil, err
	}

	return &Generator{seq: seq, codec: codec}, nil
}

// Next issues the next code. Within one cycle of Domain() calls every
// code is issued exactly once; the call after a full cycle restarts the
// identical order. Next cannot fail: the sequencer's residue is always
// inside the codec's domain.
//
// Complexity: O(k) for k code positions.
func (g *Generator) Next() string {
	// Encode cannot error here: residue < modulus = codec domain.
	code, _ := g.codec.Encode(g.seq.Next())

	return code
}

// Decode parses a code back to its integer index in [0, Domain()),
// validating shape and per-position alphabets. It is independent of the
// generator's cycle position and never advances it — use it to check
// externally supplied codes.
//
// Complexity: O(k) for k code positions.
func (g *Generator) Decode(code string) (uint64, error) {
	return g.codec.Decode(code)
}

// Domain returns N, the number of distinct codes in one full cycle.
//
// Complexity: O(1).
func (g *Generator) Domain() uint64 {
	return g.codec.Domain()
}

// Params returns the underlying recurrence parameters (a, c, m) —
// everything needed, together with the seed, to reproduce the sequence.
//
// Complexity: O(1).
func (g *Generator) Params() (a, c, m uint64) {
	return g.seq.Params()
}
