// Package radix defines the Position/Codec types and sentinel errors
// for the radix subpackage of github.com/katalvlaran/fullcycle.
package radix

import "errors"

// MaxDomain is the largest supported code space (inclusive), aligned
// with lcg.MaxModulus so any Codec can feed or be fed by a Sequencer.
const MaxDomain uint64 = 1 << 32

// Sentinel errors for codec construction and use.
var (
	// ErrNoPositions indicates an empty position list; a code needs at
	// least one character.
	ErrNoPositions = errors.New("radix: position list must not be empty")
	// ErrBadBase indicates a position base < 1. Base 1 is legal: the
	// position always renders its offset symbol and encodes no value.
	ErrBadBase = errors.New("radix: position base must be at least 1")
	// ErrBadCount indicates a negative count passed to AlphaNum.
	ErrBadCount = errors.New("radix: position counts must be non-negative")
	// ErrDomainOverflow indicates the product of bases exceeds MaxDomain.
	ErrDomainOverflow = errors.New("radix: product of bases must not exceed 1<<32")
	// ErrValueRange indicates Encode was called with a value ≥ N.
	ErrValueRange = errors.New("radix: value outside the code domain")
	// ErrCodeLength indicates Decode input does not match the configured
	// number of positions.
	ErrCodeLength = errors.New("radix: code length does not match the configured shape")
	// ErrBadSymbol indicates a Decode input symbol outside its position's
	// alphabet.
	ErrBadSymbol = errors.New("radix: symbol outside its position's alphabet")
)

// Position describes one character of the code shape: an alphabet of
// Base consecutive symbols starting at Offset. The position holding
// digit value d renders as Offset + d.
type Position struct {
	// Base is the alphabet size; digit values run over [0, Base).
	Base int
	// Offset is the symbol representing digit value 0 ('A', '0', …).
	Offset rune
}

// Codec is an immutable mixed-radix code shape. The position list is
// ordered most-significant first and the product of all bases is the
// domain size N: Encode and Decode form a bijection between [0, N) and
// the set of well-formed codes.
type Codec struct {
	positions []Position // most-significant first; private copy
	domain    uint64     // ∏ positions[i].Base
}
