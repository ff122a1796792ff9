// Package serial composes a full-period sequencer (lcg/) with a
// mixed-radix codec (radix/) into a ready-to-use unique-code generator:
// every call to Next returns a fresh code, and no code repeats until the
// whole domain has been issued.
//
// What:
//
//   - Generator owns one lcg.Sequencer and one radix.Codec; the codec's
//     domain size is the sequencer's modulus, so codes and residues are
//     in exact one-to-one correspondence by construction.
//   - Next returns codec.Encode(sequencer.Next()); Decode parses a code
//     back to its residue, usable to validate externally supplied codes.
//   - Options carries the seed and, optionally, explicit recurrence
//     parameters for reproducing a known sequence; zeroed parameters
//     mean "derive from the domain size".
//
// Why:
//
//   - Voucher/serial/license code issuing with a uniqueness guarantee
//     that costs O(1) time and O(1) memory per code — no database of
//     issued codes, no hash-set dedup, no precomputed shuffle.
//
// Complexity:
//
//   - Next: O(k) for k code positions (one small allocation: the code).
//   - New:  O(√N) (parameter derivation/validation).
//
// Errors:
//
//   - ErrNilCodec plus the lcg construction sentinels from New; Next
//     cannot fail after construction, Decode returns the radix sentinels.
//
// Concurrency:
//
//   - A Generator holds a single mutable residue with no internal
//     locking. Wrap Next in a mutex to share one instance across
//     goroutines; independent instances are fully parallel-safe.
//
// Not a goal: cryptographic unpredictability — anyone knowing the
// parameters can enumerate the sequence. Use the codes as identifiers,
// not as secrets.
package serial
