// Package hashing implements the hash family of the primitives engine:
// the fast Keccak-256 hash, the CryptoNight memory-hard family, and the
// Argon2id-based Chukwa family.
//
// # Fast hash
//
// [FastHash] is the legacy (pre-NIST padding) Keccak-256 digest used
// everywhere a cheap hash is needed: transaction prefix hashes, Merkle
// tree nodes, hash-to-scalar preimages.
//
// # CryptoNight family
//
// [SlowHash], [LiteSlowHash], [DarkSlowHash] and [TurtleSlowHash] are
// the same sequential-memory-hard construction at four scratchpad
// sizes (2 MB, 1 MB, 512 KB, 256 KB), each in three revisions selected
// by [Variant]. The construction seeds a scratchpad from a Keccak-1600
// state with AES rounds, mixes it with a long dependent chain of reads
// and writes, folds the scratchpad back into the state, and finalizes
// with one of BLAKE-256, Groestl-256, JH-256 or Skein-512-256 selected
// by the final state. Variant 1 requires at least 43 input bytes.
//
// # Chukwa family
//
// [ChukwaSlowHash] and [ChukwaSlowHashV2] are fixed parameterizations
// of [ChukwaSlowHashBase], which exposes the Argon2id pass count,
// memory size and lane count directly. Invalid parameter combinations
// fail with [ErrUnsupportedParameters]; they are never clamped.
//
// # Overrides
//
// A caller may substitute its own implementation for any named hash
// with [RegisterOverride], used for testing or to plug in a native
// backend. Installation is one-time, single-threaded setup; after
// that, concurrent use of all entry points is safe. Every hash here is
// a pure function of its input and parameters, so independent calls
// may run fully in parallel.
package hashing
