// Package edwards provides the portable, pure-Go Ed25519
// implementation of the [group.Group] interface.
//
// Ed25519 is the twisted Edwards curve every CryptoNote-family coin
// fixes on the wire: scalars and compressed points are 32 bytes. This
// package wraps filippo.io/edwards25519, providing a clean interface
// that satisfies [group.Group], [group.Scalar], and [group.Point].
//
// # Hash maps
//
// Besides the arithmetic, the backend supplies the two deterministic
// hash maps the engine is built on:
//
//   - HashToScalar: legacy Keccak-256, interpreted little-endian and
//     reduced modulo the subgroup order L.
//   - HashToPoint: legacy Keccak-256, mapped to the curve with an
//     Elligator 2 construction and multiplied by the cofactor so key
//     images always land in the prime-order subgroup.
//
// # Backend registration
//
// Importing this package registers the backend under [group.Portable]
// and, if it is the first registration, makes it the active backend.
// Higher-level packages (keys, ringsig, multisig) link it by import,
// so callers get a working engine without any setup.
//
// # Security
//
// This implementation relies on filippo.io/edwards25519 for the
// underlying curve arithmetic, which is constant-time with respect to
// secret scalars: no branching on secret bits and no secret-indexed
// table lookups. The variable-time double-scalar multiplication is
// only reachable through [group.Point.VarTimeDoubleScalarBaseMult],
// which the engine feeds public data exclusively.
package edwards
