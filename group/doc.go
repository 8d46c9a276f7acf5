// Package group defines abstract interfaces for the elliptic-curve
// backend of the primitives engine.
//
// This package provides three core interfaces that abstract over the
// operations needed by key derivation, ring signatures and multisig
// key combination:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency.
// Operations like Add, Mul, and ScalarMult set the receiver to the
// result and return it, allowing method chaining while minimizing
// allocations:
//
//	// Compute k - c*x
//	cx := g.NewScalar().Mul(c, x)
//	r := g.NewScalar().Sub(k, cx)
//
// All operations that can fail return errors rather than panicking,
// making error handling explicit and predictable.
//
// # Backends
//
// A [Group] implementation is a backend. The edwards package registers
// the portable pure-Go Ed25519 backend under [Portable]; a native-code
// backend may register itself under [Native] at process start. [Use]
// and [ForcePortable] switch between registered backends, and [Active]
// returns the backend in effect. Backend selection is one-time setup:
// it must complete before engine operations run concurrently.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Point and scalar operations over secret data are constant-time
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in SetBytes
package group
