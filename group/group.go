package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as private keys, challenges and responses.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical 32-byte representation of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from a canonical byte encoding and
	// returns it. Returns ErrInvalidScalar if the data is not a reduced
	// scalar, or ErrEncoding if it has the wrong shape.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a cryptographic group, a point on an
// elliptic curve in compressed 32-byte encoding. Points are used as
// public keys, key derivations and key images.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// ScalarBaseMult sets the receiver to s*G and returns it.
	ScalarBaseMult(s Scalar) Point
	// VarTimeDoubleScalarBaseMult sets the receiver to a*A + b*G and
	// returns it. It is variable-time and must only be fed public data.
	VarTimeDoubleScalarBaseMult(a Scalar, A Point, b Scalar) Point
	// MulByCofactor sets the receiver to 8*p and returns it.
	MulByCofactor(p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the compressed 32-byte point encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a compressed point encoding and
	// returns it. Returns ErrInvalidPoint if the data does not decode
	// to a curve point, or ErrEncoding if it has the wrong shape.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group is the backend contract of the primitives engine. It provides
// factory methods for creating scalars and points, access to the
// group's generator, and the two deterministic hash maps every
// higher-level operation is built on.
//
// A Group implementation encapsulates all backend-specific details: the
// portable implementation in the edwards package and an optional
// native-code backend are interchangeable behind this interface.
type Group interface {
	// Name identifies the backend, e.g. "portable".
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a uniformly random canonical scalar.
	RandomScalar(r io.Reader) (Scalar, error)
	// HashToScalar hashes the input data to a scalar (Hs).
	HashToScalar(data ...[]byte) (Scalar, error)
	// HashToPoint hashes the input data to a torsion-free point (Hp).
	HashToPoint(data ...[]byte) (Point, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}
