package edwards

import (
	"fmt"
	"io"

	ed "filippo.io/edwards25519"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

// orderBytes is the Ed25519 subgroup order L, big-endian:
// 2^252 + 27742317777372353535851937790883648493.
var orderBytes = []byte{
	0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x14, 0xde, 0xf9, 0xde, 0xa2, 0xf7, 0x9c, 0xd6,
	0x58, 0x12, 0x63, 0x1a, 0x5c, 0xf5, 0xd3, 0xed,
}

func init() {
	group.Register(group.Portable, New())
}

// Scalar represents an element of the Ed25519 scalar field. It
// implements [group.Scalar] by wrapping edwards25519.Scalar, which
// keeps values reduced modulo L and operates in constant time.
type Scalar struct {
	inner ed.Scalar
}

func newScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod L) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(&aScalar.inner, &bScalar.inner)
	return s
}

// Sub sets s to a - b (mod L) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Subtract(&aScalar.inner, &bScalar.inner)
	return s
}

// Mul sets s to a * b (mod L) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Multiply(&aScalar.inner, &bScalar.inner)
	return s
}

// Negate sets s to -a (mod L) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Negate(&aScalar.inner)
	return s
}

// Invert sets s to a^(-1) (mod L) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, fmt.Errorf("%w: cannot invert zero scalar", group.ErrInvalidScalar)
	}
	s.inner.Invert(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// Bytes returns the canonical 32-byte little-endian scalar encoding.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a canonical 32-byte encoding and returns s.
// Non-canonical values (>= L) are rejected, matching checkScalar.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != group.EncodedSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", group.ErrEncoding, group.EncodedSize, len(data))
	}
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidScalar, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(&bScalar.inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	var zero ed.Scalar
	return s.inner.Equal(&zero) == 1
}

// Point represents a point on the Ed25519 curve. It implements
// [group.Point] by wrapping edwards25519.Point.
type Point struct {
	inner ed.Point
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Subtract(&aPoint.inner, &bPoint.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Negate(&aPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	p.inner.ScalarMult(&scalar.inner, &qPoint.inner)
	return p
}

// ScalarBaseMult sets p to s * G and returns p.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	scalar := s.(*Scalar)
	p.inner.ScalarBaseMult(&scalar.inner)
	return p
}

// VarTimeDoubleScalarBaseMult sets p to a*A + b*G and returns p.
func (p *Point) VarTimeDoubleScalarBaseMult(a group.Scalar, A group.Point, b group.Scalar) group.Point {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	APoint := A.(*Point)
	p.inner.VarTimeDoubleScalarBaseMult(&aScalar.inner, &APoint.inner, &bScalar.inner)
	return p
}

// MulByCofactor sets p to 8*q and returns p.
func (p *Point) MulByCofactor(q group.Point) group.Point {
	qPoint := q.(*Point)
	p.inner.MultByCofactor(&qPoint.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed 32-byte point encoding.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a compressed point encoding and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != group.EncodedSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", group.ErrEncoding, group.EncodedSize, len(data))
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidPoint, err)
	}
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(ed.NewIdentityPoint()) == 1
}

// Ed25519 implements [group.Group] on the Ed25519 curve in pure Go.
// This is the portable backend of the engine.
type Ed25519 struct{}

// New returns the portable Ed25519 backend.
func New() *Ed25519 {
	return &Ed25519{}
}

// Name identifies this backend.
func (g *Ed25519) Name() string { return group.Portable }

// NewScalar returns a new scalar initialized to zero.
func (g *Ed25519) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *Ed25519) NewPoint() group.Point {
	var p Point
	p.inner.Set(ed.NewIdentityPoint())
	return &p
}

// Generator returns the Ed25519 base point.
func (g *Ed25519) Generator() group.Point {
	var p Point
	p.inner.Set(ed.NewGeneratorPoint())
	return &p
}

// RandomScalar generates a uniformly random canonical scalar from the
// provided random source. 64 bytes are drawn and reduced modulo L so
// the result carries no modular bias.
func (g *Ed25519) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [64]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := newScalar()
	if _, err := s.inner.SetUniformBytes(buf[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// HashToScalar hashes the provided data to a scalar: the Keccak-256
// digest of the concatenated inputs is interpreted as a little-endian
// integer and reduced modulo L.
func (g *Ed25519) HashToScalar(data ...[]byte) (group.Scalar, error) {
	h := keccak256(data...)

	// Widen to 64 bytes so SetUniformBytes performs the mod-L
	// reduction of the 256-bit digest.
	var wide [64]byte
	copy(wide[:32], h[:])

	s := newScalar()
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		return nil, err
	}
	return s, nil
}

// Order returns the order of the Ed25519 prime-order subgroup as a
// big-endian byte slice.
func (g *Ed25519) Order() []byte {
	out := make([]byte, len(orderBytes))
	copy(out, orderBytes)
	return out
}
