package edwards

import (
	ed "filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
	"golang.org/x/crypto/sha3"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

// keccak256 is the legacy (pre-NIST padding) Keccak-256 used throughout
// CryptoNote for hashing to scalars and points.
func keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

// Curve25519 Montgomery constants used by the point mapping: the curve
// coefficient A and sqrt(-(A+2)), the birational map constant.
var (
	feOne  = new(field.Element).One()
	feA    = mustFeUint32(486662)
	feSqrt = mustSqrt(negAPlusTwo())
)

func mustFeUint32(v uint32) *field.Element {
	return new(field.Element).Mult32(feOne, v)
}

func negAPlusTwo() *field.Element {
	aPlus2 := mustFeUint32(486664)
	return new(field.Element).Negate(aPlus2)
}

func mustSqrt(v *field.Element) *field.Element {
	r, wasSquare := new(field.Element).SqrtRatio(v, feOne)
	if wasSquare != 1 {
		panic("edwards: map constant is not a square")
	}
	return r
}

// HashToPoint deterministically maps the input data to a torsion-free
// point: the Keccak-256 digest is interpreted as a field element and
// mapped onto Curve25519 with Elligator 2 (non-square 2), converted to
// Edwards coordinates, and multiplied by the cofactor 8. This is the
// hash-to-point construction key images are built on.
func (g *Ed25519) HashToPoint(data ...[]byte) (group.Point, error) {
	h := keccak256(data...)

	// SetBytes masks the high bit, so any 32-byte digest is a valid
	// field element.
	u, err := new(field.Element).SetBytes(h[:])
	if err != nil {
		return nil, err
	}

	// Elligator 2: x = -A / (1 + 2u^2). The denominator is never zero
	// because -1/2 is not a square mod p.
	rr := new(field.Element).Square(u)
	rr.Add(rr, rr)
	den := new(field.Element).Add(feOne, rr)
	x := new(field.Element).Multiply(feA, new(field.Element).Invert(den))
	x.Negate(x)

	v, ok := montgomeryRHSSqrt(x)
	if !ok {
		// Not on the curve; the other candidate -x - A always is.
		x.Negate(x)
		x.Subtract(x, feA)
		v, ok = montgomeryRHSSqrt(x)
		if !ok {
			// Unreachable for a valid Elligator input; keep the map
			// total by falling back to the generator.
			return g.NewPoint().MulByCofactor(g.Generator()), nil
		}
	}

	p, err := montgomeryToEdwards(x, v)
	if err != nil {
		return g.NewPoint().MulByCofactor(g.Generator()), nil
	}

	out := &Point{}
	out.inner.MultByCofactor(p)
	return out, nil
}

// montgomeryRHSSqrt returns the canonical square root of
// x^3 + A*x^2 + x and whether it is a square.
func montgomeryRHSSqrt(x *field.Element) (*field.Element, bool) {
	x2 := new(field.Element).Square(x)
	rhs := new(field.Element).Multiply(feA, x)
	rhs.Add(rhs, x2)
	rhs.Add(rhs, feOne)
	rhs.Multiply(rhs, x)
	root, wasSquare := new(field.Element).SqrtRatio(rhs, feOne)
	return root, wasSquare == 1
}

// montgomeryToEdwards converts an affine Curve25519 point (x, v) to its
// compressed Edwards encoding and decodes it:
// y = (x-1)/(x+1), X = sqrt(-(A+2)) * x / v.
func montgomeryToEdwards(x, v *field.Element) (*ed.Point, error) {
	xPlus1 := new(field.Element).Add(x, feOne)
	var zero field.Element
	if xPlus1.Equal(&zero) == 1 || v.Equal(&zero) == 1 {
		// x = -1 maps to the point at infinity; v = 0 to a 2-torsion
		// point. Both are cleared by the cofactor multiplication of
		// the caller, so map them to the identity encoding.
		return ed.NewIdentityPoint(), nil
	}

	y := new(field.Element).Subtract(x, feOne)
	y.Multiply(y, new(field.Element).Invert(xPlus1))

	edX := new(field.Element).Multiply(feSqrt, x)
	edX.Multiply(edX, new(field.Element).Invert(v))

	enc := y.Bytes()
	if edX.IsNegative() == 1 {
		enc[31] |= 0x80
	}
	return new(ed.Point).SetBytes(enc)
}
