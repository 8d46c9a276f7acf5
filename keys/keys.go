package keys

import (
	"errors"
	"io"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"

	// Link the portable backend so the engine works without setup.
	_ "github.com/NinjaCoin-Master/ninjacoin-crypto/edwards"
)

// KeyPair holds a private scalar and its public point, with the
// invariant Public = Secret * G. Pairs are immutable once produced.
type KeyPair struct {
	Secret group.Scalar
	Public group.Point
}

// GenerateKeys draws a uniformly random canonical scalar from r and
// returns the resulting key pair.
func GenerateKeys(r io.Reader) (*KeyPair, error) {
	g := group.Active()
	secret, err := g.RandomScalar(r)
	if err != nil {
		return nil, err
	}
	return &KeyPair{
		Secret: secret,
		Public: g.NewPoint().ScalarBaseMult(secret),
	}, nil
}

// SecretKeyToPublicKey computes P = s * G.
func SecretKeyToPublicKey(secret group.Scalar) group.Point {
	return group.Active().NewPoint().ScalarBaseMult(secret)
}

// CheckKey reports whether the encoded public key decodes to a valid,
// non-identity, torsion-free curve point. Malformed hex shape is a
// decode failure, returned as an error distinct from the boolean
// validity result.
func CheckKey(encoded string) (bool, error) {
	g := group.Active()
	p, err := group.PointFromHex(g, encoded)
	if err != nil {
		if errors.Is(err, group.ErrEncoding) {
			return false, err
		}
		return false, nil
	}
	if p.IsIdentity() {
		return false, nil
	}
	// Reject small-order and mixed-order points: clearing the cofactor
	// must not collapse the point to the identity.
	if g.NewPoint().MulByCofactor(p).IsIdentity() {
		return false, nil
	}
	return true, nil
}

// CheckScalar reports whether the encoded value is a canonical scalar
// in [0, L). Malformed hex shape is a decode failure, returned as an
// error distinct from the boolean validity result.
func CheckScalar(encoded string) (bool, error) {
	g := group.Active()
	if _, err := group.ScalarFromHex(g, encoded); err != nil {
		if errors.Is(err, group.ErrEncoding) {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

// GenerateKeyImage computes the key image x * Hp(P) binding the
// one-time public key to its private key.
func GenerateKeyImage(public group.Point, secret group.Scalar) (group.Point, error) {
	g := group.Active()
	hp, err := g.HashToPoint(public.Bytes())
	if err != nil {
		return nil, err
	}
	return g.NewPoint().ScalarMult(secret, hp), nil
}

// GenerateDeterministicSubwalletKeys expands a base secret key into the
// subwallet key pair at the given index. Index 0 returns the base pair
// unchanged; index n > 0 derives the secret as Hs(base || varint(n)).
// The expansion is a pure function of its inputs: the same base and
// index always reproduce the same subwallet keys.
func GenerateDeterministicSubwalletKeys(baseSecret group.Scalar, index uint64) (*KeyPair, error) {
	g := group.Active()
	secret := g.NewScalar().Set(baseSecret)
	if index > 0 {
		derived, err := g.HashToScalar(baseSecret.Bytes(), uvarint(index))
		if err != nil {
			return nil, err
		}
		secret = derived
	}
	return &KeyPair{
		Secret: secret,
		Public: g.NewPoint().ScalarBaseMult(secret),
	}, nil
}
