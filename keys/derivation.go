package keys

import (
	"encoding/binary"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

// uvarint encodes an output index the way CryptoNote serializes
// integers into hash preimages.
func uvarint(v uint64) []byte {
	return binary.AppendUvarint(nil, v)
}

// GenerateKeyDerivation computes the ECDH-style shared secret
// D = 8 * (viewSecret * txPublic) for a transaction.
func GenerateKeyDerivation(txPublic group.Point, viewSecret group.Scalar) (group.Point, error) {
	g := group.Active()
	shared := g.NewPoint().ScalarMult(viewSecret, txPublic)
	return shared.MulByCofactor(shared), nil
}

// DerivationToScalar hashes a key derivation and an output index to the
// derivation scalar Hs(D || varint(index)).
func DerivationToScalar(derivation group.Point, outputIndex uint64) (group.Scalar, error) {
	return group.Active().HashToScalar(derivation.Bytes(), uvarint(outputIndex))
}

// GenerateKeyDerivationScalar computes Hs(D, index) directly from the
// transaction public key and view secret, skipping the intermediate
// derivation value for callers that only need the scalar.
func GenerateKeyDerivationScalar(txPublic group.Point, viewSecret group.Scalar, outputIndex uint64) (group.Scalar, error) {
	derivation, err := GenerateKeyDerivation(txPublic, viewSecret)
	if err != nil {
		return nil, err
	}
	return DerivationToScalar(derivation, outputIndex)
}

// DerivePublicKey computes the one-time output key
// P = base + Hs(D, index) * G.
func DerivePublicKey(derivation group.Point, outputIndex uint64, basePublic group.Point) (group.Point, error) {
	scalar, err := DerivationToScalar(derivation, outputIndex)
	if err != nil {
		return nil, err
	}
	return ScalarDerivePublicKey(scalar, basePublic), nil
}

// UnderivePublicKey recovers the base public key from a derived one by
// subtracting Hs(D, index) * G. This is algebraic inversion, not a
// search: it always returns a point, which is meaningless unless the
// derived key really was produced from this derivation and index.
// Callers needing certainty must verify the result separately.
func UnderivePublicKey(derivation group.Point, outputIndex uint64, derivedPublic group.Point) (group.Point, error) {
	g := group.Active()
	scalar, err := DerivationToScalar(derivation, outputIndex)
	if err != nil {
		return nil, err
	}
	sg := g.NewPoint().ScalarBaseMult(scalar)
	return g.NewPoint().Sub(derivedPublic, sg), nil
}

// DeriveSecretKey computes the one-time output secret
// x = base + Hs(D, index) mod L.
func DeriveSecretKey(derivation group.Point, outputIndex uint64, baseSecret group.Scalar) (group.Scalar, error) {
	scalar, err := DerivationToScalar(derivation, outputIndex)
	if err != nil {
		return nil, err
	}
	return ScalarDeriveSecretKey(scalar, baseSecret), nil
}

// ScalarDerivePublicKey applies a precomputed derivation scalar:
// P = base + scalar * G.
func ScalarDerivePublicKey(scalar group.Scalar, basePublic group.Point) group.Point {
	g := group.Active()
	sg := g.NewPoint().ScalarBaseMult(scalar)
	return g.NewPoint().Add(basePublic, sg)
}

// ScalarDeriveSecretKey applies a precomputed derivation scalar:
// x = base + scalar mod L.
func ScalarDeriveSecretKey(scalar group.Scalar, baseSecret group.Scalar) group.Scalar {
	return group.Active().NewScalar().Add(baseSecret, scalar)
}
