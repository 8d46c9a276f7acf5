package multisig

import (
	"errors"
	"fmt"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/keys"
)

// ErrNoKeys reports an empty key set where at least one key is needed.
var ErrNoKeys = errors.New("multisig: at least one key required")

// CalculateSharedPublicKey aggregates the public key shares of all
// participants into the shared public key by point addition. The
// result is independent of the order of the shares.
func CalculateSharedPublicKey(publicKeys []group.Point) (group.Point, error) {
	if len(publicKeys) == 0 {
		return nil, ErrNoKeys
	}
	g := group.Active()
	sum := g.NewPoint()
	for i, pk := range publicKeys {
		if pk == nil {
			return nil, fmt.Errorf("%w: nil public key at %d", group.ErrInvalidPoint, i)
		}
		sum = g.NewPoint().Add(sum, pk)
	}
	return sum, nil
}

// CalculateSharedPrivateKey aggregates secret key shares into the
// shared private key by modular addition, order-independently.
func CalculateSharedPrivateKey(secretKeys []group.Scalar) (group.Scalar, error) {
	if len(secretKeys) == 0 {
		return nil, ErrNoKeys
	}
	g := group.Active()
	sum := g.NewScalar()
	for i, sk := range secretKeys {
		if sk == nil {
			return nil, fmt.Errorf("%w: nil secret key at %d", group.ErrInvalidScalar, i)
		}
		sum = g.NewScalar().Add(sum, sk)
	}
	return sum, nil
}

// CalculateMultisigPrivateKeys derives the (N-1)/N secret shares of a
// participant: one per counterparty, as the hash of the ECDH point
// Hs(8 * ownSecret * otherPublic). Both endpoints of a pair derive the
// same share, so every share is held by exactly two participants.
func CalculateMultisigPrivateKeys(ownSecret group.Scalar, otherPublics []group.Point) ([]group.Scalar, error) {
	if len(otherPublics) == 0 {
		return nil, ErrNoKeys
	}
	g := group.Active()
	shares := make([]group.Scalar, len(otherPublics))
	for i, pub := range otherPublics {
		if pub == nil {
			return nil, fmt.Errorf("%w: nil public key at %d", group.ErrInvalidPoint, i)
		}
		ecdh, err := keys.GenerateKeyDerivation(pub, ownSecret)
		if err != nil {
			return nil, err
		}
		share, err := g.HashToScalar(ecdh.Bytes())
		if err != nil {
			return nil, err
		}
		shares[i] = share
	}
	return shares, nil
}

// RestoreKeyImage rebuilds the full key image of a one-time output key
// from the partial key images of all participants:
// I = Hs(D, index)*Hp(P) + sum(partials). The contributing set must be
// complete; a strict subset silently produces a key image that does
// not match, rather than an error.
func RestoreKeyImage(publicEphemeral group.Point, derivation group.Point, outputIndex uint64, partialKeyImages []group.Point) (group.Point, error) {
	if len(partialKeyImages) == 0 {
		return nil, ErrNoKeys
	}
	g := group.Active()

	ds, err := keys.DerivationToScalar(derivation, outputIndex)
	if err != nil {
		return nil, err
	}
	base, err := keys.GenerateKeyImage(publicEphemeral, ds)
	if err != nil {
		return nil, err
	}

	sum := base
	for i, partial := range partialKeyImages {
		if partial == nil {
			return nil, fmt.Errorf("%w: nil key image at %d", group.ErrInvalidPoint, i)
		}
		sum = g.NewPoint().Add(sum, partial)
	}
	return sum, nil
}
