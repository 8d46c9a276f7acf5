package ringsig

import (
	"errors"
	"fmt"
	"io"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/hashing"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/keys"
)

// ErrArityMismatch reports ring member and signature arrays of
// inconsistent length, or a signer index outside the ring.
var ErrArityMismatch = errors.New("ringsig: arity mismatch")

// Signature is one ring slot: a challenge and a response scalar.
type Signature struct {
	C group.Scalar
	R group.Scalar
}

// Generate produces a traceable ring signature over the ring of public
// keys: proof that the signer knows the private key of the ring member
// at secretIndex and that its key image is keyImage, without revealing
// the index. rand supplies the nonce and the decoy responses.
func Generate(prefixHash hashing.Hash, keyImage group.Point, publicKeys []group.Point, secret group.Scalar, secretIndex int, rand io.Reader) ([]Signature, error) {
	g := group.Active()

	k, err := g.RandomScalar(rand)
	if err != nil {
		return nil, err
	}
	sigs, c, err := walkRing(g, prefixHash, keyImage, publicKeys, secretIndex, k, rand)
	if err != nil {
		return nil, err
	}

	// Close the chain: r = k - c*x.
	cx := g.NewScalar().Mul(c, secret)
	sigs[secretIndex] = Signature{C: c, R: g.NewScalar().Sub(k, cx)}
	return sigs, nil
}

// Check verifies a traceable ring signature by recomputing the
// challenge chain from public data alone and testing that it closes.
// Any ring index could be the real signer; verification does not
// reveal which.
func Check(prefixHash hashing.Hash, keyImage group.Point, publicKeys []group.Point, sigs []Signature) bool {
	g := group.Active()
	n := len(publicKeys)
	if n == 0 || len(sigs) != n {
		return false
	}
	if keyImage == nil || keyImage.IsIdentity() {
		return false
	}
	for i := range sigs {
		if sigs[i].C == nil || sigs[i].R == nil {
			return false
		}
	}
	for i := 0; i < n; i++ {
		next, err := chainStep(g, prefixHash, keyImage, publicKeys[i], sigs[i])
		if err != nil {
			return false
		}
		if !next.Equal(sigs[(i+1)%n].C) {
			return false
		}
	}
	return true
}

// walkRing runs the challenge chain from the signer's slot around the
// ring with fresh decoy responses, returning the filled decoy slots and
// the challenge that lands back on the signer.
func walkRing(g group.Group, prefixHash hashing.Hash, keyImage group.Point, publicKeys []group.Point, secretIndex int, k group.Scalar, rand io.Reader) ([]Signature, group.Scalar, error) {
	n := len(publicKeys)
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty ring", ErrArityMismatch)
	}
	if secretIndex < 0 || secretIndex >= n {
		return nil, nil, fmt.Errorf("%w: signer index %d outside ring of %d", ErrArityMismatch, secretIndex, n)
	}

	// Start of the chain: L = k*G, R = k*Hp(P) at the signer's slot.
	hp, err := g.HashToPoint(publicKeys[secretIndex].Bytes())
	if err != nil {
		return nil, nil, err
	}
	L := g.NewPoint().ScalarBaseMult(k)
	R := g.NewPoint().ScalarMult(k, hp)
	c, err := challenge(g, prefixHash, keyImage, publicKeys[secretIndex], L, R)
	if err != nil {
		return nil, nil, err
	}

	sigs := make([]Signature, n)
	for step := 1; step < n; step++ {
		i := (secretIndex + step) % n
		r, err := g.RandomScalar(rand)
		if err != nil {
			return nil, nil, err
		}
		sigs[i] = Signature{C: c, R: r}
		c, err = chainStep(g, prefixHash, keyImage, publicKeys[i], sigs[i])
		if err != nil {
			return nil, nil, err
		}
	}
	return sigs, c, nil
}

// chainStep recomputes the commitments of one ring slot from its
// challenge and response and returns the next challenge:
// L = r*G + c*P, R = r*Hp(P) + c*I.
func chainStep(g group.Group, prefixHash hashing.Hash, keyImage group.Point, public group.Point, sig Signature) (group.Scalar, error) {
	L := g.NewPoint().VarTimeDoubleScalarBaseMult(sig.C, public, sig.R)

	hp, err := g.HashToPoint(public.Bytes())
	if err != nil {
		return nil, err
	}
	rh := g.NewPoint().ScalarMult(sig.R, hp)
	ci := g.NewPoint().ScalarMult(sig.C, keyImage)
	R := g.NewPoint().Add(rh, ci)

	return challenge(g, prefixHash, keyImage, public, L, R)
}

// challenge hashes one link of the chain:
// c = Hs(prefix || I || P || L || R).
func challenge(g group.Group, prefixHash hashing.Hash, keyImage, public, L, R group.Point) (group.Scalar, error) {
	return g.HashToScalar(prefixHash[:], keyImage.Bytes(), public.Bytes(), L.Bytes(), R.Bytes())
}

// GeneratePartialSigningKey scales a multisig secret share by the
// challenge of the signer's prepared slot: c * share. The partial keys
// of all participants combine in [Restore].
func GeneratePartialSigningKey(sig Signature, share group.Scalar) group.Scalar {
	return group.Active().NewScalar().Mul(sig.C, share)
}

// Restore rebuilds the signer's slot of a prepared ring signature from
// the partial signing keys of a multisig quorum:
// r = k - c*Hs(D, index) - sum(partials). All contributing parties'
// partial keys must be present; a strict subset yields a syntactically
// valid but non-verifying signature. Verification is the quorum check.
func Restore(derivation group.Point, outputIndex uint64, partialKeys []group.Scalar, secretIndex int, k group.Scalar, sigs []Signature) ([]Signature, error) {
	g := group.Active()
	if secretIndex < 0 || secretIndex >= len(sigs) {
		return nil, fmt.Errorf("%w: signer index %d outside ring of %d", ErrArityMismatch, secretIndex, len(sigs))
	}
	if len(partialKeys) == 0 {
		return nil, fmt.Errorf("%w: no partial signing keys", ErrArityMismatch)
	}

	ds, err := keys.DerivationToScalar(derivation, outputIndex)
	if err != nil {
		return nil, err
	}

	c := sigs[secretIndex].C
	sum := g.NewScalar().Mul(c, ds)
	for _, partial := range partialKeys {
		sum = g.NewScalar().Add(sum, partial)
	}

	out := make([]Signature, len(sigs))
	copy(out, sigs)
	out[secretIndex] = Signature{C: c, R: g.NewScalar().Sub(k, sum)}
	return out, nil
}
