package ringsig

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/hashing"
)

// Prepared is the intermediate signing state produced before the
// signer's secret is known: the decoy slots of the chain plus the
// nonce that started it. The secret holder, or a multisig quorum,
// finishes it with [Complete] or [Restore].
//
// The nonce is secret material: whoever holds it together with the
// finished signature can recover the signing key. Treat a serialized
// Prepared like a private key.
type Prepared struct {
	Nonce      group.Scalar
	Signatures []Signature
}

// Prepare runs ring signature generation without the signer's secret
// key: the decoy slots are filled and the signer's slot carries its
// final challenge with a zero response placeholder. If k is nil a
// fresh nonce is drawn from rand; reusing a caller-supplied k across
// signatures is the caller's responsibility.
func Prepare(prefixHash hashing.Hash, keyImage group.Point, publicKeys []group.Point, secretIndex int, k group.Scalar, rand io.Reader) (*Prepared, error) {
	g := group.Active()

	if k == nil {
		fresh, err := g.RandomScalar(rand)
		if err != nil {
			return nil, err
		}
		k = fresh
	}

	sigs, c, err := walkRing(g, prefixHash, keyImage, publicKeys, secretIndex, k, rand)
	if err != nil {
		return nil, err
	}
	sigs[secretIndex] = Signature{C: c, R: g.NewScalar()}
	return &Prepared{Nonce: k, Signatures: sigs}, nil
}

// Complete fills the signer's slot of a prepared ring signature with
// the real secret key: r = k - c*x. The result verifies identically to
// a signature produced by [Generate].
func Complete(secret group.Scalar, secretIndex int, k group.Scalar, sigs []Signature) ([]Signature, error) {
	g := group.Active()
	if secretIndex < 0 || secretIndex >= len(sigs) {
		return nil, fmt.Errorf("%w: signer index %d outside ring of %d", ErrArityMismatch, secretIndex, len(sigs))
	}

	c := sigs[secretIndex].C
	cx := g.NewScalar().Mul(c, secret)

	out := make([]Signature, len(sigs))
	copy(out, sigs)
	out[secretIndex] = Signature{C: c, R: g.NewScalar().Sub(k, cx)}
	return out, nil
}

type preparedWire struct {
	Nonce      []byte   `cbor:"1,keyasint"`
	Signatures [][]byte `cbor:"2,keyasint"`
}

// MarshalBinary serializes the prepared state with CBOR so a
// coordinator can hand it to the secret holder or a multisig quorum.
func (p *Prepared) MarshalBinary() ([]byte, error) {
	w := preparedWire{
		Nonce:      p.Nonce.Bytes(),
		Signatures: make([][]byte, len(p.Signatures)),
	}
	for i, sig := range p.Signatures {
		buf := make([]byte, 0, 2*group.EncodedSize)
		buf = append(buf, sig.C.Bytes()...)
		buf = append(buf, sig.R.Bytes()...)
		w.Signatures[i] = buf
	}
	return cbor.Marshal(w)
}

// UnmarshalBinary restores prepared state serialized by MarshalBinary,
// rebuilding scalars on the active backend.
func (p *Prepared) UnmarshalBinary(data []byte) error {
	var w preparedWire
	if err := cbor.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", group.ErrEncoding, err)
	}

	g := group.Active()
	nonce, err := g.NewScalar().SetBytes(w.Nonce)
	if err != nil {
		return err
	}

	sigs := make([]Signature, len(w.Signatures))
	for i, raw := range w.Signatures {
		if len(raw) != 2*group.EncodedSize {
			return fmt.Errorf("%w: signature slot %d has %d bytes", group.ErrEncoding, i, len(raw))
		}
		c, err := g.NewScalar().SetBytes(raw[:group.EncodedSize])
		if err != nil {
			return err
		}
		r, err := g.NewScalar().SetBytes(raw[group.EncodedSize:])
		if err != nil {
			return err
		}
		sigs[i] = Signature{C: c, R: r}
	}

	p.Nonce = nonce
	p.Signatures = sigs
	return nil
}
