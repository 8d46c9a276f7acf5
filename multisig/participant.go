package multisig

import (
	"errors"
	"fmt"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/keys"
)

// Scheme selects the wallet layout a ceremony produces.
type Scheme int

const (
	// NofN wallets need every participant to sign. The shared keys are
	// plain sums of the participants' own keys.
	NofN Scheme = iota + 1

	// NMinus1ofN wallets tolerate one missing signer. Every unordered
	// pair of participants derives one shared secret via ECDH, so each
	// secret share is held by exactly two parties.
	NMinus1ofN
)

// Result contains the output of a completed key-exchange ceremony.
type Result struct {
	// SharedPublicKey is the wallet's public spend key, identical for
	// all participants.
	SharedPublicKey group.Point

	// SecretShares are this participant's signing shares: the own
	// secret for N/N, one derived share per counterparty for (N-1)/N.
	SecretShares []group.Scalar
}

// Round1Result contains the messages a participant produces after
// processing round 1.
type Round1Result struct {
	// ShareImages are the public images of this participant's derived
	// secret shares. They must be broadcast to all other participants.
	// Empty for N/N ceremonies, which finish after round 1.
	ShareImages []group.Point
}

// Participant manages one party's state through a multisig key-exchange
// ceremony. Create instances with [NewParticipant]; the methods must be
// called in round order.
type Participant struct {
	scheme Scheme
	total  int
	pair   *keys.KeyPair

	otherPublics []group.Point
	shares       []group.Scalar
	images       map[string]group.Point
	round1Done   bool
	round2Seen   int
}

// NewParticipant creates a participant for a ceremony with total
// parties. The key pair's secret stays local; only public material is
// exchanged.
func NewParticipant(scheme Scheme, total int, pair *keys.KeyPair) (*Participant, error) {
	if scheme != NofN && scheme != NMinus1ofN {
		return nil, fmt.Errorf("multisig: unknown scheme %d", scheme)
	}
	if total < 2 {
		return nil, fmt.Errorf("multisig: need at least 2 participants, got %d", total)
	}
	if pair == nil || pair.Secret == nil || pair.Public == nil {
		return nil, errors.New("multisig: incomplete key pair")
	}
	return &Participant{
		scheme: scheme,
		total:  total,
		pair:   pair,
		images: make(map[string]group.Point),
	}, nil
}

// Round1Broadcast returns this participant's public spend key, to be
// sent to every other participant.
func (p *Participant) Round1Broadcast() group.Point {
	return p.pair.Public
}

// ProcessRound1 consumes the public spend keys of all other
// participants. For N/N the ceremony is complete afterwards; for
// (N-1)/N the returned share images must be broadcast and every other
// participant's images fed to [Participant.ProcessRound2].
func (p *Participant) ProcessRound1(otherPublics []group.Point) (*Round1Result, error) {
	if p.round1Done {
		return nil, errors.New("multisig: round 1 already processed")
	}
	if len(otherPublics) != p.total-1 {
		return nil, fmt.Errorf("multisig: expected %d public keys, got %d", p.total-1, len(otherPublics))
	}
	for i, pub := range otherPublics {
		if pub == nil {
			return nil, fmt.Errorf("%w: nil public key at %d", group.ErrInvalidPoint, i)
		}
	}
	p.otherPublics = otherPublics

	if p.scheme == NofN {
		p.shares = []group.Scalar{p.pair.Secret}
		p.round1Done = true
		return &Round1Result{}, nil
	}

	shares, err := CalculateMultisigPrivateKeys(p.pair.Secret, otherPublics)
	if err != nil {
		return nil, err
	}
	p.shares = shares

	g := group.Active()
	out := make([]group.Point, len(shares))
	for i, share := range shares {
		img := g.NewPoint().ScalarBaseMult(share)
		out[i] = img
		p.images[string(img.Bytes())] = img
	}
	p.round1Done = true
	return &Round1Result{ShareImages: out}, nil
}

// ProcessRound2 consumes one counterparty's share images from a
// (N-1)/N ceremony. Each unordered pair derives the same share, so
// duplicates across senders collapse.
func (p *Participant) ProcessRound2(shareImages []group.Point) error {
	if p.scheme != NMinus1ofN {
		return errors.New("multisig: round 2 only applies to (N-1)/N ceremonies")
	}
	if !p.round1Done {
		return errors.New("multisig: must process round 1 before round 2")
	}
	if p.round2Seen >= p.total-1 {
		return errors.New("multisig: round 2 already complete")
	}
	if len(shareImages) != p.total-1 {
		return fmt.Errorf("multisig: expected %d share images, got %d", p.total-1, len(shareImages))
	}
	for i, img := range shareImages {
		if img == nil {
			return fmt.Errorf("%w: nil share image at %d", group.ErrInvalidPoint, i)
		}
		p.images[string(img.Bytes())] = img
	}
	p.round2Seen++
	return nil
}

// Finalize computes the ceremony result once all rounds are processed.
func (p *Participant) Finalize() (*Result, error) {
	if !p.round1Done {
		return nil, errors.New("multisig: round 1 not processed")
	}

	if p.scheme == NofN {
		all := append([]group.Point{p.pair.Public}, p.otherPublics...)
		shared, err := CalculateSharedPublicKey(all)
		if err != nil {
			return nil, err
		}
		return &Result{SharedPublicKey: shared, SecretShares: p.shares}, nil
	}

	if p.round2Seen != p.total-1 {
		return nil, fmt.Errorf("multisig: round 2 incomplete, %d of %d received", p.round2Seen, p.total-1)
	}
	distinct := make([]group.Point, 0, len(p.images))
	for _, img := range p.images {
		distinct = append(distinct, img)
	}
	shared, err := CalculateSharedPublicKey(distinct)
	if err != nil {
		return nil, err
	}
	return &Result{SharedPublicKey: shared, SecretShares: p.shares}, nil
}
