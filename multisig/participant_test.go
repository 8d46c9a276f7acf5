package multisig

import (
	"testing"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
	"github.com/NinjaCoin-Master/ninjacoin-crypto/keys"
)

// runCeremony drives a full key exchange between n participants over
// in-memory channels and returns each participant's result.
func runCeremony(t *testing.T, scheme Scheme, pairs []*keys.KeyPair) []*Result {
	t.Helper()
	n := len(pairs)

	participants := make([]*Participant, n)
	for i, pair := range pairs {
		p, err := NewParticipant(scheme, n, pair)
		if err != nil {
			t.Fatalf("NewParticipant(%d): %v", i, err)
		}
		participants[i] = p
	}

	broadcasts := make([]group.Point, n)
	for i, p := range participants {
		broadcasts[i] = p.Round1Broadcast()
	}

	round1 := make([]*Round1Result, n)
	for i, p := range participants {
		others := make([]group.Point, 0, n-1)
		for j, b := range broadcasts {
			if j != i {
				others = append(others, b)
			}
		}
		out, err := p.ProcessRound1(others)
		if err != nil {
			t.Fatalf("ProcessRound1(%d): %v", i, err)
		}
		round1[i] = out
	}

	if scheme == NMinus1ofN {
		for i, p := range participants {
			for j, out := range round1 {
				if j == i {
					continue
				}
				if err := p.ProcessRound2(out.ShareImages); err != nil {
					t.Fatalf("ProcessRound2(%d from %d): %v", i, j, err)
				}
			}
		}
	}

	results := make([]*Result, n)
	for i, p := range participants {
		r, err := p.Finalize()
		if err != nil {
			t.Fatalf("Finalize(%d): %v", i, err)
		}
		results[i] = r
	}
	return results
}

func TestParticipantNofN(t *testing.T) {
	pairs := []*keys.KeyPair{mustKeyPair(t), mustKeyPair(t), mustKeyPair(t)}
	results := runCeremony(t, NofN, pairs)

	t.Run("all parties agree on the shared key", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			if !results[i].SharedPublicKey.Equal(results[0].SharedPublicKey) {
				t.Fatalf("party %d disagrees on the shared public key", i)
			}
		}
	})

	t.Run("shared key is the sum of all parties", func(t *testing.T) {
		want, err := CalculateSharedPublicKey([]group.Point{
			pairs[0].Public, pairs[1].Public, pairs[2].Public,
		})
		if err != nil {
			t.Fatalf("CalculateSharedPublicKey: %v", err)
		}
		if !results[0].SharedPublicKey.Equal(want) {
			t.Fatal("ceremony result differs from direct aggregation")
		}
	})

	t.Run("each party keeps its own secret", func(t *testing.T) {
		for i, r := range results {
			if len(r.SecretShares) != 1 || !r.SecretShares[0].Equal(pairs[i].Secret) {
				t.Fatalf("party %d secret shares are not its own key", i)
			}
		}
	})
}

func TestParticipantNMinus1ofN(t *testing.T) {
	pairs := []*keys.KeyPair{mustKeyPair(t), mustKeyPair(t), mustKeyPair(t)}
	results := runCeremony(t, NMinus1ofN, pairs)

	t.Run("all parties agree on the shared key", func(t *testing.T) {
		for i := 1; i < len(results); i++ {
			if !results[i].SharedPublicKey.Equal(results[0].SharedPublicKey) {
				t.Fatalf("party %d disagrees on the shared public key", i)
			}
		}
	})

	t.Run("each party holds one share per counterparty", func(t *testing.T) {
		for i, r := range results {
			if len(r.SecretShares) != len(pairs)-1 {
				t.Fatalf("party %d holds %d shares", i, len(r.SecretShares))
			}
		}
	})

	t.Run("distinct shares open the shared key", func(t *testing.T) {
		// Collect the distinct pairwise shares across all parties; their
		// sum is the shared secret.
		distinct := make(map[string]group.Scalar)
		for _, r := range results {
			for _, s := range r.SecretShares {
				distinct[group.ToHex(s.Bytes())] = s
			}
		}
		if len(distinct) != 3 {
			t.Fatalf("3 parties produced %d distinct shares, want 3", len(distinct))
		}
		all := make([]group.Scalar, 0, len(distinct))
		for _, s := range distinct {
			all = append(all, s)
		}
		sharedSecret, err := CalculateSharedPrivateKey(all)
		if err != nil {
			t.Fatalf("CalculateSharedPrivateKey: %v", err)
		}
		if !keys.SecretKeyToPublicKey(sharedSecret).Equal(results[0].SharedPublicKey) {
			t.Fatal("share sum does not open the shared public key")
		}
	})

	t.Run("any two parties cover all shares", func(t *testing.T) {
		covered := make(map[string]struct{})
		for _, r := range results[:2] {
			for _, s := range r.SecretShares {
				covered[group.ToHex(s.Bytes())] = struct{}{}
			}
		}
		if len(covered) != 3 {
			t.Fatalf("two parties cover %d of 3 shares", len(covered))
		}
	})
}

func TestParticipantErrors(t *testing.T) {
	pair := mustKeyPair(t)

	t.Run("bad construction", func(t *testing.T) {
		if _, err := NewParticipant(Scheme(0), 2, pair); err == nil {
			t.Fatal("accepted an unknown scheme")
		}
		if _, err := NewParticipant(NofN, 1, pair); err == nil {
			t.Fatal("accepted a single-party ceremony")
		}
		if _, err := NewParticipant(NofN, 2, nil); err == nil {
			t.Fatal("accepted a nil key pair")
		}
	})

	t.Run("round order enforced", func(t *testing.T) {
		p, err := NewParticipant(NMinus1ofN, 2, pair)
		if err != nil {
			t.Fatalf("NewParticipant: %v", err)
		}
		if err := p.ProcessRound2([]group.Point{mustKeyPair(t).Public}); err == nil {
			t.Fatal("round 2 accepted before round 1")
		}
		if _, err := p.Finalize(); err == nil {
			t.Fatal("finalized before round 1")
		}

		other := mustKeyPair(t)
		if _, err := p.ProcessRound1([]group.Point{other.Public}); err != nil {
			t.Fatalf("ProcessRound1: %v", err)
		}
		if _, err := p.ProcessRound1([]group.Point{other.Public}); err == nil {
			t.Fatal("round 1 accepted twice")
		}
		if _, err := p.Finalize(); err == nil {
			t.Fatal("finalized with round 2 incomplete")
		}
	})

	t.Run("wrong message counts", func(t *testing.T) {
		p, err := NewParticipant(NofN, 3, pair)
		if err != nil {
			t.Fatalf("NewParticipant: %v", err)
		}
		if _, err := p.ProcessRound1([]group.Point{mustKeyPair(t).Public}); err == nil {
			t.Fatal("accepted too few round 1 messages")
		}
	})

	t.Run("round 2 rejected for NofN", func(t *testing.T) {
		p, err := NewParticipant(NofN, 2, pair)
		if err != nil {
			t.Fatalf("NewParticipant: %v", err)
		}
		if _, err := p.ProcessRound1([]group.Point{mustKeyPair(t).Public}); err != nil {
			t.Fatalf("ProcessRound1: %v", err)
		}
		if err := p.ProcessRound2([]group.Point{mustKeyPair(t).Public}); err == nil {
			t.Fatal("NofN ceremony accepted round 2 input")
		}
	})
}
