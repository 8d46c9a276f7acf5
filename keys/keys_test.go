package keys

import (
	"crypto/rand"
	"errors"
	"testing"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

const (
	testSecretHex = "4a078e76cd41a3d3b534b83dc6f2ea2de500b653ca82273b7bfad8045d85a400"
	testPublicHex = "7849297236cd7c0d6c69a3c8c179c038d3c1c434735741bb3c8995c3c9d6f2ac"
)

func mustKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	pair, err := GenerateKeys(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKeys: %v", err)
	}
	return pair
}

func TestSecretKeyToPublicKey(t *testing.T) {
	g := group.Active()

	t.Run("known pair", func(t *testing.T) {
		secret, err := group.ScalarFromHex(g, testSecretHex)
		if err != nil {
			t.Fatalf("ScalarFromHex: %v", err)
		}
		public := SecretKeyToPublicKey(secret)
		if got := group.ToHex(public.Bytes()); got != testPublicHex {
			t.Fatalf("public key = %s, want %s", got, testPublicHex)
		}
	})

	t.Run("matches generated pair", func(t *testing.T) {
		pair := mustKeyPair(t)
		if !SecretKeyToPublicKey(pair.Secret).Equal(pair.Public) {
			t.Fatal("generated pair violates Public = Secret * G")
		}
	})
}

func TestCheckKey(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
		valid   bool
		wantErr bool
	}{
		{"valid key", testPublicHex, true, false},
		{"generator", "5866666666666666666666666666666666666666666666666666666666666666", true, false},
		{"identity", "0100000000000000000000000000000000000000000000000000000000000000", false, false},
		{"small order", "0000000000000000000000000000000000000000000000000000000000000000", false, false},
		{"not a point", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false, false},
		{"truncated hex", "78492972", false, true},
		{"non hex", "zz49297236cd7c0d6c69a3c8c179c038d3c1c434735741bb3c8995c3c9d6f2ac", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valid, err := CheckKey(tc.encoded)
			if tc.wantErr {
				if !errors.Is(err, group.ErrEncoding) {
					t.Fatalf("CheckKey = (%v, %v), want ErrEncoding", valid, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckKey: %v", err)
			}
			if valid != tc.valid {
				t.Fatalf("CheckKey = %v, want %v", valid, tc.valid)
			}
		})
	}
}

func TestCheckScalar(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
		valid   bool
		wantErr bool
	}{
		{"valid scalar", testSecretHex, true, false},
		{"zero", "0000000000000000000000000000000000000000000000000000000000000000", true, false},
		{"order L", "edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010", false, false},
		{"all ones", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", false, false},
		{"truncated hex", "4a078e76", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			valid, err := CheckScalar(tc.encoded)
			if tc.wantErr {
				if !errors.Is(err, group.ErrEncoding) {
					t.Fatalf("CheckScalar = (%v, %v), want ErrEncoding", valid, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CheckScalar: %v", err)
			}
			if valid != tc.valid {
				t.Fatalf("CheckScalar = %v, want %v", valid, tc.valid)
			}
		})
	}
}

func TestGenerateKeyImage(t *testing.T) {
	pair := mustKeyPair(t)

	img1, err := GenerateKeyImage(pair.Public, pair.Secret)
	if err != nil {
		t.Fatalf("GenerateKeyImage: %v", err)
	}
	img2, err := GenerateKeyImage(pair.Public, pair.Secret)
	if err != nil {
		t.Fatalf("GenerateKeyImage: %v", err)
	}
	if !img1.Equal(img2) {
		t.Fatal("key image is not deterministic")
	}
	if img1.IsIdentity() {
		t.Fatal("key image is the identity")
	}

	other := mustKeyPair(t)
	img3, err := GenerateKeyImage(other.Public, other.Secret)
	if err != nil {
		t.Fatalf("GenerateKeyImage: %v", err)
	}
	if img1.Equal(img3) {
		t.Fatal("distinct keys produced the same key image")
	}
}

func TestGenerateDeterministicSubwalletKeys(t *testing.T) {
	base := mustKeyPair(t)

	t.Run("index zero is the base pair", func(t *testing.T) {
		sub, err := GenerateDeterministicSubwalletKeys(base.Secret, 0)
		if err != nil {
			t.Fatalf("GenerateDeterministicSubwalletKeys: %v", err)
		}
		if !sub.Secret.Equal(base.Secret) || !sub.Public.Equal(base.Public) {
			t.Fatal("index 0 did not return the base pair")
		}
	})

	t.Run("reproducible", func(t *testing.T) {
		a, err := GenerateDeterministicSubwalletKeys(base.Secret, 7)
		if err != nil {
			t.Fatalf("GenerateDeterministicSubwalletKeys: %v", err)
		}
		b, err := GenerateDeterministicSubwalletKeys(base.Secret, 7)
		if err != nil {
			t.Fatalf("GenerateDeterministicSubwalletKeys: %v", err)
		}
		if !a.Secret.Equal(b.Secret) {
			t.Fatal("same base and index produced different subwallets")
		}
	})

	t.Run("distinct indexes", func(t *testing.T) {
		seen := map[string]uint64{group.ToHex(base.Public.Bytes()): 0}
		for _, idx := range []uint64{1, 2, 64, 65, 16384} {
			sub, err := GenerateDeterministicSubwalletKeys(base.Secret, idx)
			if err != nil {
				t.Fatalf("GenerateDeterministicSubwalletKeys(%d): %v", idx, err)
			}
			if !sub.Public.Equal(SecretKeyToPublicKey(sub.Secret)) {
				t.Fatalf("subwallet %d violates Public = Secret * G", idx)
			}
			key := group.ToHex(sub.Public.Bytes())
			if prev, ok := seen[key]; ok {
				t.Fatalf("indexes %d and %d collided", prev, idx)
			}
			seen[key] = idx
		}
	})
}
