package hashing

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

// Size is the digest width of every hash in the family: 32 bytes,
// exchanged as 64 hexadecimal characters.
const Size = 32

// ErrUnsupportedParameters reports a tunable hash invocation with
// zero or otherwise unusable iteration count, memory size or thread
// count. Invalid combinations fail, they are never clamped.
var ErrUnsupportedParameters = errors.New("unsupported hash parameters")

// ErrEncoding reports malformed hexadecimal input. It is the engine's
// shared encoding sentinel, so errors.Is matches digest, scalar and
// point codec failures alike.
var ErrEncoding = group.ErrEncoding

// Hash is a fixed-width digest.
type Hash [Size]byte

// String returns the hexadecimal wire form of the digest.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns the digest as a byte slice.
func (h Hash) Bytes() []byte {
	return h[:]
}

// MarshalText implements encoding.TextMarshaler.
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := HashFromHex(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HashFromHex parses a digest from 64 hexadecimal characters.
func HashFromHex(s string) (Hash, error) {
	var h Hash
	if len(s) != 2*Size {
		return h, fmt.Errorf("%w: expected %d hex characters, got %d", ErrEncoding, 2*Size, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	copy(h[:], b)
	return h, nil
}

// FastHash computes cn_fast_hash, the legacy Keccak-256 digest.
func FastHash(data []byte) Hash {
	if fn, ok := override(NameFastHash); ok {
		return fn(data)
	}
	return fastHash(data)
}

func fastHash(data []byte) Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out Hash
	h.Sum(out[:0])
	return out
}
