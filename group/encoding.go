package group

import (
	"encoding/hex"
	"fmt"
)

// EncodedSize is the wire size of scalars, points and hashes: 32 bytes,
// exchanged as 64 hexadecimal characters.
const EncodedSize = 32

// DecodeHex decodes a 64-character hexadecimal string into 32 bytes.
func DecodeHex(s string) ([]byte, error) {
	if len(s) != 2*EncodedSize {
		return nil, fmt.Errorf("%w: expected %d hex characters, got %d", ErrEncoding, 2*EncodedSize, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return b, nil
}

// ScalarFromHex parses a canonical scalar from its hexadecimal wire
// form using the given backend.
func ScalarFromHex(g Group, s string) (Scalar, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return g.NewScalar().SetBytes(b)
}

// PointFromHex parses a compressed point from its hexadecimal wire form
// using the given backend.
func PointFromHex(g Group, s string) (Point, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return g.NewPoint().SetBytes(b)
}

// ToHex returns the hexadecimal wire form of a scalar or point encoding.
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}
