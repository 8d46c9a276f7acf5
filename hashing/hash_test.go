package hashing

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/group"
)

func TestFastHash(t *testing.T) {
	t.Run("known digest", func(t *testing.T) {
		input, err := hex.DecodeString(
			"0100fb8e8ac805899323371bb790db19218afd8db8e3755d8b90f39b3d5506a9" +
				"abce4fa912244500000000ee8146d49fa93ee724deb57d12cbc6c6f3b924d946" +
				"127c7a97418f9348828f0f02")
		require.NoError(t, err)

		got := FastHash(input)
		require.Equal(t,
			"b542df5b6e7f5f05275c98e7345884e2ac726aeeb07e03e44e0389eb86cd05f0",
			got.String())
	})

	t.Run("empty input", func(t *testing.T) {
		// Keccak-256 of the empty string.
		got := FastHash(nil)
		require.Equal(t,
			"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
			got.String())
	})
}

func TestHashCodec(t *testing.T) {
	const digest = "b542df5b6e7f5f05275c98e7345884e2ac726aeeb07e03e44e0389eb86cd05f0"

	t.Run("round trip", func(t *testing.T) {
		h, err := HashFromHex(digest)
		require.NoError(t, err)
		require.Equal(t, digest, h.String())

		text, err := h.MarshalText()
		require.NoError(t, err)

		var back Hash
		require.NoError(t, back.UnmarshalText(text))
		require.Equal(t, h, back)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := HashFromHex(digest[:32])
		require.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("one encoding sentinel across the engine", func(t *testing.T) {
		_, err := HashFromHex(digest[:32])
		require.ErrorIs(t, err, group.ErrEncoding)
	})

	t.Run("non hex", func(t *testing.T) {
		_, err := HashFromHex("zz" + digest[2:])
		require.ErrorIs(t, err, ErrEncoding)
	})

	t.Run("bytes view", func(t *testing.T) {
		h, err := HashFromHex(digest)
		require.NoError(t, err)
		require.Len(t, h.Bytes(), Size)
	})
}
