package hashing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSbox(t *testing.T) {
	t.Run("known entries", func(t *testing.T) {
		require.Equal(t, byte(0x63), sbox[0x00])
		require.Equal(t, byte(0x7c), sbox[0x01])
		require.Equal(t, byte(0xed), sbox[0x53])
		require.Equal(t, byte(0x16), sbox[0xff])
	})

	t.Run("is a permutation", func(t *testing.T) {
		var seen [256]bool
		for _, v := range sbox {
			require.False(t, seen[v], "duplicate S-box value %#x", v)
			seen[v] = true
		}
	})
}

func TestXtime(t *testing.T) {
	require.Equal(t, byte(0x02), xtime(0x01))
	require.Equal(t, byte(0xfe), xtime(0x7f))
	require.Equal(t, byte(0x1b), xtime(0x80))
	require.Equal(t, byte(0xe5), xtime(0xff))
}

func TestAesRound(t *testing.T) {
	x0 := uint64(0x0123456789abcdef)
	x1 := uint64(0xfedcba9876543210)
	k0 := uint64(0x1111111111111111)
	k1 := uint64(0x2222222222222222)

	t.Run("key addition is a final xor", func(t *testing.T) {
		r0, r1 := aesRound(x0, x1, 0, 0)
		w0, w1 := aesRound(x0, x1, k0, k1)
		require.Equal(t, r0^k0, w0)
		require.Equal(t, r1^k1, w1)
	})

	t.Run("deterministic", func(t *testing.T) {
		a0, a1 := aesRound(x0, x1, k0, k1)
		b0, b1 := aesRound(x0, x1, k0, k1)
		require.Equal(t, a0, b0)
		require.Equal(t, a1, b1)
	})
}

func TestExpandKey(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	rk := expandKey(key)

	// The first two round keys are the key itself, little-endian.
	require.Equal(t, uint64(0x0706050403020100), rk[0])
	require.Equal(t, uint64(0x0f0e0d0c0b0a0908), rk[1])
	require.Equal(t, uint64(0x1716151413121110), rk[2])
	require.Equal(t, uint64(0x1f1e1d1c1b1a1918), rk[3])

	// Later round keys must differ from the raw key material.
	require.NotEqual(t, rk[0], rk[4])
	require.NotEqual(t, rk[2], rk[6])
}
