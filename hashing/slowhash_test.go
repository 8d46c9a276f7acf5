package hashing

import (
	"math/big"
	"testing"

	cnref "ekyu.moe/cryptonight"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// testInput is longer than the 43 bytes variant 1 requires.
var testInput = []byte("cryptonight test input with enough bytes for every variant")

// Known-answer vectors from the published CryptoNight test suite.
func TestSlowHashKnownVectors(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{
			"This is a test",
			"a084f01d1437a09c6985401b60d43554ae105802c5f5d8a9b3253649c0be6605",
		},
		{
			"de omnibus dubitandum",
			"2f8e3df40bd11f9ac90c743ca8e32bb391da4fb98612aa3b6cdc639ee00b31f5",
		},
	}
	for _, tc := range cases {
		got, err := SlowHash([]byte(tc.input), V0)
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String(), "input %q", tc.input)
	}
}

// Every variant of the standard construction must agree with the
// independent reference implementation.
func TestSlowHashAgainstReference(t *testing.T) {
	for _, v := range []Variant{V0, V1, V2} {
		got, err := SlowHash(testInput, v)
		require.NoError(t, err)
		require.Equal(t, cnref.Sum(testInput, int(v)), got.Bytes(), "variant %d", v)
	}
}

func TestTurtleSlowHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a, err := TurtleSlowHash(testInput, V0)
		require.NoError(t, err)
		b, err := TurtleSlowHash(testInput, V0)
		require.NoError(t, err)
		require.Equal(t, a, b)
	})

	t.Run("variants are distinct", func(t *testing.T) {
		v0, err := TurtleSlowHash(testInput, V0)
		require.NoError(t, err)
		v1, err := TurtleSlowHash(testInput, V1)
		require.NoError(t, err)
		v2, err := TurtleSlowHash(testInput, V2)
		require.NoError(t, err)
		require.NotEqual(t, v0, v1)
		require.NotEqual(t, v0, v2)
		require.NotEqual(t, v1, v2)
	})

	t.Run("input sensitivity", func(t *testing.T) {
		a, err := TurtleSlowHash(testInput, V2)
		require.NoError(t, err)
		flipped := append([]byte(nil), testInput...)
		flipped[0] ^= 1
		b, err := TurtleSlowHash(flipped, V2)
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})
}

func TestSlowHashFamilies(t *testing.T) {
	t.Run("families are distinct", func(t *testing.T) {
		turtle, err := TurtleSlowHash(testInput, V2)
		require.NoError(t, err)
		lite, err := LiteSlowHash(testInput, V2)
		require.NoError(t, err)
		require.NotEqual(t, turtle, lite)
	})

	t.Run("variant 1 needs 43 bytes", func(t *testing.T) {
		short := make([]byte, 42)
		for _, fn := range []func([]byte, Variant) (Hash, error){
			SlowHash, LiteSlowHash, DarkSlowHash, TurtleSlowHash,
		} {
			_, err := fn(short, V1)
			require.ErrorIs(t, err, ErrUnsupportedParameters)
			_, err = fn(short, V2)
			require.ErrorIs(t, err, ErrUnsupportedParameters)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := TurtleSlowHash(testInput, Variant(3))
		require.ErrorIs(t, err, ErrUnsupportedParameters)
		_, err = TurtleSlowHash(testInput, Variant(-1))
		require.ErrorIs(t, err, ErrUnsupportedParameters)
	})
}

func TestSlowHashParallel(t *testing.T) {
	want, err := TurtleSlowHash(testInput, V2)
	require.NoError(t, err)

	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			got, err := TurtleSlowHash(testInput, V2)
			if err != nil {
				return err
			}
			require.Equal(t, want, got)
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestIntegerSqrtV2(t *testing.T) {
	two64 := new(big.Int).Lsh(big.NewInt(1), 64)
	two33 := new(big.Int).Lsh(big.NewInt(1), 33)

	check := func(n uint64) {
		t.Helper()
		sum := new(big.Int).Add(two64, new(big.Int).SetUint64(n))
		want := new(big.Int).Sqrt(sum)
		want.Lsh(want, 1)
		want.Sub(want, two33)
		require.Equal(t, want.Uint64(), integerSqrtV2(n), "n = %d", n)
	}

	for _, n := range []uint64{
		0, 1, 2, 1<<32 - 1, 1 << 32, 1 << 48, 1<<63 - 1, 1 << 63, 1<<64 - 1,
		0x0123456789abcdef, 0xfedcba9876543210,
	} {
		check(n)
	}
}
