package hashing

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"ekyu.moe/cryptonight/groestl"
	"ekyu.moe/cryptonight/jh"
	"github.com/aead/skein"
	"github.com/dchest/blake256"
)

// Variant selects the CryptoNight algorithm revision.
type Variant int

const (
	// V0 is the original CryptoNight construction.
	V0 Variant = iota
	// V1 adds the tweak derived from input bytes 35..43 and requires
	// at least 43 bytes of input.
	V1
	// V2 adds the shuffle and integer-math (division and square root)
	// steps to the main loop.
	V2
)

// Fixed parameter sets of the named families: scratchpad bytes and
// main-loop iterations.
const (
	slowHashMemory     = 2097152
	slowHashIterations = 524288

	liteSlowHashMemory     = 1048576
	liteSlowHashIterations = 262144

	darkSlowHashMemory     = 524288
	darkSlowHashIterations = 131072

	turtleSlowHashMemory     = 262144
	turtleSlowHashIterations = 65536
)

// SlowHash computes the standard CryptoNight hash (2 MB scratchpad).
func SlowHash(data []byte, v Variant) (Hash, error) {
	return dispatchSlow(data, v, slowHashMemory, slowHashIterations,
		NameSlowHashV0, NameSlowHashV1, NameSlowHashV2)
}

// LiteSlowHash computes the CryptoNight Lite hash (1 MB scratchpad).
func LiteSlowHash(data []byte, v Variant) (Hash, error) {
	return dispatchSlow(data, v, liteSlowHashMemory, liteSlowHashIterations,
		NameLiteSlowHashV0, NameLiteSlowHashV1, NameLiteSlowHashV2)
}

// DarkSlowHash computes the CryptoNight Dark hash (512 KB scratchpad).
func DarkSlowHash(data []byte, v Variant) (Hash, error) {
	return dispatchSlow(data, v, darkSlowHashMemory, darkSlowHashIterations,
		NameDarkSlowHashV0, NameDarkSlowHashV1, NameDarkSlowHashV2)
}

// TurtleSlowHash computes the CryptoNight Turtle hash (256 KB scratchpad).
func TurtleSlowHash(data []byte, v Variant) (Hash, error) {
	return dispatchSlow(data, v, turtleSlowHashMemory, turtleSlowHashIterations,
		NameTurtleSlowHashV0, NameTurtleSlowHashV1, NameTurtleSlowHashV2)
}

func dispatchSlow(data []byte, v Variant, memory, iterations int, names ...string) (Hash, error) {
	if v < V0 || v > V2 {
		return Hash{}, fmt.Errorf("%w: unknown variant %d", ErrUnsupportedParameters, v)
	}
	// Input preconditions hold for overrides too, so validate before
	// dispatching.
	if v >= V1 && len(data) < 43 {
		return Hash{}, fmt.Errorf("%w: variant %d requires at least 43 input bytes", ErrUnsupportedParameters, v)
	}
	if fn, ok := override(names[v]); ok {
		return fn(data), nil
	}
	return cnSlowHash(data, v, memory, iterations)
}

// cnSlowHash is the portable CryptoNight construction, parameterized by
// scratchpad size and iteration count.
func cnSlowHash(data []byte, v Variant, memory, iterations int) (Hash, error) {
	st := keccak1600(data)
	sb := stateBytes(&st)

	var tweak uint64
	if v == V1 {
		tweak = st[24] ^ binary.LittleEndian.Uint64(data[35:43])
	}

	// Fill the scratchpad: eight blocks from the middle of the state,
	// each pushed through the ten-round AES transform per 128-byte row.
	rk := expandKey(sb[0:32])
	var text [16]uint64
	for i := range text {
		text[i] = st[8+i]
	}

	words := memory / 8
	pad := make([]uint64, words)
	for row := 0; row < words/16; row++ {
		for b := 0; b < 8; b++ {
			text[b*2], text[b*2+1] = aesPseudoRound(text[b*2], text[b*2+1], &rk)
		}
		copy(pad[row*16:], text[:])
	}

	a0 := st[0] ^ st[4]
	a1 := st[1] ^ st[5]
	b0 := st[2] ^ st[6]
	b1 := st[3] ^ st[7]

	// Variant 2 state: a second b block and the division/sqrt chain.
	e0 := st[8] ^ st[10]
	e1 := st[9] ^ st[11]
	divisionResult := st[12]
	sqrtResult := st[13]

	mask := uint64(memory/16 - 1)

	for i := 0; i < iterations; i++ {
		j := ((a0 >> 4) & mask) << 1
		c0, c1 := aesRound(pad[j], pad[j+1], a0, a1)

		if v == V2 {
			shuffleAdd(pad, j, a0, a1, b0, b1, e0, e1)
		}

		p0 := b0 ^ c0
		p1 := b1 ^ c1
		if v == V1 {
			// Tweak the high nibble of byte 11 of the stored block.
			tmp := byte(p1 >> 24)
			index := (((tmp >> 3) & 6) | (tmp & 1)) << 1
			p1 ^= uint64((0x75310>>index)&0x30) << 24
		}
		pad[j], pad[j+1] = p0, p1

		k := ((c0 >> 4) & mask) << 1
		d0, d1 := pad[k], pad[k+1]

		if v == V2 {
			d0 ^= divisionResult ^ (sqrtResult << 32)
			dividend := c1
			divisor := (c0 + (sqrtResult << 1)) | 0x80000001
			divisor &= 0xffffffff
			divisionResult = (dividend/divisor)&0xffffffff + (dividend%divisor)<<32
			sqrtResult = integerSqrtV2(c0 + divisionResult)
		}

		hi, lo := bits.Mul64(c0, d0)

		if v == V2 {
			pad[k^2] ^= hi
			pad[k^3] ^= lo
			hi ^= pad[k^4]
			lo ^= pad[k^5]
			shuffleAdd(pad, k, a0, a1, b0, b1, e0, e1)
		}

		a0 += hi
		a1 += lo
		pad[k] = a0
		pad[k+1] = a1
		if v == V1 {
			pad[k+1] ^= tweak
		}
		a0 ^= d0
		a1 ^= d1

		if v == V2 {
			e0, e1 = b0, b1
		}
		b0, b1 = c0, c1
	}

	// Fold the scratchpad back into the state and squeeze.
	rk = expandKey(sb[32:64])
	for i := range text {
		text[i] = st[8+i]
	}
	for row := 0; row < words/16; row++ {
		for b := 0; b < 8; b++ {
			text[b*2] ^= pad[row*16+b*2]
			text[b*2+1] ^= pad[row*16+b*2+1]
			text[b*2], text[b*2+1] = aesPseudoRound(text[b*2], text[b*2+1], &rk)
		}
	}
	for i := range text {
		st[8+i] = text[i]
	}

	keccakF1600(&st)
	final := stateBytes(&st)
	return extraHash(final[:]), nil
}

// shuffleAdd is the variant 2 cache-line shuffle: the three 16-byte
// chunks sharing the 64-byte line with offset j are rotated and bumped
// by the a and b blocks.
func shuffleAdd(pad []uint64, j, a0, a1, b0, b1, e0, e1 uint64) {
	c1 := j ^ 2
	c2 := j ^ 4
	c3 := j ^ 6

	old0, old1 := pad[c1], pad[c1+1]
	pad[c1] = pad[c3] + e0
	pad[c1+1] = pad[c3+1] + e1
	pad[c3] = pad[c2] + a0
	pad[c3+1] = pad[c2+1] + a1
	pad[c2] = old0 + b0
	pad[c2+1] = old1 + b1
}

// integerSqrtV2 computes the variant 2 square root:
// floor(sqrt(2^64 + n)) * 2 - 2^33, via a floating point estimate and
// an exact fixup.
func integerSqrtV2(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)+18446744073709551616.0)*2.0 - 8589934592.0)
	s := r >> 1
	b := r & 1
	r2 := s*(s+b) + (r << 32)
	if r2+b > n {
		r--
	}
	if r2+(1<<32)+s < n {
		r++
	}
	return r
}

// extraHash finalizes the 200-byte state with the hash selected by its
// low two bits: BLAKE-256, Groestl-256, JH-256 or Skein-512-256.
func extraHash(state []byte) Hash {
	var out Hash
	switch state[0] & 3 {
	case 0:
		h := blake256.New()
		h.Write(state)
		h.Sum(out[:0])
	case 1:
		copy(out[:], groestl.Sum256(state))
	case 2:
		copy(out[:], jh.Sum256(state))
	case 3:
		var sum [32]byte
		skein.Sum256(&sum, state, nil)
		out = sum
	}
	return out
}
