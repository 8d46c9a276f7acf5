package hashing

import (
	"encoding/binary"
	"math/bits"
)

// Keccak-1600 permutation, needed in its raw form by the CryptoNight
// construction: the scratchpad is seeded from and folded back into the
// full 200-byte sponge state, not just a digest.

const keccakRate = 136 // 1088-bit rate of Keccak-256

var keccakRC = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotation offsets indexed [x][y]
var keccakRot = [5][5]uint{
	{0, 36, 3, 41, 18},
	{1, 44, 10, 45, 2},
	{62, 6, 43, 15, 61},
	{28, 55, 25, 21, 56},
	{27, 20, 39, 8, 14},
}

// keccakF1600 applies the 24-round Keccak-f permutation in place. The
// state is indexed st[x + 5*y].
func keccakF1600(st *[25]uint64) {
	var bc [5]uint64
	var b [5][5]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			bc[x] = st[x] ^ st[x+5] ^ st[x+10] ^ st[x+15] ^ st[x+20]
		}
		for x := 0; x < 5; x++ {
			d := bc[(x+4)%5] ^ bits.RotateLeft64(bc[(x+1)%5], 1)
			for y := 0; y < 5; y++ {
				st[x+5*y] ^= d
			}
		}

		// rho and pi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[y][(2*x+3*y)%5] = bits.RotateLeft64(st[x+5*y], int(keccakRot[x][y]))
			}
		}

		// chi
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				st[x+5*y] = b[x][y] ^ (^b[(x+1)%5][y] & b[(x+2)%5][y])
			}
		}

		// iota
		st[0] ^= keccakRC[round]
	}
}

// keccak1600 absorbs the input with the legacy 0x01 padding and returns
// the full 200-byte sponge state as 25 little-endian words.
func keccak1600(data []byte) [25]uint64 {
	var st [25]uint64

	for len(data) >= keccakRate {
		for i := 0; i < keccakRate/8; i++ {
			st[i] ^= binary.LittleEndian.Uint64(data[i*8:])
		}
		keccakF1600(&st)
		data = data[keccakRate:]
	}

	var block [keccakRate]byte
	copy(block[:], data)
	block[len(data)] = 0x01
	block[keccakRate-1] |= 0x80
	for i := 0; i < keccakRate/8; i++ {
		st[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	keccakF1600(&st)

	return st
}

func stateBytes(st *[25]uint64) [200]byte {
	var out [200]byte
	for i, w := range st {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}
