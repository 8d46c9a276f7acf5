package hashing

import (
	"encoding/binary"
	"math/bits"
)

// Software AES building blocks for the CryptoNight scratchpad. Only the
// forward round function is needed: CryptoNight never decrypts, and it
// applies the round key after the column mix.

var sbox [256]byte

func init() {
	// Generate the Rijndael S-box from the GF(2^8) inverse and affine
	// transform instead of carrying the table.
	p, q := byte(1), byte(1)
	for {
		// p *= 3 in GF(2^8)
		p = p ^ xtime(p)
		// q /= 3
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}
		x := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^
			bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = x ^ 0x63
		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63
}

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return (b << 1) ^ 0x1b
	}
	return b << 1
}

var aesRcon = [...]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// expandKey runs the AES-256 key schedule over a 32-byte key and
// returns the first 10 round keys as 20 little-endian words, the way
// CryptoNight consumes them.
func expandKey(key []byte) [20]uint64 {
	var w [40]uint32
	for i := 0; i < 8; i++ {
		w[i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	for i := 8; i < 40; i++ {
		t := w[i-1]
		switch {
		case i%8 == 0:
			t = subWord(bits.RotateLeft32(t, -8)) ^ uint32(aesRcon[i/8-1])
		case i%8 == 4:
			t = subWord(t)
		}
		w[i] = w[i-8] ^ t
	}

	var rk [20]uint64
	for i := 0; i < 20; i++ {
		rk[i] = uint64(w[i*2]) | uint64(w[i*2+1])<<32
	}
	return rk
}

// subWord applies the S-box to each byte of a little-endian word.
func subWord(w uint32) uint32 {
	return uint32(sbox[w&0xff]) |
		uint32(sbox[(w>>8)&0xff])<<8 |
		uint32(sbox[(w>>16)&0xff])<<16 |
		uint32(sbox[(w>>24)&0xff])<<24
}

// aesRound applies one AES encryption round (SubBytes, ShiftRows,
// MixColumns, then the key XOR) to the 16-byte block (c0, c1).
func aesRound(c0, c1, k0, k1 uint64) (uint64, uint64) {
	var in, out [16]byte
	binary.LittleEndian.PutUint64(in[0:], c0)
	binary.LittleEndian.PutUint64(in[8:], c1)

	// SubBytes + ShiftRows: byte r of column c comes from column
	// (c+r) mod 4.
	var t [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			t[c*4+r] = sbox[in[((c+r)%4)*4+r]]
		}
	}

	// MixColumns
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := t[c*4], t[c*4+1], t[c*4+2], t[c*4+3]
		out[c*4] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		out[c*4+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		out[c*4+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		out[c*4+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}

	return binary.LittleEndian.Uint64(out[0:]) ^ k0,
		binary.LittleEndian.Uint64(out[8:]) ^ k1
}

// aesPseudoRound pushes a block through all ten round keys, the
// transformation CryptoNight uses to fill and fold the scratchpad.
func aesPseudoRound(c0, c1 uint64, rk *[20]uint64) (uint64, uint64) {
	for r := 0; r < 10; r++ {
		c0, c1 = aesRound(c0, c1, rk[r*2], rk[r*2+1])
	}
	return c0, c1
}
