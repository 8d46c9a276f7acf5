package hashing

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Chukwa parameter sets. The named entry points are fixed
// parameterizations of ChukwaSlowHashBase.
const (
	chukwaIterations = 3
	chukwaMemoryKB   = 512
	chukwaThreads    = 1

	chukwaV2Iterations = 4
	chukwaV2MemoryKB   = 1024
	chukwaV2Threads    = 1

	chukwaSaltSize = 16
)

// ChukwaSlowHash computes the Chukwa hash: Argon2id with 3 passes over
// a 512 KB scratchpad on a single lane.
func ChukwaSlowHash(data []byte) (Hash, error) {
	if fn, ok := override(NameChukwaSlowHash); ok {
		return fn(data), nil
	}
	return chukwa(data, chukwaIterations, chukwaMemoryKB, chukwaThreads), nil
}

// ChukwaSlowHashV2 computes the second Chukwa revision: 4 passes over
// a 1 MB scratchpad on a single lane.
func ChukwaSlowHashV2(data []byte) (Hash, error) {
	if fn, ok := override(NameChukwaSlowHashV2); ok {
		return fn(data), nil
	}
	return chukwa(data, chukwaV2Iterations, chukwaV2MemoryKB, chukwaV2Threads), nil
}

// ChukwaSlowHashBase is the tunable entry point: iterations is the pass
// count, memory the scratchpad size in kilobytes, threads the internal
// lane count. Invalid combinations fail rather than silently clamping.
func ChukwaSlowHashBase(data []byte, iterations, memory uint32, threads uint8) (Hash, error) {
	if iterations == 0 {
		return Hash{}, fmt.Errorf("%w: zero iterations", ErrUnsupportedParameters)
	}
	if memory == 0 {
		return Hash{}, fmt.Errorf("%w: zero memory", ErrUnsupportedParameters)
	}
	if threads == 0 {
		return Hash{}, fmt.Errorf("%w: zero threads", ErrUnsupportedParameters)
	}
	if memory < 8*uint32(threads) {
		return Hash{}, fmt.Errorf("%w: %d KB is below the minimum of 8 KB per thread", ErrUnsupportedParameters, memory)
	}
	return chukwa(data, iterations, memory, threads), nil
}

func chukwa(data []byte, iterations, memory uint32, threads uint8) Hash {
	// The salt is the leading 16 bytes of the input, zero padded for
	// short inputs.
	var salt [chukwaSaltSize]byte
	copy(salt[:], data)

	var out Hash
	copy(out[:], argon2.IDKey(data, salt[:], iterations, memory, threads, Size))
	return out
}
