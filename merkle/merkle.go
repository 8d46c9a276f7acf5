package merkle

import (
	"errors"
	"fmt"

	"github.com/NinjaCoin-Master/ninjacoin-crypto/hashing"
)

// ErrEmptyTree reports a tree operation over zero leaves.
var ErrEmptyTree = errors.New("merkle: tree requires at least one leaf")

func hashPair(a, b hashing.Hash) hashing.Hash {
	var buf [2 * hashing.Size]byte
	copy(buf[:hashing.Size], a[:])
	copy(buf[hashing.Size:], b[:])
	return hashing.FastHash(buf[:])
}

// largestPow2Below returns the largest power of two strictly smaller
// than count. Only meaningful for count >= 3.
func largestPow2Below(count int) int {
	cnt := 1
	for cnt*2 < count {
		cnt <<= 1
	}
	return cnt
}

// TreeHash computes the CryptoNote tree hash of the leaves. A single
// leaf is returned unchanged; two leaves hash directly. For more, the
// leaf count is first reduced to the largest power of two below it by
// pairing the tail leaves while the head passes through unchanged, and
// the resulting list is halved level by level.
func TreeHash(leaves []hashing.Hash) (hashing.Hash, error) {
	switch len(leaves) {
	case 0:
		return hashing.Hash{}, ErrEmptyTree
	case 1:
		return leaves[0], nil
	case 2:
		return hashPair(leaves[0], leaves[1]), nil
	}

	count := len(leaves)
	cnt := largestPow2Below(count)
	buf := make([]hashing.Hash, cnt)

	keep := 2*cnt - count
	copy(buf, leaves[:keep])
	for i, j := keep, keep; j < cnt; i, j = i+2, j+1 {
		buf[j] = hashPair(leaves[i], leaves[i+1])
	}

	for cnt > 2 {
		cnt >>= 1
		for j := 0; j < cnt; j++ {
			buf[j] = hashPair(buf[2*j], buf[2*j+1])
		}
	}
	return hashPair(buf[0], buf[1]), nil
}

// TreeBranch returns the authentication path for leaf 0: the sibling
// hash at each level, ordered from the root down as consumed by
// [TreeHashFromBranch]. The pairing and recursion rule is identical to
// [TreeHash], so recombining the branch with leaf 0 reproduces the
// root of the full set.
func TreeBranch(leaves []hashing.Hash) ([]hashing.Hash, error) {
	switch len(leaves) {
	case 0:
		return nil, ErrEmptyTree
	case 1:
		return []hashing.Hash{}, nil
	case 2:
		return []hashing.Hash{leaves[1]}, nil
	}

	count := len(leaves)
	cnt := largestPow2Below(count)
	level := make([]hashing.Hash, cnt)
	branch := make([]hashing.Hash, 0, 8)

	keep := 2*cnt - count
	copy(level, leaves[:keep])
	for i, j := keep, keep; j < cnt; i, j = i+2, j+1 {
		level[j] = hashPair(leaves[i], leaves[i+1])
	}
	if keep == 0 {
		// Leaf 0 was consumed by the reduction; its sibling is leaf 1.
		branch = append(branch, leaves[1])
	}

	for cnt > 1 {
		branch = append(branch, level[1])
		cnt >>= 1
		for j := 0; j < cnt; j++ {
			level[j] = hashPair(level[2*j], level[2*j+1])
		}
	}

	// Collected leaf-to-root; the wire order is root-first.
	for i, j := 0, len(branch)-1; i < j; i, j = i+1, j-1 {
		branch[i], branch[j] = branch[j], branch[i]
	}
	return branch, nil
}

// TreeHashFromBranch recomputes the tree root from a leaf and its
// authentication path, pairing the running hash with each sibling from
// the deepest level up.
func TreeHashFromBranch(branch []hashing.Hash, leaf hashing.Hash) hashing.Hash {
	h := leaf
	for i := len(branch) - 1; i >= 0; i-- {
		h = hashPair(h, branch[i])
	}
	return h
}

// Depth returns the length of the authentication path for the given
// leaf count.
func Depth(count int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: count %d", ErrEmptyTree, count)
	}
	if count == 1 {
		return 0, nil
	}
	if count == 2 {
		return 1, nil
	}
	cnt := largestPow2Below(count)
	depth := 0
	if 2*cnt == count {
		// Power-of-two counts pair leaf 0 in the first reduction.
		depth++
	}
	for ; cnt > 1; cnt >>= 1 {
		depth++
	}
	return depth, nil
}
