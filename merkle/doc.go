// Package merkle implements the CryptoNote tree hash and its
// authentication paths over 32-byte leaf hashes.
//
// The construction differs from a textbook Merkle tree: instead of
// duplicating the last element of odd levels, a first reduction pairs
// only the tail of the leaf list to bring its length to a power of
// two, after which levels halve cleanly. [TreeHash] computes the root,
// [TreeBranch] the sibling path for leaf 0 (the slot block headers
// reserve for the coinbase transaction), and [TreeHashFromBranch]
// recombines a leaf with its path; branch and root are mutually
// consistent by construction.
package merkle
