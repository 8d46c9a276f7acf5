// Package ringsig implements traceable ring signatures with a
// two-phase prepare/complete protocol for distributed signing.
//
// A traceable ring signature over M candidate public keys proves that
// the signer knows the private key of exactly one ring member and that
// this key's image is a given value, without revealing which member.
// The key image makes double use of the same key detectable.
//
// # Construction
//
// Signing walks a challenge chain around the ring. The signer's slot
// commits to a nonce (L = k*G, R = k*Hp(P)); every other slot is a
// decoy with a random response, and each slot's challenge is the hash
// of its predecessor's commitments:
//
//	c[i+1] = Hs(prefix || I || P[i] || L[i] || R[i])
//
// The signer closes the chain algebraically with r = k - c*x.
// [Check] recomputes the chain from public data and accepts when it
// closes consistently.
//
// # Distributed signing
//
// [Prepare] builds everything that does not need the secret key and
// returns the nonce; [Complete] closes the chain once the secret is
// available. For multisig wallets, each participant scales its secret
// share with [GeneratePartialSigningKey] and [Restore] sums the
// contributions into the signer's slot. There is no quorum check: a
// strict subset of shares produces a signature that simply fails
// verification.
package ringsig
