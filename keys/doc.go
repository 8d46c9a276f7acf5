// Package keys implements CryptoNote key generation, validity checks,
// ECDH-style key derivation and key images.
//
// Every entity here is a value produced by a pure function of its
// inputs: key pairs, derivations, derived keys and key images carry no
// mutable state and are owned by the caller.
//
// # One-time output keys
//
// A sender publishes a transaction public key R and derives, for output
// index i paid to the wallet (A, B):
//
//	D := 8 * r * A                      // GenerateKeyDerivation (sender side)
//	P := B + Hs(D, i) * G               // DerivePublicKey
//
// The recipient recomputes D = 8 * a * R and either recognizes the
// output with UnderivePublicKey (recovering B) or spends it with
// DeriveSecretKey (recovering x so that P = x * G). GenerateKeyImage
// then binds the spend to x * Hp(P), the double-spend marker.
//
// When deriving many outputs of the same transaction, compute the
// derivation scalar once with GenerateKeyDerivationScalar or
// DerivationToScalar and apply it with ScalarDerivePublicKey /
// ScalarDeriveSecretKey.
//
// # Subwallets
//
// GenerateDeterministicSubwalletKeys expands a base spend key into an
// indexed family of subwallet keys, deterministically across
// implementations.
package keys
