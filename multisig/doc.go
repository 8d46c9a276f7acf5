// Package multisig builds shared wallet keys from the key material of
// several parties.
//
// Two layouts are supported. N/N wallets sum everyone's keys directly:
// the shared secret spend key is the scalar sum of all parties' secret
// keys and every signature needs every party. (N-1)/N wallets instead
// derive one shared secret per unordered pair of parties via ECDH, so
// any party's absence leaves the remaining N-1 holding the complete
// share set between them.
//
// [Participant] runs the key-exchange ceremony round by round without
// ever moving secret keys between parties. The low-level aggregation
// functions ([CalculateSharedPublicKey], [CalculateSharedPrivateKey],
// [CalculateMultisigPrivateKeys]) are exposed for wallets that manage
// the exchange themselves, and [RestoreKeyImage] recombines partial
// key images when a multisig wallet spends an output.
package multisig
