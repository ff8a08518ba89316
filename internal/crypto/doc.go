// Package crypto provides the cryptographic primitives consumed by the
// SFrame layer: HKDF extract/expand (RFC 5869), a raw AES-CTR keystream,
// HMAC over a caller-chosen hash, and AES-GCM seal/open.
//
// The package is deliberately thin. It validates argument sizes, selects
// nothing on its own (hash functions and key lengths are chosen by the
// caller's cipher suite), and performs no tag truncation or comparison;
// the SFrame AEAD constructions own those decisions.
//
// # Critical Security Notes
//
// The AES-CTR keystream is NOT authenticated. Callers must pair it with
// a MAC over the ciphertext and associated data, verified before the
// plaintext is released.
//
// Nonces passed to CTRXORKeyStream and the GCM functions must be unique
// per key. Nonce reuse under the same key is catastrophic for both
// constructions.
package crypto
