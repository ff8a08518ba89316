package sframe

import (
	"hash"

	"github.com/sframe/sframe-go/internal/crypto"
)

// Crypto supplies the cryptographic primitives used by a Context. The
// default implementation is backed by the Go standard library and
// golang.org/x/crypto; override it with WithCrypto to route the
// primitives through hardware or an external provider.
type Crypto interface {
	// HKDFExtract performs the RFC 5869 extract step over the given
	// hash. An empty salt means a zero-filled salt of the hash length.
	HKDFExtract(newHash func() hash.Hash, salt, ikm []byte) []byte

	// HKDFExpand performs the RFC 5869 expand step, producing length
	// bytes keyed by prk and bound to info.
	HKDFExpand(newHash func() hash.Hash, prk, info []byte, length int) ([]byte, error)

	// CTRXORKeyStream XORs src into dst with the AES-CTR keystream for
	// the 16-byte counter block nonce || be32(counter). dst and src may
	// overlap exactly.
	CTRXORKeyStream(key, nonce []byte, counter uint32, dst, src []byte) error

	// HMAC returns the full-length HMAC of msg under key.
	HMAC(newHash func() hash.Hash, key, msg []byte) []byte

	// GCMSeal appends the AES-GCM encryption of plaintext (with aad
	// authenticated) plus its 16-byte tag to dst.
	GCMSeal(key, nonce, aad, plaintext, dst []byte) ([]byte, error)

	// GCMOpen authenticates and decrypts ciphertext||tag, appending the
	// plaintext to dst.
	GCMOpen(key, nonce, aad, ciphertext, dst []byte) ([]byte, error)
}

// stdCrypto is the default Crypto backed by internal/crypto.
type stdCrypto struct{}

func (stdCrypto) HKDFExtract(newHash func() hash.Hash, salt, ikm []byte) []byte {
	return crypto.HKDFExtract(newHash, salt, ikm)
}

func (stdCrypto) HKDFExpand(newHash func() hash.Hash, prk, info []byte, length int) ([]byte, error) {
	return crypto.HKDFExpand(newHash, prk, info, length)
}

func (stdCrypto) CTRXORKeyStream(key, nonce []byte, counter uint32, dst, src []byte) error {
	return crypto.CTRXORKeyStream(key, nonce, counter, dst, src)
}

func (stdCrypto) HMAC(newHash func() hash.Hash, key, msg []byte) []byte {
	return crypto.HMAC(newHash, key, msg)
}

func (stdCrypto) GCMSeal(key, nonce, aad, plaintext, dst []byte) ([]byte, error) {
	return crypto.GCMSeal(key, nonce, aad, plaintext, dst)
}

func (stdCrypto) GCMOpen(key, nonce, aad, ciphertext, dst []byte) ([]byte, error) {
	return crypto.GCMOpen(key, nonce, aad, ciphertext, dst)
}
