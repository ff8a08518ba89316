package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// GCMTagSize is the AES-GCM authentication tag length in bytes.
const GCMTagSize = 16

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}

	return cipher.NewGCM(block)
}

// GCMSeal encrypts plaintext with AES-GCM, authenticating aad, and
// appends ciphertext plus tag to dst. dst should have capacity for
// len(plaintext)+GCMTagSize to avoid allocation.
func GCMSeal(key, nonce, aad, plaintext, dst []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(dst, nonce, plaintext, aad), nil
}

// GCMOpen authenticates and decrypts a GCM ciphertext (payload plus
// tag), appending the plaintext to dst. It returns ErrDecryptionFailed
// on tag mismatch.
func GCMOpen(key, nonce, aad, ciphertext, dst []byte) ([]byte, error) {
	aead, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	out, err := aead.Open(dst, nonce, ciphertext, aad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return out, nil
}
