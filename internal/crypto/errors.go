package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is not a valid
	// AES key length.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when a nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when GCM authentication fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrHKDFExpand is returned when an HKDF expansion exceeds the
	// output limit for the chosen hash.
	ErrHKDFExpand = errors.New("hkdf expand failed")
)
