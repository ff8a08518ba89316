package sframe

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
)

// CipherSuite selects the AEAD construction, hash, and key sizes used by
// a Context.
type CipherSuite uint16

const (
	// AESCM128HMACSHA256Tag4 is AES-CTR-128 with an HMAC-SHA-256 tag
	// truncated to 4 bytes.
	AESCM128HMACSHA256Tag4 CipherSuite = 1
	// AESCM128HMACSHA256Tag8 is AES-CTR-128 with an HMAC-SHA-256 tag
	// truncated to 8 bytes.
	AESCM128HMACSHA256Tag8 CipherSuite = 2
	// AESGCM128SHA256 is AES-128-GCM with HKDF over SHA-256.
	AESGCM128SHA256 CipherSuite = 3
	// AESGCM256SHA512 is AES-256-GCM with HKDF over SHA-512.
	AESGCM256SHA512 CipherSuite = 4
)

// aeadKind distinguishes the native GCM path from the synthesized
// CTR+HMAC path.
type aeadKind uint8

const (
	aeadCTRHMAC aeadKind = iota
	aeadGCM
)

// suiteParams is the closed parameter table for a cipher suite.
type suiteParams struct {
	aead      aeadKind
	newHash   func() hash.Hash
	hashSize  int
	keySize   int
	nonceSize int
	tagSize   int
}

var suiteRegistry = map[CipherSuite]suiteParams{
	AESCM128HMACSHA256Tag4: {
		aead:      aeadCTRHMAC,
		newHash:   sha256.New,
		hashSize:  sha256.Size,
		keySize:   16,
		nonceSize: 12,
		tagSize:   4,
	},
	AESCM128HMACSHA256Tag8: {
		aead:      aeadCTRHMAC,
		newHash:   sha256.New,
		hashSize:  sha256.Size,
		keySize:   16,
		nonceSize: 12,
		tagSize:   8,
	},
	AESGCM128SHA256: {
		aead:      aeadGCM,
		newHash:   sha256.New,
		hashSize:  sha256.Size,
		keySize:   16,
		nonceSize: 12,
		tagSize:   16,
	},
	AESGCM256SHA512: {
		aead:      aeadGCM,
		newHash:   sha512.New,
		hashSize:  sha512.Size,
		keySize:   32,
		nonceSize: 12,
		tagSize:   16,
	},
}

// params returns the parameter set for the suite. The caller must have
// validated the suite (NewContext does).
func (s CipherSuite) params() suiteParams {
	return suiteRegistry[s]
}

// valid reports whether the suite is one of the four registered suites.
func (s CipherSuite) valid() bool {
	_, ok := suiteRegistry[s]
	return ok
}

// String returns the suite name as it appears in the SFrame registry.
func (s CipherSuite) String() string {
	switch s {
	case AESCM128HMACSHA256Tag4:
		return "AES_CM_128_HMAC_SHA256_4"
	case AESCM128HMACSHA256Tag8:
		return "AES_CM_128_HMAC_SHA256_8"
	case AESGCM128SHA256:
		return "AES_GCM_128_SHA256"
	case AESGCM256SHA512:
		return "AES_GCM_256_SHA512"
	default:
		return fmt.Sprintf("CipherSuite(%d)", uint16(s))
	}
}

// Overhead returns the per-frame overhead for the suite with the given
// KeyID and Counter: header size plus tag size. It is at most
// MaxOverhead.
func (s CipherSuite) Overhead(kid KeyID, ctr Counter) (int, error) {
	hdrSize, err := headerSize(kid, ctr)
	if err != nil {
		return 0, err
	}
	return hdrSize + s.params().tagSize, nil
}
