package sframe

import (
	"encoding/binary"
	"fmt"
)

// HKDF salts and info labels for the base-secret expansion. The exact
// ASCII bytes are part of the wire-compatibility contract.
var (
	labelSFrame = []byte("SFrame10")
	labelKey    = []byte("key")
	labelSalt   = []byte("salt")
	labelCTR    = []byte("SFrame10 AES CM AEAD")
	labelAuth   = []byte("auth")
	labelEnc    = []byte("enc")
)

// keyState holds the derived secrets for one KeyID. All fields except
// counter are immutable after derivation; counter advances by one per
// successful Protect.
type keyState struct {
	encKey  []byte
	authKey []byte // CTR+HMAC suites only
	salt    []byte
	counter Counter
}

// deriveKeyState expands a base secret into the per-key encryption key,
// salt, and (for CTR+HMAC suites) authentication key.
//
// The schedule is: extract the base secret with the salt "SFrame10",
// expand the encryption key ("key") and nonce salt ("salt") from the
// result, and for the synthesized AEAD extract the encryption key with
// the salt "SFrame10 AES CM AEAD" and expand separate authentication
// ("auth") and encryption ("enc") keys from that.
func deriveKeyState(c Crypto, suite CipherSuite, baseKey []byte) (*keyState, error) {
	p := suite.params()

	secret := c.HKDFExtract(p.newHash, labelSFrame, baseKey)
	defer zeroize(secret)

	key, err := c.HKDFExpand(p.newHash, secret, labelKey, p.keySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	salt, err := c.HKDFExpand(p.newHash, secret, labelSalt, p.nonceSize)
	if err != nil {
		zeroize(key)
		return nil, fmt.Errorf("derive salt: %w", err)
	}

	st := &keyState{encKey: key, salt: salt}
	if p.aead == aeadCTRHMAC {
		aeadSecret := c.HKDFExtract(p.newHash, labelCTR, key)
		defer zeroize(aeadSecret)

		authKey, err := c.HKDFExpand(p.newHash, aeadSecret, labelAuth, p.hashSize)
		if err != nil {
			st.zeroize()
			return nil, fmt.Errorf("derive auth key: %w", err)
		}
		encKey, err := c.HKDFExpand(p.newHash, aeadSecret, labelEnc, p.keySize)
		if err != nil {
			zeroize(authKey)
			st.zeroize()
			return nil, fmt.Errorf("derive enc key: %w", err)
		}
		zeroize(st.encKey)
		st.encKey = encKey
		st.authKey = authKey
	}

	return st, nil
}

// nonceSize is shared by all four suites.
const nonceSize = 12

// nonce derives the deterministic nonce for a counter value:
// salt XOR big-endian(ctr), with the counter right-aligned in the
// nonce-length field.
func (st *keyState) nonce(ctr Counter) [nonceSize]byte {
	var nonce [nonceSize]byte
	copy(nonce[:], st.salt)

	var ctrBytes [8]byte
	binary.BigEndian.PutUint64(ctrBytes[:], uint64(ctr))
	for i := 0; i < 8; i++ {
		nonce[nonceSize-1-i] ^= ctrBytes[7-i]
	}
	return nonce
}

func (st *keyState) zeroize() {
	zeroize(st.encKey)
	zeroize(st.authKey)
	zeroize(st.salt)
}

func zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
