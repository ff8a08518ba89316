package sframe

import (
	"crypto/hmac"
	"fmt"
)

// ctrBlockStart is the initial value of the trailing 32-bit block
// counter in the AES-CTR counter block. The value 0 is part of the
// wire-compatibility contract for the CTR+HMAC suites.
const ctrBlockStart = 0

// macInput assembles the HMAC input for the synthesized AEAD: aad || ct.
func macInput(aad, ct []byte) []byte {
	buf := make([]byte, 0, len(aad)+len(ct))
	buf = append(buf, aad...)
	buf = append(buf, ct...)
	return buf
}

// seal encrypts plaintext into dst, which must be exactly
// len(plaintext)+tagSize bytes, authenticating aad.
func (c *Context) seal(st *keyState, nonce, aad, plaintext, dst []byte) error {
	p := c.suite.params()

	switch p.aead {
	case aeadCTRHMAC:
		ct := dst[:len(plaintext)]
		if err := c.crypto.CTRXORKeyStream(st.encKey, nonce, ctrBlockStart, ct, plaintext); err != nil {
			return fmt.Errorf("ctr encrypt: %w", err)
		}
		tag := c.crypto.HMAC(p.newHash, st.authKey, macInput(aad, ct))
		copy(dst[len(plaintext):], tag[:p.tagSize])
		return nil

	case aeadGCM:
		out, err := c.crypto.GCMSeal(st.encKey, nonce, aad, plaintext, dst[:0])
		if err != nil {
			return fmt.Errorf("gcm encrypt: %w", err)
		}
		// A provider may have grown its own buffer instead of appending
		// in place.
		if &out[0] != &dst[0] {
			copy(dst, out)
		}
		return nil

	default:
		return fmt.Errorf("%w: unsupported AEAD", ErrInvalidParameter)
	}
}

// open authenticates body (ciphertext followed by tag) against aad and
// decrypts it into dst, which must be exactly len(body)-tagSize bytes.
// The tag comparison is constant time.
func (c *Context) open(st *keyState, nonce, aad, body, dst []byte) error {
	p := c.suite.params()

	switch p.aead {
	case aeadCTRHMAC:
		ct := body[:len(body)-p.tagSize]
		tag := body[len(body)-p.tagSize:]

		expected := c.crypto.HMAC(p.newHash, st.authKey, macInput(aad, ct))
		if !hmac.Equal(tag, expected[:p.tagSize]) {
			return ErrAuthenticationFailure
		}

		if err := c.crypto.CTRXORKeyStream(st.encKey, nonce, ctrBlockStart, dst, ct); err != nil {
			return fmt.Errorf("ctr decrypt: %w", err)
		}
		return nil

	case aeadGCM:
		out, err := c.crypto.GCMOpen(st.encKey, nonce, aad, body, dst[:0])
		if err != nil {
			return ErrAuthenticationFailure
		}
		if len(out) > 0 && &out[0] != &dst[0] {
			copy(dst, out)
		}
		return nil

	default:
		return fmt.Errorf("%w: unsupported AEAD", ErrInvalidParameter)
	}
}
