package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// NonceSize is the nonce length in bytes shared by the CTR and GCM
// constructions.
const NonceSize = 12

// CTRXORKeyStream XORs src with the AES-CTR keystream for key and the
// 16-byte counter block nonce || be32(counter), writing the result to
// dst. dst and src may overlap exactly. The 32-bit block counter starts
// at the given value and increments per block.
func CTRXORKeyStream(key, nonce []byte, counter uint32, dst, src []byte) error {
	if len(nonce) != NonceSize {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(nonce), NonceSize)
	}
	if len(dst) < len(src) {
		return fmt.Errorf("destination shorter than source")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidKeySize, err)
	}

	var iv [aes.BlockSize]byte
	copy(iv[:], nonce)
	binary.BigEndian.PutUint32(iv[NonceSize:], counter)

	cipher.NewCTR(block, iv[:]).XORKeyStream(dst[:len(src)], src)
	return nil
}
