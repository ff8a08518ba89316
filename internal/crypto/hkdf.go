package crypto

import (
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HKDFExtract computes the RFC 5869 extract step over the given hash,
// returning a pseudorandom key of the hash's output length. An empty
// salt is treated as a string of zero bytes, per the RFC.
func HKDFExtract(newHash func() hash.Hash, salt, ikm []byte) []byte {
	return hkdf.Extract(newHash, ikm, salt)
}

// HKDFExpand computes the RFC 5869 expand step, deriving length bytes of
// output keyed by prk and bound to info.
func HKDFExpand(newHash func() hash.Hash, prk, info []byte, length int) ([]byte, error) {
	reader := hkdf.Expand(newHash, prk, info)
	out := make([]byte, length)

	if _, err := io.ReadFull(reader, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHKDFExpand, err)
	}

	return out, nil
}
