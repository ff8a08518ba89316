package crypto

import (
	"crypto/hmac"
	"hash"
)

// HMAC computes HMAC over msg with the given hash and key, returning the
// full-length tag. Truncation is the caller's concern.
func HMAC(newHash func() hash.Hash, key, msg []byte) []byte {
	mac := hmac.New(newHash, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
