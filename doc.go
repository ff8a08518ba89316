// Package sframe implements SFrame, an end-to-end encryption layer for
// real-time media frames. A frame payload (typically one compressed audio
// or video frame) is sealed under a sender-scoped key into a compact,
// self-describing ciphertext: a variable-length header carrying a key
// identifier and a monotonic counter, the encrypted payload, and an
// authentication tag.
//
// # Cipher Suites
//
// Four suites are supported:
//
//   - AES_CM_128_HMAC_SHA256_4: AES-CTR-128 with HMAC-SHA-256 truncated
//     to a 4-byte tag. Minimal overhead for bandwidth-sensitive audio.
//
//   - AES_CM_128_HMAC_SHA256_8: the same construction with an 8-byte tag.
//
//   - AES_GCM_128_SHA256: AES-128-GCM with a 16-byte tag.
//
//   - AES_GCM_256_SHA512: AES-256-GCM with a 16-byte tag.
//
// Keys, salts, and (for the CTR suites) authentication keys are expanded
// from a caller-supplied base secret with HKDF (RFC 5869) over the suite
// hash.
//
// # Usage
//
// Point-to-point, both sides share a base secret out of band:
//
//	ctx, err := sframe.NewContext(sframe.AESGCM128SHA256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Close()
//
//	if err := ctx.AddKey(7, baseSecret); err != nil {
//	    log.Fatal(err)
//	}
//
//	buf := make([]byte, len(frame)+sframe.MaxOverhead)
//	sealed, err := ctx.Protect(7, buf, frame)
//
// Group sessions driven by an external keying protocol (e.g. MLS) use
// [GroupContext], which derives per-sender keys from rotating epoch
// secrets and retains a bounded ring of recent epochs.
//
// # Security Model
//
// Each ciphertext is authenticated with its header as associated data;
// tampering with any bit of header, payload, or tag causes Unprotect to
// fail. Nonces are deterministic (salt XOR counter), so a key/counter
// pair MUST never be reused for encryption: a Context enforces this by
// owning the send counter. The package provides no replay protection and
// no key agreement; both are the embedding application's responsibility.
//
// Contexts are not safe for concurrent use, with one exception: Unprotect
// on a *Context mutates nothing and may run concurrently with other
// Unprotect calls on the same Context.
package sframe
