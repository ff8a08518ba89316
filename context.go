package sframe

import "fmt"

// Context holds the per-key encryption state for one SFrame session
// direction. It maps KeyIDs to derived keys and owns each key's send
// counter.
//
// A Context is not safe for concurrent use. Unprotect performs no state
// mutation and may run concurrently with other Unprotect calls on the
// same Context; Protect and AddKey require exclusive access.
type Context struct {
	suite  CipherSuite
	crypto Crypto
	keys   map[KeyID]*keyState
}

// NewContext creates a Context for the given cipher suite.
func NewContext(suite CipherSuite, opts ...Option) (*Context, error) {
	if !suite.valid() {
		return nil, fmt.Errorf("%w: unknown cipher suite %d", ErrInvalidParameter, uint16(suite))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Context{
		suite:  suite,
		crypto: cfg.crypto,
		keys:   make(map[KeyID]*keyState),
	}, nil
}

// Suite returns the Context's cipher suite.
func (c *Context) Suite() CipherSuite {
	return c.suite
}

// AddKey derives and registers the key state for kid from a base secret
// of any length. It fails with ErrDuplicateKey if kid is already
// registered.
func (c *Context) AddKey(kid KeyID, baseKey []byte) error {
	if _, ok := c.keys[kid]; ok {
		return fmt.Errorf("%w: KeyID %d", ErrDuplicateKey, kid)
	}

	st, err := deriveKeyState(c.crypto, c.suite, baseKey)
	if err != nil {
		return err
	}

	c.keys[kid] = st
	return nil
}

// removeKey forgets kid, zeroizing its key material. Used by
// GroupContext when an epoch is evicted.
func (c *Context) removeKey(kid KeyID) {
	if st, ok := c.keys[kid]; ok {
		st.zeroize()
		delete(c.keys, kid)
	}
}

// Protect encrypts plaintext under kid's current counter, writing
// header, ciphertext, and tag into the caller-owned ciphertext buffer
// and returning the written sub-slice. The send counter is consumed
// only on success.
func (c *Context) Protect(kid KeyID, ciphertext, plaintext []byte) ([]byte, error) {
	st, ok := c.keys[kid]
	if !ok {
		return nil, fmt.Errorf("%w: KeyID %d", ErrUnknownKey, kid)
	}

	p := c.suite.params()
	ctr := st.counter

	hdrSize, err := headerSize(kid, ctr)
	if err != nil {
		return nil, err
	}
	total := hdrSize + len(plaintext) + p.tagSize
	if len(ciphertext) < total {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, total, len(ciphertext))
	}

	if _, err := encodeHeader(kid, ctr, ciphertext); err != nil {
		return nil, err
	}

	nonce := st.nonce(ctr)
	if err := c.seal(st, nonce[:], ciphertext[:hdrSize], plaintext, ciphertext[hdrSize:total]); err != nil {
		return nil, err
	}

	st.counter++
	return ciphertext[:total], nil
}

// Unprotect authenticates ciphertext and decrypts its payload into the
// caller-owned plaintext buffer, returning the written sub-slice. On
// ErrAuthenticationFailure the buffer contents are unspecified.
func (c *Context) Unprotect(plaintext, ciphertext []byte) ([]byte, error) {
	hdr, hdrSize, err := decodeHeader(ciphertext)
	if err != nil {
		return nil, err
	}

	p := c.suite.params()
	if len(ciphertext) < hdrSize+p.tagSize {
		return nil, fmt.Errorf("%w: no room for tag", ErrShortCiphertext)
	}

	st, ok := c.keys[hdr.keyID]
	if !ok {
		return nil, fmt.Errorf("%w: KeyID %d", ErrUnknownKey, hdr.keyID)
	}

	innerLen := len(ciphertext) - hdrSize - p.tagSize
	if len(plaintext) < innerLen {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, innerLen, len(plaintext))
	}

	nonce := st.nonce(hdr.counter)
	if err := c.open(st, nonce[:], ciphertext[:hdrSize], ciphertext[hdrSize:], plaintext[:innerLen]); err != nil {
		return nil, err
	}

	return plaintext[:innerLen], nil
}

// Close zeroizes all key material held by the Context. The Context must
// not be used afterwards.
func (c *Context) Close() {
	for kid, st := range c.keys {
		st.zeroize()
		delete(c.keys, kid)
	}
}
