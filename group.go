package sframe

import (
	"crypto/subtle"
	"encoding/binary"
	"fmt"
)

// EpochID identifies a keying epoch of the external group protocol.
type EpochID uint64

// SenderID identifies a group member within an epoch.
type SenderID uint64

// labelEpoch prefixes the per-sender HKDF info.
var labelEpoch = []byte("SFrame10")

// epochState is one slot of the epoch ring: the installed epoch's full
// id, its secret, and the senders whose keys have been derived from it.
type epochState struct {
	id      EpochID
	secret  []byte
	senders map[SenderID]KeyID
}

// GroupContext adapts an external group-keying protocol (e.g. MLS) to
// SFrame. Each epoch contributes a secret from which per-sender keys are
// derived lazily; ciphertexts carry a compound KeyID combining the
// sender with the low bits of the epoch id. At most 2^epochBits epochs
// are retained; installing a new epoch evicts the previous occupant of
// its ring slot and purges that epoch's keys.
//
// Like Context, a GroupContext is not safe for concurrent use. Unprotect
// additionally mutates state when it first sees a sender in an epoch, so
// the concurrent-Unprotect allowance of Context does not carry over.
type GroupContext struct {
	suite     CipherSuite
	epochBits uint
	epochMask uint64
	epochs    []*epochState
	inner     *Context
}

// NewGroupContext creates a GroupContext for the given suite retaining
// 2^epochBits epochs. epochBits must be in [1, 8].
func NewGroupContext(suite CipherSuite, epochBits uint, opts ...Option) (*GroupContext, error) {
	if epochBits < 1 || epochBits > 8 {
		return nil, fmt.Errorf("%w: epoch bits %d outside [1, 8]", ErrInvalidParameter, epochBits)
	}

	inner, err := NewContext(suite, opts...)
	if err != nil {
		return nil, err
	}

	return &GroupContext{
		suite:     suite,
		epochBits: epochBits,
		epochMask: 1<<epochBits - 1,
		epochs:    make([]*epochState, 1<<epochBits),
		inner:     inner,
	}, nil
}

// AddEpoch installs an epoch secret in the ring slot id mod 2^epochBits,
// evicting any prior occupant and purging its derived keys.
// Reinstalling an already-installed epoch id is a no-op when the secret
// matches bit-for-bit and fails with ErrInvalidParameter otherwise.
func (g *GroupContext) AddEpoch(id EpochID, secret []byte) error {
	slot := uint64(id) & g.epochMask

	if cur := g.epochs[slot]; cur != nil {
		if cur.id == id {
			if subtle.ConstantTimeCompare(cur.secret, secret) == 1 {
				return nil
			}
			return fmt.Errorf("%w: epoch %d reinstalled with a different secret", ErrInvalidParameter, id)
		}
		g.purge(cur)
	}

	g.epochs[slot] = &epochState{
		id:      id,
		secret:  append([]byte(nil), secret...),
		senders: make(map[SenderID]KeyID),
	}
	return nil
}

// Protect encrypts plaintext as sender within the given epoch,
// deriving the sender's key on first use. It fails with ErrUnknownEpoch
// if the epoch is not installed or has been evicted.
func (g *GroupContext) Protect(id EpochID, sender SenderID, ciphertext, plaintext []byte) ([]byte, error) {
	slot := uint64(id) & g.epochMask
	ep := g.epochs[slot]
	if ep == nil || ep.id != id {
		return nil, fmt.Errorf("%w: epoch %d", ErrUnknownEpoch, id)
	}

	kid, err := g.ensureKey(ep, sender)
	if err != nil {
		return nil, err
	}
	return g.inner.Protect(kid, ciphertext, plaintext)
}

// Unprotect decodes the compound KeyID from the ciphertext header,
// resolves the epoch from its low bits, derives the sender's key if
// needed, and decrypts into the caller's plaintext buffer.
func (g *GroupContext) Unprotect(plaintext, ciphertext []byte) ([]byte, error) {
	hdr, _, err := decodeHeader(ciphertext)
	if err != nil {
		return nil, err
	}

	slot := uint64(hdr.keyID) & g.epochMask
	ep := g.epochs[slot]
	if ep == nil {
		return nil, fmt.Errorf("%w: epoch slot %d empty", ErrUnknownEpoch, slot)
	}

	sender := SenderID(uint64(hdr.keyID) >> g.epochBits)
	if _, err := g.ensureKey(ep, sender); err != nil {
		return nil, err
	}
	return g.inner.Unprotect(plaintext, ciphertext)
}

// Close zeroizes all epoch secrets and derived key material.
func (g *GroupContext) Close() {
	for i, ep := range g.epochs {
		if ep != nil {
			zeroize(ep.secret)
			g.epochs[i] = nil
		}
	}
	g.inner.Close()
}

// ensureKey derives the sender's key within ep on first use and returns
// the compound KeyID (sender shifted above the epoch bits).
func (g *GroupContext) ensureKey(ep *epochState, sender SenderID) (KeyID, error) {
	if kid, ok := ep.senders[sender]; ok {
		return kid, nil
	}

	kid := KeyID(uint64(sender)<<g.epochBits | uint64(ep.id)&g.epochMask)

	p := g.suite.params()
	info := make([]byte, 0, len(labelEpoch)+1+8)
	info = append(info, labelEpoch...)
	info = append(info, byte(ep.id))
	info = binary.BigEndian.AppendUint64(info, uint64(sender))

	base, err := g.inner.crypto.HKDFExpand(p.newHash, ep.secret, info, p.hashSize)
	if err != nil {
		return 0, fmt.Errorf("derive sender base key: %w", err)
	}
	defer zeroize(base)

	if err := g.inner.AddKey(kid, base); err != nil {
		return 0, err
	}

	ep.senders[sender] = kid
	return kid, nil
}

// purge removes every key derived from ep from the inner context.
func (g *GroupContext) purge(ep *epochState) {
	for _, kid := range ep.senders {
		g.inner.removeKey(kid)
	}
	zeroize(ep.secret)
}
