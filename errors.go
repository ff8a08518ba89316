package sframe

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrShortCiphertext is returned when a ciphertext is too short to
	// contain a valid header and authentication tag.
	ErrShortCiphertext = errors.New("ciphertext too short")

	// ErrUnknownKey is returned when a KeyID is not registered in the
	// Context.
	ErrUnknownKey = errors.New("unknown key")

	// ErrUnknownEpoch is returned when a compound KeyID refers to an
	// epoch that is not installed, or when protecting under an epoch
	// whose ring slot now holds a different epoch.
	ErrUnknownEpoch = errors.New("unknown epoch")

	// ErrDuplicateKey is returned by AddKey for an already-registered
	// KeyID.
	ErrDuplicateKey = errors.New("key already registered")

	// ErrAuthenticationFailure is returned when the authentication tag
	// does not verify. The output buffer contents are unspecified and
	// must not be used.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrBufferTooSmall is returned when the caller-supplied output
	// buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("output buffer too small")

	// ErrInvalidParameter is returned for out-of-range parameters, such
	// as an epoch bit width outside [1, 8] or a KeyID or Counter too
	// large to encode.
	ErrInvalidParameter = errors.New("invalid parameter")
)
