package crypto

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}
	return b
}

// RFC 5869 appendix A.1 (basic test case with SHA-256).
func TestHKDFVector(t *testing.T) {
	ikm := fromHex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := fromHex(t, "000102030405060708090a0b0c")
	info := fromHex(t, "f0f1f2f3f4f5f6f7f8f9")

	wantPRK := fromHex(t, "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5")
	wantOKM := fromHex(t,
		"3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865")

	prk := HKDFExtract(sha256.New, salt, ikm)
	if !bytes.Equal(prk, wantPRK) {
		t.Errorf("PRK = %x, want %x", prk, wantPRK)
	}

	okm, err := HKDFExpand(sha256.New, prk, info, 42)
	if err != nil {
		t.Fatalf("HKDFExpand() error = %v", err)
	}
	if !bytes.Equal(okm, wantOKM) {
		t.Errorf("OKM = %x, want %x", okm, wantOKM)
	}
}

func TestHKDFExtractEmptySalt(t *testing.T) {
	// An absent salt must behave as a zero-filled salt of hash length.
	ikm := []byte("input key material")
	zeros := make([]byte, sha256.Size)

	if !bytes.Equal(HKDFExtract(sha256.New, nil, ikm), HKDFExtract(sha256.New, zeros, ikm)) {
		t.Error("nil salt and zero salt disagree")
	}
}

func TestHKDFExpandTooLong(t *testing.T) {
	prk := make([]byte, sha256.Size)
	// RFC 5869 caps expansion at 255 hash lengths.
	if _, err := HKDFExpand(sha256.New, prk, nil, 256*sha256.Size); err == nil {
		t.Error("expected error for oversize expansion")
	}
}
