package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func TestGCMSealOpenRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
	}{
		{"AES-128", 16},
		{"AES-256", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := make([]byte, tt.keySize)
			nonce := make([]byte, NonceSize)
			if _, err := rand.Read(key); err != nil {
				t.Fatal(err)
			}
			if _, err := rand.Read(nonce); err != nil {
				t.Fatal(err)
			}

			plaintext := []byte("one encoded media frame")
			aad := []byte{0x17, 0x00}

			sealed, err := GCMSeal(key, nonce, aad, plaintext, nil)
			if err != nil {
				t.Fatalf("GCMSeal() error = %v", err)
			}
			if len(sealed) != len(plaintext)+GCMTagSize {
				t.Fatalf("sealed length = %d, want %d", len(sealed), len(plaintext)+GCMTagSize)
			}

			opened, err := GCMOpen(key, nonce, aad, sealed, nil)
			if err != nil {
				t.Fatalf("GCMOpen() error = %v", err)
			}
			if !bytes.Equal(opened, plaintext) {
				t.Errorf("opened = %x, want %x", opened, plaintext)
			}
		})
	}
}

func TestGCMSealNoAlloc(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, NonceSize)
	plaintext := []byte("frame")

	dst := make([]byte, 0, len(plaintext)+GCMTagSize)
	sealed, err := GCMSeal(key, nonce, nil, plaintext, dst)
	if err != nil {
		t.Fatal(err)
	}
	if &sealed[0] != &dst[:1][0] {
		t.Error("seal did not reuse the destination buffer")
	}
}

func TestGCMOpenTampered(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, NonceSize)

	sealed, err := GCMSeal(key, nonce, []byte("aad"), []byte("payload"), nil)
	if err != nil {
		t.Fatal(err)
	}

	sealed[0] ^= 0x01
	if _, err := GCMOpen(key, nonce, []byte("aad"), sealed, nil); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("tampered open error = %v, want ErrDecryptionFailed", err)
	}

	sealed[0] ^= 0x01
	if _, err := GCMOpen(key, nonce, []byte("AAD"), sealed, nil); !errors.Is(err, ErrDecryptionFailed) {
		t.Errorf("wrong-aad open error = %v, want ErrDecryptionFailed", err)
	}
}

func TestGCMInvalidSizes(t *testing.T) {
	if _, err := GCMSeal(make([]byte, 17), make([]byte, NonceSize), nil, nil, nil); !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("key size error = %v, want ErrInvalidKeySize", err)
	}
	if _, err := GCMSeal(make([]byte, 16), make([]byte, 8), nil, nil, nil); !errors.Is(err, ErrInvalidNonceSize) {
		t.Errorf("nonce size error = %v, want ErrInvalidNonceSize", err)
	}
}
