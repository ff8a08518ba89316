package sframe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 7, 8, 0xff, 0x100, 0xffff, 0x10000,
		0xaabbccdd, 1 << 40, 1<<48 - 1, 1<<56 - 1,
	}

	buf := make([]byte, MaxOverhead)
	for _, kid := range values {
		for _, ctr := range values {
			n, err := encodeHeader(KeyID(kid), Counter(ctr), buf)
			require.NoError(t, err, "encode kid=%#x ctr=%#x", kid, ctr)

			wantSize, err := headerSize(KeyID(kid), Counter(ctr))
			require.NoError(t, err)
			require.Equal(t, wantSize, n)

			hdr, size, err := decodeHeader(buf[:n])
			require.NoError(t, err, "decode kid=%#x ctr=%#x", kid, ctr)
			require.Equal(t, n, size)
			require.Equal(t, KeyID(kid), hdr.keyID)
			require.Equal(t, Counter(ctr), hdr.counter)
		}
	}
}

func TestHeaderKnownEncodings(t *testing.T) {
	tests := []struct {
		name string
		kid  KeyID
		ctr  Counter
		want []byte
	}{
		{"short KID zero counter", 0x07, 0, []byte{0x17, 0x00}},
		{"short KID counter 2", 0x07, 2, []byte{0x17, 0x02}},
		{"smallest KID", 0x00, 0, []byte{0x10, 0x00}},
		{"long KID", 0xffff, 0, []byte{0x1a, 0xff, 0xff, 0x00}},
		{"long KID two-byte counter", 0xffff, 0x0100, []byte{0x2a, 0xff, 0xff, 0x01, 0x00}},
		{"one-byte long KID", 0x08, 0, []byte{0x19, 0x08, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, MaxOverhead)
			n, err := encodeHeader(tt.kid, tt.ctr, buf)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf[:n])
		})
	}
}

func TestHeaderOverflow(t *testing.T) {
	buf := make([]byte, MaxOverhead)

	_, err := encodeHeader(KeyID(1)<<56, 0, buf)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = encodeHeader(7, Counter(1)<<56, buf)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = headerSize(KeyID(1)<<63, 0)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestHeaderEncodeBufferTooSmall(t *testing.T) {
	_, err := encodeHeader(0xffff, 0x0100, make([]byte, 4))
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestDecodeHeaderShortInput(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"truncated long KID", []byte{0x1a, 0xff}},
		{"missing counter", []byte{0x1a, 0xff, 0xff}},
		{"truncated counter", []byte{0x2a, 0xff, 0xff, 0x01}},
		{"short KID missing counter", []byte{0x17}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeHeader(tt.in)
			require.ErrorIs(t, err, ErrShortCiphertext)
		})
	}
}
