package sframe

import "fmt"

// KeyID identifies the key a ciphertext was protected under. Values up
// to 2^56-1 are encodable in the header.
type KeyID uint64

// Counter is the per-key monotonic send counter carried in the header.
type Counter uint64

// MaxOverhead bounds the number of bytes Protect adds to a plaintext:
// 17 header bytes plus the largest (16-byte) authentication tag. The
// headers encoded here are at most 15 bytes, so the actual overhead
// never exceeds 31 bytes.
const MaxOverhead = 17 + 16

const minHeaderSize = 1

// header is the decoded SFrame header.
type header struct {
	keyID   KeyID
	counter Counter
}

// uintSize returns the minimal big-endian encoding length of val, with
// zero occupying one byte.
func uintSize(val uint64) int {
	size := 1
	for val>>(8*size) > 0 {
		size++
	}
	return size
}

// encodeUint writes the size-byte big-endian encoding of val.
func encodeUint(val uint64, buf []byte, size int) {
	for i := 0; i < size; i++ {
		buf[size-i-1] = byte(val >> (8 * i))
	}
}

// decodeUint reads a big-endian unsigned integer from buf.
func decodeUint(buf []byte) uint64 {
	var val uint64
	for _, b := range buf {
		val = val<<8 | uint64(b)
	}
	return val
}

// headerSize returns the encoded size of the header for (kid, ctr), or
// ErrInvalidParameter if either value needs more than 7 bytes.
func headerSize(kid KeyID, ctr Counter) (int, error) {
	kidSize := 0
	if kid > 0x07 {
		kidSize = uintSize(uint64(kid))
	}
	ctrSize := uintSize(uint64(ctr))
	if kidSize > 0x07 || ctrSize > 0x07 {
		return 0, fmt.Errorf("%w: header value overflow", ErrInvalidParameter)
	}
	return 1 + kidSize + ctrSize, nil
}

// encodeHeader writes the header for (kid, ctr) into buf and returns the
// number of bytes written. The config byte packs the counter length into
// bits 4-6 and either the KeyID value (KeyID <= 7) or the long-KID flag
// 0x08 plus the KeyID length into the low nibble.
func encodeHeader(kid KeyID, ctr Counter, buf []byte) (int, error) {
	size, err := headerSize(kid, ctr)
	if err != nil {
		return 0, err
	}
	if len(buf) < size {
		return 0, fmt.Errorf("%w: need %d bytes for header", ErrBufferTooSmall, size)
	}

	kidSize := 0
	if kid > 0x07 {
		kidSize = uintSize(uint64(kid))
		encodeUint(uint64(kid), buf[1:], kidSize)
	}
	ctrSize := uintSize(uint64(ctr))
	encodeUint(uint64(ctr), buf[1+kidSize:], ctrSize)

	buf[0] = byte(ctrSize << 4)
	if kid <= 0x07 {
		buf[0] |= byte(kid)
	} else {
		buf[0] |= 0x08 | byte(kidSize)
	}

	return size, nil
}

// decodeHeader parses the header at the start of buf, returning the
// header and its encoded size.
func decodeHeader(buf []byte) (header, int, error) {
	if len(buf) < minHeaderSize {
		return header{}, 0, fmt.Errorf("%w: cannot decode header", ErrShortCiphertext)
	}

	cfg := buf[0]
	ctrSize := int(cfg>>4) & 0x07
	kidLong := cfg&0x08 != 0
	kidSize := int(cfg) & 0x07

	kid := KeyID(kidSize)
	if kidLong {
		if len(buf) < 1+kidSize {
			return header{}, 0, fmt.Errorf("%w: cannot decode KeyID", ErrShortCiphertext)
		}
		kid = KeyID(decodeUint(buf[1 : 1+kidSize]))
	} else {
		kidSize = 0
	}

	if len(buf) < 1+kidSize+ctrSize {
		return header{}, 0, fmt.Errorf("%w: cannot decode counter", ErrShortCiphertext)
	}
	ctr := Counter(decodeUint(buf[1+kidSize : 1+kidSize+ctrSize]))

	return header{keyID: kid, counter: ctr}, 1 + kidSize + ctrSize, nil
}
