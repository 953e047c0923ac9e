// Package codec converts integers to and from fixed-width little-endian byte
// buffers, the only representation exchanged with callers at the boundary.
package codec

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/hyperhyperspace/pulsar/shared"
)

// DefaultByteLen is wide enough for the 1024-bit system modulus.
const DefaultByteLen = 128

// ByteLen returns the number of bytes needed to hold any value in [0, m).
func ByteLen(m *big.Int) int {
	return (m.BitLen() + 7) / 8
}

func checkBounds(buf []byte, byteLen, offset int) error {
	if byteLen < 0 || offset < 0 || offset > len(buf)-byteLen {
		return fmt.Errorf("%w: offset %d, length %d, buffer size %d", shared.ErrOutOfBounds, offset, byteLen, len(buf))
	}
	return nil
}

// DecodeLittleEndian interprets byteLen bytes of buf starting at offset as an
// unsigned little-endian integer.
func DecodeLittleEndian(buf []byte, byteLen, offset int) (*big.Int, error) {
	if err := checkBounds(buf, byteLen, offset); err != nil {
		return nil, err
	}

	be := make([]byte, byteLen)
	for i := 0; i < byteLen; i++ {
		be[byteLen-1-i] = buf[offset+i]
	}
	return new(big.Int).SetBytes(be), nil
}

// EncodeLittleEndian writes v into byteLen bytes of buf starting at offset,
// least significant byte first, zero padding the high end. Values that are
// negative or do not fit in byteLen bytes are rejected rather than truncated.
func EncodeLittleEndian(v *big.Int, buf []byte, byteLen, offset int) error {
	if err := checkBounds(buf, byteLen, offset); err != nil {
		return err
	}
	if v.Sign() < 0 || v.BitLen() > 8*byteLen {
		return fmt.Errorf("%w: %d-bit value, %d bytes available", shared.ErrEncodingOverflow, v.BitLen(), byteLen)
	}

	be := v.FillBytes(make([]byte, byteLen))
	for i := 0; i < byteLen; i++ {
		buf[offset+i] = be[byteLen-1-i]
	}
	return nil
}

// Encode returns a fresh byteLen wide little-endian encoding of v.
func Encode(v *big.Int, byteLen int) ([]byte, error) {
	buf := make([]byte, byteLen)
	if err := EncodeLittleEndian(v, buf, byteLen, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// DecodeUint64LE reads the 8 bytes at offset as a little-endian uint64.
func DecodeUint64LE(buf []byte, offset int) (uint64, error) {
	if err := checkBounds(buf, 8, offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[offset:]), nil
}

// EncodeUint64LE writes v as 8 little-endian bytes at offset.
func EncodeUint64LE(v uint64, buf []byte, offset int) error {
	if err := checkBounds(buf, 8, offset); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(buf[offset:], v)
	return nil
}
