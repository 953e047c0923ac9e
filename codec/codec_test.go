package codec_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/shared"
)

func TestDecodeLittleEndian(t *testing.T) {
	r := require.New(t)

	v, err := codec.DecodeLittleEndian([]byte{0x01, 0x02, 0x03}, 3, 0)
	r.NoError(err)
	r.Equal(int64(0x030201), v.Int64())

	v, err = codec.DecodeLittleEndian([]byte{0xFF, 0x34, 0x12, 0xFF}, 2, 1)
	r.NoError(err)
	r.Equal(int64(0x1234), v.Int64())

	v, err = codec.DecodeLittleEndian([]byte{0x00, 0x00}, 2, 0)
	r.NoError(err)
	r.Zero(v.Sign())

	v, err = codec.DecodeLittleEndian(nil, 0, 0)
	r.NoError(err)
	r.Zero(v.Sign())
}

func TestEncodeLittleEndian(t *testing.T) {
	r := require.New(t)

	buf := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	r.NoError(codec.EncodeLittleEndian(big.NewInt(0x0102), buf, 3, 1))
	r.Equal([]byte{0xAA, 0x02, 0x01, 0x00, 0xAA}, buf)

	buf = make([]byte, 2)
	r.NoError(codec.EncodeLittleEndian(big.NewInt(0xFFFF), buf, 2, 0))
	r.Equal([]byte{0xFF, 0xFF}, buf)
}

func TestEncodeLittleEndian_Overflow(t *testing.T) {
	r := require.New(t)
	buf := make([]byte, 4)

	err := codec.EncodeLittleEndian(big.NewInt(0x10000), buf, 2, 0)
	r.ErrorIs(err, shared.ErrEncodingOverflow)
	r.Equal([]byte{0, 0, 0, 0}, buf, "buffer must be left untouched")

	err = codec.EncodeLittleEndian(big.NewInt(-1), buf, 4, 0)
	r.ErrorIs(err, shared.ErrEncodingOverflow)
}

func TestOutOfBounds(t *testing.T) {
	buf := make([]byte, 8)

	tests := []struct {
		name    string
		byteLen int
		offset  int
	}{
		{"past end", 8, 1},
		{"too long", 9, 0},
		{"negative offset", 2, -1},
		{"negative length", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.DecodeLittleEndian(buf, tc.byteLen, tc.offset)
			require.ErrorIs(t, err, shared.ErrOutOfBounds)

			err = codec.EncodeLittleEndian(big.NewInt(1), buf, tc.byteLen, tc.offset)
			require.ErrorIs(t, err, shared.ErrOutOfBounds)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	r := require.New(t)
	rnd := rand.New(rand.NewSource(7))

	for _, byteLen := range []int{1, 8, 16, 33, codec.DefaultByteLen, 256} {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(8*byteLen))
		values := []*big.Int{
			big.NewInt(0),
			new(big.Int).Sub(limit, big.NewInt(1)),
			new(big.Int).Rand(rnd, limit),
			new(big.Int).Rand(rnd, limit),
		}

		for _, v := range values {
			buf := make([]byte, byteLen+3)
			r.NoError(codec.EncodeLittleEndian(v, buf, byteLen, 3))

			got, err := codec.DecodeLittleEndian(buf, byteLen, 3)
			r.NoError(err)
			r.Zero(v.Cmp(got), "byteLen %d value %s", byteLen, v)
		}
	}
}

func TestEncode(t *testing.T) {
	buf, err := codec.Encode(big.NewInt(258), 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01, 0x00, 0x00}, buf)

	_, err = codec.Encode(big.NewInt(258), 1)
	require.ErrorIs(t, err, shared.ErrEncodingOverflow)
}

func TestByteLen(t *testing.T) {
	require.Equal(t, 1, codec.ByteLen(big.NewInt(23)))
	require.Equal(t, 1, codec.ByteLen(big.NewInt(255)))
	require.Equal(t, 2, codec.ByteLen(big.NewInt(256)))

	p, _ := new(big.Int).SetString("297010851887946822574352571639152315287", 10)
	require.Equal(t, 16, codec.ByteLen(p))
}

func TestUint64LE(t *testing.T) {
	r := require.New(t)

	buf := make([]byte, 10)
	r.NoError(codec.EncodeUint64LE(0x0807060504030201, buf, 1))
	r.Equal([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 0}, buf)

	v, err := codec.DecodeUint64LE(buf, 1)
	r.NoError(err)
	r.Equal(uint64(0x0807060504030201), v)

	_, err = codec.DecodeUint64LE(buf, 3)
	r.ErrorIs(err, shared.ErrOutOfBounds)
	r.ErrorIs(codec.EncodeUint64LE(1, buf, 3), shared.ErrOutOfBounds)
}
