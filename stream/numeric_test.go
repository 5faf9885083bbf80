package stream

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip[T Integer](t *testing.T, values ...T) {
	t.Helper()
	s := NewMemoryStream(0)
	for _, v := range values {
		require.NoError(t, WriteInt(s, v))
	}
	require.Equal(t, len(values)*SizeOf[T](), s.Len())

	_, err := s.Seek(0, 0)
	require.NoError(t, err)
	for _, want := range values {
		peeked, err := PeekInt[T](s)
		require.NoError(t, err)
		got, err := ReadInt[T](s)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, want, peeked)
	}
	_, err = ReadInt[T](s)
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestInt_roundTrip(t *testing.T) {
	roundTrip[int8](t, 0, 1, -1, math.MinInt8, math.MaxInt8)
	roundTrip[uint8](t, 0, 1, math.MaxUint8)
	roundTrip[int16](t, 0, -2, math.MinInt16, math.MaxInt16)
	roundTrip[uint16](t, 0, 0x0102, math.MaxUint16)
	roundTrip[int32](t, 0, -3, math.MinInt32, math.MaxInt32)
	roundTrip[uint32](t, 0, 0xDEADBEEF, math.MaxUint32)
	roundTrip[int64](t, 0, -4, math.MinInt64, math.MaxInt64)
	roundTrip[uint64](t, 0, 0x0102030405060708, math.MaxUint64)
	roundTrip[frameLength](t, 0, 13, math.MaxUint16)
	roundTrip[offset](t, -6, math.MinInt32, math.MaxInt32)
}

type (
	frameLength uint16
	offset      int32
)

func TestInt_namedTypesKeepTheirWidth(t *testing.T) {
	require := require.New(t)

	require.Equal(2, SizeOf[frameLength]())
	require.Equal(4, SizeOf[offset]())
	require.Equal([]byte{0x00, 0x0D}, EncodeInt(frameLength(13)))
	require.Equal([]byte{0xFF, 0xFF, 0xFF, 0xFA}, EncodeInt(offset(-6)))
}

func TestInt_bigEndian(t *testing.T) {
	require := require.New(t)

	require.Equal([]byte{0x01, 0x02}, EncodeInt(uint16(0x0102)))
	require.Equal([]byte{0xFF, 0xFE}, EncodeInt(int16(-2)))
	require.Equal([]byte{0x01, 0x02, 0x03, 0x04}, EncodeInt(uint32(0x01020304)))
	require.Equal([]byte{0x80}, EncodeInt(int8(math.MinInt8)))

	require.Equal(uint16(0x0D), DecodeInt[uint16]([]byte{0x00, 0x0D, 0xFF}))
	require.Equal(int32(-1), DecodeInt[int32]([]byte{0xFF, 0xFF, 0xFF, 0xFF}))

	require.Equal(1, SizeOf[uint8]())
	require.Equal(2, SizeOf[int16]())
	require.Equal(4, SizeOf[uint32]())
	require.Equal(8, SizeOf[int64]())
}

func TestInt_bufferedReader(t *testing.T) {
	require := require.New(t)
	r := NewBufferedReader(NewMemoryStreamFrom([]byte{0x00, 0x2A, 0x01}), 0, true)

	v, err := ReadInt[uint16](r)
	require.NoError(err)
	require.Equal(uint16(42), v)

	_, err = ReadInt[uint16](r)
	require.ErrorIs(err, ErrInsufficientData)
	require.Equal(1, r.Buffered())
}
