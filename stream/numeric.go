package stream

import (
	"unsafe"

	"github.com/Fantom-foundation/lachesis-base/common/bigendian"
)

// Integer is any explicitly sized integer type. Values travel in big-endian
// order using exactly SizeOf[T] bytes. int, uint and uintptr are left out
// because their width, and so the wire format, depends on the platform.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Integer]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// EncodeInt returns the big-endian encoding of v.
func EncodeInt[T Integer](v T) []byte {
	return bigendian.Uint64ToBytes(uint64(v))[8-SizeOf[T]():]
}

// DecodeInt decodes a big-endian value of type T from the first SizeOf[T]
// bytes of b.
func DecodeInt[T Integer](b []byte) T {
	var wide [8]byte
	size := SizeOf[T]()
	copy(wide[8-size:], b[:size])
	return T(bigendian.BytesToUint64(wide[:]))
}

// ReadInt consumes a big-endian T.
func ReadInt[T Integer](r Reader) (T, error) {
	window, err := r.Next(SizeOf[T]())
	if err != nil {
		return 0, err
	}
	return DecodeInt[T](window), nil
}

// PeekInt decodes a big-endian T without consuming it.
func PeekInt[T Integer](r Reader) (T, error) {
	window, err := r.Peek(SizeOf[T]())
	if err != nil {
		return 0, err
	}
	return DecodeInt[T](window), nil
}

// WriteInt writes v in big-endian order.
func WriteInt[T Integer](w Writer, v T) error {
	_, err := w.Write(EncodeInt(v))
	return err
}
