package fast

import (
	"bytes"
	"crypto/rand"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-bytestream/stream"
)

// TestBuffer_Integration verifies the complete lifecycle of writing and reading.
// It ensures that data written via Writer is correctly retrieved via Reader.
func TestBuffer_Integration(t *testing.T) {
	const N = 100
	var (
		w *Writer
		r *Reader
		// Custom byte sequence to test bulk writing/reading
		extraData = []byte{0, 0, 0xFF, 9, 0}
	)

	// Phase 1: Verify Write Operations
	t.Run("Writer", func(t *testing.T) {
		require := require.New(t)

		w = NewWriter(make([]byte, 0, N/2))

		for i := byte(0); i < N; i++ {
			require.NoError(w.WriteByte(i))
		}
		require.Equal(N, w.Len(), "Writer should contain N bytes")

		n, err := w.Write(extraData)
		require.NoError(err)
		require.Equal(len(extraData), n)
		require.Equal(N+len(extraData), w.Len(), "Writer should contain N + extra bytes")

		// Derived operations see a Writer like any other stream
		require.NoError(stream.WriteInt(w, uint16(0xBEEF)))
		require.NoError(w.Flush())
	})

	// Phase 2: Verify Read Operations using the data written in Phase 1
	t.Run("Reader", func(t *testing.T) {
		require := require.New(t)

		r = NewReader(w.Bytes())

		require.Equal(N+len(extraData)+2, r.Limit(), "Reader buffer size mismatch")
		require.False(r.Empty(), "New reader should not be empty")
		require.Equal(0, r.Position(), "New reader should start at position 0")

		for exp := byte(0); exp < N; exp++ {
			got, err := r.ReadByte()
			require.NoError(err)
			require.Equal(exp, got, "ReadByte mismatch at index %d", exp)
		}
		require.Equal(N, r.Position(), "Position should match number of bytes read")

		got, err := r.Next(len(extraData))
		require.NoError(err)
		require.Equal(extraData, got, "Next() mismatch for bulk data")

		v, err := stream.ReadInt[uint16](r)
		require.NoError(err)
		require.Equal(uint16(0xBEEF), v)

		require.True(r.Empty(), "Reader should be empty after reading all bytes")
		require.Equal(r.Limit(), r.Position(), "Final position should match total length")
	})
}

// TestBuffer_Boundaries adds specific checks for edge cases like empty buffers,
// single-byte buffers, and reads past the end.
func TestBuffer_Boundaries(t *testing.T) {
	t.Run("Empty Buffer", func(t *testing.T) {
		r := NewReader([]byte{})
		require.True(t, r.Empty(), "Reader initialized with empty slice should be empty")
		require.Equal(t, 0, r.Position())

		_, err := r.ReadByte()
		require.ErrorIs(t, err, stream.ErrInsufficientData)
	})

	t.Run("Partial Reads", func(t *testing.T) {
		data := []byte{1, 2, 3, 4, 5}
		r := NewReader(data)

		chunk1, err := r.Next(2)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2}, chunk1)
		require.Equal(t, 2, r.Position())
		require.False(t, r.Empty())

		b, err := r.ReadByte()
		require.NoError(t, err)
		require.Equal(t, byte(3), b)

		// Too long: nothing is consumed
		_, err = r.Next(3)
		require.ErrorIs(t, err, stream.ErrInsufficientData)
		require.Equal(t, 3, r.Position())

		ok, err := r.Cache(2)
		require.NoError(t, err)
		require.True(t, ok)

		chunk2, err := r.Next(2)
		require.NoError(t, err)
		require.Equal(t, []byte{4, 5}, chunk2)
		require.True(t, r.Empty())
	})

	t.Run("Negative Counts", func(t *testing.T) {
		r := NewReader([]byte{1, 2})

		ok, err := r.Cache(-1)
		require.ErrorIs(t, err, stream.ErrNegativeCount)
		require.False(t, ok)

		_, err = r.Peek(-1)
		require.ErrorIs(t, err, stream.ErrNegativeCount)
		_, err = r.Next(-1)
		require.ErrorIs(t, err, stream.ErrNegativeCount)
		require.ErrorIs(t, r.Discard(-1), stream.ErrNegativeCount)
		require.Equal(t, 0, r.Position())
	})

	t.Run("Predicates", func(t *testing.T) {
		r := NewReader([]byte("abc 123"))

		word, err := stream.ReadAllowed(r, stream.Letters)
		require.NoError(t, err)
		require.Equal(t, "abc", string(word))

		ok, err := r.ConsumeByte(' ')
		require.NoError(t, err)
		require.True(t, ok)

		_, err = stream.ReadUntil(r, ' ')
		require.ErrorIs(t, err, stream.ErrInsufficientData)
		require.Equal(t, 4, r.Position())

		digits, err := stream.ReadUntilEnd(r)
		require.NoError(t, err)
		require.Equal(t, "123", string(digits))
	})

	t.Run("io.Reader", func(t *testing.T) {
		data := []byte("the quick brown fox")
		require.NoError(t, iotest.TestReader(NewReader(data), data))
	})

	t.Run("Write to nil buffer", func(t *testing.T) {
		// Verify Writer handles nil initialization gracefully (append works on nil slices)
		w := NewWriter(nil)
		require.NoError(t, w.WriteByte(0xAA))
		require.Equal(t, []byte{0xAA}, w.Bytes())

		w.Reset()
		require.Equal(t, 0, w.Len())
	})
}

// Benchmark compares the byte-array streams against standard library
// bytes.Buffer (for writes) and bytes.Reader (for reads).
func Benchmark(b *testing.B) {
	b.Run("Write", func(b *testing.B) {
		b.Run("Std", func(b *testing.B) {
			w := bytes.NewBuffer(make([]byte, 0, b.N))
			for i := 0; i < b.N; i++ {
				w.WriteByte(byte(i))
			}
			// Sanity check to ensure compiler doesn't optimize away the loop
			require.Equal(b, b.N, len(w.Bytes()))
		})
		b.Run("Fast", func(b *testing.B) {
			w := NewWriter(make([]byte, 0, b.N))
			for i := 0; i < b.N; i++ {
				_ = w.WriteByte(byte(i))
			}
			require.Equal(b, b.N, len(w.Bytes()))
		})
	})

	b.Run("Read", func(b *testing.B) {
		src := make([]byte, 1000)
		rand.Read(src)

		b.Run("Std", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := bytes.NewReader(src)
				for j := 0; j < len(src); j++ {
					_, _ = r.ReadByte()
				}
			}
		})
		b.Run("Fast", func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r := NewReader(src)
				for j := 0; j < len(src); j++ {
					_, _ = r.ReadByte()
				}
			}
		})
	})
}
