package fast

// buffer.go provides byte-array streams: a Reader over a fixed slice and a
// Writer that appends to a growing slice.
//
// Purpose:
// - Framed payloads are usually already in memory. Decoding them does not need
//   a source, a feed loop or a growth policy, only a cursor over a slice.
// - Both types satisfy the stream package interfaces, so every derived
//   operation (ReadInt, ReadLine, ReadUntil, ...) works on them unchanged.
// - Reading past the end reports stream.ErrInsufficientData instead of
//   panicking; the cursor is left where it was.

import (
	"io"

	"github.com/rony4d/go-bytestream/stream"
)

type Reader struct {
	// buf is the underlying data source.
	buf []byte
	// offset tracks the current reading position (cursor).
	offset int
}

type Writer struct {
	// buf is the accumulating byte slice.
	buf []byte
}

var (
	_ stream.Reader = (*Reader)(nil)
	_ io.Reader     = (*Reader)(nil)
	_ stream.Writer = (*Writer)(nil)
)

// NewReader creates a Reader to consume the provided byte slice.
// The slice is not copied; windows returned by Next and Peek share its memory.
func NewReader(bb []byte) *Reader {
	return &Reader{
		buf:    bb,
		offset: 0,
	}
}

// NewWriter creates a Writer that appends to the provided initial slice.
// Often called with `make([]byte, 0, capacity)` to pre-allocate memory.
func NewWriter(bb []byte) *Writer {
	return &Writer{
		buf: bb,
	}
}

// WriteByte appends a single byte to the buffer. It never fails.
func (b *Writer) WriteByte(v byte) error {
	b.buf = append(b.buf, v)
	return nil
}

// Write appends a slice of bytes (bulk write) to the buffer. It never fails.
func (b *Writer) Write(v []byte) (int, error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Writer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Flush is a no-op; everything written is already in Bytes.
func (b *Writer) Flush() error { return nil }

// Len returns the number of bytes written so far.
func (b *Writer) Len() int { return len(b.buf) }

// Reset empties the Writer, keeping the allocated memory.
func (b *Writer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the accumulated content of the Writer.
func (b *Writer) Bytes() []byte {
	return b.buf
}

// remain is the number of unread bytes.
func (b *Reader) remain() int { return len(b.buf) - b.offset }

// Cache reports whether n more bytes are available. The input never grows, so
// false is final.
func (b *Reader) Cache(n int) (bool, error) {
	if n < 0 {
		return false, stream.ErrNegativeCount
	}
	return n <= b.remain(), nil
}

// Peek returns the next n bytes without consuming them.
func (b *Reader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, stream.ErrNegativeCount
	}
	if n > b.remain() {
		return nil, stream.ErrInsufficientData
	}
	return b.buf[b.offset : b.offset+n : b.offset+n], nil
}

// Next consumes and returns the next n bytes.
//
// Note: the returned slice *shares memory* with the original buffer.
// Modifying it will modify the original buffer.
func (b *Reader) Next(n int) ([]byte, error) {
	res, err := b.Peek(n)
	if err != nil {
		return nil, err
	}
	b.offset += n
	return res, nil
}

func (b *Reader) PeekByte() (byte, error) {
	if b.Empty() {
		return 0, stream.ErrInsufficientData
	}
	return b.buf[b.offset], nil
}

// ReadByte consumes and returns a single byte.
func (b *Reader) ReadByte() (byte, error) {
	res, err := b.PeekByte()
	if err != nil {
		return 0, err
	}
	b.offset++
	return res, nil
}

// Read implements io.Reader, copying out of the remaining bytes.
func (b *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if b.Empty() {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.offset:])
	b.offset += n
	return n, nil
}

func (b *Reader) scan(mode stream.PredicateMode, pred func(byte) bool) (int, error) {
	for i := b.offset; i < len(b.buf); i++ {
		if !pred(b.buf[i]) {
			return i - b.offset, nil
		}
	}
	if mode == stream.Strict {
		return 0, stream.ErrInsufficientData
	}
	return b.remain(), nil
}

// ReadWhile consumes and returns the bytes accepted by pred.
func (b *Reader) ReadWhile(mode stream.PredicateMode, pred func(byte) bool) ([]byte, error) {
	n, err := b.scan(mode, pred)
	if err != nil {
		return nil, err
	}
	return b.Next(n)
}

func (b *Reader) ConsumeWhile(mode stream.PredicateMode, pred func(byte) bool) error {
	n, err := b.scan(mode, pred)
	if err != nil {
		return err
	}
	b.offset += n
	return nil
}

func (b *Reader) Discard(n int) error {
	_, err := b.Next(n)
	return err
}

func (b *Reader) ConsumeByte(v byte) (bool, error) {
	c, err := b.PeekByte()
	if err != nil || c != v {
		return false, err
	}
	b.offset++
	return true, nil
}

// Position returns the current cursor index of the Reader.
// Useful for determining how many bytes have been consumed.
func (b *Reader) Position() int {
	return b.offset
}

// Limit returns the total number of bytes the Reader was created over.
func (b *Reader) Limit() int {
	return len(b.buf)
}

// Bytes returns the entire underlying buffer of the Reader.
func (b *Reader) Bytes() []byte {
	return b.buf
}

// Empty checks if the Reader has reached the end of the buffer.
// Returns true if there are no more bytes to read.
func (b *Reader) Empty() bool {
	return len(b.buf) == b.offset
}
