// Package substream carves bounded views out of a parent stream and writes
// length-prefixed frames into one.
//
// A frame is a big-endian integer header of type T followed by the payload.
// The header either counts the payload alone or, with includingHeader, the
// payload plus the header's own width.
package substream

import (
	"errors"
	"fmt"

	"github.com/rony4d/go-bytestream/stream"
	"github.com/rony4d/go-bytestream/utils/fast"
)

var (
	// ErrInvalidHeader is returned when a length header decodes to a negative
	// payload size.
	ErrInvalidHeader = errors.New("substream: invalid header")

	// ErrPayloadTooLarge is returned when a payload length cannot be expressed
	// by the header type.
	ErrPayloadTooLarge = errors.New("substream: payload too large")
)

// Reader is a bounded view over part of a parent stream.
type Reader interface {
	stream.Reader

	// Limit returns the size of the view.
	Limit() int
	// Empty reports whether the whole view has been consumed.
	Empty() bool
}

// Writer collects a frame payload before it is sent to the parent.
type Writer interface {
	stream.Writer

	// Len returns the number of payload bytes written so far.
	Len() int
}

var (
	_ Reader = (*fast.Reader)(nil)
	_ Writer = (*fast.Writer)(nil)
)

// WithReader hands the next n bytes of parent to body as an independent
// Reader. The parent advances by exactly n bytes whatever body consumes.
//
// The view borrows the parent's buffer: body must not use parent, and must
// not keep the view after it returns.
func WithReader[R any](parent stream.Reader, n int, body func(Reader) (R, error)) (R, error) {
	var zero R
	window, err := parent.Next(n)
	if err != nil {
		return zero, err
	}
	return body(fast.NewReader(window))
}

// WithReaderSizedBy reads a header of type T from parent and hands the payload
// it describes to body, as WithReader does.
func WithReaderSizedBy[T stream.Integer, R any](parent stream.Reader, includingHeader bool, body func(Reader) (R, error)) (R, error) {
	var zero R
	header, err := stream.ReadInt[T](parent)
	if err != nil {
		return zero, err
	}
	n, err := payloadSize(header, includingHeader)
	if err != nil {
		return zero, err
	}
	return WithReader(parent, n, body)
}

func payloadSize[T stream.Integer](header T, includingHeader bool) (int, error) {
	n := int(header)
	if header < 0 || n < 0 || uint64(n) != uint64(header) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeader, header)
	}
	if includingHeader {
		n -= stream.SizeOf[T]()
		if n < 0 {
			return 0, fmt.Errorf("%w: %d is shorter than the header itself", ErrInvalidHeader, header)
		}
	}
	return n, nil
}

// WithWriterSizedBy lets task write a payload, then writes a header of type T
// followed by the payload to parent. Nothing reaches parent when task fails or
// the payload is too large for T.
func WithWriterSizedBy[T stream.Integer](parent stream.Writer, includingHeader bool, task func(Writer) error) error {
	payload := fast.NewWriter(nil)
	if err := task(payload); err != nil {
		return err
	}
	length := payload.Len()
	if includingHeader {
		length += stream.SizeOf[T]()
	}
	header := T(length)
	if header < 0 || uint64(header) != uint64(length) {
		return fmt.Errorf("%w: %d bytes in a %d-byte header", ErrPayloadTooLarge, length, stream.SizeOf[T]())
	}
	if err := stream.WriteInt(parent, header); err != nil {
		return err
	}
	_, err := parent.Write(payload.Bytes())
	return err
}
