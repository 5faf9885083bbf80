// Package stream implements a buffered byte-stream engine.
//
// It sits between an unbuffered source or sink (any io.Reader / io.Writer:
// sockets, files, byte slices) and consumers that need efficient access to a
// byte sequence:
//
//   - BufferedReader fills a growable (or fixed) buffer from a source and hands
//     out zero-copy windows: Peek, Next, ReadWhile.
//   - BufferedWriter accumulates writes and flushes them in large chunks,
//     passing very large writes straight through.
//   - BufferedStream pairs both over one bidirectional endpoint.
//   - MemoryStream is a standalone random-access buffer with seek semantics.
//
// Higher level operations (ReadUntil, ReadLine, ConsumeSequence, ReadAllowed,
// ReadInt, WriteInt, ...) are written once against the Reader and Writer
// interfaces, so every implementation shares the same behaviour.
//
// Windows returned by Peek, Next and ReadWhile point into the stream's own
// buffer. They stay valid until the next call on the same stream; callers that
// need the bytes for longer must copy them (see ReadBytes).
//
// A stream is owned by a single goroutine. Nothing here is safe for concurrent
// use.
package stream

import "io"

// PredicateMode decides what happens when the source runs dry in the middle of
// a predicate scan.
type PredicateMode int

const (
	// Strict treats exhaustion before the predicate stopped as
	// ErrInsufficientData. The read cursor is left where the scan started.
	Strict PredicateMode = iota
	// UntilEnd treats exhaustion as a successful terminator.
	UntilEnd
)

func (m PredicateMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case UntilEnd:
		return "until-end"
	}
	return "unknown"
}

// Reader is the primitive read surface every stream provides. The derived
// operations in this package are implemented in terms of it.
type Reader interface {
	// Cache tries to make n bytes available without consuming them. It reports
	// false instead of failing when the source is exhausted first.
	Cache(n int) (bool, error)

	// PeekByte returns the next byte without consuming it.
	PeekByte() (byte, error)

	// Peek returns a window over the next n bytes without consuming them.
	Peek(n int) ([]byte, error)

	// Next returns a window over the next n bytes and consumes them.
	Next(n int) ([]byte, error)

	// ReadByte consumes and returns the next byte.
	ReadByte() (byte, error)

	// ReadWhile consumes bytes while pred holds and returns them as a window.
	ReadWhile(mode PredicateMode, pred func(byte) bool) ([]byte, error)

	// Discard consumes n bytes.
	Discard(n int) error

	// ConsumeByte consumes the next byte only if it equals b.
	ConsumeByte(b byte) (bool, error)

	// ConsumeWhile discards bytes while pred holds.
	ConsumeWhile(mode PredicateMode, pred func(byte) bool) error
}

// Writer is the primitive write surface every stream provides.
type Writer interface {
	io.Writer
	io.ByteWriter

	// Flush pushes buffered bytes to the underlying sink, if any.
	Flush() error
}
