package stream

import "errors"

// Errors surfaced by every stream in this package and by the byte-array and
// sub-stream implementations built on top of it. Compare with errors.Is.
var (
	// ErrInsufficientData is returned when the source is exhausted before a
	// strict request could be satisfied. The caller may retry once more data
	// is available or treat it as end of input.
	ErrInsufficientData = errors.New("stream: insufficient data")

	// ErrNotEnoughSpace is returned when a fixed-capacity buffer cannot hold
	// the requested bytes. It is never retried internally.
	ErrNotEnoughSpace = errors.New("stream: not enough space")

	// ErrInvalidSeekOffset is returned when a seek would move the position
	// outside [0, end]. The position is left untouched.
	ErrInvalidSeekOffset = errors.New("stream: invalid seek offset")

	// ErrNegativeCount is returned by Cache, Peek, Next, Discard and Ensure
	// when asked for a negative number of bytes.
	ErrNegativeCount = errors.New("stream: negative count")
)

// ErrFull is an alias of ErrNotEnoughSpace.
var ErrFull = ErrNotEnoughSpace
