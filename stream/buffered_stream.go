package stream

import "io"

// BufferedStream pairs a BufferedReader and a BufferedWriter over a single
// bidirectional endpoint such as a network connection. The two halves are
// independent; reads never flush pending writes.
type BufferedStream struct {
	*BufferedReader
	*BufferedWriter
}

var (
	_ Reader        = (*BufferedStream)(nil)
	_ Writer        = (*BufferedStream)(nil)
	_ io.ReadWriter = (*BufferedStream)(nil)
)

// NewBufferedStream returns a stream over rw whose halves both start with the
// given capacity (4096 when non-positive). The read half is expandable.
func NewBufferedStream(rw io.ReadWriter, capacity int) *BufferedStream {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &BufferedStream{
		BufferedReader: NewBufferedReader(rw, capacity, true),
		BufferedWriter: NewBufferedWriter(rw, capacity),
	}
}
