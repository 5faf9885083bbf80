package stream

import "io"

// BufferedWriter accumulates writes for an io.Writer and forwards them in
// capacity-sized chunks. The buffer is flushed automatically as soon as it is
// full; anything left over has to be pushed with Flush.
type BufferedWriter struct {
	dst io.Writer
	buf []byte
	n   int
}

var _ Writer = (*BufferedWriter)(nil)

// NewBufferedWriter returns a writer over dst. A non-positive capacity selects
// the default of 4096 bytes.
func NewBufferedWriter(dst io.Writer, capacity int) *BufferedWriter {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &BufferedWriter{
		dst: dst,
		buf: make([]byte, capacity),
	}
}

// Buffered returns the number of bytes waiting to be flushed.
func (bw *BufferedWriter) Buffered() int { return bw.n }

// Available returns the free space left in the buffer.
func (bw *BufferedWriter) Available() int { return len(bw.buf) - bw.n }

// Capacity returns the buffer size.
func (bw *BufferedWriter) Capacity() int { return len(bw.buf) }

// writeAll pushes p to the sink, looping over partial writes.
func (bw *BufferedWriter) writeAll(p []byte) (int, error) {
	sent := 0
	for sent < len(p) {
		n, err := bw.dst.Write(p[sent:])
		if n < 0 || n > len(p)-sent {
			n = 0
			if err == nil {
				err = io.ErrShortWrite
			}
		}
		sent += n
		if err != nil {
			return sent, err
		}
		if n == 0 {
			return sent, io.ErrShortWrite
		}
	}
	return sent, nil
}

// Flush sends every buffered byte to the sink. On error the unsent bytes stay
// buffered, in order, so a later Flush can retry them.
func (bw *BufferedWriter) Flush() error {
	if bw.n == 0 {
		return nil
	}
	sent, err := bw.writeAll(bw.buf[:bw.n])
	if sent > 0 && sent < bw.n {
		copy(bw.buf, bw.buf[sent:bw.n])
	}
	bw.n -= sent
	return err
}

// Write buffers p. When p does not fit, the free space is filled and flushed
// and the remainder is buffered; a chunk too large for that is written to the
// sink directly after the pending bytes.
func (bw *BufferedWriter) Write(p []byte) (int, error) {
	available := bw.Available()
	switch {
	case len(p) <= available:
		bw.n += copy(bw.buf[bw.n:], p)
		if bw.n == len(bw.buf) {
			if err := bw.Flush(); err != nil {
				return len(p), err
			}
		}
		return len(p), nil

	case len(p)-available < len(bw.buf):
		bw.n += copy(bw.buf[bw.n:], p[:available])
		if err := bw.Flush(); err != nil {
			return available, err
		}
		bw.n = copy(bw.buf, p[available:])
		return len(p), nil

	default:
		if err := bw.Flush(); err != nil {
			return 0, err
		}
		return bw.writeAll(p)
	}
}

func (bw *BufferedWriter) WriteByte(c byte) error {
	if bw.Available() == 0 {
		if err := bw.Flush(); err != nil {
			return err
		}
	}
	bw.buf[bw.n] = c
	bw.n++
	if bw.n == len(bw.buf) {
		return bw.Flush()
	}
	return nil
}

func (bw *BufferedWriter) WriteString(s string) (int, error) {
	return bw.Write([]byte(s))
}
