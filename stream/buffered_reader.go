package stream

import (
	"errors"
	"io"
)

var errNegativeRead = errors.New("stream: reader returned negative count from Read")

// BufferedReader adds a growable read buffer to an io.Reader and exposes the
// Reader operations as zero-copy windows into it.
//
// A capacity of zero defers allocation until the first request. Requests
// larger than the current storage grow an expandable reader; a fixed reader
// fails them with ErrNotEnoughSpace instead.
type BufferedReader struct {
	src io.Reader
	buf buffer
	err error // source error held back while bytes were being delivered
}

var (
	_ Reader    = (*BufferedReader)(nil)
	_ io.Reader = (*BufferedReader)(nil)
)

// NewBufferedReader returns a reader over src with the given initial capacity.
func NewBufferedReader(src io.Reader, capacity int, expandable bool) *BufferedReader {
	if capacity < 0 {
		capacity = 0
	}
	return &BufferedReader{
		src: src,
		buf: newBuffer(capacity, expandable),
	}
}

// Buffered returns the number of unread bytes held in the buffer.
func (br *BufferedReader) Buffered() int { return br.buf.buffered() }

// Capacity returns the size of the current storage.
func (br *BufferedReader) Capacity() int { return br.buf.allocated() }

// Expandable reports whether the storage may grow.
func (br *BufferedReader) Expandable() bool { return br.buf.expandable }

// Reset drops every buffered byte and any held back source error. The storage
// is kept.
func (br *BufferedReader) Reset() {
	br.buf.clear()
	br.err = nil
}

// readSource performs one logical read from the source.
//
// It returns (0, nil) once the source is exhausted. A non-EOF error that
// arrives together with data is held back and surfaced by the next call.
func (br *BufferedReader) readSource(p []byte) (int, error) {
	if br.err != nil {
		err := br.err
		br.err = nil
		return 0, err
	}
	for i := maxConsecutiveEmptyReads; i > 0; i-- {
		n, err := br.src.Read(p)
		if n < 0 || n > len(p) {
			panic(errNegativeRead)
		}
		if n > 0 {
			if err != nil && err != io.EOF {
				br.err = err
			}
			return n, nil
		}
		if err == io.EOF {
			return 0, nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

// Ensure makes room for n more bytes after the buffered ones, compacting or
// growing the storage as needed. A fixed reader that cannot fit them fails
// with ErrNotEnoughSpace.
func (br *BufferedReader) Ensure(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	return br.buf.ensure(n)
}

// Feed performs one source read into the free space after the buffered bytes
// and returns how many bytes arrived. Zero means the source is exhausted.
// It fails with ErrNotEnoughSpace when there is no free space to read into.
func (br *BufferedReader) Feed() (int, error) {
	tail := br.buf.tail()
	if len(tail) == 0 {
		return 0, ErrNotEnoughSpace
	}
	n, err := br.readSource(tail)
	br.buf.w += n
	return n, err
}

// fill makes at least n bytes available, feeding as many times as needed.
func (br *BufferedReader) fill(n int) error {
	buffered := br.buf.buffered()
	if n <= buffered {
		return nil
	}
	request := n - buffered
	if n > br.buf.allocated() {
		request = n
	}
	if err := br.buf.ensure(request); err != nil {
		return err
	}
	for br.buf.buffered() < n {
		read, err := br.Feed()
		if err != nil {
			return err
		}
		if read == 0 {
			return ErrInsufficientData
		}
	}
	return nil
}

// Cache makes n bytes available without consuming them. It returns false,
// with a nil error, when the source runs out first; whatever did arrive stays
// buffered.
func (br *BufferedReader) Cache(n int) (bool, error) {
	if n < 0 {
		return false, ErrNegativeCount
	}
	if err := br.fill(n); err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (br *BufferedReader) PeekByte() (byte, error) {
	if err := br.fill(1); err != nil {
		return 0, err
	}
	return br.buf.data[br.buf.r], nil
}

// Peek returns the next n bytes without advancing. The window is only valid
// until the next call on br.
func (br *BufferedReader) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if err := br.fill(n); err != nil {
		return nil, err
	}
	return br.buf.window(n), nil
}

// Next returns the next n bytes and advances past them. The window is only
// valid until the next call on br.
//
// On ErrInsufficientData nothing is consumed; the bytes that did arrive stay
// buffered.
func (br *BufferedReader) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if err := br.fill(n); err != nil {
		return nil, err
	}
	window := br.buf.window(n)
	br.buf.advance(n)
	return window, nil
}

func (br *BufferedReader) ReadByte() (byte, error) {
	if err := br.fill(1); err != nil {
		return 0, err
	}
	c := br.buf.data[br.buf.r]
	br.buf.advance(1)
	return c, nil
}

// scan counts the leading bytes accepted by pred, feeding whenever every
// buffered byte has been examined. The read cursor is not moved.
func (br *BufferedReader) scan(mode PredicateMode, pred func(byte) bool) (int, error) {
	n := 0
	for {
		if n == br.buf.buffered() {
			if err := br.buf.ensure(1); err != nil {
				return 0, err
			}
			read, err := br.Feed()
			if err != nil {
				return 0, err
			}
			if read == 0 {
				if mode == UntilEnd {
					return n, nil
				}
				return 0, ErrInsufficientData
			}
		}
		if !pred(br.buf.data[br.buf.r+n]) {
			return n, nil
		}
		n++
	}
}

// ReadWhile returns the longest prefix whose bytes satisfy pred. The whole
// prefix has to fit in the buffer, so a fixed reader fails with
// ErrNotEnoughSpace on runs longer than its capacity.
//
// In Strict mode running out of input before pred rejects a byte is
// ErrInsufficientData and nothing is consumed.
func (br *BufferedReader) ReadWhile(mode PredicateMode, pred func(byte) bool) ([]byte, error) {
	n, err := br.scan(mode, pred)
	if err != nil {
		return nil, err
	}
	window := br.buf.window(n)
	br.buf.advance(n)
	return window, nil
}

// Discard skips n bytes. Bytes beyond the buffered ones are read straight into
// the existing storage and dropped, so the buffer never grows to discard.
//
// If the source runs out part way the skipped bytes are gone and
// ErrInsufficientData is returned.
func (br *BufferedReader) Discard(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n <= br.buf.buffered() {
		br.buf.advance(n)
		return nil
	}
	rest := n - br.buf.buffered()
	br.buf.clear()
	if br.buf.allocated() == 0 {
		if !br.buf.expandable {
			return ErrNotEnoughSpace
		}
		br.buf.reallocate(minInt(rest, defaultCapacity))
	}
	for rest > 0 {
		read, err := br.readSource(br.buf.data)
		if err != nil {
			return err
		}
		if read == 0 {
			return ErrInsufficientData
		}
		if read > rest {
			// keep the overshoot
			br.buf.r, br.buf.w = rest, read
			return nil
		}
		rest -= read
	}
	return nil
}

func (br *BufferedReader) ConsumeByte(b byte) (bool, error) {
	if err := br.fill(1); err != nil {
		return false, err
	}
	if br.buf.data[br.buf.r] != b {
		return false, nil
	}
	br.buf.advance(1)
	return true, nil
}

// ConsumeWhile discards bytes while pred holds.
//
// Strict mode scans first and consumes only on success. UntilEnd discards as
// it goes, so it runs in constant memory regardless of how long the run is.
func (br *BufferedReader) ConsumeWhile(mode PredicateMode, pred func(byte) bool) error {
	if mode == Strict {
		n, err := br.scan(Strict, pred)
		if err != nil {
			return err
		}
		br.buf.advance(n)
		return nil
	}
	for {
		if br.buf.buffered() == 0 {
			if err := br.buf.ensure(1); err != nil {
				return err
			}
			read, err := br.Feed()
			if err != nil {
				return err
			}
			if read == 0 {
				return nil
			}
		}
		if !pred(br.buf.data[br.buf.r]) {
			return nil
		}
		br.buf.advance(1)
	}
}

// drain copies every buffered byte into p and empties the buffer.
func (br *BufferedReader) drain(p []byte) int {
	n := copy(p, br.buf.data[br.buf.r:br.buf.w])
	br.buf.clear()
	return n
}

// Read implements io.Reader.
//
// Small requests are served from the buffer, refilling it with a single source
// read when it runs short. A request whose shortfall is at least the storage
// size bypasses the buffer and reads into p directly.
func (br *BufferedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	buffered := br.buf.buffered()
	if buffered >= len(p) {
		n := copy(p, br.buf.window(len(p)))
		br.buf.advance(n)
		return n, nil
	}

	n := br.drain(p)
	var (
		read int
		err  error
	)
	if len(p)-buffered < br.buf.allocated() {
		read, err = br.readSource(br.buf.data)
		br.buf.w = read
		m := copy(p[n:], br.buf.window(minInt(read, len(p)-n)))
		br.buf.advance(m)
		n += m
	} else {
		read, err = br.readSource(p[n:])
		n += read
	}

	switch {
	case err != nil && n > 0:
		br.err = err
		return n, nil
	case err != nil:
		return 0, err
	case n == 0:
		return 0, io.EOF
	}
	return n, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
