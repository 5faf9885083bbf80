package stream

import "io"

// MemoryStream is an in-memory, seekable byte buffer that can be both read
// and written. Bytes in [0, Len()) are valid; reads and writes happen at
// Position().
//
// An expandable stream grows in powers of two starting at 256 bytes. A fixed
// stream rejects writes past its capacity with ErrNotEnoughSpace without
// writing anything.
type MemoryStream struct {
	data       []byte
	position   int
	end        int
	expandable bool
}

var (
	_ Reader    = (*MemoryStream)(nil)
	_ Writer    = (*MemoryStream)(nil)
	_ io.Reader = (*MemoryStream)(nil)
	_ io.Seeker = (*MemoryStream)(nil)
)

// NewMemoryStream returns an expandable stream with reserve bytes
// preallocated.
func NewMemoryStream(reserve int) *MemoryStream {
	s := &MemoryStream{expandable: true}
	if reserve > 0 {
		s.data = make([]byte, reserve)
	}
	return s
}

// NewFixedMemoryStream returns a stream that never holds more than capacity
// bytes.
func NewFixedMemoryStream(capacity int) *MemoryStream {
	if capacity < 0 {
		capacity = 0
	}
	return &MemoryStream{data: make([]byte, capacity)}
}

// NewMemoryStreamFrom returns an expandable stream positioned at the start of
// a copy of b.
func NewMemoryStreamFrom(b []byte) *MemoryStream {
	s := NewMemoryStream(len(b))
	s.end = copy(s.data, b)
	return s
}

func (s *MemoryStream) Position() int { return s.position }
func (s *MemoryStream) Len() int      { return s.end }
func (s *MemoryStream) Remain() int   { return s.end - s.position }
func (s *MemoryStream) Capacity() int { return len(s.data) }
func (s *MemoryStream) EOF() bool     { return s.position == s.end }

// Bytes returns the valid contents. The slice aliases the stream storage.
func (s *MemoryStream) Bytes() []byte { return s.data[:s.end] }

// Reset empties the stream, keeping its storage.
func (s *MemoryStream) Reset() { s.position, s.end = 0, 0 }

// Truncate drops everything after the first n bytes.
func (s *MemoryStream) Truncate(n int) error {
	if n < 0 || n > s.end {
		return ErrInvalidSeekOffset
	}
	s.end = n
	if s.position > n {
		s.position = n
	}
	return nil
}

// Seek implements io.Seeker. The target must lie within [0, Len()].
func (s *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(s.position)
	case io.SeekEnd:
		base = int64(s.end)
	default:
		return int64(s.position), ErrInvalidSeekOffset
	}
	target := base + offset
	if target < 0 || target > int64(s.end) {
		return int64(s.position), ErrInvalidSeekOffset
	}
	s.position = int(target)
	return target, nil
}

func (s *MemoryStream) ensure(need int) error {
	if need <= len(s.data) {
		return nil
	}
	if !s.expandable {
		return ErrNotEnoughSpace
	}
	data := make([]byte, growCapacity(need))
	copy(data, s.data[:s.end])
	s.data = data
	return nil
}

// Write stores p at the current position, overwriting existing bytes and
// extending the stream as needed.
func (s *MemoryStream) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	next := s.position + len(p)
	if err := s.ensure(next); err != nil {
		return 0, err
	}
	copy(s.data[s.position:], p)
	s.position = next
	if next > s.end {
		s.end = next
	}
	return len(p), nil
}

func (s *MemoryStream) WriteByte(c byte) error {
	next := s.position + 1
	if err := s.ensure(next); err != nil {
		return err
	}
	s.data[s.position] = c
	s.position = next
	if next > s.end {
		s.end = next
	}
	return nil
}

func (s *MemoryStream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// Flush is a no-op.
func (s *MemoryStream) Flush() error { return nil }

// Read implements io.Reader.
func (s *MemoryStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.EOF() {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.position:s.end])
	s.position += n
	return n, nil
}

func (s *MemoryStream) Cache(n int) (bool, error) {
	if n < 0 {
		return false, ErrNegativeCount
	}
	return s.Remain() >= n, nil
}

func (s *MemoryStream) window(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if s.Remain() < n {
		return nil, ErrInsufficientData
	}
	return s.data[s.position : s.position+n : s.position+n], nil
}

func (s *MemoryStream) Peek(n int) ([]byte, error) { return s.window(n) }

func (s *MemoryStream) Next(n int) ([]byte, error) {
	w, err := s.window(n)
	if err != nil {
		return nil, err
	}
	s.position += n
	return w, nil
}

func (s *MemoryStream) PeekByte() (byte, error) {
	if s.EOF() {
		return 0, ErrInsufficientData
	}
	return s.data[s.position], nil
}

func (s *MemoryStream) ReadByte() (byte, error) {
	c, err := s.PeekByte()
	if err != nil {
		return 0, err
	}
	s.position++
	return c, nil
}

func (s *MemoryStream) scan(mode PredicateMode, pred func(byte) bool) (int, error) {
	for i := s.position; i < s.end; i++ {
		if !pred(s.data[i]) {
			return i - s.position, nil
		}
	}
	if mode == Strict {
		return 0, ErrInsufficientData
	}
	return s.Remain(), nil
}

func (s *MemoryStream) ReadWhile(mode PredicateMode, pred func(byte) bool) ([]byte, error) {
	n, err := s.scan(mode, pred)
	if err != nil {
		return nil, err
	}
	return s.Next(n)
}

func (s *MemoryStream) Discard(n int) error {
	_, err := s.Next(n)
	return err
}

func (s *MemoryStream) ConsumeByte(b byte) (bool, error) {
	c, err := s.PeekByte()
	if err != nil || c != b {
		return false, err
	}
	s.position++
	return true, nil
}

func (s *MemoryStream) ConsumeWhile(mode PredicateMode, pred func(byte) bool) error {
	n, err := s.scan(mode, pred)
	if err != nil {
		return err
	}
	s.position += n
	return nil
}
