package stream

const (
	// defaultCapacity is used by writers and streams created without an
	// explicit size.
	defaultCapacity = 4096

	// baseCapacity is the first allocation made when an empty MemoryStream
	// has to grow.
	baseCapacity = 256

	// maxConsecutiveEmptyReads bounds how many (0, nil) results a source may
	// return in a row before it is treated as broken.
	maxConsecutiveEmptyReads = 100
)

// growCapacity returns the smallest power-of-two multiple of baseCapacity that
// can hold need bytes.
func growCapacity(need int) int {
	size := baseCapacity
	for size < need {
		size <<= 1
	}
	return size
}

// buffer is the storage shared by BufferedReader. Unread bytes live in
// data[r:w]; the region past w is free for the next feed.
//
// Invariant: 0 <= r <= w <= len(data). Whenever r catches up with w both are
// reset to zero.
type buffer struct {
	data       []byte
	r, w       int
	expandable bool
}

func newBuffer(capacity int, expandable bool) buffer {
	var data []byte
	if capacity > 0 {
		data = make([]byte, capacity)
	}
	return buffer{data: data, expandable: expandable}
}

func (b *buffer) allocated() int { return len(b.data) }
func (b *buffer) buffered() int  { return b.w - b.r }
func (b *buffer) used() int      { return b.w }

// tail is the writable region after the write cursor.
func (b *buffer) tail() []byte { return b.data[b.w:] }

// window returns the next n unread bytes. The capacity is clipped so an append
// by the caller cannot scribble over buffered data.
func (b *buffer) window(n int) []byte { return b.data[b.r : b.r+n : b.r+n] }

func (b *buffer) advance(n int) {
	b.r += n
	if b.r == b.w {
		b.clear()
	}
}

func (b *buffer) clear() { b.r, b.w = 0, 0 }

// shift moves the unread bytes to the front of the storage.
func (b *buffer) shift() {
	if b.r == 0 {
		return
	}
	n := copy(b.data, b.data[b.r:b.w])
	b.r, b.w = 0, n
}

func (b *buffer) reallocate(size int) {
	data := make([]byte, size)
	n := copy(data, b.data[b.r:b.w])
	b.data, b.r, b.w = data, 0, n
}

// ensure makes room for n more bytes after the write cursor.
//
// When the live bytes plus n fit in half the storage they are compacted in
// place, otherwise an expandable buffer is reallocated to twice that size.
// A fixed buffer only ever compacts and reports ErrNotEnoughSpace when that is
// not enough.
func (b *buffer) ensure(n int) error {
	if b.used()+n <= b.allocated() {
		return nil
	}
	live := b.buffered() + n
	switch {
	case !b.expandable:
		if live > b.allocated() {
			return ErrNotEnoughSpace
		}
		b.shift()
	case live <= b.allocated()/2:
		b.shift()
	default:
		b.reallocate(live * 2)
	}
	return nil
}
