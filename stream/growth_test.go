package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowCapacity(t *testing.T) {
	for need, want := range map[int]int{
		0:    256,
		1:    256,
		256:  256,
		257:  512,
		1000: 1024,
		4097: 8192,
	} {
		require.Equal(t, want, growCapacity(need), "need %d", need)
	}
}

func TestBuffer_ensure(t *testing.T) {
	filled := func(capacity, r, w int, expandable bool) *buffer {
		b := newBuffer(capacity, expandable)
		for i := range b.data {
			b.data[i] = byte(i)
		}
		b.r, b.w = r, w
		return &b
	}

	t.Run("fits after the write cursor", func(t *testing.T) {
		b := filled(10, 2, 6, true)
		require.NoError(t, b.ensure(4))
		require.Equal(t, 2, b.r)
		require.Equal(t, 10, b.allocated())
	})

	t.Run("compacts into the lower half", func(t *testing.T) {
		b := filled(10, 7, 9, true)
		require.NoError(t, b.ensure(3))
		require.Equal(t, 0, b.r)
		require.Equal(t, 2, b.w)
		require.Equal(t, []byte{7, 8}, b.data[:2])
		require.Equal(t, 10, b.allocated())
	})

	t.Run("reallocates to twice the live size", func(t *testing.T) {
		b := filled(10, 4, 10, true)
		require.NoError(t, b.ensure(4))
		require.Equal(t, 20, b.allocated())
		require.Equal(t, []byte{4, 5, 6, 7, 8, 9}, b.data[b.r:b.w])
	})

	t.Run("fixed compacts or fails", func(t *testing.T) {
		b := filled(10, 4, 10, false)
		require.NoError(t, b.ensure(4))
		require.Equal(t, 0, b.r)
		require.Equal(t, 6, b.w)

		require.ErrorIs(t, b.ensure(5), ErrNotEnoughSpace)
		require.Equal(t, 10, b.allocated())
	})

	t.Run("advance resets when drained", func(t *testing.T) {
		b := filled(10, 3, 5, true)
		b.advance(2)
		require.Equal(t, 0, b.r)
		require.Equal(t, 0, b.w)
	})
}
