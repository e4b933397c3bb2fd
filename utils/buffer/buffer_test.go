package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {

	t.Run("Uint64", func(t *testing.T) {
		buf := NewBufferSize(16)
		_, err := WriteAsUint64[int64](buf, -42)
		require.NoError(t, err)
		_, err = WriteAsUint64[uint64](buf, 1<<63)
		require.NoError(t, err)

		r := NewBuffer(buf.Bytes())
		var a int64
		var b uint64
		_, err = ReadAsUint64[int64](r, &a)
		require.NoError(t, err)
		_, err = ReadAsUint64[uint64](r, &b)
		require.NoError(t, err)
		require.Equal(t, int64(-42), a)
		require.Equal(t, uint64(1)<<63, b)
	})

	t.Run("Uint64Slice", func(t *testing.T) {
		want := []int64{0, 1, -1, 1 << 62, -(1 << 62)}
		buf := NewBufferSize(8 * len(want))
		n, err := WriteAsUint64Slice[int64](buf, want)
		require.NoError(t, err)
		require.Equal(t, int64(8*len(want)), n)

		have := make([]int64, len(want))
		_, err = ReadAsUint64Slice[int64](NewBuffer(buf.Bytes()), have)
		require.NoError(t, err)
		require.Equal(t, want, have)
	})

	t.Run("Uint8", func(t *testing.T) {
		buf := NewBufferSize(1)
		_, err := WriteAsUint8[int](buf, 0xB2)
		require.NoError(t, err)
		var v int
		_, err = ReadAsUint8[int](NewBuffer(buf.Bytes()), &v)
		require.NoError(t, err)
		require.Equal(t, 0xB2, v)
	})

	t.Run("ShortRead", func(t *testing.T) {
		var v int64
		_, err := ReadAsUint64[int64](NewBuffer([]byte{1, 2, 3}), &v)
		require.Error(t, err)
	})
}
