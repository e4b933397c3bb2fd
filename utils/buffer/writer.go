package buffer

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// WriteAsUint64 writes the integer v on w as a little-endian uint64.
func WriteAsUint64[T constraints.Integer](w Writer, v T) (n int64, err error) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	inc, err := w.Write(buf[:])
	return int64(inc), err
}

// WriteAsUint64Slice writes the integer slice v on w, each element as a
// little-endian uint64.
func WriteAsUint64Slice[T constraints.Integer](w Writer, v []T) (n int64, err error) {
	var buf [8]byte
	for i := range v {
		binary.LittleEndian.PutUint64(buf[:], uint64(v[i]))
		inc, err := w.Write(buf[:])
		n += int64(inc)
		if err != nil {
			return n, err
		}
	}
	return
}

// WriteAsUint8 writes the integer v on w as a single byte.
func WriteAsUint8[T constraints.Integer](w Writer, v T) (n int64, err error) {
	inc, err := w.Write([]byte{byte(v)})
	return int64(inc), err
}
