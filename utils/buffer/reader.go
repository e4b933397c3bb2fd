package buffer

import (
	"encoding/binary"
	"io"

	"golang.org/x/exp/constraints"
)

// ReadAsUint64 reads a little-endian uint64 from r into v.
func ReadAsUint64[T constraints.Integer](r Reader, v *T) (n int64, err error) {
	var buf [8]byte
	inc, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(inc), err
	}
	*v = T(binary.LittleEndian.Uint64(buf[:]))
	return int64(inc), nil
}

// ReadAsUint64Slice reads len(v) little-endian uint64 from r into v.
func ReadAsUint64Slice[T constraints.Integer](r Reader, v []T) (n int64, err error) {
	var buf [8]byte
	for i := range v {
		inc, err := io.ReadFull(r, buf[:])
		n += int64(inc)
		if err != nil {
			return n, err
		}
		v[i] = T(binary.LittleEndian.Uint64(buf[:]))
	}
	return
}

// ReadAsUint8 reads a single byte from r into v.
func ReadAsUint8[T constraints.Integer](r Reader, v *T) (n int64, err error) {
	c, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	*v = T(c)
	return 1, nil
}
