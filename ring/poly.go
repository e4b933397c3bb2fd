package ring

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Pro7ech/hpre/utils/buffer"
)

// Poly is a polynomial stored as its coefficient vector:
// index i holds the signed coefficient of x^i.
type Poly []int64

// NewPoly allocates a new zero [ring.Poly] of degree N.
func NewPoly(N int) Poly {
	return make(Poly, N)
}

// N returns the number of coefficients of the receiver.
func (p Poly) N() int {
	return len(p)
}

// Resize resizes the receiver to exactly N coefficients,
// zero-padding or truncating as needed.
func (p *Poly) Resize(N int) {
	if len(*p) > N {
		*p = (*p)[:N]
	}
	for len(*p) < N {
		*p = append(*p, 0)
	}
}

// Clone returns a deep copy of the receiver.
func (p Poly) Clone() *Poly {
	pcpy := make(Poly, len(p))
	copy(pcpy, p)
	return &pcpy
}

// Copy copies the operand on the receiver, up to the
// maximum available size between the two.
func (p Poly) Copy(other *Poly) {
	copy(p, *other)
}

// Equal performs a deep equal.
func (p Poly) Equal(other *Poly) bool {
	if len(p) != len(*other) {
		return false
	}
	for i := range p {
		if p[i] != (*other)[i] {
			return false
		}
	}
	return true
}

// BinarySize returns the serialized size of the object in bytes.
func (p Poly) BinarySize() int {
	return 8 + 8*len(p)
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the [buffer.Writer] interface, it will be wrapped into
// a [bufio.Writer].
func (p Poly) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteAsUint64[int](w, len(p)); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[int64](w, p); err != nil {
			return n + inc, err
		}

		n += inc

		return n, w.Flush()
	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the [buffer.Reader] interface, it will be wrapped into
// a [bufio.Reader].
func (p *Poly) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		if p == nil {
			return 0, fmt.Errorf("receiver is nil")
		}

		var inc int64

		var size int
		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return n + inc, err
		}

		n += inc

		if cap(*p) < size {
			*p = make(Poly, size)
		}

		*p = (*p)[:size]

		if inc, err = buffer.ReadAsUint64Slice[int64](r, *p); err != nil {
			return n + inc, err
		}

		n += inc

		return
	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated
// slice of bytes.
func (p Poly) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Poly) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
