package glwe

import (
	"bufio"
	"io"

	"github.com/Pro7ech/hpre/ring"
	"github.com/Pro7ech/hpre/utils/buffer"
	"github.com/Pro7ech/hpre/utils/structs"
)

// Ciphertext is a GLWE ciphertext: a rank-k mask D and a body B.
// It decrypts to Delta*m + noise, with the noise strictly below Delta/2 for
// a valid chain of operations.
type Ciphertext struct {
	D structs.Vector[ring.Poly]
	B ring.Poly
}

// NewCiphertext allocates a new zero [glwe.Ciphertext] for the given
// parameters.
func NewCiphertext(params Parameters) (ct *Ciphertext) {
	ct = &Ciphertext{
		D: make(structs.Vector[ring.Poly], params.K()),
		B: ring.NewPoly(params.N()),
	}
	for i := range ct.D {
		ct.D[i] = ring.NewPoly(params.N())
	}
	return
}

// N returns the ring degree of the receiver.
func (ct Ciphertext) N() int {
	return ct.B.N()
}

// Rank returns the module rank of the receiver.
func (ct Ciphertext) Rank() int {
	return len(ct.D)
}

// Clone returns a deep copy of the receiver.
func (ct Ciphertext) Clone() *Ciphertext {
	return &Ciphertext{D: ct.D.Clone(), B: *ct.B.Clone()}
}

// Copy copies the operand on the receiver.
func (ct *Ciphertext) Copy(other *Ciphertext) {
	if ct != other {
		ct.D.Copy(other.D)
		ct.B.Copy(&other.B)
	}
}

// Equal performs a deep equal.
func (ct Ciphertext) Equal(other *Ciphertext) bool {
	return ct.D.Equal(other.D) && ct.B.Equal(&other.B)
}

// BinarySize returns the serialized size of the object in bytes.
func (ct Ciphertext) BinarySize() int {
	return ct.D.BinarySize() + ct.B.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (ct Ciphertext) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = ct.D.WriteTo(w); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = ct.B.WriteTo(w); err != nil {
			return n + inc, err
		}

		return n + inc, err
	default:
		return ct.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (ct *Ciphertext) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = ct.D.ReadFrom(r); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = ct.B.ReadFrom(r); err != nil {
			return n + inc, err
		}

		return n + inc, err
	default:
		return ct.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated
// slice of bytes.
func (ct Ciphertext) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(ct.BinarySize())
	_, err = ct.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (ct *Ciphertext) UnmarshalBinary(p []byte) (err error) {
	_, err = ct.ReadFrom(buffer.NewBuffer(p))
	return
}
