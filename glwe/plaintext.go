package glwe

import (
	"io"

	"github.com/Pro7ech/hpre/ring"
)

// Plaintext is a degree-n polynomial with coefficients in the plaintext
// domain: base-p digits, centred in [-p/2, p/2) when 2 < p <= 255; for
// p > 255 each coefficient holds a byte value in [0, 256).
type Plaintext struct {
	Value ring.Poly
}

// NewPlaintext allocates a new zero [glwe.Plaintext] for the given
// parameters.
func NewPlaintext(params Parameters) *Plaintext {
	return &Plaintext{Value: ring.NewPoly(params.N())}
}

// N returns the ring degree of the receiver.
func (pt Plaintext) N() int {
	return pt.Value.N()
}

// Clone returns a deep copy of the receiver.
func (pt Plaintext) Clone() *Plaintext {
	return &Plaintext{Value: *pt.Value.Clone()}
}

// Equal performs a deep equal.
func (pt Plaintext) Equal(other *Plaintext) bool {
	return pt.Value.Equal(&other.Value)
}

// BinarySize returns the serialized size of the object in bytes.
func (pt Plaintext) BinarySize() int {
	return pt.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer.
func (pt Plaintext) WriteTo(w io.Writer) (int64, error) {
	return pt.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader.
func (pt *Plaintext) ReadFrom(r io.Reader) (int64, error) {
	return pt.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated
// slice of bytes.
func (pt Plaintext) MarshalBinary() ([]byte, error) {
	return pt.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (pt *Plaintext) UnmarshalBinary(p []byte) error {
	return pt.Value.UnmarshalBinary(p)
}
