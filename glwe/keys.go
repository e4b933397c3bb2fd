package glwe

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Pro7ech/hpre/ring"
	"github.com/Pro7ech/hpre/utils/buffer"
	"github.com/Pro7ech/hpre/utils/structs"
)

// EncryptionKey is an interface for encryption keys.
// Valid encryption keys are the [glwe.SecretKey] and [glwe.PublicKey] types.
type EncryptionKey interface {
	isEncryptionKey()
}

// SecretKey is a GLWE secret key: a vector of k polynomials sampled from
// the secret distribution (uniform binary by default).
type SecretKey struct {
	Value structs.Vector[ring.Poly]
}

// NewSecretKey allocates a new zero [glwe.SecretKey] for the given
// parameters.
func NewSecretKey(params Parameters) (sk *SecretKey) {
	sk = &SecretKey{Value: make(structs.Vector[ring.Poly], params.K())}
	for i := range sk.Value {
		sk.Value[i] = ring.NewPoly(params.N())
	}
	return
}

func (sk SecretKey) isEncryptionKey() {}

// N returns the ring degree of the receiver.
func (sk SecretKey) N() int {
	return sk.Value[0].N()
}

// Rank returns the module rank of the receiver.
func (sk SecretKey) Rank() int {
	return len(sk.Value)
}

// Clone returns a deep copy of the receiver.
func (sk SecretKey) Clone() *SecretKey {
	return &SecretKey{Value: sk.Value.Clone()}
}

// Equal performs a deep equal.
func (sk SecretKey) Equal(other *SecretKey) bool {
	return sk.Value.Equal(other.Value)
}

// AsBytes packs a binary secret key to bytes: each of the k polynomials in
// turn, 8 coefficients per byte, MSB-first within the byte. If the ring
// degree is not a multiple of 8 the final byte of each polynomial is padded
// with low-order zero bits. Non-binary secrets are not serialisable through
// this path and are rejected.
func (sk SecretKey) AsBytes() ([]byte, error) {

	N := sk.N()
	out := make([]byte, 0, sk.Rank()*((N+7)/8))

	for i := range sk.Value {
		for j := 0; j < N; j += 8 {
			var b byte
			for l := 0; l < 8 && j+l < N; l++ {
				c := sk.Value[i][j+l]
				if c != 0 && c != 1 {
					return nil, fmt.Errorf("%w: secret key coefficient %d of polynomial %d is not binary", ErrInvalidEncoding, j+l, i)
				}
				b |= byte(c) << (7 - l)
			}
			out = append(out, b)
		}
	}

	return out, nil
}

// BinarySize returns the serialized size of the object in bytes.
func (sk SecretKey) BinarySize() int {
	return sk.Value.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (sk SecretKey) WriteTo(w io.Writer) (n int64, err error) {
	return sk.Value.WriteTo(w)
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (sk *SecretKey) ReadFrom(r io.Reader) (n int64, err error) {
	return sk.Value.ReadFrom(r)
}

// MarshalBinary encodes the object into a binary form on a newly allocated
// slice of bytes.
func (sk SecretKey) MarshalBinary() ([]byte, error) {
	return sk.Value.MarshalBinary()
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (sk *SecretKey) UnmarshalBinary(p []byte) error {
	return sk.Value.UnmarshalBinary(p)
}

// PublicKey is a GLWE public key: a vector A of k uniformly random
// polynomials and the body B = sum(A[i] * s[i]) + e.
type PublicKey struct {
	A structs.Vector[ring.Poly]
	B ring.Poly
}

// NewPublicKey allocates a new zero [glwe.PublicKey] for the given
// parameters.
func NewPublicKey(params Parameters) (pk *PublicKey) {
	pk = &PublicKey{
		A: make(structs.Vector[ring.Poly], params.K()),
		B: ring.NewPoly(params.N()),
	}
	for i := range pk.A {
		pk.A[i] = ring.NewPoly(params.N())
	}
	return
}

func (pk PublicKey) isEncryptionKey() {}

// N returns the ring degree of the receiver.
func (pk PublicKey) N() int {
	return pk.B.N()
}

// Rank returns the module rank of the receiver.
func (pk PublicKey) Rank() int {
	return len(pk.A)
}

// Clone returns a deep copy of the receiver.
func (pk PublicKey) Clone() *PublicKey {
	return &PublicKey{A: pk.A.Clone(), B: *pk.B.Clone()}
}

// Equal performs a deep equal.
func (pk PublicKey) Equal(other *PublicKey) bool {
	return pk.A.Equal(other.A) && pk.B.Equal(&other.B)
}

// BinarySize returns the serialized size of the object in bytes.
func (pk PublicKey) BinarySize() int {
	return pk.A.BinarySize() + pk.B.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
func (pk PublicKey) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = pk.A.WriteTo(w); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = pk.B.WriteTo(w); err != nil {
			return n + inc, err
		}

		return n + inc, err
	default:
		return pk.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (pk *PublicKey) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		if inc, err = pk.A.ReadFrom(r); err != nil {
			return n + inc, err
		}

		n += inc

		if inc, err = pk.B.ReadFrom(r); err != nil {
			return n + inc, err
		}

		return n + inc, err
	default:
		return pk.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated
// slice of bytes.
func (pk PublicKey) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(pk.BinarySize())
	_, err = pk.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (pk *PublicKey) UnmarshalBinary(p []byte) (err error) {
	_, err = pk.ReadFrom(buffer.NewBuffer(p))
	return
}
