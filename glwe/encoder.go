package glwe

import (
	"fmt"
	"math"

	"github.com/Pro7ech/hpre/ring"
)

// Encoder encodes byte strings into plaintext polynomials and back.
//
// For p > 255 each byte maps to one coefficient (identity). Otherwise each
// byte is expressed as a fixed number of base-p digits, least-significant
// digit first; when p > 2 the digits are centred by subtracting p/2 so that
// they lie in [-p/2, p/2).
type Encoder struct {
	params Parameters
	digits int
}

// NewEncoder creates a new [glwe.Encoder] for the given parameters.
func NewEncoder(params Parameters) *Encoder {
	digits := 1
	if p := params.P(); p <= 0xFF {
		digits = int(math.Ceil(math.Log(255) / math.Log(float64(p))))
	}
	return &Encoder{params: params, digits: digits}
}

// DigitsPerByte returns the number of base-p digits encoding one byte.
func (ecd Encoder) DigitsPerByte() int {
	return ecd.digits
}

// Encode encodes data into a plaintext polynomial of the ring degree.
// The digit stream is zero-padded up to n, and silently truncated if data
// encodes to more than n digits: chunking over-long inputs is the caller's
// responsibility.
func (ecd Encoder) Encode(data []byte) (pt *Plaintext) {
	pt = NewPlaintext(ecd.params)
	digits := ecd.EncodeDigits(data)
	copy(pt.Value, digits)
	return
}

// EncodeDigits encodes data into its raw base-p digit sequence of length
// len(data) * DigitsPerByte(), without padding or truncation.
func (ecd Encoder) EncodeDigits(data []byte) (digits []int64) {

	p := ecd.params.P()

	if p > 0xFF {
		digits = make([]int64, len(data))
		for i, b := range data {
			digits[i] = int64(b)
		}
		return
	}

	half := p >> 1

	digits = make([]int64, 0, len(data)*ecd.digits)
	for _, b := range data {
		rem := int64(b)
		for j := 0; j < ecd.digits; j++ {
			val := rem % p
			if p > 2 {
				val -= half
			}
			digits = append(digits, val)
			rem /= p
		}
	}

	return
}

// Decode decodes the full digit stream of pt back into bytes.
// Trailing zero padding decodes to zero bytes; use [Encoder.DecodeSlots] to
// recover only a known-length prefix.
func (ecd Encoder) Decode(pt *Plaintext) ([]byte, error) {
	return ecd.DecodeDigits(pt.Value)
}

// DecodeSlots decodes the leading count bytes of pt.
func (ecd Encoder) DecodeSlots(pt *Plaintext, count int) ([]byte, error) {
	if size := count * ecd.digits; size <= len(pt.Value) {
		return ecd.DecodeDigits(pt.Value[:size])
	}
	return nil, fmt.Errorf("%w: %d bytes exceed the %d digits available", ErrInvalidEncoding, count, len(pt.Value))
}

// DecodeDigits decodes a raw base-p digit sequence back into bytes.
// The sequence length must be a multiple of DigitsPerByte(). Decoded values
// are masked to 8 bits, so digit vectors recovered modulo p (e.g. after
// homomorphic wrap-around) decode consistently.
func (ecd Encoder) DecodeDigits(digits []int64) ([]byte, error) {

	p := ecd.params.P()

	if p > 0xFF {
		data := make([]byte, len(digits))
		for i, d := range digits {
			data[i] = byte(d & 0xFF)
		}
		return data, nil
	}

	if len(digits)%ecd.digits != 0 {
		return nil, fmt.Errorf("%w: digit stream length %d is not a multiple of %d digits per byte", ErrInvalidEncoding, len(digits), ecd.digits)
	}

	var half int64
	if p > 2 {
		half = p >> 1
	}

	data := make([]byte, 0, len(digits)/ecd.digits)
	for i := 0; i < len(digits); i += ecd.digits {

		var value, base int64 = 0, 1

		for _, d := range digits[i : i+ecd.digits] {
			// Un-centre modulo p: digits recovered from a decryption are
			// only defined mod p (centring boundary, homomorphic wrap).
			value += ring.Mod(d+half, p) * base
			base *= p
		}

		data = append(data, byte(value&0xFF))
	}

	return data, nil
}
