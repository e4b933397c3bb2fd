package glwe

import (
	"fmt"

	"github.com/Pro7ech/hpre/ring"
)

// Decryptor is a structure used to decrypt [glwe.Ciphertext].
// It stores the secret key.
type Decryptor struct {
	params Parameters
	buff   ring.Poly
	sk     *SecretKey
}

// NewDecryptor instantiates a new [glwe.Decryptor].
func NewDecryptor(params Parameters, sk *SecretKey) *Decryptor {

	if sk != nil && (sk.N() != params.N() || sk.Rank() != params.K()) {
		panic(fmt.Errorf("%w: secret key degree/rank (%d, %d) does not match parameters (%d, %d)", ErrLengthMismatch, sk.N(), sk.Rank(), params.N(), params.K()))
	}

	return &Decryptor{
		params: params,
		buff:   params.RingQ().NewPoly(),
		sk:     sk,
	}
}

// GetParameters returns the underlying [glwe.Parameters] of the receiver.
func (d Decryptor) GetParameters() *Parameters {
	return &d.params
}

// DecryptNew decrypts ct and returns the result in a new [glwe.Plaintext].
func (d Decryptor) DecryptNew(ct *Ciphertext) (pt *Plaintext, err error) {
	pt = NewPlaintext(d.params)
	if err = d.Decrypt(ct, pt); err != nil {
		return nil, err
	}
	return
}

// Decrypt decrypts ct and writes the result on pt: it computes the phase
// B - sum(D[i] * s[i]), lifts each coefficient to the centred range and
// round-divides it by Delta. The output is the plaintext digit polynomial;
// byte-level decoding is the [glwe.Encoder]'s step.
//
// A noise overflow is silent: the returned polynomial is simply wrong.
func (d Decryptor) Decrypt(ct *Ciphertext, pt *Plaintext) (err error) {

	if d.sk == nil {
		panic(fmt.Errorf("decryption key is nil"))
	}

	if ct.Rank() != d.params.K() {
		return fmt.Errorf("%w: ciphertext rank %d does not match key rank %d", ErrLengthMismatch, ct.Rank(), d.params.K())
	}

	if ct.N() != d.params.N() {
		return fmt.Errorf("%w: ciphertext degree %d does not match ring degree %d", ErrLengthMismatch, ct.N(), d.params.N())
	}

	rQ := d.params.RingQ()

	rQ.Reduce(ct.B, pt.Value)

	for i := range ct.D {
		rQ.MulCoeffs(ct.D[i], d.sk.Value[i], d.buff)
		rQ.Sub(pt.Value, d.buff, pt.Value)
	}

	q := d.params.Q()
	delta := d.params.Delta()

	for i := range pt.Value {
		pt.Value[i] = ring.DivRound(ring.Center(pt.Value[i], q), delta)
	}

	return
}

// WithKey returns an instance of the receiver with a new decryption key.
func (d Decryptor) WithKey(sk *SecretKey) *Decryptor {

	if sk == nil {
		panic(fmt.Errorf("key is nil"))
	}

	if sk.N() != d.params.N() || sk.Rank() != d.params.K() {
		panic(fmt.Errorf("%w: secret key degree/rank does not match parameters", ErrLengthMismatch))
	}

	return &Decryptor{
		params: d.params,
		buff:   d.buff,
		sk:     sk,
	}
}
