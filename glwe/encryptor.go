package glwe

import (
	"fmt"

	"github.com/Pro7ech/hpre/ring"
	"github.com/Pro7ech/hpre/utils/sampling"
)

// NewEncryptor creates a new [glwe.Encryptor] from an [glwe.EncryptionKey].
//
// The key may be nil, in which case the encryptor can only be used once a
// key has been set with [Encryptor.WithKey].
func NewEncryptor(params Parameters, key EncryptionKey) *Encryptor {

	enc := newEncryptor(params)

	var err error
	switch key := key.(type) {
	case *PublicKey:
		if key == nil {
			return enc
		}
		err = enc.checkPk(key)
	case *SecretKey:
		if key == nil {
			return enc
		}
		err = enc.checkSk(key)
	case nil:
		return enc
	default:
		// Sanity check
		panic(fmt.Errorf("key must be either *glwe.PublicKey, *glwe.SecretKey or nil but have %T", key))
	}

	if err != nil {
		panic(fmt.Errorf("key is not correct: %w", err))
	}

	enc.encKey = key
	return enc
}

// Encryptor is a struct dedicated to encrypting [glwe.Ciphertext].
type Encryptor struct {
	params Parameters
	encKey EncryptionKey

	xeSampler ring.Sampler // error
	xuSampler ring.Sampler // encryption randomness
	xaSampler ring.Sampler // uniform masks
	buffQ     ring.Poly
}

func newEncryptor(params Parameters) *Encryptor {

	xeSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), params.Xe())

	// Sanity check, this error should not happen.
	if err != nil {
		panic(fmt.Errorf("newEncryptor: %w", err))
	}

	xuSampler := ring.NewBinarySampler(sampling.NewSource(sampling.NewSeed()))

	// Corrected uniform bound for the public masks: [-q/2, q/2),
	// canonicalised into [0, q) on storage.
	q := params.Q()
	xaSampler := ring.NewUniformSampler(sampling.NewSource(sampling.NewSeed()), -(q >> 1), q>>1)

	return &Encryptor{
		params:    params,
		xeSampler: xeSampler,
		xuSampler: xuSampler,
		xaSampler: xaSampler,
		buffQ:     params.RingQ().NewPoly(),
	}
}

// GetParameters returns the underlying [glwe.Parameters] of the receiver.
func (enc Encryptor) GetParameters() *Parameters {
	return &enc.params
}

// WithKey returns an instance of the receiver with a new encryption key.
func (enc Encryptor) WithKey(key EncryptionKey) *Encryptor {

	var err error
	switch key := key.(type) {
	case *PublicKey:
		err = enc.checkPk(key)
	case *SecretKey:
		err = enc.checkSk(key)
	default:
		// Sanity check
		panic(fmt.Errorf("key must be either *glwe.PublicKey or *glwe.SecretKey but have %T", key))
	}

	if err != nil {
		panic(fmt.Errorf("key is not correct: %w", err))
	}

	enc.encKey = key
	return &enc
}

// WithSource returns an instance of the receiver whose samplers are re-keyed
// with sources branched from the provided [sampling.Source]. It is the hook
// for deterministic encryption in tests and for deriving per-goroutine
// encryptors that do not share a source.
func (enc Encryptor) WithSource(source *sampling.Source) *Encryptor {
	return &Encryptor{
		params:    enc.params,
		encKey:    enc.encKey,
		xeSampler: enc.xeSampler.WithSource(source.Branch()),
		xuSampler: enc.xuSampler.WithSource(source.Branch()),
		xaSampler: enc.xaSampler.WithSource(source.Branch()),
		buffQ:     enc.params.RingQ().NewPoly(),
	}
}

func (enc Encryptor) checkPk(pk *PublicKey) error {
	if pk.N() != enc.params.N() || pk.Rank() != enc.params.K() {
		return fmt.Errorf("%w: public key degree/rank (%d, %d) does not match parameters (%d, %d)", ErrLengthMismatch, pk.N(), pk.Rank(), enc.params.N(), enc.params.K())
	}
	return nil
}

func (enc Encryptor) checkSk(sk *SecretKey) error {
	if sk.N() != enc.params.N() || sk.Rank() != enc.params.K() {
		return fmt.Errorf("%w: secret key degree/rank (%d, %d) does not match parameters (%d, %d)", ErrLengthMismatch, sk.N(), sk.Rank(), enc.params.N(), enc.params.K())
	}
	return nil
}

// EncryptNew encrypts pt with the stored key and returns the result in a
// new [glwe.Ciphertext].
func (enc *Encryptor) EncryptNew(pt *Plaintext) (ct *Ciphertext, err error) {
	ct = NewCiphertext(enc.params)
	if err = enc.Encrypt(pt, ct); err != nil {
		return nil, err
	}
	return
}

// Encrypt encrypts pt using the stored encryption key and writes the result
// on ct. A nil pt produces an encryption of zero.
func (enc *Encryptor) Encrypt(pt *Plaintext, ct *Ciphertext) (err error) {

	if ct.Rank() != enc.params.K() || ct.N() != enc.params.N() {
		return fmt.Errorf("%w: ciphertext degree/rank (%d, %d) does not match parameters (%d, %d)", ErrLengthMismatch, ct.N(), ct.Rank(), enc.params.N(), enc.params.K())
	}

	switch key := enc.encKey.(type) {
	case *PublicKey:
		return enc.encryptPk(key, pt, ct)
	case *SecretKey:
		return enc.encryptSk(key, pt, ct)
	default:
		return fmt.Errorf("cannot encrypt: no encryption key is stored")
	}
}

// encryptPk masks the plaintext with the public key:
// D[i] = A[i]*u + e[i] and B = pk.B*u + Delta*m + e.
func (enc *Encryptor) encryptPk(pk *PublicKey, pt *Plaintext, ct *Ciphertext) (err error) {

	rQ := enc.params.RingQ()

	u := enc.xuSampler.ReadNew(enc.params.N())

	for i := range ct.D {
		rQ.MulCoeffs(pk.A[i], u, ct.D[i])
		rQ.Add(ct.D[i], enc.sampleErrorNew(), ct.D[i])
	}

	rQ.MulCoeffs(pk.B, u, ct.B)

	if pt != nil {
		rQ.MulScalar(pt.Value, enc.params.Delta(), enc.buffQ)
		rQ.Add(ct.B, enc.buffQ, ct.B)
	}

	rQ.Add(ct.B, enc.sampleErrorNew(), ct.B)

	return
}

// encryptSk draws a fresh uniform mask and computes the body against the
// secret key directly: D[i] = a[i] and B = sum(a[i]*s[i]) + Delta*m + e.
func (enc *Encryptor) encryptSk(sk *SecretKey, pt *Plaintext, ct *Ciphertext) (err error) {

	rQ := enc.params.RingQ()

	clear(ct.B)

	for i := range ct.D {
		enc.xaSampler.Read(ct.D[i])
		rQ.Reduce(ct.D[i], ct.D[i])
		rQ.MulCoeffsThenAdd(ct.D[i], sk.Value[i], ct.B)
	}

	if pt != nil {
		rQ.MulScalar(pt.Value, enc.params.Delta(), enc.buffQ)
		rQ.Add(ct.B, enc.buffQ, ct.B)
	}

	rQ.Add(ct.B, enc.sampleErrorNew(), ct.B)

	return
}

// sampleErrorNew draws a fresh shaped error polynomial: a discrete Gaussian
// sample reduced by signed remainder modulo Delta/2 so that the inserted
// noise stays strictly below the decryption bound. This trades
// distributional fidelity for decryption correctness at small parameter
// sizes, and is applied everywhere an error enters a key or a ciphertext.
func (enc *Encryptor) sampleErrorNew() (e ring.Poly) {
	e = enc.xeSampler.ReadNew(enc.params.N())
	shapeError(e, enc.params.NoiseBound())
	return
}

func shapeError(e ring.Poly, bound int64) {
	if bound < 1 {
		clear(e)
		return
	}
	for i := range e {
		e[i] %= bound
	}
}
