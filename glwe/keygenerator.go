package glwe

import (
	"fmt"

	"github.com/Pro7ech/hpre/ring"
	"github.com/Pro7ech/hpre/utils/sampling"
)

// KeyGenerator is a structure that stores the elements required to create
// new keys.
type KeyGenerator struct {
	*Encryptor
	xsSampler ring.Sampler
}

// NewKeyGenerator creates a new [glwe.KeyGenerator], from which secret and
// public keys can be derived.
func NewKeyGenerator(params Parameters) *KeyGenerator {

	xsSampler, err := ring.NewSampler(sampling.NewSource(sampling.NewSeed()), params.Xs())

	// Sanity check, this error should not happen.
	if err != nil {
		panic(fmt.Errorf("NewKeyGenerator: %w", err))
	}

	return &KeyGenerator{
		Encryptor: NewEncryptor(params, nil),
		xsSampler: xsSampler,
	}
}

// WithSource returns an instance of the receiver whose samplers are re-keyed
// with sources branched from the provided [sampling.Source], for
// deterministic key generation.
func (kgen KeyGenerator) WithSource(source *sampling.Source) *KeyGenerator {
	return &KeyGenerator{
		Encryptor: kgen.Encryptor.WithSource(source),
		xsSampler: kgen.xsSampler.WithSource(source.Branch()),
	}
}

// GenSecretKeyNew generates a new [glwe.SecretKey] from the secret
// distribution.
func (kgen KeyGenerator) GenSecretKeyNew() (sk *SecretKey) {
	sk = NewSecretKey(kgen.params)
	kgen.GenSecretKey(sk)
	return
}

// GenSecretKey generates a [glwe.SecretKey] from the secret distribution.
func (kgen KeyGenerator) GenSecretKey(sk *SecretKey) {
	for i := range sk.Value {
		kgen.xsSampler.Read(sk.Value[i])
	}
}

// GenPublicKeyNew generates a new [glwe.PublicKey] from the provided
// [glwe.SecretKey].
func (kgen KeyGenerator) GenPublicKeyNew(sk *SecretKey) (pk *PublicKey) {
	pk = NewPublicKey(kgen.params)
	kgen.GenPublicKey(sk, pk)
	return
}

// GenPublicKey generates a [glwe.PublicKey] from the provided
// [glwe.SecretKey]: k uniform masks A[i] and the body
// B = sum(A[i] * s[i]) + e with a shaped error e.
func (kgen KeyGenerator) GenPublicKey(sk *SecretKey, pk *PublicKey) {

	if err := kgen.checkSk(sk); err != nil {
		// Sanity check
		panic(fmt.Errorf("GenPublicKey: %w", err))
	}

	rQ := kgen.params.RingQ()

	clear(pk.B)

	for i := range pk.A {
		kgen.xaSampler.Read(pk.A[i])
		rQ.Reduce(pk.A[i], pk.A[i])
		rQ.MulCoeffsThenAdd(pk.A[i], sk.Value[i], pk.B)
	}

	rQ.Add(pk.B, kgen.sampleErrorNew(), pk.B)
}

// GenKeyPairNew generates a new [glwe.SecretKey] and a corresponding
// [glwe.PublicKey].
func (kgen KeyGenerator) GenKeyPairNew() (sk *SecretKey, pk *PublicKey) {
	sk = kgen.GenSecretKeyNew()
	pk = kgen.GenPublicKeyNew(sk)
	return
}
