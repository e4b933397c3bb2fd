package glwe

import (
	"fmt"

	"github.com/Pro7ech/hpre/ring"
)

// DigitDecompositionType defines the type of the digit decomposition.
type DigitDecompositionType int

const (
	// Unsigned: digits in [0, B) with the overall sign of the coefficient
	// factored onto its digits. Fastest decomposition, but greatest digit
	// magnitude.
	Unsigned = DigitDecompositionType(1)

	// SignedBalanced: digits in (-B/2, B/2], sign preserved.
	// Slower, but optimal intermediate magnitudes.
	SignedBalanced = DigitDecompositionType(2)
)

// DigitDecomposition is a struct that stores the parameters for the digit
// decomposition of plaintext multiplication operands.
type DigitDecomposition struct {
	Type DigitDecompositionType
	Base int64
}

func (dd DigitDecomposition) ToString() string {
	switch dd.Type {
	case Unsigned:
		return fmt.Sprintf("Unsigned:%d", dd.Base)
	case SignedBalanced:
		return fmt.Sprintf("SignedBalanced:%d", dd.Base)
	default:
		return fmt.Sprintf("None:%d", dd.Base)
	}
}

// MulPolyGadget evaluates opOut = op * pol through a base-B digit
// decomposition of pol. The result is homomorphically equal to
// [Evaluator.MulPoly]; with balanced digits, every digit is at most B/2 in
// absolute value. Each layer is scaled by B^i mod q before its ring product,
// so the accumulated layers equal the naive product modulo q.
//
// Every centred coefficient of pol is decomposed once into its digit layers;
// layer i is scaled by B^i mod q and multiplied into an accumulator
// ciphertext. opOut may alias op.
func (eval Evaluator) MulPolyGadget(op *Ciphertext, pol ring.Poly, dd DigitDecomposition, opOut *Ciphertext) (err error) {

	if err = eval.checkOperands(op, opOut); err != nil {
		return
	}

	if dd.Base < 2 {
		return fmt.Errorf("%w: decomposition base must be at least 2 but is %d", ErrInvalidParameters, dd.Base)
	}

	if dd.Type != Unsigned && dd.Type != SignedBalanced {
		return fmt.Errorf("%w: invalid digit decomposition type %d", ErrInvalidParameters, dd.Type)
	}

	rQ := eval.params.RingQ()
	q := eval.params.Q()
	N := eval.params.N()

	// Digits are extracted from the centred representatives, so that a
	// coefficient q-1 decomposes as -1 and not as a full-width value.
	lifted := eval.LiftPoly(pol)
	rQ.CenterLift(lifted, lifted)

	digits := make([][]int64, N)
	var layers int
	for j := range lifted {
		digits[j] = decomposeCoefficient(lifted[j], dd)
		layers = max(layers, len(digits[j]))
	}

	acc := NewCiphertext(eval.params)
	layerPol := rQ.NewPoly()

	scalar := int64(1)
	for i := 0; i < layers; i++ {

		for j := range layerPol {
			if i < len(digits[j]) {
				layerPol[j] = digits[j][i]
			} else {
				layerPol[j] = 0
			}
		}

		// Effective operand of layer i: digit * B^i mod q.
		rQ.MulScalar(layerPol, scalar, layerPol)

		for slot := range acc.D {
			rQ.MulCoeffsThenAdd(op.D[slot], layerPol, acc.D[slot])
		}

		rQ.MulCoeffsThenAdd(op.B, layerPol, acc.B)

		scalar = ring.MulMod(scalar, ring.Mod(dd.Base, q), q)
	}

	opOut.Copy(acc)

	return
}

// MulPolyGadgetNew evaluates op * pol through a base-B digit decomposition
// and returns the result in a new [glwe.Ciphertext].
func (eval Evaluator) MulPolyGadgetNew(op *Ciphertext, pol ring.Poly, dd DigitDecomposition) (opOut *Ciphertext, err error) {
	opOut = NewCiphertext(eval.params)
	if err = eval.MulPolyGadget(op, pol, dd, opOut); err != nil {
		return nil, err
	}
	return
}

// decomposeCoefficient returns all base-B digits of v, least-significant
// first. The zero coefficient decomposes to no digits.
func decomposeCoefficient(v int64, dd DigitDecomposition) (digits []int64) {

	B := dd.Base

	switch dd.Type {
	case SignedBalanced:
		for v != 0 {
			r := v % B
			if r < 0 {
				r += B
			}
			if r > B>>1 {
				r -= B
			}
			digits = append(digits, r)
			v = (v - r) / B
		}
	default:
		sign := int64(1)
		if v < 0 {
			sign, v = -1, -v
		}
		for v != 0 {
			digits = append(digits, sign*(v%B))
			v /= B
		}
	}

	return
}
