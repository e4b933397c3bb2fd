package glwe

import (
	"fmt"

	"github.com/Pro7ech/hpre/ring"
)

// Evaluator is a struct that holds the necessary elements to execute the
// homomorphic operations between ciphertexts and plaintext operands.
//
// Noise budget tracking is the caller's responsibility: addition grows the
// noise additively, scalar multiplication scales it by |scalar| and
// plaintext-polynomial multiplication convolves it with the operand.
type Evaluator struct {
	params Parameters
}

// NewEvaluator creates a new [glwe.Evaluator].
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// GetParameters returns the underlying [glwe.Parameters] of the receiver.
func (eval Evaluator) GetParameters() *Parameters {
	return &eval.params
}

func (eval Evaluator) checkOperands(ops ...*Ciphertext) error {
	for _, op := range ops {
		if op.Rank() != eval.params.K() {
			return fmt.Errorf("%w: operand rank %d does not match parameters rank %d", ErrLengthMismatch, op.Rank(), eval.params.K())
		}
		if op.N() != eval.params.N() {
			return fmt.Errorf("%w: operand degree %d does not match ring degree %d", ErrLengthMismatch, op.N(), eval.params.N())
		}
	}
	return nil
}

// Add evaluates opOut = op0 + op1: coefficient-wise addition modulo q of
// the bodies and of all k mask polynomials.
func (eval Evaluator) Add(op0, op1, opOut *Ciphertext) (err error) {

	if err = eval.checkOperands(op0, op1, opOut); err != nil {
		return
	}

	rQ := eval.params.RingQ()

	for i := range opOut.D {
		rQ.Add(op0.D[i], op1.D[i], opOut.D[i])
	}

	rQ.Add(op0.B, op1.B, opOut.B)

	return
}

// AddNew evaluates op0 + op1 and returns the result in a new
// [glwe.Ciphertext].
func (eval Evaluator) AddNew(op0, op1 *Ciphertext) (opOut *Ciphertext, err error) {
	opOut = NewCiphertext(eval.params)
	if err = eval.Add(op0, op1, opOut); err != nil {
		return nil, err
	}
	return
}

// MulScalar multiplies op in place by the cleartext integer scalar,
// reducing every coefficient modulo q.
func (eval Evaluator) MulScalar(op *Ciphertext, scalar int64) (err error) {

	if err = eval.checkOperands(op); err != nil {
		return
	}

	rQ := eval.params.RingQ()

	for i := range op.D {
		rQ.MulScalar(op.D[i], scalar, op.D[i])
	}

	rQ.MulScalar(op.B, scalar, op.B)

	return
}

// MulScalarNew evaluates op * scalar and returns the result in a new
// [glwe.Ciphertext], leaving op untouched.
func (eval Evaluator) MulScalarNew(op *Ciphertext, scalar int64) (opOut *Ciphertext, err error) {
	opOut = op.Clone()
	if err = eval.MulScalar(opOut, scalar); err != nil {
		return nil, err
	}
	return
}

// LiftPoly returns pol resized to the ring degree with every coefficient
// canonicalised into [0, q), i.e. the lift of a plaintext polynomial
// into R_q.
func (eval Evaluator) LiftPoly(pol ring.Poly) ring.Poly {
	rQ := eval.params.RingQ()
	lifted := *pol.Clone()
	lifted.Resize(eval.params.N())
	rQ.Reduce(lifted, lifted)
	return lifted
}

// MulPoly evaluates opOut = op * pol, the negacyclic product of every
// ciphertext slot with the plaintext polynomial pol lifted to R_q.
//
// opOut may alias op.
func (eval Evaluator) MulPoly(op *Ciphertext, pol ring.Poly, opOut *Ciphertext) (err error) {

	if err = eval.checkOperands(op, opOut); err != nil {
		return
	}

	rQ := eval.params.RingQ()

	lifted := eval.LiftPoly(pol)

	for i := range opOut.D {
		rQ.MulCoeffs(op.D[i], lifted, opOut.D[i])
	}

	rQ.MulCoeffs(op.B, lifted, opOut.B)

	return
}

// MulPolyNew evaluates op * pol and returns the result in a new
// [glwe.Ciphertext].
func (eval Evaluator) MulPolyNew(op *Ciphertext, pol ring.Poly) (opOut *Ciphertext, err error) {
	opOut = NewCiphertext(eval.params)
	if err = eval.MulPoly(op, pol, opOut); err != nil {
		return nil, err
	}
	return
}
