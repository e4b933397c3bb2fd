package ring

// Add evaluates p3 = p1 + p2 coefficient-wise modulo the ring modulus.
// Operands shorter than the ring degree are read as zero-padded and longer
// operands are truncated; p3 must have the ring degree.
func (r Ring) Add(p1, p2, p3 Poly) {
	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p3[i] = Mod(coeff(p1, i)+coeff(p2, i), q)
	}
}

// Sub evaluates p3 = p1 - p2 coefficient-wise modulo the ring modulus.
func (r Ring) Sub(p1, p2, p3 Poly) {
	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p3[i] = Mod(coeff(p1, i)-coeff(p2, i), q)
	}
}

// Neg evaluates p2 = -p1 coefficient-wise modulo the ring modulus.
func (r Ring) Neg(p1, p2 Poly) {
	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p2[i] = Mod(-coeff(p1, i), q)
	}
}

// Reduce writes on p2 the canonical representatives in [0, q) of p1.
func (r Ring) Reduce(p1, p2 Poly) {
	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p2[i] = Mod(coeff(p1, i), q)
	}
}

// CenterLift writes on p2 the centred representatives in (-q/2, q/2] of p1.
func (r Ring) CenterLift(p1, p2 Poly) {
	q := r.Modulus
	for i := 0; i < r.N; i++ {
		p2[i] = Center(Mod(coeff(p1, i), q), q)
	}
}

// MulScalar evaluates p2 = p1 * scalar coefficient-wise modulo the
// ring modulus.
func (r Ring) MulScalar(p1 Poly, scalar int64, p2 Poly) {
	q := r.Modulus
	s := Mod(scalar, q)
	for i := 0; i < r.N; i++ {
		p2[i] = MulMod(Mod(coeff(p1, i), q), s, q)
	}
}

// MulCoeffs evaluates p3 = p1 * p2 in Z_q[x]/(x^N + 1).
//
// The product is the schoolbook convolution with the relation x^N = -1
// applied per monomial product: the contribution of the pair (i, j) lands on
// index (i+j) mod N, negated whenever i+j >= N. Each product goes through a
// 128-bit intermediate. O(N^2).
//
// p3 may alias p1 or p2.
func (r Ring) MulCoeffs(p1, p2, p3 Poly) {
	acc := r.mulCoeffs(p1, p2)
	copy(p3[:r.N], acc)
}

// MulCoeffsThenAdd evaluates p3 = p3 + p1 * p2 in Z_q[x]/(x^N + 1).
//
// p3 may alias p1 or p2.
func (r Ring) MulCoeffsThenAdd(p1, p2, p3 Poly) {
	acc := r.mulCoeffs(p1, p2)
	r.Add(p3, acc, p3)
}

func (r Ring) mulCoeffs(p1, p2 Poly) (acc Poly) {

	N := r.N
	q := r.Modulus

	// Canonicalises the right operand once; the left operand is
	// canonicalised per row.
	b := make([]int64, N)
	for j := 0; j < N; j++ {
		b[j] = Mod(coeff(p2, j), q)
	}

	acc = make(Poly, N)

	for i := 0; i < N; i++ {

		a := Mod(coeff(p1, i), q)

		if a == 0 {
			continue
		}

		for j := 0; j < N; j++ {

			if b[j] == 0 {
				continue
			}

			prod := MulMod(a, b[j], q)

			if k := i + j; k < N {
				acc[k] = Mod(acc[k]+prod, q)
			} else {
				// x^N = -1
				acc[k-N] = Mod(acc[k-N]-prod, q)
			}
		}
	}

	return
}
