package ring

import (
	"math/bits"
)

// Mod returns the unique y in [0, q) with y = x mod q.
// It is safe on negative x.
func Mod(x, q int64) (y int64) {
	y = x % q
	if y < 0 {
		y += q
	}
	return
}

// Center lifts c in [0, q) to its representative in the
// symmetric range (-q/2, q/2].
func Center(c, q int64) int64 {
	if c > q>>1 {
		return c - q
	}
	return c
}

// DivRound returns the signed round-to-nearest quotient of x by delta.
// Ties round away from zero.
func DivRound(x, delta int64) int64 {
	if x >= 0 {
		return (x + delta>>1) / delta
	}
	return -((-x + delta>>1) / delta)
}

// MulMod returns a*b mod q for a, b in [0, q), going through a 128-bit
// intermediate product. Valid for any q < 2^63.
func MulMod(a, b, q int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	// hi = floor(a*b / 2^64) < q^2/2^64 < q, so the division cannot trap.
	_, rem := bits.Div64(hi, lo, uint64(q))
	return int64(rem)
}
