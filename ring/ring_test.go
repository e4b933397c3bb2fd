package ring

import (
	"fmt"
	"testing"

	"github.com/Pro7ech/hpre/utils/buffer"
	"github.com/Pro7ech/hpre/utils/sampling"
	"github.com/stretchr/testify/require"
)

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/Q=%d", opname, r.N, r.Modulus)
}

func TestModular(t *testing.T) {

	t.Run("Mod", func(t *testing.T) {
		require.Equal(t, int64(2), Mod(-5, 7))
		require.Equal(t, int64(0), Mod(7, 7))
		require.Equal(t, int64(0), Mod(-7, 7))
		require.Equal(t, int64(5), Mod(12, 7))
		require.Equal(t, int64(6), Mod(-1, 7))
		require.Equal(t, int64(3), Mod(3, 7))
	})

	t.Run("Center", func(t *testing.T) {
		require.Equal(t, int64(3), Center(3, 7))
		require.Equal(t, int64(-1), Center(6, 7))
		require.Equal(t, int64(0), Center(0, 7))
		// q/2 stays on the positive side of (-q/2, q/2]
		require.Equal(t, int64(2048), Center(2048, 4096))
		require.Equal(t, int64(-2047), Center(2049, 4096))
	})

	t.Run("DivRound", func(t *testing.T) {
		require.Equal(t, int64(1), DivRound(5, 4))
		require.Equal(t, int64(2), DivRound(6, 4)) // tie rounds away from zero
		require.Equal(t, int64(-1), DivRound(-5, 4))
		require.Equal(t, int64(-2), DivRound(-6, 4))
		require.Equal(t, int64(0), DivRound(0, 4))
		require.Equal(t, int64(3), DivRound(3072, 1024))
	})

	t.Run("MulMod", func(t *testing.T) {
		require.Equal(t, int64(5), MulMod(3, 4, 7))
		require.Equal(t, int64(0), MulMod(0, 6, 7))
		// Products above 64 bits must go through the wide path.
		q := int64(1) << 61
		a := q - 1
		// (q-1)^2 = q^2 - 2q + 1 = 1 mod q
		require.Equal(t, int64(1), MulMod(a, a, q))
	})
}

func TestRing(t *testing.T) {

	t.Run("NewRing", func(t *testing.T) {
		_, err := NewRing(0, 97)
		require.Error(t, err)
		_, err = NewRing(3, 97)
		require.Error(t, err)
		_, err = NewRing(16, 1)
		require.Error(t, err)
		_, err = NewRing(32, 1<<62)
		require.Error(t, err)
		r, err := NewRing(1, 97)
		require.NoError(t, err)
		require.Equal(t, 1, r.N)
		r, err = NewRing(32, 4096)
		require.NoError(t, err)
		require.Equal(t, 5, r.LogN())
	})

	r, err := NewRing(32, 4097)
	require.NoError(t, err)

	source := sampling.NewSource(sampling.Seed{})
	uni := NewUniformSampler(source, 0, r.Modulus)

	t.Run(testString("Add/Commutative", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		b := uni.ReadNew(r.N)
		c0 := r.NewPoly()
		c1 := r.NewPoly()
		r.Add(a, b, c0)
		r.Add(b, a, c1)
		require.True(t, c0.Equal(&c1))
	})

	t.Run(testString("Add/Associative", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		b := uni.ReadNew(r.N)
		c := uni.ReadNew(r.N)
		t0 := r.NewPoly()
		t1 := r.NewPoly()
		r.Add(a, b, t0)
		r.Add(t0, c, t0)
		r.Add(b, c, t1)
		r.Add(a, t1, t1)
		require.True(t, t0.Equal(&t1))
	})

	t.Run(testString("Add/ShortOperand", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		short := Poly{1, 2, 3}
		c := r.NewPoly()
		r.Add(a, short, c)
		for i := 0; i < r.N; i++ {
			require.Equal(t, Mod(a[i]+coeff(short, i), r.Modulus), c[i])
		}
	})

	t.Run(testString("Sub/Neg", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		b := uni.ReadNew(r.N)
		c0 := r.NewPoly()
		c1 := r.NewPoly()
		r.Sub(a, b, c0)
		r.Neg(b, c1)
		r.Add(a, c1, c1)
		require.True(t, c0.Equal(&c1))
	})

	t.Run(testString("MulCoeffs/NegacyclicIdentity", r), func(t *testing.T) {
		// x^{n-1} * x = x^n = -1
		a := r.NewPoly()
		a[r.N-1] = 1
		b := r.NewPoly()
		b[1] = 1
		c := r.NewPoly()
		r.MulCoeffs(a, b, c)
		want := r.NewPoly()
		want[0] = r.Modulus - 1
		require.True(t, c.Equal(&want))
	})

	t.Run(testString("MulCoeffs/Known", r), func(t *testing.T) {
		// (1 + x)(1 + x^3) = 1 + x + x^3 + x^4 mod x^4 + 1 = x + x^3
		r4, err := NewRing(4, 97)
		require.NoError(t, err)
		a := Poly{1, 1, 0, 0}
		b := Poly{1, 0, 0, 1}
		c := r4.NewPoly()
		r4.MulCoeffs(a, b, c)
		require.Equal(t, Poly{0, 1, 0, 1}, c)
	})

	t.Run(testString("MulCoeffs/Commutative", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		b := uni.ReadNew(r.N)
		c0 := r.NewPoly()
		c1 := r.NewPoly()
		r.MulCoeffs(a, b, c0)
		r.MulCoeffs(b, a, c1)
		require.True(t, c0.Equal(&c1))
	})

	t.Run(testString("MulCoeffs/Distributive", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		b := uni.ReadNew(r.N)
		c := uni.ReadNew(r.N)
		lhs := r.NewPoly()
		rhs := r.NewPoly()
		t0 := r.NewPoly()
		r.Add(b, c, t0)
		r.MulCoeffs(a, t0, lhs)
		r.MulCoeffs(a, b, rhs)
		r.MulCoeffsThenAdd(a, c, rhs)
		require.True(t, lhs.Equal(&rhs))
	})

	t.Run(testString("MulCoeffs/NegativeOperand", r), func(t *testing.T) {
		// Operands are canonicalised before the convolution.
		a := Poly{-1}
		b := Poly{1}
		c := r.NewPoly()
		r.MulCoeffs(a, b, c)
		require.Equal(t, r.Modulus-1, c[0])
	})

	t.Run(testString("MulScalar", r), func(t *testing.T) {
		a := uni.ReadNew(r.N)
		c0 := r.NewPoly()
		c1 := r.NewPoly()
		r.MulScalar(a, 3, c0)
		r.Add(a, a, c1)
		r.Add(c1, a, c1)
		require.True(t, c0.Equal(&c1))
	})

	t.Run(testString("CenterLift", r), func(t *testing.T) {
		a := Poly{0, 1, r.Modulus - 1, r.Modulus >> 1}
		c := r.NewPoly()
		r.CenterLift(a, c)
		require.Equal(t, int64(0), c[0])
		require.Equal(t, int64(1), c[1])
		require.Equal(t, int64(-1), c[2])
	})
}

func TestPolySerialization(t *testing.T) {

	source := sampling.NewSource(sampling.Seed{0x01})
	uni := NewUniformSampler(source, -1024, 1024)

	p := uni.ReadNew(64)

	t.Run("WriterAndReader", func(t *testing.T) {
		buf := buffer.NewBufferSize(p.BinarySize())
		n, err := p.WriteTo(buf)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		q := Poly{}
		m, err := q.ReadFrom(buffer.NewBuffer(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, n, m)
		require.True(t, p.Equal(&q))
	})

	t.Run("MarshalBinary", func(t *testing.T) {
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		q := Poly{}
		require.NoError(t, q.UnmarshalBinary(data))
		require.True(t, p.Equal(&q))
	})
}

func TestPolyResize(t *testing.T) {
	p := Poly{1, 2, 3}
	p.Resize(5)
	require.Equal(t, Poly{1, 2, 3, 0, 0}, p)
	p.Resize(2)
	require.Equal(t, Poly{1, 2}, p)
}
