package glwe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {

	t.Run("NewParametersFromLiteral", func(t *testing.T) {

		params, err := NewParametersFromLiteral(ParametersLiteral{Q: 4096, P: 4, N: 32, K: 1, Sigma: 1.0})
		require.NoError(t, err)
		require.Equal(t, int64(4096), params.Q())
		require.Equal(t, int64(4), params.P())
		require.Equal(t, 32, params.N())
		require.Equal(t, 5, params.LogN())
		require.Equal(t, 1, params.K())
		require.Equal(t, int64(1024), params.Delta())
		require.Equal(t, int64(512), params.NoiseBound())
	})

	t.Run("InvalidParameters", func(t *testing.T) {

		for _, lit := range []ParametersLiteral{
			{Q: 4096, P: 1, N: 32, K: 1},         // p < 2
			{Q: 4, P: 4, N: 32, K: 1},            // q <= p
			{Q: 4096, P: 4, N: 0, K: 1},          // n = 0
			{Q: 4096, P: 4, N: 3, K: 1},          // n not a power of two
			{Q: 4096, P: 4, N: 32, K: 0},         // k = 0
			{Q: 4096, P: 4, N: 32, K: 1, Sigma: -1.0},
			{Q: 1 << 62, P: 4, N: 32, K: 1},      // q^2 * n overflows 127 bits
		} {
			_, err := NewParametersFromLiteral(lit)
			require.ErrorIs(t, err, ErrInvalidParameters)
		}
	})

	t.Run("NewLWE", func(t *testing.T) {
		params, err := NewLWE(1<<20, 256, 8)
		require.NoError(t, err)
		require.Equal(t, 1, params.N())
		require.Equal(t, 8, params.K())
		require.Equal(t, DefaultSigma, params.Sigma())
	})

	t.Run("NewRLWE", func(t *testing.T) {
		params, err := NewRLWE(1<<20, 256, 64)
		require.NoError(t, err)
		require.Equal(t, 64, params.N())
		require.Equal(t, 1, params.K())
	})

	t.Run("WithRank", func(t *testing.T) {
		params, err := NewRLWE(1<<20, 256, 64)
		require.NoError(t, err)
		params, err = params.WithRank(4)
		require.NoError(t, err)
		require.Equal(t, 4, params.K())
	})

	t.Run("WithSigma", func(t *testing.T) {
		params, err := NewRLWE(1<<20, 256, 64)
		require.NoError(t, err)
		params, err = params.WithSigma(1.0)
		require.NoError(t, err)
		require.Equal(t, 1.0, params.Sigma())
	})

	t.Run("Equal", func(t *testing.T) {
		p0, err := NewRLWE(1<<20, 256, 64)
		require.NoError(t, err)
		p1, err := NewRLWE(1<<20, 256, 64)
		require.NoError(t, err)
		require.True(t, p0.Equal(&p1))
		p2, err := p1.WithRank(2)
		require.NoError(t, err)
		require.False(t, p0.Equal(&p2))
	})

	t.Run("JSON", func(t *testing.T) {
		p0, err := NewParametersFromLiteral(ParametersLiteral{Q: 4096, P: 4, N: 32, K: 2, Sigma: 1.0})
		require.NoError(t, err)

		data, err := json.Marshal(p0.ParametersLiteral())
		require.NoError(t, err)

		var lit ParametersLiteral
		require.NoError(t, json.Unmarshal(data, &lit))

		p1, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		require.True(t, p0.Equal(&p1))
	})
}
