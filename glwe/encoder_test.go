package glwe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {

	t.Run("RoundTrip", func(t *testing.T) {

		inputs := [][]byte{
			{},
			{0x00},
			{0xFF},
			{200, 123, 255},
			[]byte("Hello world!\n"),
			[]byte("Encodable message!\n"),
		}

		for _, p := range []int64{2, 3, 5, 8, 16, 256, 512} {
			t.Run(fmt.Sprintf("P=%d", p), func(t *testing.T) {

				params, err := NewParametersFromLiteral(ParametersLiteral{Q: 1 << 40, P: p, N: 256, K: 1})
				require.NoError(t, err)

				ecd := NewEncoder(params)

				for _, data := range inputs {
					digits := ecd.EncodeDigits(data)
					require.Equal(t, len(data)*ecd.DigitsPerByte(), len(digits))
					decoded, err := ecd.DecodeDigits(digits)
					require.NoError(t, err)
					require.Equal(t, data, decoded)
				}
			})
		}
	})

	t.Run("DigitsPerByte", func(t *testing.T) {
		for _, tc := range []struct {
			p      int64
			digits int
		}{
			{2, 8}, {3, 6}, {4, 4}, {5, 4}, {8, 3}, {16, 2}, {256, 1}, {512, 1},
		} {
			params, err := NewParametersFromLiteral(ParametersLiteral{Q: 1 << 40, P: tc.p, N: 32, K: 1})
			require.NoError(t, err)
			require.Equal(t, tc.digits, NewEncoder(params).DigitsPerByte(), "P=%d", tc.p)
		}
	})

	t.Run("DigitRange", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{Q: 1 << 20, P: 5, N: 64, K: 1})
		require.NoError(t, err)
		digits := NewEncoder(params).EncodeDigits([]byte("digits"))
		for _, d := range digits {
			require.True(t, d >= -2 && d < 3)
		}
	})

	t.Run("InvalidEncoding", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{Q: 4096, P: 4, N: 32, K: 1})
		require.NoError(t, err)
		ecd := NewEncoder(params)
		// 4 digits per byte: a stream of 5 digits is malformed.
		_, err = ecd.DecodeDigits(make([]int64, 5))
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("PadAndTruncate", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{Q: 4096, P: 4, N: 32, K: 1})
		require.NoError(t, err)
		ecd := NewEncoder(params)

		// 2 bytes encode to 8 digits, zero-padded up to n=32.
		pt := ecd.Encode([]byte("he"))
		require.Equal(t, 32, pt.N())
		for _, d := range pt.Value[8:] {
			require.Equal(t, int64(0), d)
		}

		// 16 bytes encode to 64 digits, silently truncated to n=32.
		pt = ecd.Encode([]byte("0123456789abcdef"))
		require.Equal(t, 32, pt.N())
	})

	t.Run("DecodeSlots", func(t *testing.T) {
		params, err := NewParametersFromLiteral(ParametersLiteral{Q: 4096, P: 4, N: 32, K: 1})
		require.NoError(t, err)
		ecd := NewEncoder(params)

		pt := ecd.Encode([]byte("he"))
		data, err := ecd.DecodeSlots(pt, 2)
		require.NoError(t, err)
		require.Equal(t, []byte("he"), data)

		_, err = ecd.DecodeSlots(pt, 9)
		require.ErrorIs(t, err, ErrInvalidEncoding)
	})
}
