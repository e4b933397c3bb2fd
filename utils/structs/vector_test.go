package structs_test

import (
	"testing"

	"github.com/Pro7ech/hpre/ring"
	"github.com/Pro7ech/hpre/utils/structs"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {

	v := structs.Vector[ring.Poly]{
		ring.Poly{1, 2, 3},
		ring.Poly{4, 5, 6},
	}

	t.Run("Clone", func(t *testing.T) {
		w := v.Clone()
		require.True(t, v.Equal(w))
		w[0][0] = 7
		require.False(t, v.Equal(w))
	})

	t.Run("Copy", func(t *testing.T) {
		w := structs.Vector[ring.Poly]{
			ring.NewPoly(3),
			ring.NewPoly(3),
		}
		w.Copy(v)
		require.True(t, v.Equal(w))
	})

	t.Run("Serialization", func(t *testing.T) {
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, v.BinarySize(), len(data))

		w := structs.Vector[ring.Poly]{}
		require.NoError(t, w.UnmarshalBinary(data))
		require.True(t, v.Equal(w))
	})
}
