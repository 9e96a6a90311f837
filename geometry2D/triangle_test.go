package geometry2D

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/notargets/gocubature/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestTriangle(t *testing.T) {
	{ // Jacobian columns are v2-v1 and v3-v1
		tri, err := NewTriangleFromCoords(1, 2, 4, 3, 0, 5)
		require.NoError(t, err)
		J := tri.Jacobian()
		assert.True(t, mat.Equal(J, mat.NewDense(2, 2, []float64{
			3, -1,
			1, 3,
		})))
		assert.Equal(t, 10., tri.Det())
		assert.InDelta(t, mat.Det(J), tri.Det(), 1.e-14)
		assert.Equal(t, 5., tri.SignedArea())
		assert.Equal(t, 5., tri.Area())
		c := tri.Centroid()
		assert.InDeltaSlice(t, []float64{5. / 3., 10. / 3.}, c[:], 1.e-14)
		assert.False(t, tri.IsDegenerate())
	}
	{ // Orientation flips the sign only
		tri, err := NewTriangleFromCoords(0, 0, 1, 0, 0, 1)
		require.NoError(t, err)
		rev := tri.Reversed()
		assert.Equal(t, -0.5, rev.SignedArea())
		assert.Equal(t, 0.5, rev.Area())
		assert.Equal(t, tri, rev.Reversed())
	}
	{ // Degenerate
		tri, err := NewTriangleFromCoords(0, 0, 1, 1, 3, 3)
		require.NoError(t, err)
		assert.True(t, tri.IsDegenerate())
		assert.Equal(t, 0., tri.Area())
	}
	{ // Malformed input
		_, err := NewTriangle(mat.NewDense(4, 2, nil))
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
		_, err = NewTriangle(mat.NewDense(3, 3, nil))
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
		_, err = NewTriangleFromCoords(0, 0, 1)
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	}
	{ // Round trip through the vertex matrix
		tri, err := NewTriangleFromCoords(1, 2, 4, 3, 0, 5)
		require.NoError(t, err)
		back, err := NewTriangle(tri.Vertices())
		require.NoError(t, err)
		assert.Equal(t, tri, back)
		assert.Equal(t, "[(1,2) (4,3) (0,5)]", tri.String())
	}
	{ // Random triangles are counter-clockwise and non degenerate
		rng := rand.New(rand.NewSource(42))
		for n := 0; n < 100; n++ {
			assert.True(t, RandomTriangle(rng).Det() > 1.e-3)
		}
	}
}

func TestMesh(t *testing.T) {
	VXY, EToV := NewUnitSquareMesh(4)
	nr, nc := VXY.Dims()
	assert.Equal(t, 25, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 32, len(EToV))
	require.NoError(t, CheckVertexTable(VXY))
	var area float64
	for k := range EToV {
		tri := ElementTriangle(VXY, EToV, k)
		assert.InDelta(t, 1./32., tri.SignedArea(), 1.e-15)
		area += tri.Area()
	}
	assert.InDelta(t, 1., area, 1.e-14)

	assert.True(t, errors.Is(CheckVertexTable(mat.NewDense(3, 3, nil)), types.ErrInvalidArgument))
	assert.True(t, errors.Is(CheckVertexTable(nil), types.ErrInvalidArgument))
	assert.Panics(t, func() { ElementTriangle(VXY, [][3]int{{0, 1, 99}}, 0) })
}
