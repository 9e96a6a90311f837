package polynomial

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/notargets/gocubature/geometry2D"
	"github.com/notargets/gocubature/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func unitTriangle(t *testing.T) geometry2D.Triangle {
	tri, err := geometry2D.NewTriangleFromCoords(0, 0, 1, 0, 0, 1)
	require.NoError(t, err)
	return tri
}

func TestMultinomial(t *testing.T) {
	assert.Equal(t, 1, Multinomial())
	assert.Equal(t, 1, Multinomial(0, 0, 0))
	assert.Equal(t, 1, Multinomial(5))
	assert.Equal(t, 6, Multinomial(1, 1, 1))
	assert.Equal(t, 12, Multinomial(2, 1, 1))
	assert.Equal(t, 10, Multinomial(3, 2))
	assert.Equal(t, 1260, Multinomial(4, 3, 2))
	assert.Equal(t, 3628800, Multinomial(1, 1, 1, 1, 1, 1, 1, 1, 1, 1))
}

func TestReferenceMoment(t *testing.T) {
	assert.InDelta(t, 0.5, ReferenceMoment(0, 0), 1.e-15)
	assert.InDelta(t, 1./6., ReferenceMoment(1, 0), 1.e-15)
	assert.InDelta(t, 1./6., ReferenceMoment(0, 1), 1.e-15)
	assert.InDelta(t, 1./60., ReferenceMoment(2, 1), 1.e-15)
	for a := 0; a <= 10; a++ {
		for b := 0; b <= 10-a; b++ {
			assert.InEpsilon(t, ReferenceMomentFactorial(a, b), ReferenceMoment(a, b), 1.e-9,
				"a, b = %d, %d", a, b)
			assert.InEpsilon(t, ReferenceMoment(b, a), ReferenceMoment(a, b), 1.e-9)
		}
	}
}

func TestIntegrateOnTriangle(t *testing.T) {
	var (
		rng = rand.New(rand.NewSource(42))
	)
	{ // x^2*y over the unit triangle
		p := NewPolynomial(NewMonomial(2, 1, 1))
		assert.InDelta(t, 1./60., IntegrateOnTriangle(p, unitTriangle(t)), 1.e-15)
	}
	{ // x^2*y over (0,0),(2,0),(0,2): det = 4, x = 2xh, y = 2yh
		tri, err := geometry2D.NewTriangleFromCoords(0, 0, 2, 0, 0, 2)
		require.NoError(t, err)
		p := NewPolynomial(NewMonomial(2, 1, 1))
		assert.InDelta(t, 32./60., IntegrateOnTriangle(p, tri), 1.e-14)
	}
	{ // Area recovery
		one := NewPolynomial(NewMonomial(0, 0, 1))
		for n := 0; n < 20; n++ {
			tri := geometry2D.RandomTriangle(rng)
			assert.InEpsilon(t, tri.Area(), IntegrateOnTriangle(one, tri), 1.e-12)
		}
	}
	{ // Linear polynomials integrate to area times the centroid value
		for n := 0; n < 20; n++ {
			var (
				tri = geometry2D.RandomTriangle(rng)
				p   = RandomPolynomial(1, 1, rng)
				c   = tri.Centroid()
			)
			assert.InDelta(t, tri.Area()*p.EvaluateAt(c[0], c[1]), IntegrateOnTriangle(p, tri), 1.e-12)
		}
	}
	{ // Affine invariance: integrate p(x,y) on a translated triangle
		// and compare against the shifted polynomial on the unshifted triangle
		tri := geometry2D.RandomTriangle(rng)
		shifted := tri
		for i := range shifted {
			shifted[i][0] += 1
		}
		// (x-1)^2 = x^2 - 2x + 1
		pShift := NewPolynomial(NewMonomial(2, 0, 1), NewMonomial(1, 0, -2), NewMonomial(0, 0, 1))
		pOrig := NewPolynomial(NewMonomial(2, 0, 1))
		assert.InDelta(t, IntegrateOnTriangle(pOrig, tri), IntegrateOnTriangle(pShift, shifted), 1.e-12)
	}
	{ // Linearity in the polynomial
		for n := 0; n < 10; n++ {
			var (
				tri = geometry2D.RandomTriangle(rng)
				p   = RandomPolynomial(4, 1, rng)
				q   = RandomPolynomial(3, 1, rng)
			)
			assert.InDelta(t,
				IntegrateOnTriangle(p, tri)-2*IntegrateOnTriangle(q, tri),
				IntegrateOnTriangle(p.Add(q.Scale(-2)), tri), 1.e-11)
		}
	}
	{ // Degenerate triangle is exactly zero, not an error
		tri, err := geometry2D.NewTriangleFromCoords(0, 0, 1, 1, 2, 2)
		require.NoError(t, err)
		p := RandomPolynomial(3, 1, rng)
		assert.Equal(t, 0., IntegrateOnTriangle(p, tri))
	}
	{ // Clockwise vertices negate the integral
		tri := geometry2D.RandomTriangle(rng)
		p := RandomPolynomial(3, 1, rng)
		assert.InDelta(t, -IntegrateOnTriangle(p, tri), IntegrateOnTriangle(p, tri.Reversed()), 1.e-12)
	}
	{ // Empty polynomial
		assert.Equal(t, 0., IntegrateOnTriangle(NewPolynomial(), unitTriangle(t)))
	}
}

func TestIntegrateOnMesh(t *testing.T) {
	{ // x^2*y^3 over the unit square is 1/12 for any triangulation
		p := NewPolynomial(NewMonomial(2, 3, 1))
		for _, n := range []int{1, 2, 5} {
			VXY, EToV := geometry2D.NewUnitSquareMesh(n)
			I, err := IntegrateOnMesh(p, VXY, EToV)
			require.NoError(t, err)
			assert.InDelta(t, 1./12., I, 1.e-13)
		}
	}
	{ // Mesh sum equals the element sum
		rng := rand.New(rand.NewSource(7))
		p := RandomPolynomial(5, 2, rng)
		VXY, EToV := geometry2D.NewUnitSquareMesh(3)
		I, err := IntegrateOnMesh(p, VXY, EToV)
		require.NoError(t, err)
		var sum float64
		for k := range EToV {
			sum += IntegrateOnTriangle(p, geometry2D.ElementTriangle(VXY, EToV, k))
		}
		assert.InDelta(t, sum, I, 1.e-13)
	}
	{ // Empty element table
		VXY, _ := geometry2D.NewUnitSquareMesh(1)
		I, err := IntegrateOnMesh(NewPolynomial(NewMonomial(0, 0, 1)), VXY, nil)
		require.NoError(t, err)
		assert.Equal(t, 0., I)
	}
	{ // Vertex table with the wrong width
		_, err := IntegrateOnMesh(NewPolynomial(), mat.NewDense(3, 3, nil), [][3]int{{0, 1, 2}})
		assert.True(t, errors.Is(err, types.ErrInvalidArgument))
	}
}
