package polynomial

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMonomial(t *testing.T) {
	XY := mat.NewDense(3, 2, []float64{
		10, 0,
		0, 10,
		5, 5,
	})
	{
		m := NewMonomial(2, 0, 1./3.)
		assert.InDeltaSlice(t, []float64{100. / 3., 0, 25. / 3.}, m.Evaluate(XY), 1.e-12)
		assert.Equal(t, 2, m.Degree())
	}
	{
		m := NewMonomial(0, 3, 1./3.)
		assert.InDeltaSlice(t, []float64{0, 1000. / 3., 125. / 3.}, m.Evaluate(XY), 1.e-12)
	}
	{
		m := NewMonomial(2, 3, 1./3.)
		assert.InDeltaSlice(t, []float64{0, 0, 3125. / 3.}, m.Evaluate(XY), 1.e-10)
		assert.Equal(t, 5, m.Degree())
		assert.Equal(t, 2, m.XExponent())
		assert.Equal(t, 3, m.YExponent())
		assert.Equal(t, 1./3., m.Coefficient())
	}
	{ // 0^0 is one
		m := NewMonomial(0, 0, 2)
		assert.Equal(t, []float64{2, 2, 2}, m.Evaluate(XY))
	}
	{ // Randomized against math.Pow
		rng := rand.New(rand.NewSource(42))
		for n := 0; n < 100; n++ {
			var (
				K     = 50
				coeff = rng.Float64()
				xExp  = rng.Intn(10)
				yExp  = rng.Intn(10)
				pts   = mat.NewDense(K, 2, nil)
			)
			for i := 0; i < K; i++ {
				pts.Set(i, 0, rng.Float64())
				pts.Set(i, 1, rng.Float64())
			}
			f := NewMonomial(xExp, yExp, coeff).Evaluate(pts)
			for i := 0; i < K; i++ {
				expected := coeff * math.Pow(pts.At(i, 0), float64(xExp)) *
					math.Pow(pts.At(i, 1), float64(yExp))
				assert.InDelta(t, expected, f[i], 1.e-12)
			}
		}
	}
	assert.Panics(t, func() { NewMonomial(-1, 0, 1) })
}

func TestPolynomial(t *testing.T) {
	XY := mat.NewDense(2, 2, []float64{
		1, 2,
		-1, 0.5,
	})
	{ // Empty polynomial
		p := NewPolynomial()
		assert.Equal(t, 0, p.Degree())
		assert.Equal(t, []float64{0, 0}, p.Evaluate(XY))
		assert.Equal(t, "0", p.String())
	}
	{ // 1 + 2x - 3xy^2
		p := NewPolynomial(
			NewMonomial(0, 0, 1),
			NewMonomial(1, 0, 2),
			NewMonomial(1, 2, -3),
		)
		assert.Equal(t, 3, p.Degree())
		assert.Equal(t, 3, p.Len())
		assert.InDeltaSlice(t, []float64{1 + 2 - 12, 1 - 2 + 0.75}, p.Evaluate(XY), 1.e-14)
		assert.InDelta(t, -9., p.EvaluateAt(1, 2), 1.e-14)

		q := p.Add(NewPolynomial(NewMonomial(4, 0, 1)))
		assert.Equal(t, 4, q.Degree())
		assert.Equal(t, 3, p.Len())
		assert.InDelta(t, -8., q.EvaluateAt(1, 2), 1.e-14)

		s := p.Scale(-2)
		assert.InDelta(t, 18., s.EvaluateAt(1, 2), 1.e-14)
		assert.InDelta(t, -9., p.EvaluateAt(1, 2), 1.e-14)
	}
	{ // The polynomial owns its terms
		ms := []Monomial{NewMonomial(1, 0, 1)}
		p := NewPolynomial(ms...)
		ms[0] = NewMonomial(5, 5, 7)
		assert.Equal(t, 1, p.Degree())
		out := p.Monomials()
		out[0] = NewMonomial(3, 3, 3)
		assert.Equal(t, 1, p.Degree())
	}
}
