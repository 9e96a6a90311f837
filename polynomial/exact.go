package polynomial

import (
	"github.com/notargets/gocubature/geometry2D"
	"github.com/notargets/gocubature/utils"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"
)

// Multinomial returns n!/(k1!*k2!*...*km!) with n = k1+...+km, built as a
// product of binomial coefficients to stay in integer arithmetic.
func Multinomial(k ...int) (c int) {
	var (
		n int
	)
	for _, ki := range k {
		n += ki
	}
	c = 1
	for _, ki := range k {
		c *= combin.Binomial(n, ki)
		n -= ki
	}
	return
}

// ReferenceMoment is the integral of x^a*y^b over the reference triangle
// (0,0),(1,0),(0,1), evaluated as
//
//	1/(b+1) * Sum_{k=0}^{b+1} C(b+1,k) * (-1)^k / (a+k+1)
func ReferenceMoment(a, b int) (I float64) {
	var (
		sign = 1.
	)
	for k := 0; k <= b+1; k++ {
		I += sign * float64(combin.Binomial(b+1, k)) / float64(a+k+1)
		sign = -sign
	}
	I /= float64(b + 1)
	return
}

// ReferenceMomentFactorial is the same moment as a!*b!/(a+b+2)!
func ReferenceMomentFactorial(a, b int) float64 {
	// a!b!/(a+b)! = 1/C(a+b, a)
	n := a + b
	return 1. / (float64(combin.Binomial(n, a)) * float64(n+1) * float64(n+2))
}

// affineTerm is one term c * xh^a * yh^b of an expanded power of an affine
// coordinate r + xh*d2 + yh*d3
type affineTerm struct {
	c    float64
	a, b int
}

func expandAffinePower(r, d2, d3 float64, p int) (terms []affineTerm) {
	terms = make([]affineTerm, 0, (p+1)*(p+2)/2)
	for k2 := 0; k2 <= p; k2++ {
		for k3 := 0; k3 <= p-k2; k3++ {
			k1 := p - k2 - k3
			c := float64(Multinomial(k1, k2, k3)) *
				utils.POW(r, k1) * utils.POW(d2, k2) * utils.POW(d3, k3)
			terms = append(terms, affineTerm{c: c, a: k2, b: k3})
		}
	}
	return
}

type momentTable struct {
	N int
	I []float64
}

func newMomentTable(deg int) (mt *momentTable) {
	N := deg + 1
	mt = &momentTable{N: N, I: make([]float64, N*N)}
	for a := 0; a < N; a++ {
		for b := 0; b < N-a; b++ {
			mt.I[a+b*N] = ReferenceMoment(a, b)
		}
	}
	return
}

func (mt *momentTable) At(a, b int) float64 { return mt.I[a+b*mt.N] }

// IntegrateOnTriangle integrates p exactly over tri by expanding each
// monomial under the affine map from the reference triangle. A degenerate
// triangle integrates to zero.
func IntegrateOnTriangle(p *Polynomial, tri geometry2D.Triangle) float64 {
	return integrateOnTriangle(p, tri, newMomentTable(p.Degree()))
}

func integrateOnTriangle(p *Polynomial, tri geometry2D.Triangle, mt *momentTable) (I float64) {
	var (
		r1     = tri[0]
		d2, d3 = tri.Edges()
	)
	for _, m := range p.monomials {
		var (
			xTerms = expandAffinePower(r1[0], d2[0], d3[0], m.xExp)
			yTerms = expandAffinePower(r1[1], d2[1], d3[1], m.yExp)
			sum    float64
		)
		for _, xt := range xTerms {
			for _, yt := range yTerms {
				sum += xt.c * yt.c * mt.At(xt.a+yt.a, xt.b+yt.b)
			}
		}
		I += m.coeff * sum
	}
	I *= tri.Det()
	return
}

// IntegrateOnMesh sums the exact element integrals of p over a mesh given
// by an N x 2 vertex table and counter-clockwise element rows.
func IntegrateOnMesh(p *Polynomial, VXY mat.Matrix, EToV [][3]int) (I float64, err error) {
	if err = geometry2D.CheckVertexTable(VXY); err != nil {
		return
	}
	mt := newMomentTable(p.Degree())
	for k := range EToV {
		I += integrateOnTriangle(p, geometry2D.ElementTriangle(VXY, EToV, k), mt)
	}
	return
}
