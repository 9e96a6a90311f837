package polynomial

import (
	"fmt"
	"strings"

	"github.com/notargets/gocubature/utils"
	"gonum.org/v1/gonum/mat"
)

// Monomial is coefficient * x^XExp * y^YExp
type Monomial struct {
	xExp, yExp int
	coeff      float64
}

func NewMonomial(xExp, yExp int, coeff float64) Monomial {
	if xExp < 0 || yExp < 0 {
		panic(fmt.Errorf("monomial exponents must be >= 0, have %d, %d", xExp, yExp))
	}
	return Monomial{xExp: xExp, yExp: yExp, coeff: coeff}
}

func (m Monomial) XExponent() int       { return m.xExp }
func (m Monomial) YExponent() int       { return m.yExp }
func (m Monomial) Coefficient() float64 { return m.coeff }
func (m Monomial) Degree() int          { return m.xExp + m.yExp }

// Evaluate returns one value per row of the K x 2 point table XY
func (m Monomial) Evaluate(XY mat.Matrix) (f []float64) {
	var (
		K, _ = XY.Dims()
	)
	f = make([]float64, K)
	m.accumulate(XY, f)
	return
}

func (m Monomial) accumulate(XY mat.Matrix, f []float64) {
	for i := range f {
		f[i] += m.coeff * utils.POW(XY.At(i, 0), m.xExp) * utils.POW(XY.At(i, 1), m.yExp)
	}
}

func (m Monomial) String() string {
	return fmt.Sprintf("%g*x^%d*y^%d", m.coeff, m.xExp, m.yExp)
}

// Polynomial is a sum of monomials. The order of the terms is kept so that
// evaluation and integration iterate reproducibly.
type Polynomial struct {
	monomials []Monomial
}

func NewPolynomial(monomials ...Monomial) (p *Polynomial) {
	p = &Polynomial{
		monomials: make([]Monomial, len(monomials)),
	}
	copy(p.monomials, monomials)
	return
}

// Monomials returns a copy of the terms
func (p *Polynomial) Monomials() (ms []Monomial) {
	ms = make([]Monomial, len(p.monomials))
	copy(ms, p.monomials)
	return
}

func (p *Polynomial) Len() int { return len(p.monomials) }

// Degree is the largest monomial degree, zero for an empty polynomial
func (p *Polynomial) Degree() (deg int) {
	for _, m := range p.monomials {
		if d := m.Degree(); d > deg {
			deg = d
		}
	}
	return
}

// Evaluate sums the monomial values at each row of XY. An empty polynomial
// evaluates to zero everywhere.
func (p *Polynomial) Evaluate(XY mat.Matrix) (f []float64) {
	var (
		K, _ = XY.Dims()
	)
	f = make([]float64, K)
	for _, m := range p.monomials {
		m.accumulate(XY, f)
	}
	return
}

// EvaluateAt is the single point form of Evaluate
func (p *Polynomial) EvaluateAt(x, y float64) float64 {
	return p.Evaluate(mat.NewDense(1, 2, []float64{x, y}))[0]
}

// Add returns the concatenation of both term lists
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	return NewPolynomial(append(p.Monomials(), q.monomials...)...)
}

// Scale returns a copy with every coefficient multiplied by a
func (p *Polynomial) Scale(a float64) *Polynomial {
	ms := p.Monomials()
	for i := range ms {
		ms[i].coeff *= a
	}
	return NewPolynomial(ms...)
}

func (p *Polynomial) String() string {
	if len(p.monomials) == 0 {
		return "0"
	}
	terms := make([]string, len(p.monomials))
	for i, m := range p.monomials {
		terms[i] = m.String()
	}
	return strings.Join(terms, " + ")
}
