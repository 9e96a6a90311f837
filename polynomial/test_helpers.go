package polynomial

import "math/rand"

// RandomPolynomial returns a full polynomial of the given degree, one term
// per (i, j) with i+j <= degree, coefficients uniform in [-maxCoeff, maxCoeff).
func RandomPolynomial(degree int, maxCoeff float64, rng *rand.Rand) (p *Polynomial) {
	var (
		ms []Monomial
	)
	for i := 0; i <= degree; i++ {
		for j := 0; j <= degree-i; j++ {
			c := maxCoeff * (2*rng.Float64() - 1)
			ms = append(ms, NewMonomial(i, j, c))
		}
	}
	return NewPolynomial(ms...)
}
