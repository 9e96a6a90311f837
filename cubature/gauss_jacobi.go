package cubature

import (
	"fmt"
	"math"

	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// JacobiGQ returns the N+1 Gauss-Jacobi nodes and weights on [-1,1] for the
// weight (1-x)^alpha * (1+x)^beta, from the eigen decomposition of the
// symmetric tridiagonal Jacobi matrix (Golub-Welsch).
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{gamma0(alpha, beta)}
		return
	}
	var (
		Np1 = N + 1
		h1  = make([]float64, Np1)
		JJ  = mat.NewSymDense(Np1, nil)
		fac = -(alpha*alpha - beta*beta)
	)
	for i := 0; i < Np1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}
	// main diagonal: -(alpha^2-beta^2)/(h1+2)/h1
	for i := 0; i < Np1; i++ {
		val := h1[i]
		JJ.SetSym(i, i, fac/(val*(val+2.)))
	}
	if alpha+beta < 10*1.e-16 {
		JJ.SetSym(0, 0, 0.)
	}
	// 1st upper diagonal: 2/(h1+2)*sqrt(i*(i+alpha+beta)*(i+alpha)*(i+beta)/(h1+1)/(h1+3))
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		val := h1[i]
		d1 := 2. / (val + 2.)
		d1 *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
		JJ.SetSym(i, i+1, d1)
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	X = eig.Values(nil)
	VVr := mat.NewDense(Np1, Np1, nil)
	eig.VectorsTo(VVr)
	W = make([]float64, Np1)
	g0 := gamma0(alpha, beta)
	for i := 0; i < Np1; i++ {
		v := VVr.At(0, i)
		W[i] = v * v * g0
	}
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// NewGaussJacobiRule builds the collapsed n x n point rule of degree 2n-1.
// The reference triangle is the image of the unit square under
// x = u*(1-v), y = v, whose Jacobian (1-v) is absorbed by a Gauss-Jacobi
// (alpha=1, beta=0) rule in v; u uses Gauss-Legendre. n < 1 is invalid.
func NewGaussJacobiRule(n int) (rule *Rule, err error) {
	if n < 1 {
		err = fmt.Errorf("Gauss-Jacobi rule needs at least one point per direction, have %d: %w",
			n, types.ErrInvalidArgument)
		return
	}
	var (
		U, WU = make([]float64, n), make([]float64, n)
		rsw   = make([]float64, 0, 3*n*n)
		rt    = types.CUSTOM
	)
	quad.Legendre{}.FixedLocations(U, WU, 0, 1)
	T, WT := JacobiGQ(1, 0, n-1)
	for j := range T {
		// t in [-1,1] -> v in [0,1]; the (1-t) weight is 2(1-v) and dt = 2dv
		v, wv := 0.5*(T[j]+1), 0.25*WT[j]
		for i := range U {
			rsw = append(rsw, U[i]*(1-v), v, WU[i]*wv)
		}
	}
	switch n {
	case 2:
		rt = types.GAUSS_JACOBI_2
	case 3:
		rt = types.GAUSS_JACOBI_3
	case 4:
		rt = types.GAUSS_JACOBI_4
	}
	rule = newRuleRSW(rt, 2*n-1, rsw)
	if rt == types.CUSTOM {
		rule.name = fmt.Sprintf("GAUSS_JACOBI_%d", n)
	}
	return
}
