package cubature

import (
	"fmt"

	"github.com/notargets/gocubature/geometry2D"
	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/mat"
)

// TransformPoints maps K x 2 reference points onto tri: p = v1 + J*r
func TransformPoints(RS mat.Matrix, tri geometry2D.Triangle) (XY *mat.Dense, err error) {
	var (
		K, nc = RS.Dims()
	)
	if K < 1 || nc != 2 {
		err = fmt.Errorf("reference points must be K x 2 with K >= 1, have %dx%d: %w",
			K, nc, types.ErrInvalidArgument)
		return
	}
	XY = transformPoints(RS, tri)
	return
}

func transformPoints(RS mat.Matrix, tri geometry2D.Triangle) (XY *mat.Dense) {
	var (
		K, _ = RS.Dims()
		v1   = tri[0]
	)
	XY = mat.NewDense(K, 2, nil)
	// Row form of J*r for every point at once: XY = RS * J^T
	XY.Mul(RS, tri.Jacobian().T())
	for i := 0; i < K; i++ {
		XY.Set(i, 0, XY.At(i, 0)+v1[0])
		XY.Set(i, 1, XY.At(i, 1)+v1[1])
	}
	return
}

// TransformWeights scales reference weights by the signed determinant of J.
// A clockwise triangle therefore yields negative weights.
func TransformWeights(W []float64, J mat.Matrix) (WP []float64) {
	var (
		det = mat.Det(J)
	)
	WP = make([]float64, len(W))
	for i, w := range W {
		WP[i] = det * w
	}
	return
}

// TransformRule maps a reference rule onto a physical triangle
func TransformRule(rule *Rule, tri geometry2D.Triangle) (XY *mat.Dense, W []float64) {
	XY = transformPoints(rule.Points(), tri)
	W = TransformWeights(rule.w, tri.Jacobian())
	return
}
