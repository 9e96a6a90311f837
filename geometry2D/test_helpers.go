package geometry2D

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomTriangle draws a counter-clockwise triangle: three points at sorted
// random angles and radii in (0,1), stretched by factors in [0.5, 2) and
// shifted by up to one unit in each direction. Nearly degenerate draws are
// rejected.
func RandomTriangle(rng *rand.Rand) (tri Triangle) {
	for {
		var (
			angles = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
			sx, sy = 0.5 + 1.5*rng.Float64(), 0.5 + 1.5*rng.Float64()
			dx, dy = 2*rng.Float64() - 1, 2*rng.Float64() - 1
		)
		sortThree(angles)
		for i := 0; i < 3; i++ {
			theta := 2 * math.Pi * angles[i]
			l := rng.Float64()
			tri[i] = [2]float64{
				sx*l*math.Cos(theta) + dx,
				sy*l*math.Sin(theta) + dy,
			}
		}
		if tri.Det() < 0 {
			tri = tri.Reversed()
		}
		if tri.Det() > 1.e-3 {
			return
		}
	}
}

func sortThree(v []float64) {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
}

// NewUnitSquareMesh triangulates [0,1]x[0,1] with n x n cells, each split
// along its diagonal into two counter-clockwise triangles.
func NewUnitSquareMesh(n int) (VXY *mat.Dense, EToV [][3]int) {
	var (
		Nv = (n + 1) * (n + 1)
		h  = 1. / float64(n)
	)
	VXY = mat.NewDense(Nv, 2, nil)
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			ind := i + j*(n+1)
			VXY.Set(ind, 0, float64(i)*h)
			VXY.Set(ind, 1, float64(j)*h)
		}
	}
	EToV = make([][3]int, 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := i + j*(n+1)
			v10, v01, v11 := v00+1, v00+n+1, v00+n+2
			EToV = append(EToV, [3]int{v00, v10, v11}, [3]int{v00, v11, v01})
		}
	}
	return
}
