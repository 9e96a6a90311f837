package cubature

import (
	"github.com/notargets/gocubature/geometry2D"
	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Integrand maps a K x 2 table of points to one value per point. Integrands
// handed to a parallel MeshIntegrator must be safe for concurrent calls.
type Integrand func(XY mat.Matrix) (f []float64)

// IntegrateOnTriangle applies rule to f on tri
func IntegrateOnTriangle(f Integrand, tri geometry2D.Triangle, rule *Rule) float64 {
	XY, W := TransformRule(rule, tri)
	return floats.Dot(W, f(XY))
}

// IntegrateOnMesh integrates f over every element of the mesh. The
// midpoint rule takes the vectorized path, every other rule sums the
// element integrals one triangle at a time; both agree to round-off.
func IntegrateOnMesh(f Integrand, VXY mat.Matrix, EToV [][3]int, rule *Rule) (I float64, err error) {
	if err = geometry2D.CheckVertexTable(VXY); err != nil {
		return
	}
	I = integrateOnMesh(f, VXY, EToV, rule)
	return
}

func integrateOnMesh(f Integrand, VXY mat.Matrix, EToV [][3]int, rule *Rule) float64 {
	if isMidpoint(rule) {
		return midpointOnMesh(f, VXY, EToV)
	}
	return naiveOnMesh(f, VXY, EToV, rule)
}

// IntegrateOnMeshNaive always sums per element integrals, whatever the rule
func IntegrateOnMeshNaive(f Integrand, VXY mat.Matrix, EToV [][3]int, rule *Rule) (I float64, err error) {
	if err = geometry2D.CheckVertexTable(VXY); err != nil {
		return
	}
	I = naiveOnMesh(f, VXY, EToV, rule)
	return
}

func naiveOnMesh(f Integrand, VXY mat.Matrix, EToV [][3]int, rule *Rule) (I float64) {
	for k := range EToV {
		I += IntegrateOnTriangle(f, geometry2D.ElementTriangle(VXY, EToV, k), rule)
	}
	return
}

func isMidpoint(rule *Rule) bool {
	return rule.rt == types.MIDPOINT
}
