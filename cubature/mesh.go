package cubature

import (
	"github.com/notargets/gocubature/geometry2D"
	"github.com/notargets/gocubature/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MidpointGeometry computes, for all elements at once, the signed areas
// 0.5*(d21 x d31) and the midpoints c1 + (d21+d31)/3, where c1 is the first
// vertex and d21, d31 the edges leaving it. An empty element table returns
// nil for both.
func MidpointGeometry(VXY mat.Matrix, EToV [][3]int) (areas []float64, mid *mat.Dense) {
	var (
		K = len(EToV)
	)
	if K == 0 {
		return
	}
	areas = make([]float64, K)
	mid = mat.NewDense(K, 2, nil)
	for k, verts := range EToV {
		var (
			c1x, c1y = VXY.At(verts[0], 0), VXY.At(verts[0], 1)
			d21x     = VXY.At(verts[1], 0) - c1x
			d21y     = VXY.At(verts[1], 1) - c1y
			d31x     = VXY.At(verts[2], 0) - c1x
			d31y     = VXY.At(verts[2], 1) - c1y
		)
		areas[k] = 0.5 * (d21x*d31y - d21y*d31x)
		mid.Set(k, 0, c1x+(d21x+d31x)/3.)
		mid.Set(k, 1, c1y+(d21y+d31y)/3.)
	}
	return
}

// MidpointOnMesh is the vectorized midpoint rule: f is evaluated once on
// the batch of all element midpoints and dotted with the element areas.
func MidpointOnMesh(f Integrand, VXY mat.Matrix, EToV [][3]int) (I float64, err error) {
	if err = geometry2D.CheckVertexTable(VXY); err != nil {
		return
	}
	I = midpointOnMesh(f, VXY, EToV)
	return
}

func midpointOnMesh(f Integrand, VXY mat.Matrix, EToV [][3]int) float64 {
	areas, mid := MidpointGeometry(VXY, EToV)
	if len(areas) == 0 {
		return 0
	}
	return floats.Dot(areas, f(mid))
}

// MeshIntegrator spreads mesh integration over goroutines, one contiguous
// range of elements per partition. Partial sums are added in partition
// order, so results are repeatable for a fixed parallel degree but are not
// bitwise identical to the serial sum.
type MeshIntegrator struct {
	ProcLimit int // Zero means one partition per CPU
}

func NewMeshIntegrator(procLimit int) *MeshIntegrator {
	return &MeshIntegrator{ProcLimit: procLimit}
}

// ParallelDegree is the number of partitions used for K elements
func (mi *MeshIntegrator) ParallelDegree(K int) int {
	return utils.ParallelDegreeFor(mi.ProcLimit, K)
}

func (mi *MeshIntegrator) Integrate(f Integrand, VXY mat.Matrix, EToV [][3]int, rule *Rule) (I float64, err error) {
	if err = geometry2D.CheckVertexTable(VXY); err != nil {
		return
	}
	var (
		K  = len(EToV)
		pm = utils.NewPartitionMap(mi.ParallelDegree(K), K)
	)
	partials := pm.Reduce(func(bn, kMin, kMax int) float64 {
		return integrateOnMesh(f, VXY, EToV[kMin:kMax], rule)
	})
	I = floats.Sum(partials)
	return
}
