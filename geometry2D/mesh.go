package geometry2D

import (
	"fmt"

	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/mat"
)

// CheckVertexTable verifies VXY is an N x 2 coordinate table. Element
// indices are not revalidated; an index outside the table panics.
func CheckVertexTable(VXY mat.Matrix) (err error) {
	if VXY == nil {
		err = fmt.Errorf("nil vertex table: %w", types.ErrInvalidArgument)
		return
	}
	if _, nc := VXY.Dims(); nc != 2 {
		err = fmt.Errorf("vertex table must be N x 2, have %d columns: %w",
			nc, types.ErrInvalidArgument)
	}
	return
}

// ElementTriangle reads element k of a mesh through its vertex table
func ElementTriangle(VXY mat.Matrix, EToV [][3]int, k int) (tri Triangle) {
	verts := EToV[k]
	for i, v := range verts {
		tri[i] = [2]float64{VXY.At(v, 0), VXY.At(v, 1)}
	}
	return
}
