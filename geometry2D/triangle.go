package geometry2D

import (
	"fmt"

	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/mat"
)

// Triangle holds three 2D vertices in counter-clockwise order. The order is
// not checked; a clockwise triangle yields a negative determinant and every
// integral computed on it changes sign.
type Triangle [3][2]float64

// NewTriangle builds a Triangle from a 3x2 matrix of vertex coordinates
func NewTriangle(verts mat.Matrix) (tri Triangle, err error) {
	var (
		nr, nc = verts.Dims()
	)
	if nr != 3 || nc != 2 {
		err = fmt.Errorf("triangle must have 3 vertices with 2 coordinates, have %dx%d: %w",
			nr, nc, types.ErrInvalidArgument)
		return
	}
	for i := 0; i < 3; i++ {
		tri[i] = [2]float64{verts.At(i, 0), verts.At(i, 1)}
	}
	return
}

// NewTriangleFromCoords builds a Triangle from x1, y1, x2, y2, x3, y3
func NewTriangleFromCoords(coords ...float64) (tri Triangle, err error) {
	if len(coords) != 6 {
		err = fmt.Errorf("triangle needs 6 coordinates, have %d: %w",
			len(coords), types.ErrInvalidArgument)
		return
	}
	return NewTriangle(mat.NewDense(3, 2, coords))
}

// Edges returns d2 = v2 - v1 and d3 = v3 - v1
func (tri Triangle) Edges() (d2, d3 [2]float64) {
	var (
		v1, v2, v3 = tri[0], tri[1], tri[2]
	)
	d2 = [2]float64{v2[0] - v1[0], v2[1] - v1[1]}
	d3 = [2]float64{v3[0] - v1[0], v3[1] - v1[1]}
	return
}

// Jacobian of the map from the reference triangle (0,0),(1,0),(0,1):
//
//	J = [ x2-x1  x3-x1 ]
//	    [ y2-y1  y3-y1 ]
func (tri Triangle) Jacobian() (J *mat.Dense) {
	d2, d3 := tri.Edges()
	J = mat.NewDense(2, 2, []float64{
		d2[0], d3[0],
		d2[1], d3[1],
	})
	return
}

// Det is the signed Jacobian determinant, twice the signed area
func (tri Triangle) Det() float64 {
	d2, d3 := tri.Edges()
	return d2[0]*d3[1] - d2[1]*d3[0]
}

func (tri Triangle) SignedArea() float64 { return 0.5 * tri.Det() }

func (tri Triangle) Area() float64 {
	a := tri.SignedArea()
	if a < 0 {
		return -a
	}
	return a
}

func (tri Triangle) Centroid() (c [2]float64) {
	for i := 0; i < 3; i++ {
		c[0] += tri[i][0]
		c[1] += tri[i][1]
	}
	c[0] /= 3.
	c[1] /= 3.
	return
}

func (tri Triangle) IsDegenerate() bool { return tri.Det() == 0 }

// Reversed swaps the last two vertices, flipping the orientation
func (tri Triangle) Reversed() Triangle {
	return Triangle{tri[0], tri[2], tri[1]}
}

// Vertices returns the vertex coordinates as a 3x2 matrix
func (tri Triangle) Vertices() (V *mat.Dense) {
	V = mat.NewDense(3, 2, nil)
	for i := 0; i < 3; i++ {
		V.SetRow(i, tri[i][:])
	}
	return
}

func (tri Triangle) String() string {
	return fmt.Sprintf("[(%g,%g) (%g,%g) (%g,%g)]",
		tri[0][0], tri[0][1], tri[1][0], tri[1][1], tri[2][0], tri[2][1])
}
