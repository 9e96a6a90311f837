package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"
	"github.com/notargets/gocubature/polynomial"
	"github.com/notargets/gocubature/types"
	"gonum.org/v1/gonum/mat"
)

// CubatureCase is the YAML description of one integration run
type CubatureCase struct {
	Title          string       `json:"Title"`
	Rule           string       `json:"Rule"`
	GaussOrder     int          `json:"GaussOrder"`     // Collapsed Gauss-Jacobi points per direction, overrides Rule
	Polynomial     [][3]float64 `json:"Polynomial"`     // Rows of x exponent, y exponent, coefficient
	Vertices       [][2]float64 `json:"Vertices"`       // Counter-clockwise vertex coordinates
	Elements       [][3]int     `json:"Elements"`       // Vertex indices, omitted for a single triangle
	ParallelDegree int          `json:"ParallelDegree"` // Zero defers to the parallelDegree setting
}

func (ip *CubatureCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *CubatureCase) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	if ip.GaussOrder > 0 {
		fmt.Printf("[GAUSS_JACOBI_%d]\t= Rule\n", ip.GaussOrder)
	} else {
		fmt.Printf("[%s]\t\t= Rule\n", ip.Rule)
	}
	fmt.Printf("[%d]\t\t\t= Polynomial Terms\n", len(ip.Polynomial))
	fmt.Printf("[%d]\t\t\t= Vertices\n", len(ip.Vertices))
	fmt.Printf("[%d]\t\t\t= Elements\n", len(ip.GetElements()))
	fmt.Printf("[%d]\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}

// MaxExponent bounds the exponents a case file may use
const MaxExponent = 64

// GetPolynomial converts the term rows, rejecting exponents that are not
// integers in [0, MaxExponent]
func (ip *CubatureCase) GetPolynomial() (p *polynomial.Polynomial, err error) {
	ms := make([]polynomial.Monomial, len(ip.Polynomial))
	for i, row := range ip.Polynomial {
		for _, e := range row[:2] {
			if e < 0 || e > MaxExponent || e != math.Trunc(e) {
				err = fmt.Errorf("polynomial term %d has exponent %v: %w", i, e, types.ErrInvalidArgument)
				return
			}
		}
		ms[i] = polynomial.NewMonomial(int(row[0]), int(row[1]), row[2])
	}
	p = polynomial.NewPolynomial(ms...)
	return
}

// GetVertices returns the N x 2 vertex table
func (ip *CubatureCase) GetVertices() (VXY *mat.Dense, err error) {
	if len(ip.Vertices) == 0 {
		err = fmt.Errorf("case %q has no vertices: %w", ip.Title, types.ErrInvalidArgument)
		return
	}
	VXY = mat.NewDense(len(ip.Vertices), 2, nil)
	for i, v := range ip.Vertices {
		VXY.SetRow(i, v[:])
	}
	return
}

// GetElements returns the element table; three vertices and no elements
// describe a single triangle
func (ip *CubatureCase) GetElements() [][3]int {
	if len(ip.Elements) == 0 && len(ip.Vertices) == 3 {
		return [][3]int{{0, 1, 2}}
	}
	return ip.Elements
}
