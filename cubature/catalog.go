package cubature

import (
	"fmt"
	"math"

	"github.com/notargets/gocubature/types"
)

// GetRule returns a fresh copy of a cataloged rule. Unknown identifiers
// return types.ErrInvalidArgument.
func GetRule(rt types.RuleType) (rule *Rule, err error) {
	switch rt {
	case types.MIDPOINT:
		rule = newRuleRSW(rt, 1, []float64{
			1. / 3., 1. / 3., 0.5,
		})
	case types.LAUFFER:
		rule = newRuleRSW(rt, 1, []float64{
			0, 0, 1. / 6.,
			1, 0, 1. / 6.,
			0, 1, 1. / 6.,
		})
	case types.EDGE_MIDPOINT:
		rule = newRuleRSW(rt, 2, []float64{
			0.5, 0, 1. / 6.,
			0.5, 0.5, 1. / 6.,
			0, 0.5, 1. / 6.,
		})
	case types.STRANG_FIX:
		rule = newRuleRSW(rt, 2, []float64{
			1. / 6., 1. / 6., 1. / 6.,
			2. / 3., 1. / 6., 1. / 6.,
			1. / 6., 2. / 3., 1. / 6.,
		})
	case types.STRANG_FIX_4:
		// One negative weight at the centroid
		rule = newRuleRSW(rt, 3, []float64{
			1. / 3., 1. / 3., -27. / 96.,
			0.2, 0.2, 25. / 96.,
			0.6, 0.2, 25. / 96.,
			0.2, 0.6, 25. / 96.,
		})
	case types.RADON_7:
		rule = radon7()
	case types.GAUSS_JACOBI_2:
		rule, err = NewGaussJacobiRule(2)
	case types.GAUSS_JACOBI_3:
		rule, err = NewGaussJacobiRule(3)
	case types.GAUSS_JACOBI_4:
		rule, err = NewGaussJacobiRule(4)
	default:
		err = fmt.Errorf("no cubature rule for %v: %w", rt, types.ErrInvalidArgument)
	}
	return
}

// GetRuleByName is GetRule keyed by the catalog name, e.g. "midpoint"
func GetRuleByName(name string) (rule *Rule, err error) {
	var (
		rt types.RuleType
	)
	if rt, err = types.NewRuleType(name); err != nil {
		return
	}
	return GetRule(rt)
}

// radon7 is the seven point degree five rule: the centroid plus two orbits
// of three points, barycentric (a, a, 1-2a) for a = (6 -+ sqrt(15))/21
func radon7() *Rule {
	var (
		sq15 = math.Sqrt(15.)
		a1   = (6. - sq15) / 21.
		a2   = (6. + sq15) / 21.
		w0   = 9. / 80.
		w1   = (155. - sq15) / 2400.
		w2   = (155. + sq15) / 2400.
	)
	return newRuleRSW(types.RADON_7, 5, []float64{
		1. / 3., 1. / 3., w0,
		a1, a1, w1,
		1 - 2*a1, a1, w1,
		a1, 1 - 2*a1, w1,
		a2, a2, w2,
		1 - 2*a2, a2, w2,
		a2, 1 - 2*a2, w2,
	})
}
