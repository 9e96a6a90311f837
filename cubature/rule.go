package cubature

import (
	"fmt"
	"math"

	"github.com/notargets/gocubature/types"
	"github.com/notargets/gocubature/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ReferenceArea is the area of the reference triangle (0,0),(1,0),(0,1)
const ReferenceArea = 0.5

// Rule is a set of points and weights on the reference triangle. Rules are
// immutable: accessors hand out copies.
type Rule struct {
	rt      types.RuleType
	name    string
	degree  int
	r, s, w []float64
}

// newRuleRSW builds a rule from a flat table of (r, s, w) rows
func newRuleRSW(rt types.RuleType, degree int, rsw []float64) (rule *Rule) {
	var (
		Nq = len(rsw) / 3
	)
	rule = &Rule{
		rt:     rt,
		name:   rt.String(),
		degree: degree,
		r:      make([]float64, Nq),
		s:      make([]float64, Nq),
		w:      make([]float64, Nq),
	}
	for i := 0; i < Nq; i++ {
		rule.r[i], rule.s[i], rule.w[i] = rsw[3*i], rsw[3*i+1], rsw[3*i+2]
	}
	return
}

// NewRule builds a rule outside the catalog. The three slices must have
// the same non zero length and the weights must sum to the reference area.
func NewRule(name string, degree int, R, S, W []float64) (rule *Rule, err error) {
	var (
		Nq = len(W)
	)
	if Nq == 0 || len(R) != Nq || len(S) != Nq {
		err = fmt.Errorf("rule %q needs matching non empty point and weight lists, have %d, %d, %d: %w",
			name, len(R), len(S), Nq, types.ErrInvalidArgument)
		return
	}
	if sum := floats.Sum(W); math.Abs(sum-ReferenceArea) > utils.NODETOL {
		err = fmt.Errorf("rule %q weights sum to %v, not %v: %w",
			name, sum, ReferenceArea, types.ErrInvalidArgument)
		return
	}
	if degree < 0 {
		err = fmt.Errorf("rule %q has negative degree %d: %w", name, degree, types.ErrInvalidArgument)
		return
	}
	rule = &Rule{
		rt:     types.CUSTOM,
		name:   name,
		degree: degree,
		r:      append([]float64(nil), R...),
		s:      append([]float64(nil), S...),
		w:      append([]float64(nil), W...),
	}
	return
}

func (rule *Rule) Type() types.RuleType { return rule.rt }
func (rule *Rule) Name() string         { return rule.name }

// Degree is the highest polynomial degree the rule integrates exactly
func (rule *Rule) Degree() int { return rule.degree }
func (rule *Rule) Len() int    { return len(rule.w) }

// Points returns the reference points as a K x 2 matrix
func (rule *Rule) Points() (RS *mat.Dense) {
	RS = mat.NewDense(rule.Len(), 2, nil)
	RS.SetCol(0, rule.r)
	RS.SetCol(1, rule.s)
	return
}

func (rule *Rule) Weights() (w []float64) {
	w = make([]float64, rule.Len())
	copy(w, rule.w)
	return
}

func (rule *Rule) String() string {
	return fmt.Sprintf("%s: %d points, degree %d", rule.name, rule.Len(), rule.degree)
}
