package types

import (
	"fmt"
	"strings"
)

// RuleType identifies an entry in the reference triangle cubature catalog
type RuleType uint8

const (
	MIDPOINT RuleType = iota
	LAUFFER
	EDGE_MIDPOINT
	STRANG_FIX
	STRANG_FIX_4
	RADON_7
	GAUSS_JACOBI_2
	GAUSS_JACOBI_3
	GAUSS_JACOBI_4
)

// CUSTOM marks rules built outside the catalog
const CUSTOM RuleType = 255

var RuleNameMap = map[string]RuleType{
	"midpoint":       MIDPOINT,
	"centroid":       MIDPOINT,
	"lauffer":        LAUFFER,
	"vertex":         LAUFFER,
	"edge_midpoint":  EDGE_MIDPOINT,
	"strang_fix":     STRANG_FIX,
	"strang_fix_4":   STRANG_FIX_4,
	"radon_7":        RADON_7,
	"gauss_jacobi_2": GAUSS_JACOBI_2,
	"gauss_jacobi_3": GAUSS_JACOBI_3,
	"gauss_jacobi_4": GAUSS_JACOBI_4,
}

var ruleTypeNames = []string{
	"MIDPOINT",
	"LAUFFER",
	"EDGE_MIDPOINT",
	"STRANG_FIX",
	"STRANG_FIX_4",
	"RADON_7",
	"GAUSS_JACOBI_2",
	"GAUSS_JACOBI_3",
	"GAUSS_JACOBI_4",
}

// AllRuleTypes lists the catalog in declaration order
func AllRuleTypes() (rts []RuleType) {
	rts = make([]RuleType, len(ruleTypeNames))
	for i := range ruleTypeNames {
		rts[i] = RuleType(i)
	}
	return
}

func (rt RuleType) String() string {
	if rt == CUSTOM {
		return "CUSTOM"
	}
	if int(rt) < len(ruleTypeNames) {
		return ruleTypeNames[rt]
	}
	return fmt.Sprintf("RuleType(%d)", uint8(rt))
}

func (rt RuleType) IsValid() bool {
	return int(rt) < len(ruleTypeNames)
}

// NewRuleType looks a rule up by name, ignoring case and surrounding blanks
func NewRuleType(label string) (rt RuleType, err error) {
	var (
		ok bool
	)
	if rt, ok = RuleNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown cubature rule %q: %w", label, ErrInvalidArgument)
	}
	return
}
