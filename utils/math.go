package utils

import (
	"math"
)

// POW raises x to an integer power. Small powers are expanded by repeated
// squaring, larger ones defer to math.Pow. POW(0, 0) is 1.
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if p < 0 {
		p = -p
		flipped = true
	}
	if p > 16 {
		y = math.Pow(x, float64(p))
	} else {
		y = 1
		base := x
		for p > 0 {
			if p&1 == 1 {
				y *= base
			}
			base *= base
			p >>= 1
		}
	}
	if flipped {
		y = 1. / y
	}
	return
}
