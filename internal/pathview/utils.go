package pathview

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func deg2rad(d Real) Real { return d * math.Pi / 180 }

func fmax(a, b Real) Real {
	if a > b {
		return a
	}
	return b
}
