package pathview

import "math"

// Mat2 is a 2×2 row-major matrix.
type Mat2 struct {
	M [2][2]Real
}

// rot2 returns the counter-clockwise rotation [[c,-s],[s,c]] for an angle in degrees.
func rot2(deg Real) Mat2 {
	c, s := math.Cos(deg2rad(deg)), math.Sin(deg2rad(deg))
	var R Mat2
	R.M[0][0], R.M[0][1] = c, -s
	R.M[1][0], R.M[1][1] = s, c
	return R
}

func (A Mat2) MulPoint(p Point2) Point2 {
	return Point2{
		A.M[0][0]*p.H + A.M[0][1]*p.V,
		A.M[1][0]*p.H + A.M[1][1]*p.V,
	}
}

// RotateRect rotates a w×h rectangle about its center and moves it to center.
// Corners come back in the local order (-,-), (+,-), (+,+), (-,+).
func RotateRect(center Point2, w, h, angleDeg Real) [4]Point2 {
	hw, hh := w/2, h/2
	local := [4]Point2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	R := rot2(angleDeg)
	var out [4]Point2
	for i, c := range local {
		out[i] = R.MulPoint(c).Add(center)
	}
	return out
}
