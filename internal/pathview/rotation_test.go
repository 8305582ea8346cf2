package pathview

import (
	"math"
	"testing"
)

func near(a, b Point2, eps Real) bool {
	return math.Abs(a.H-b.H) <= eps && math.Abs(a.V-b.V) <= eps
}

func TestRot2_IsOrthonormal(t *testing.T) {
	R := rot2(37)
	// R^T R ~ I
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			sum := 0.0
			for k := 0; k < 2; k++ {
				sum += R.M[k][r] * R.M[k][c]
			}
			want := 0.0
			if r == c {
				want = 1
			}
			if math.Abs(sum-want) > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, sum-want)
			}
		}
	}
}

func TestRotateRect_Identity(t *testing.T) {
	got := RotateRect(Point2{10, -4}, 6, 2, 0)
	want := [4]Point2{{7, -5}, {13, -5}, {13, -3}, {7, -3}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("corner %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestRotateRect_QuarterTurn(t *testing.T) {
	// 90° maps local (x,z) -> (-z,x)
	got := RotateRect(Point2{0, 0}, 4, 2, 90)
	want := [4]Point2{{1, -2}, {1, 2}, {-1, 2}, {-1, -2}}
	for i := range want {
		if !near(got[i], want[i], 1e-12) {
			t.Fatalf("corner %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestRotateRect_PreservesAdjacency(t *testing.T) {
	c := RotateRect(Point2{3, 1}, 5, 3, 33)
	side := func(a, b Point2) Real { return math.Hypot(a.H-b.H, a.V-b.V) }
	// consecutive corners keep the original edge lengths w, h, w, h
	lens := [4]Real{5, 3, 5, 3}
	for i := 0; i < 4; i++ {
		if d := side(c[i], c[(i+1)%4]); math.Abs(d-lens[i]) > 1e-12 {
			t.Fatalf("edge %d length %.12g, want %.12g", i, d, lens[i])
		}
	}
}
