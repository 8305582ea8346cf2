package pathview

import "math"

// Outline is the 2D silhouette of one object on one view plane.
type Outline interface {
	Bounds() (lo, hi Point2)
	isOutline()
}

// Circle is centered at Center with radius R.
type Circle struct {
	Center Point2
	R      Real
}

// Rect is axis-aligned, anchored at its lower-left corner Min.
type Rect struct {
	Min  Point2
	W, H Real
}

// Polygon is a closed ring; the last point connects back to the first.
type Polygon struct {
	Pts []Point2
}

func (Circle) isOutline()  {}
func (Rect) isOutline()    {}
func (Polygon) isOutline() {}

func (c Circle) Bounds() (lo, hi Point2) {
	return Point2{c.Center.H - c.R, c.Center.V - c.R}, Point2{c.Center.H + c.R, c.Center.V + c.R}
}

func (r Rect) Bounds() (lo, hi Point2) {
	return r.Min, Point2{r.Min.H + r.W, r.Min.V + r.H}
}

func (p Polygon) Bounds() (lo, hi Point2) {
	return pointBounds(p.Pts)
}

func pointBounds(pts []Point2) (lo, hi Point2) {
	lo = Point2{math.Inf(1), math.Inf(1)}
	hi = Point2{math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		lo.H, lo.V = math.Min(lo.H, p.H), math.Min(lo.V, p.V)
		hi.H, hi.V = math.Max(hi.H, p.H), math.Max(hi.V, p.V)
	}
	return lo, hi
}
