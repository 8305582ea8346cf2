package pathview

// Vector3 is a point or sample in scene space; y is the vertical axis.
type Vector3 struct {
	X, Y, Z Real
}

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (v Vector3) Mul(s Real) Vector3    { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Point2 is a coordinate on a view plane (H = horizontal axis, V = vertical axis).
type Point2 struct {
	H, V Real
}

func (p Point2) Add(q Point2) Point2 { return Point2{p.H + q.H, p.V + q.V} }

func vec3(a []Real) Vector3 { return Vector3{a[0], a[1], a[2]} }
