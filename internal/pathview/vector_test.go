package pathview

import "testing"

func TestVectorOps(t *testing.T) {
	v := Vector3{1, 2, 3}
	w := Vector3{-1, 0.5, 2}
	if add := v.Add(w); add != (Vector3{0, 2.5, 5}) {
		t.Fatalf("Add mismatch: %+v", add)
	}
	if mul := v.Mul(3); mul != (Vector3{3, 6, 9}) {
		t.Fatalf("Mul mismatch: %+v", mul)
	}
	if p := (Point2{1, 2}).Add(Point2{-1, 3}); p != (Point2{0, 5}) {
		t.Fatalf("Point2 Add mismatch: %+v", p)
	}
	if got := vec3([]Real{4, 5, 6}); got != (Vector3{4, 5, 6}) {
		t.Fatalf("vec3 mismatch: %+v", got)
	}
}
