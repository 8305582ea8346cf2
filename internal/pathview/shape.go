package pathview

import (
	"fmt"
	"math"
)

// Shape is the closed set of analytic primitives. Each variant owns one handler per view,
// so a new primitive does not compile until both projections exist.
type Shape interface {
	Kind() string
	topDown(t Transform) (Outline, error)
	side(t Transform) (Outline, error)
}

// Transform places an object: translation plus a rotation about the vertical (y) axis.
type Transform struct {
	Position     Vector3
	RotationYDeg Real
}

// Object is one entry of the scene, in declaration order.
type Object struct {
	Name       string
	Shape      Shape
	Transform  Transform
	Material   string
	Appearance Appearance
}

type Sphere struct {
	Radius Real
}

type Box struct {
	Size Vector3
}

type Cylinder struct {
	Radius, Height Real
}

// Wedge is a right triangular prism: Size.Z along the base, Size.Y tall, sloped at AngleDeg.
type Wedge struct {
	Size     Vector3
	AngleDeg Real
}

type Lens struct {
	Radius Real
}

func (Sphere) Kind() string   { return "Sphere" }
func (Box) Kind() string      { return "Box" }
func (Cylinder) Kind() string { return "Cylinder" }
func (Wedge) Kind() string    { return "Wedge" }
func (Lens) Kind() string     { return "Lens" }

func (s Sphere) topDown(t Transform) (Outline, error) {
	return Circle{Center: TopDown.Project(t.Position), R: s.Radius}, nil
}

func (s Sphere) side(t Transform) (Outline, error) {
	return Circle{Center: Side.Project(t.Position), R: s.Radius}, nil
}

// Rotation about y does not change a cylinder's silhouette in either view.
func (c Cylinder) topDown(t Transform) (Outline, error) {
	return Circle{Center: TopDown.Project(t.Position), R: c.Radius}, nil
}

func (c Cylinder) side(t Transform) (Outline, error) {
	p := Side.Project(t.Position)
	return Rect{Min: Point2{p.H - c.Radius, p.V - c.Height/2}, W: 2 * c.Radius, H: c.Height}, nil
}

func (b Box) topDown(t Transform) (Outline, error) {
	c := RotateRect(TopDown.Project(t.Position), b.Size.X, b.Size.Z, t.RotationYDeg)
	return Polygon{Pts: c[:]}, nil
}

func (b Box) side(t Transform) (Outline, error) {
	p := Side.Project(t.Position)
	return Rect{Min: Point2{p.H - b.Size.Z/2, p.V - b.Size.Y/2}, W: b.Size.Z, H: b.Size.Y}, nil
}

// The top view draws the circumscribing footprint, not the sloped silhouette.
func (w Wedge) topDown(t Transform) (Outline, error) {
	c := RotateRect(TopDown.Project(t.Position), w.Size.X, w.Size.Z, t.RotationYDeg)
	return Polygon{Pts: c[:]}, nil
}

func (w Wedge) side(t Transform) (Outline, error) {
	off, err := w.apexOffset()
	if err != nil {
		return nil, err
	}
	p := Side.Project(t.Position)
	hz := w.Size.Z / 2
	return Polygon{Pts: []Point2{
		{p.H - hz, p.V},
		{p.H + hz, p.V},
		{p.H + off, p.V + w.Size.Y},
	}}, nil
}

// apexOffset is the apex position along z relative to the wedge center.
func (w Wedge) apexOffset() (Real, error) {
	tan := math.Tan(deg2rad(w.AngleDeg))
	if !isFinite(tan) || math.Abs(tan) < epsGeom {
		return 0, &ConfigError{Field: "angle_deg", Reason: fmt.Sprintf("no wedge slope for angle %g°", w.AngleDeg)}
	}
	off := w.Size.Z/2 - w.Size.Y/tan
	if !isFinite(off) {
		return 0, &ConfigError{Field: "angle_deg", Reason: fmt.Sprintf("wedge apex diverges for angle %g°", w.AngleDeg)}
	}
	return off, nil
}

func (l Lens) topDown(t Transform) (Outline, error) {
	return Circle{Center: TopDown.Project(t.Position), R: l.Radius}, nil
}

// The lens profile (two spherical caps) is not modeled in the side view.
func (Lens) side(Transform) (Outline, error) {
	return nil, ErrUnsupportedView
}
