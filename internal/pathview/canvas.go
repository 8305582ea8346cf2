package pathview

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// bezier handle length for a quarter circle
const kappa = 0.5522847498307936

// canvas paints plot-local paths (1× pixels, y down) into a supersampled region of dst.
// Every primitive is emitted with the same winding, so pieces of one stroke union
// instead of cancelling.
type canvas struct {
	dst *image.RGBA
	r   image.Rectangle
	ras *vector.Rasterizer
	ss  Real
}

func newCanvas(dst *image.RGBA, area image.Rectangle, ss int) *canvas {
	r := image.Rect(area.Min.X*ss, area.Min.Y*ss, area.Max.X*ss, area.Max.Y*ss)
	return &canvas{dst: dst, r: r, ras: vector.NewRasterizer(r.Dx(), r.Dy()), ss: Real(ss)}
}

func (c *canvas) begin() { c.ras.Reset(c.r.Dx(), c.r.Dy()) }

func (c *canvas) paint(col color.NRGBA) {
	c.ras.Draw(c.dst, c.r, image.NewUniform(col), image.Point{})
}

func (c *canvas) moveTo(x, y Real) { c.ras.MoveTo(float32(x*c.ss), float32(y*c.ss)) }
func (c *canvas) lineTo(x, y Real) { c.ras.LineTo(float32(x*c.ss), float32(y*c.ss)) }

func (c *canvas) cubeTo(x1, y1, x2, y2, x3, y3 Real) {
	c.ras.CubeTo(
		float32(x1*c.ss), float32(y1*c.ss),
		float32(x2*c.ss), float32(y2*c.ss),
		float32(x3*c.ss), float32(y3*c.ss))
}

func (c *canvas) polygon(pts []Point2) {
	if len(pts) < 2 {
		return
	}
	c.moveTo(pts[0].H, pts[0].V)
	for _, p := range pts[1:] {
		c.lineTo(p.H, p.V)
	}
	c.ras.ClosePath()
}

// ellipse adds an axis-aligned ellipse; dir = -1 matches segment winding, +1 opposes it.
func (c *canvas) ellipse(cx, cy, rx, ry, dir Real) {
	c.moveTo(cx+rx, cy)
	for q := 0; q < 4; q++ {
		a0 := dir * Real(q) * math.Pi / 2
		a1 := dir * Real(q+1) * math.Pi / 2
		s0, c0 := math.Sincos(a0)
		s1, c1 := math.Sincos(a1)
		c.cubeTo(
			cx+rx*(c0-kappa*dir*s0), cy+ry*(s0+kappa*dir*c0),
			cx+rx*(c1+kappa*dir*s1), cy+ry*(s1-kappa*dir*c1),
			cx+rx*c1, cy+ry*s1)
	}
	c.ras.ClosePath()
}

func (c *canvas) disc(cx, cy, r Real) { c.ellipse(cx, cy, r, r, -1) }

// segment adds a w-wide quad around a→b.
func (c *canvas) segment(a, b Point2, w Real) {
	dx, dy := b.H-a.H, b.V-a.V
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*w/2, dx/l*w/2
	c.moveTo(a.H+nx, a.V+ny)
	c.lineTo(b.H+nx, b.V+ny)
	c.lineTo(b.H-nx, b.V-ny)
	c.lineTo(a.H-nx, a.V-ny)
	c.ras.ClosePath()
}

// stroke adds a round-joined stroke through pts; closed connects the last point to the first.
func (c *canvas) stroke(pts []Point2, w Real, closed bool) {
	n := len(pts)
	for i := 0; i+1 < n; i++ {
		c.segment(pts[i], pts[i+1], w)
	}
	if closed && n > 2 {
		c.segment(pts[n-1], pts[0], w)
	}
	for _, p := range pts {
		c.disc(p.H, p.V, w/2)
	}
}

// ring adds the band between two concentric ellipses.
func (c *canvas) ring(cx, cy, rx, ry, w Real) {
	c.ellipse(cx, cy, rx+w/2, ry+w/2, -1)
	if rx > w/2 && ry > w/2 {
		c.ellipse(cx, cy, rx-w/2, ry-w/2, 1)
	}
}
