package pathview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"gonum.org/v1/plot"
)

// panel margins around the plot area, 1× pixels
const (
	marginL = 64
	marginR = 20
	marginT = 44
	marginB = 48
	legendW = 110
	legendH = 24
)

var (
	frameColor  = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	gridColor   = color.NRGBA{0xB0, 0xB0, 0xB0, 0xA0}
	legendFill  = color.NRGBA{0xFF, 0xFF, 0xFF, 0xCC}
	legendEdge  = color.NRGBA{0xCC, 0xCC, 0xCC, 0xFF}
	figureColor = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
)

type textAnchor uint8

const (
	anchorLeft textAnchor = iota
	anchorCenter
	anchorRight
)

type textItem struct {
	x, y   int // baseline, 1× pixels
	s      string
	anchor textAnchor
}

// Figure lays out the Top and Side panels side by side on a supersampled RGBA image.
// Text is drawn after downscaling so the bitmap font stays crisp.
type Figure struct {
	ss     int
	w, h   int
	img    *image.RGBA
	panels [len(Views)]*RasterPanel
	texts  []textItem
}

func NewFigure(ss int) *Figure {
	if ss < 1 {
		ss = 1
	}
	w, h := PanelW*len(Views), PanelH
	f := &Figure{ss: ss, w: w, h: h, img: image.NewRGBA(image.Rect(0, 0, w*ss, h*ss))}
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(figureColor), image.Point{}, draw.Src)
	for i, v := range Views {
		f.panels[i] = &RasterPanel{
			fig:  f,
			rec:  NewRecorder(v),
			rect: image.Rect(i*PanelW, 0, (i+1)*PanelW, PanelH),
		}
	}
	DebugLogOnce("Figure %dx%d px, supersample %d", w, h, ss)
	return f
}

// Panel returns the panel for v.
func (f *Figure) Panel(v View) *RasterPanel {
	for _, p := range f.panels {
		if p.View() == v {
			return p
		}
	}
	return nil
}

// Image returns the final figure at 1× with text applied.
func (f *Figure) Image() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, f.w, f.h))
	var src image.Image = f.img
	if f.ss > 1 {
		src = resize.Resize(uint(f.w), uint(f.h), f.img, resize.Lanczos3)
	}
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	d := &font.Drawer{Dst: out, Src: image.NewUniform(frameColor), Face: basicfont.Face7x13}
	for _, t := range f.texts {
		x := t.x
		switch t.anchor {
		case anchorCenter:
			x -= d.MeasureString(t.s).Ceil() / 2
		case anchorRight:
			x -= d.MeasureString(t.s).Ceil()
		}
		d.Dot = fixed.P(x, t.y)
		d.DrawString(t.s)
	}
	return out
}

// SavePNG writes the figure as a lossless PNG.
func (f *Figure) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(out, f.Image()); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func (f *Figure) text(x, y int, s string, a textAnchor) {
	f.texts = append(f.texts, textItem{x: x, y: y, s: s, anchor: a})
}

// RasterPanel buffers draw calls until Finish, which fits the axes to the data and paints.
type RasterPanel struct {
	fig  *Figure
	rec  *Recorder
	rect image.Rectangle
}

func (p *RasterPanel) View() View { return p.rec.View() }

func (p *RasterPanel) DrawOutline(o Outline, st Style) { p.rec.DrawOutline(o, st) }

func (p *RasterPanel) DrawPolyline(pts []Point2, st LineStyle, label string) {
	p.rec.DrawPolyline(pts, st, label)
}

func (p *RasterPanel) DrawMarker(pt Point2, st MarkerStyle, label string) {
	p.rec.DrawMarker(pt, st, label)
}

func (p *RasterPanel) Finish(fs FrameStyle) {
	area := image.Rect(p.rect.Min.X+marginL, p.rect.Min.Y+marginT, p.rect.Max.X-marginR, p.rect.Max.Y-marginB)
	lo, hi := p.dataBounds()
	ax := fitAxes(lo, hi, area.Dx(), area.Dy(), fs.EqualAspect)
	c := newCanvas(p.fig.img, area, p.fig.ss)

	c.begin()
	c.polygon([]Point2{{0, 0}, {Real(area.Dx()), 0}, {Real(area.Dx()), Real(area.Dy())}, {0, Real(area.Dy())}})
	c.paint(fs.Background)

	xt, yt := axisTicks(ax.xmin, ax.xmax), axisTicks(ax.ymin, ax.ymax)
	if fs.Grid {
		c.begin()
		for _, tk := range xt {
			x, _ := ax.px(Point2{tk.Value, 0})
			c.segment(Point2{x, 0}, Point2{x, Real(area.Dy())}, 1)
		}
		for _, tk := range yt {
			_, y := ax.px(Point2{0, tk.Value})
			c.segment(Point2{0, y}, Point2{Real(area.Dx()), y}, 1)
		}
		c.paint(gridColor)
	}

	for _, op := range p.rec.Ops {
		switch op.Kind {
		case OpOutline:
			p.paintOutline(c, ax, op.Outline, op.Style)
		case OpPolyline:
			pts := make([]Point2, len(op.Pts))
			for i, q := range op.Pts {
				pts[i].H, pts[i].V = ax.px(q)
			}
			c.begin()
			c.stroke(pts, op.Line.Width, false)
			c.paint(op.Line.Color)
		case OpMarker:
			x, y := ax.px(op.Pts[0])
			c.begin()
			c.disc(x, y, op.Marker.Size/2)
			c.paint(op.Marker.Color)
		}
	}

	c.begin()
	c.stroke([]Point2{{0, 0}, {Real(area.Dx()), 0}, {Real(area.Dx()), Real(area.Dy())}, {0, Real(area.Dy())}}, 1.5, true)
	c.paint(frameColor)

	if fs.Legend {
		p.paintLegend(c, area)
	}

	v := p.View()
	hl, vl := v.AxisLabels()
	p.fig.text((area.Min.X+area.Max.X)/2, p.rect.Min.Y+18, v.Title(), anchorCenter)
	p.fig.text((area.Min.X+area.Max.X)/2, area.Max.Y+38, hl, anchorCenter)
	p.fig.text(p.rect.Min.X+6, area.Min.Y-6, vl, anchorLeft)
	for _, tk := range xt {
		x, _ := ax.px(Point2{tk.Value, 0})
		p.fig.text(area.Min.X+int(math.Round(x)), area.Max.Y+16, tk.Label, anchorCenter)
	}
	for _, tk := range yt {
		_, y := ax.px(Point2{0, tk.Value})
		p.fig.text(area.Min.X-4, area.Min.Y+int(math.Round(y))+4, tk.Label, anchorRight)
	}
	DebugLog("%s panel: x=[%.3f, %.3f] y=[%.3f, %.3f], %d draw calls", v, ax.xmin, ax.xmax, ax.ymin, ax.ymax, p.rec.DrawCalls())
}

func (p *RasterPanel) paintOutline(c *canvas, ax axes, o Outline, st Style) {
	var pts []Point2
	switch s := o.(type) {
	case Circle:
		x, y := ax.px(s.Center)
		rx, ry := s.R*ax.sx, s.R*ax.sy
		c.begin()
		c.ellipse(x, y, rx, ry, -1)
		c.paint(st.Fill)
		c.begin()
		c.ring(x, y, rx, ry, 1)
		c.paint(st.Edge)
		return
	case Rect:
		pts = []Point2{s.Min, {s.Min.H + s.W, s.Min.V}, {s.Min.H + s.W, s.Min.V + s.H}, {s.Min.H, s.Min.V + s.H}}
	case Polygon:
		pts = s.Pts
	default:
		return
	}
	px := make([]Point2, len(pts))
	for i, q := range pts {
		px[i].H, px[i].V = ax.px(q)
	}
	c.begin()
	c.polygon(px)
	c.paint(st.Fill)
	c.begin()
	c.stroke(px, 1, true)
	c.paint(st.Edge)
}

// paintLegend draws one row per labeled item in the top-right corner of the plot.
func (p *RasterPanel) paintLegend(c *canvas, area image.Rectangle) {
	var rows []Op
	for _, op := range p.rec.Ops {
		if op.Label != "" {
			rows = append(rows, op)
		}
	}
	if len(rows) == 0 {
		return
	}
	x0 := Real(area.Dx() - legendW - 8)
	y0 := Real(8)
	h := Real(legendH * len(rows))
	box := []Point2{{x0, y0}, {x0 + legendW, y0}, {x0 + legendW, y0 + h}, {x0, y0 + h}}
	c.begin()
	c.polygon(box)
	c.paint(legendFill)
	c.begin()
	c.stroke(box, 1, true)
	c.paint(legendEdge)
	for i, op := range rows {
		cy := y0 + legendH*Real(i) + legendH/2
		c.begin()
		switch op.Kind {
		case OpPolyline:
			c.stroke([]Point2{{x0 + 8, cy}, {x0 + 32, cy}}, op.Line.Width, false)
			c.paint(op.Line.Color)
		case OpMarker:
			c.disc(x0+20, cy, op.Marker.Size/2)
			c.paint(op.Marker.Color)
		}
		p.fig.text(area.Min.X+int(x0)+40, area.Min.Y+int(cy)+4, op.Label, anchorLeft)
	}
}

func (p *RasterPanel) dataBounds() (lo, hi Point2) {
	lo = Point2{math.Inf(1), math.Inf(1)}
	hi = Point2{math.Inf(-1), math.Inf(-1)}
	grow := func(a, b Point2) {
		lo.H, lo.V = math.Min(lo.H, a.H), math.Min(lo.V, a.V)
		hi.H, hi.V = math.Max(hi.H, b.H), math.Max(hi.V, b.V)
	}
	for _, op := range p.rec.Ops {
		switch op.Kind {
		case OpOutline:
			grow(op.Outline.Bounds())
		case OpPolyline, OpMarker:
			grow(pointBounds(op.Pts))
		}
	}
	return lo, hi
}

// axes maps data coordinates to plot-local pixels (y down).
type axes struct {
	xmin, xmax, ymin, ymax Real
	sx, sy                 Real
}

func (a axes) px(p Point2) (x, y Real) {
	return (p.H - a.xmin) * a.sx, (a.ymax - p.V) * a.sy
}

// fitAxes pads the data bounds and, for equal aspect, widens the shorter span so one data
// unit covers the same number of pixels on both axes.
func fitAxes(lo, hi Point2, w, h int, equal bool) axes {
	if !isFinite(lo.H) || !isFinite(hi.H) || !isFinite(lo.V) || !isFinite(hi.V) {
		lo, hi = Point2{-1, -1}, Point2{1, 1}
	}
	spanX, spanY := hi.H-lo.H, hi.V-lo.V
	if spanX <= 0 {
		spanX = fmax(1, math.Abs(lo.H))
		lo.H -= spanX / 2
	}
	if spanY <= 0 {
		spanY = fmax(1, math.Abs(lo.V))
		lo.V -= spanY / 2
	}
	a := axes{
		xmin: lo.H - spanX*padFrac, xmax: lo.H + spanX*(1+padFrac),
		ymin: lo.V - spanY*padFrac, ymax: lo.V + spanY*(1+padFrac),
	}
	a.sx = Real(w) / (a.xmax - a.xmin)
	a.sy = Real(h) / (a.ymax - a.ymin)
	if equal {
		s := math.Min(a.sx, a.sy)
		cx, cy := (a.xmin+a.xmax)/2, (a.ymin+a.ymax)/2
		hx, hy := Real(w)/s/2, Real(h)/s/2
		a.xmin, a.xmax, a.ymin, a.ymax = cx-hx, cx+hx, cy-hy, cy+hy
		a.sx, a.sy = s, s
	}
	return a
}

// axisTicks keeps the labeled ticks that plot's default ticker places inside [lo, hi].
func axisTicks(lo, hi Real) []plot.Tick {
	if !(hi > lo) || !isFinite(lo) || !isFinite(hi) {
		return nil
	}
	var out []plot.Tick
	for _, tk := range (plot.DefaultTicks{}).Ticks(lo, hi) {
		if tk.Label != "" && tk.Value >= lo && tk.Value <= hi {
			out = append(out, tk)
		}
	}
	return out
}
