package pathview

import "image/color"

// LineStyle strokes a polyline; Width is in output pixels.
type LineStyle struct {
	Color color.NRGBA
	Width Real
}

// MarkerStyle paints a filled dot of diameter Size pixels.
type MarkerStyle struct {
	Color color.NRGBA
	Size  Real
}

// FrameStyle is applied once per panel after all geometry is drawn.
type FrameStyle struct {
	Background  color.NRGBA
	Grid        bool
	EqualAspect bool
	Legend      bool
}

// Panel is one view's drawing surface. An empty label keeps the item out of the legend.
type Panel interface {
	View() View
	DrawOutline(o Outline, st Style)
	DrawPolyline(pts []Point2, st LineStyle, label string)
	DrawMarker(p Point2, st MarkerStyle, label string)
	Finish(fs FrameStyle)
}

var (
	PathLine    = LineStyle{Color: color.NRGBA{0xFF, 0x00, 0x00, alpha8(PathAlpha)}, Width: PathWidth}
	StartMarker = MarkerStyle{Color: color.NRGBA{0x00, 0x80, 0x00, 0xFF}, Size: MarkerSize}
	PanelFrame  = FrameStyle{
		Background:  color.NRGBA{0xFF, 0xFF, 0xF0, 0xFF}, // ivory
		Grid:        true,
		EqualAspect: true,
		Legend:      true,
	}
)
