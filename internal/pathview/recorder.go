package pathview

// OpKind identifies one recorded draw call.
type OpKind uint8

const (
	OpOutline OpKind = iota
	OpPolyline
	OpMarker
	OpFinish
)

// Op is one recorded draw call; only the fields of its Kind are set.
type Op struct {
	Kind    OpKind
	Outline Outline
	Style   Style
	Line    LineStyle
	Marker  MarkerStyle
	Pts     []Point2
	Label   string
	Frame   FrameStyle
}

// Recorder is a Panel that keeps the draw list instead of painting it.
type Recorder struct {
	view View
	Ops  []Op
}

func NewRecorder(v View) *Recorder { return &Recorder{view: v} }

func (r *Recorder) View() View { return r.view }

func (r *Recorder) DrawOutline(o Outline, st Style) {
	r.Ops = append(r.Ops, Op{Kind: OpOutline, Outline: o, Style: st})
}

func (r *Recorder) DrawPolyline(pts []Point2, st LineStyle, label string) {
	cp := append([]Point2(nil), pts...)
	r.Ops = append(r.Ops, Op{Kind: OpPolyline, Pts: cp, Line: st, Label: label})
}

func (r *Recorder) DrawMarker(p Point2, st MarkerStyle, label string) {
	r.Ops = append(r.Ops, Op{Kind: OpMarker, Pts: []Point2{p}, Marker: st, Label: label})
}

func (r *Recorder) Finish(fs FrameStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpFinish, Frame: fs})
}

// DrawCalls counts recorded geometry, excluding Finish.
func (r *Recorder) DrawCalls() int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind != OpFinish {
			n++
		}
	}
	return n
}

// Labels returns the legend entries in draw order.
func (r *Recorder) Labels() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Label != "" {
			out = append(out, op.Label)
		}
	}
	return out
}

// Replay issues the recorded calls, in order, on dst.
func (r *Recorder) Replay(dst Panel) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpOutline:
			dst.DrawOutline(op.Outline, op.Style)
		case OpPolyline:
			dst.DrawPolyline(op.Pts, op.Line, op.Label)
		case OpMarker:
			dst.DrawMarker(op.Pts[0], op.Marker, op.Label)
		case OpFinish:
			dst.Finish(op.Frame)
		}
	}
}
