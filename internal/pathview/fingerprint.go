package pathview

import (
	"encoding/binary"
	"image/color"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the draw lists of recs, in order. Identical inputs give identical
// values across runs and platforms: floats are hashed by their IEEE-754 bits.
func Fingerprint(recs ...*Recorder) uint64 {
	h := xxhash.New()
	var buf [8]byte
	u64 := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	f64 := func(v Real) { u64(math.Float64bits(v)) }
	pts := func(ps []Point2) {
		u64(uint64(len(ps)))
		for _, p := range ps {
			f64(p.H)
			f64(p.V)
		}
	}
	rgba := func(c color.NRGBA) { _, _ = h.Write([]byte{c.R, c.G, c.B, c.A}) }
	str := func(s string) {
		u64(uint64(len(s)))
		_, _ = h.WriteString(s)
	}

	for _, r := range recs {
		u64(uint64(r.view))
		u64(uint64(len(r.Ops)))
		for _, op := range r.Ops {
			_, _ = h.Write([]byte{byte(op.Kind)})
			switch op.Kind {
			case OpOutline:
				rgba(op.Style.Fill)
				rgba(op.Style.Edge)
				switch o := op.Outline.(type) {
				case Circle:
					_, _ = h.Write([]byte{'c'})
					pts([]Point2{o.Center})
					f64(o.R)
				case Rect:
					_, _ = h.Write([]byte{'r'})
					pts([]Point2{o.Min})
					f64(o.W)
					f64(o.H)
				case Polygon:
					_, _ = h.Write([]byte{'p'})
					pts(o.Pts)
				}
			case OpPolyline:
				rgba(op.Line.Color)
				f64(op.Line.Width)
				pts(op.Pts)
				str(op.Label)
			case OpMarker:
				rgba(op.Marker.Color)
				f64(op.Marker.Size)
				pts(op.Pts)
				str(op.Label)
			case OpFinish:
				rgba(op.Frame.Background)
				for _, b := range [3]bool{op.Frame.Grid, op.Frame.EqualAspect, op.Frame.Legend} {
					if b {
						_, _ = h.Write([]byte{1})
					} else {
						_, _ = h.Write([]byte{0})
					}
				}
			}
		}
	}
	return h.Sum64()
}
