package pathview

// View selects one of the two fixed orthogonal projections.
type View uint8

const (
	TopDown View = iota // horizontal plane: (x, z)
	Side                // vertical plane: (z, y)
)

// Views lists both panels in layout order (left to right).
var Views = [2]View{TopDown, Side}

// Project drops the axis perpendicular to the view plane.
func (v View) Project(p Vector3) Point2 {
	if v == TopDown {
		return Point2{p.X, p.Z}
	}
	return Point2{p.Z, p.Y}
}

func (v View) String() string {
	if v == TopDown {
		return "TopDown"
	}
	return "Side"
}

func (v View) Title() string {
	if v == TopDown {
		return "Top View (XZ Projection)"
	}
	return "Side View (YZ Projection)"
}

// AxisLabels returns the horizontal and vertical axis captions.
func (v View) AxisLabels() (h, vert string) {
	if v == TopDown {
		return "X coordinate", "Z coordinate"
	}
	return "Z coordinate", "Y coordinate"
}
