package pathview

// DrawPaths overlays every path on p: a polyline through the projected samples, then a
// start marker at the origin. Only the first path is labeled.
func DrawPaths(p Panel, paths PathSet) error {
	if len(paths) == 0 {
		return &MissingInputError{Resource: "ray paths"}
	}
	for i, path := range paths {
		if len(path.Samples) == 0 {
			return &ConfigError{Object: path.Source, Reason: "path has no samples"}
		}
		pts := path.Project(p.View())
		label := ""
		if i == 0 {
			label = RayPathLbl
		}
		p.DrawPolyline(pts, PathLine, label)
		p.DrawMarker(pts[0], StartMarker, "")
	}
	return nil
}
