package pathview

type Real = float64

const (
	SceneFile   = "scene.toml"
	PathsGlob   = "path_*.csv"
	PNGOut      = "pathview.png"
	PanelW      = 880 // pixels per panel before supersampling
	PanelH      = 880
	Supersample = 2
	FillAlpha   = 0.4
	PathAlpha   = 0.9
	PathWidth   = 1.5
	MarkerSize  = 8
	RayPathLbl  = "Ray Path"
	GlassMarker = "Glass"
	// hot-path tolerances
	epsGeom = 1e-12
	padFrac = 0.05 // fraction of the data span added around each panel's limits
)
