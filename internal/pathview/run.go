package pathview

import "fmt"

// Options locate the inputs and output of one render pass; empty fields take defaults.
type Options struct {
	Scene       string
	Paths       string
	Out         string
	Supersample int
}

func (o Options) withDefaults() Options {
	if o.Scene == "" {
		o.Scene = SceneFile
	}
	if o.Paths == "" {
		o.Paths = PathsGlob
	}
	if o.Out == "" {
		o.Out = PNGOut
	}
	if o.Supersample <= 0 {
		o.Supersample = Supersample
	}
	return o
}

// Record composes scene and paths into fresh Top and Side recorders.
func Record(scene *Scene, paths PathSet) (top, side *Recorder, err error) {
	top, side = NewRecorder(TopDown), NewRecorder(Side)
	c, err := NewComposer(top, side)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Compose(scene, paths); err != nil {
		return nil, nil, err
	}
	return top, side, nil
}

// Run loads the inputs, composes both views, and writes the figure. Both inputs are
// loaded before anything is drawn.
func Run(opts Options) error {
	opts = opts.withDefaults()
	scene, err := LoadScene(opts.Scene)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	paths, err := LoadPathSet(opts.Paths)
	if err != nil {
		return fmt.Errorf("load ray paths: %w", err)
	}

	top, side, err := Record(scene, paths)
	if err != nil {
		return fmt.Errorf("compose: %w", err)
	}
	fp := Fingerprint(top, side)
	logger.Infow("composed views",
		"scene", opts.Scene,
		"objects", len(scene.Objects),
		"paths", len(paths),
		"drawCalls", top.DrawCalls()+side.DrawCalls(),
		"fingerprint", fmt.Sprintf("%016x", fp),
	)

	fig := NewFigure(opts.Supersample)
	top.Replay(fig.Panel(TopDown))
	side.Replay(fig.Panel(Side))
	if err := fig.SavePNG(opts.Out); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	logger.Infow("saved figure", "out", opts.Out)
	return nil
}
