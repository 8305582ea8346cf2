package pathview

import "fmt"

// Composer draws one scene and its ray paths into the Top and Side panels.
type Composer struct {
	panels [len(Views)]Panel
}

func NewComposer(top, side Panel) (*Composer, error) {
	if top == nil || side == nil {
		return nil, fmt.Errorf("composer needs two panels")
	}
	if top.View() != TopDown || side.View() != Side {
		return nil, fmt.Errorf("panel views are %s/%s, want %s/%s", top.View(), side.View(), TopDown, Side)
	}
	return &Composer{panels: [len(Views)]Panel{top, side}}, nil
}

// Compose draws objects (scene order) then paths (set order) into each panel and frames
// it. Inputs are validated and projected up front, so a failure leaves every panel untouched.
func (c *Composer) Compose(scene *Scene, paths PathSet) error {
	if scene == nil {
		return &MissingInputError{Resource: "scene"}
	}
	if len(paths) == 0 {
		return &MissingInputError{Resource: "ray paths"}
	}
	type projected struct {
		outs [len(Views)]Outline
		st   Style
	}
	objs := make([]projected, len(scene.Objects))
	for i, obj := range scene.Objects {
		outs, st, err := projectAll(obj)
		if err != nil {
			return err
		}
		objs[i] = projected{outs: outs, st: st}
	}
	for _, p := range paths {
		if len(p.Samples) == 0 {
			return &ConfigError{Object: p.Source, Reason: "path has no samples"}
		}
	}

	for vi, panel := range c.panels {
		for _, o := range objs {
			if o.outs[vi] != nil {
				panel.DrawOutline(o.outs[vi], o.st)
			}
		}
		if err := DrawPaths(panel, paths); err != nil {
			return err
		}
		panel.Finish(PanelFrame)
	}
	DebugLog("Composed %d objects and %d paths", len(scene.Objects), len(paths))
	return nil
}
