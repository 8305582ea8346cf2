package pathview

import (
	"errors"
	"fmt"
)

// Project maps one object to its outline and style under view.
// A documented gap (Lens side view) yields ErrUnsupportedView and a nil outline.
func Project(obj Object, view View) (Outline, Style, error) {
	if obj.Shape == nil {
		return nil, Style{}, &ConfigError{Object: obj.Name, Field: "shape", Reason: "no shape"}
	}
	var (
		o   Outline
		err error
	)
	switch view {
	case TopDown:
		o, err = obj.Shape.topDown(obj.Transform)
	case Side:
		o, err = obj.Shape.side(obj.Transform)
	default:
		return nil, Style{}, &ConfigError{Object: obj.Name, Reason: fmt.Sprintf("unknown view %d", view)}
	}
	if err != nil {
		var ce *ConfigError
		if errors.As(err, &ce) && ce.Object == "" {
			ce.Object = obj.Name
		}
		return nil, Style{}, err
	}
	return o, StyleFor(obj.Appearance), nil
}

// projectAll projects obj for every view so a malformed object fails before any drawing.
// Unsupported views are left nil.
func projectAll(obj Object) ([len(Views)]Outline, Style, error) {
	var outs [len(Views)]Outline
	var st Style
	for i, v := range Views {
		o, s, err := Project(obj, v)
		if errors.Is(err, ErrUnsupportedView) {
			DebugLog("%s: no %s outline for %s", obj.Name, v, obj.Shape.Kind())
			continue
		}
		if err != nil {
			return outs, st, err
		}
		outs[i], st = o, s
	}
	return outs, st, nil
}
