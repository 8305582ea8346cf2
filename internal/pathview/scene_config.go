package pathview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// SceneCfg is the scene file layout. A simulation file nests the same keys under "scene".
type SceneCfg struct {
	Objects          []ObjectCfg          `toml:"objects" yaml:"objects" json:"objects"`
	ObjectGenerators []ObjectGeneratorCfg `toml:"object_generators" yaml:"object_generators" json:"object_generators"`
	Scene            *SceneCfg            `toml:"scene" yaml:"scene" json:"scene"`
}

type ObjectCfg struct {
	Shape      *ShapeCfg     `toml:"shape" yaml:"shape" json:"shape"`
	Transform  *TransformCfg `toml:"transform" yaml:"transform" json:"transform"`
	Material   any           `toml:"material" yaml:"material" json:"material"` // "Glass" or {type = "Glass", ior = 1.5}
	Appearance string        `toml:"appearance" yaml:"appearance" json:"appearance"`
}

// Pointers tell an absent field from an explicit zero.
type ShapeCfg struct {
	Type     string `toml:"type" yaml:"type" json:"type"`
	Radius   *Real  `toml:"radius" yaml:"radius" json:"radius"`
	Diameter *Real  `toml:"diameter" yaml:"diameter" json:"diameter"`
	Size     []Real `toml:"size" yaml:"size" json:"size"`
	Height   *Real  `toml:"height" yaml:"height" json:"height"`
	AngleDeg *Real  `toml:"angle_deg" yaml:"angle_deg" json:"angle_deg"`
}

type TransformCfg struct {
	Position     []Real `toml:"position" yaml:"position" json:"position"`
	RotationYDeg *Real  `toml:"rotation_y_deg" yaml:"rotation_y_deg" json:"rotation_y_deg"`
}

// ObjectGeneratorCfg stamps a template onto a count_x × count_z grid (type "ObjectGrid").
type ObjectGeneratorCfg struct {
	Type          string    `toml:"type" yaml:"type" json:"type"`
	CountX        int       `toml:"count_x" yaml:"count_x" json:"count_x"`
	CountZ        int       `toml:"count_z" yaml:"count_z" json:"count_z"`
	PositionStart []Real    `toml:"position_start" yaml:"position_start" json:"position_start"`
	StepX         []Real    `toml:"step_x" yaml:"step_x" json:"step_x"`
	StepZ         []Real    `toml:"step_z" yaml:"step_z" json:"step_z"`
	Template      ObjectCfg `toml:"template" yaml:"template" json:"template"`
}

// Build validates and constructs the runtime object (no defaults beyond diameter -> radius).
func (oc ObjectCfg) Build(name string) (Object, error) {
	if oc.Shape == nil {
		return Object{}, missingField(name, "shape")
	}
	if oc.Shape.Type != "" {
		name = fmt.Sprintf("%s (%s)", name, oc.Shape.Type)
	}
	shape, err := oc.Shape.Build(name)
	if err != nil {
		return Object{}, err
	}
	if oc.Transform == nil {
		return Object{}, missingField(name, "transform")
	}
	pos, err := vec3Field(name, "transform.position", oc.Transform.Position)
	if err != nil {
		return Object{}, err
	}
	if oc.Transform.RotationYDeg == nil {
		return Object{}, missingField(name, "transform.rotation_y_deg")
	}
	rot := *oc.Transform.RotationYDeg
	if !isFinite(rot) {
		return Object{}, &ConfigError{Object: name, Field: "transform.rotation_y_deg", Reason: "not a finite number"}
	}
	if oc.Material == nil {
		return Object{}, missingField(name, "material")
	}
	tag := materialTag(oc.Material)
	app, ok := appearanceOf(oc.Appearance, tag)
	if !ok {
		return Object{}, &ConfigError{Object: name, Field: "appearance", Reason: fmt.Sprintf("want transparent or opaque, got %q", oc.Appearance)}
	}
	return Object{
		Name:       name,
		Shape:      shape,
		Transform:  Transform{Position: pos, RotationYDeg: rot},
		Material:   tag,
		Appearance: app,
	}, nil
}

func (sc ShapeCfg) Build(name string) (Shape, error) {
	switch sc.Type {
	case "Sphere":
		r, err := sc.radius(name, true)
		return Sphere{Radius: r}, err
	case "Lens":
		r, err := sc.radius(name, true)
		return Lens{Radius: r}, err
	case "Cylinder":
		r, err := sc.radius(name, false)
		if err != nil {
			return nil, err
		}
		h, err := positive(name, "shape.height", sc.Height)
		return Cylinder{Radius: r, Height: h}, err
	case "Box":
		size, err := sc.size(name)
		return Box{Size: size}, err
	case "Wedge":
		size, err := sc.size(name)
		if err != nil {
			return nil, err
		}
		if sc.AngleDeg == nil {
			return nil, missingField(name, "shape.angle_deg")
		}
		w := Wedge{Size: size, AngleDeg: *sc.AngleDeg}
		if _, err := w.apexOffset(); err != nil {
			var ce *ConfigError
			if errors.As(err, &ce) {
				ce.Object, ce.Field = name, "shape.angle_deg"
			}
			return nil, err
		}
		return w, nil
	case "":
		return nil, missingField(name, "shape.type")
	}
	return nil, &ConfigError{Object: name, Field: "shape.type", Reason: fmt.Sprintf("unknown shape type %q", sc.Type)}
}

// radius resolves exactly one of radius/diameter; diameter is accepted only when allowDiameter.
func (sc ShapeCfg) radius(name string, allowDiameter bool) (Real, error) {
	if sc.Radius != nil && sc.Diameter != nil {
		if allowDiameter {
			return 0, &ConfigError{Object: name, Field: "shape.radius", Reason: "give exactly one of radius, diameter"}
		}
		return 0, &ConfigError{Object: name, Field: "shape.diameter", Reason: "not accepted here, give radius only"}
	}
	if sc.Radius != nil {
		return positive(name, "shape.radius", sc.Radius)
	}
	if allowDiameter && sc.Diameter != nil {
		d, err := positive(name, "shape.diameter", sc.Diameter)
		return d / 2, err
	}
	return 0, missingField(name, "shape.radius")
}

func (sc ShapeCfg) size(name string) (Vector3, error) {
	v, err := vec3Field(name, "shape.size", sc.Size)
	if err != nil {
		return Vector3{}, err
	}
	for _, c := range [3]Real{v.X, v.Y, v.Z} {
		if c <= 0 {
			return Vector3{}, &ConfigError{Object: name, Field: "shape.size", Reason: fmt.Sprintf("components must be > 0, got %v", sc.Size)}
		}
	}
	return v, nil
}

func positive(name, field string, v *Real) (Real, error) {
	if v == nil {
		return 0, missingField(name, field)
	}
	if !isFinite(*v) || *v <= 0 {
		return 0, &ConfigError{Object: name, Field: field, Reason: fmt.Sprintf("must be a finite number > 0, got %g", *v)}
	}
	return *v, nil
}

func vec3Field(name, field string, a []Real) (Vector3, error) {
	if a == nil {
		return Vector3{}, missingField(name, field)
	}
	if len(a) != 3 {
		return Vector3{}, &ConfigError{Object: name, Field: field, Reason: fmt.Sprintf("want 3 numbers, got %d", len(a))}
	}
	for _, c := range a {
		if !isFinite(c) {
			return Vector3{}, &ConfigError{Object: name, Field: field, Reason: "not a finite number"}
		}
	}
	return vec3(a), nil
}

// materialTag flattens a material to the string inspected for the glass marker.
func materialTag(m any) string {
	switch v := m.(type) {
	case string:
		return v
	case map[string]any:
		if t, ok := v["type"].(string); ok {
			return t
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return strings.Join(keys, ",")
	}
	return fmt.Sprint(m)
}

// Expand builds the grid objects in x-major order.
func (g ObjectGeneratorCfg) Expand(name string) ([]Object, error) {
	if g.Type != "ObjectGrid" {
		return nil, &ConfigError{Object: name, Field: "type", Reason: fmt.Sprintf("unknown generator type %q", g.Type)}
	}
	if g.CountX < 0 || g.CountZ < 0 {
		return nil, &ConfigError{Object: name, Reason: fmt.Sprintf("negative grid count %dx%d", g.CountX, g.CountZ)}
	}
	start, err := vec3Field(name, "position_start", g.PositionStart)
	if err != nil {
		return nil, err
	}
	sx, err := vec3Field(name, "step_x", g.StepX)
	if err != nil {
		return nil, err
	}
	sz, err := vec3Field(name, "step_z", g.StepZ)
	if err != nil {
		return nil, err
	}
	out := make([]Object, 0, g.CountX*g.CountZ)
	for i := 0; i < g.CountX; i++ {
		for j := 0; j < g.CountZ; j++ {
			oc := g.Template
			pos := start.Add(sx.Mul(Real(i))).Add(sz.Mul(Real(j)))
			tc := TransformCfg{Position: []Real{pos.X, pos.Y, pos.Z}}
			if oc.Transform != nil {
				tc.RotationYDeg = oc.Transform.RotationYDeg
			}
			oc.Transform = &tc
			obj, err := oc.Build(fmt.Sprintf("%s[%d,%d]", name, i, j))
			if err != nil {
				return nil, err
			}
			out = append(out, obj)
		}
	}
	return out, nil
}

// Build turns the decoded layout into a Scene. Generated objects come first, then the
// explicit list, matching the order the simulator builds its hittables in.
func (c *SceneCfg) Build(source string) (*Scene, error) {
	if c.Scene != nil && len(c.Objects) == 0 && len(c.ObjectGenerators) == 0 {
		c = c.Scene
	}
	s := &Scene{Source: source}
	for i, g := range c.ObjectGenerators {
		objs, err := g.Expand(fmt.Sprintf("object_generators[%d]", i))
		if err != nil {
			return nil, err
		}
		for _, o := range objs {
			s.AddObject(o)
		}
	}
	for i, oc := range c.Objects {
		obj, err := oc.Build(fmt.Sprintf("objects[%d]", i))
		if err != nil {
			return nil, err
		}
		s.AddObject(obj)
	}
	return s, nil
}

// DecodeScene parses data in the format named by ext (".toml", ".yaml", ".yml" or ".json").
func DecodeScene(data []byte, ext string) (*SceneCfg, error) {
	var cfg SceneCfg
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		err = dec.Decode(&cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadScene reads and validates a scene file. An absent file is a MissingInputError.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Resource: path, Err: err}
		}
		return nil, err
	}
	cfg, err := DecodeScene(data, filepath.Ext(path))
	if err != nil {
		return nil, &ConfigError{Object: path, Reason: err.Error()}
	}
	s, err := cfg.Build(path)
	if err != nil {
		return nil, err
	}
	DebugLog("Loaded scene from %s: %d objects", path, len(s.Objects))
	return s, nil
}
