package pathview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Path is one traced ray: samples in event order, the first one being the origin.
type Path struct {
	Source  string
	Samples []Vector3
}

// PathSet is ordered by Source, byte-wise lexicographic.
type PathSet []Path

// Project returns the samples on view's plane.
func (p Path) Project(v View) []Point2 {
	out := make([]Point2, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = v.Project(s)
	}
	return out
}

// SortSources orders path file names lexicographically: path_10.csv sorts before path_2.csv.
func SortSources(names []string) {
	sort.Strings(names)
}

// LoadPathSet reads every file matching pattern. A plain file name is a one-ray pattern.
func LoadPathSet(pattern string) (PathSet, error) {
	names, err := filepath.Glob(pattern)
	if err != nil {
		return nil, &ConfigError{Object: pattern, Reason: err.Error()}
	}
	if len(names) == 0 {
		return nil, &MissingInputError{Resource: pattern}
	}
	SortSources(names)
	set := make(PathSet, 0, len(names))
	for _, name := range names {
		p, err := readPathFile(name)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	DebugLog("Loaded %d ray paths matching %s", len(set), pattern)
	return set, nil
}

func readPathFile(name string) (Path, error) {
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Path{}, &MissingInputError{Resource: name, Err: err}
		}
		return Path{}, err
	}
	defer f.Close()
	return ReadPath(f, filepath.Base(name))
}

// ReadPath parses CSV with a header naming x, y and z; other columns are ignored.
func ReadPath(r io.Reader, source string) (Path, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return Path{}, &ConfigError{Object: source, Reason: "empty file"}
	}
	if err != nil {
		return Path{}, &ConfigError{Object: source, Reason: err.Error()}
	}
	col := map[string]int{}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := col[name]; dup && (name == "x" || name == "y" || name == "z") {
			return Path{}, &ConfigError{Object: source, Field: name, Reason: "column repeated in header"}
		}
		col[name] = i
	}
	idx := [3]int{}
	for i, axis := range [3]string{"x", "y", "z"} {
		c, ok := col[axis]
		if !ok {
			return Path{}, &ConfigError{Object: source, Field: axis, Reason: "column missing from header"}
		}
		idx[i] = c
	}

	p := Path{Source: source}
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Path{}, &ConfigError{Object: source, Reason: err.Error()}
		}
		var v [3]Real
		for i, c := range idx {
			if c >= len(rec) {
				return Path{}, &ConfigError{Object: source, Field: header[c], Reason: fmt.Sprintf("row %d is short", row)}
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(rec[c]), 64)
			if err != nil || !isFinite(f) {
				return Path{}, &ConfigError{Object: source, Field: header[c], Reason: fmt.Sprintf("row %d: bad number %q", row, rec[c])}
			}
			v[i] = f
		}
		p.Samples = append(p.Samples, Vector3{v[0], v[1], v[2]})
	}
	if len(p.Samples) == 0 {
		return Path{}, &ConfigError{Object: source, Reason: "path has no samples"}
	}
	return p, nil
}
