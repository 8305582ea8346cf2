package pathview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.toml", sceneTOML)
	writeFile(t, dir, "path_0.csv", "x,y,z\n-30,0,0\n0,0,0\n25,3,10\n")
	writeFile(t, dir, "path_1.csv", "x,y,z\n-30,1,2\n")
	out := filepath.Join(dir, "out.png")

	require.NoError(t, Run(Options{Scene: scene, Paths: filepath.Join(dir, "path_*.csv"), Out: out, Supersample: 1}))
	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Positive(t, st.Size())
}

func TestRun_MissingScene(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "path_0.csv", "x,y,z\n0,0,0\n")
	out := filepath.Join(dir, "out.png")
	err := Run(Options{Scene: filepath.Join(dir, "scene.toml"), Paths: filepath.Join(dir, "path_*.csv"), Out: out})
	var mi *MissingInputError
	require.True(t, errors.As(err, &mi), "got %v", err)
	assert.Equal(t, filepath.Join(dir, "scene.toml"), mi.Resource)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no figure on missing input")
}

func TestRun_MissingPaths(t *testing.T) {
	dir := t.TempDir()
	scene := writeFile(t, dir, "scene.toml", sceneTOML)
	out := filepath.Join(dir, "out.png")
	err := Run(Options{Scene: scene, Paths: filepath.Join(dir, "path_*.csv"), Out: out})
	var mi *MissingInputError
	require.True(t, errors.As(err, &mi), "got %v", err)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	assert.Equal(t, Options{Scene: SceneFile, Paths: PathsGlob, Out: PNGOut, Supersample: Supersample}, o)
	o = Options{Scene: "sim.toml", Supersample: 3}.withDefaults()
	assert.Equal(t, "sim.toml", o.Scene)
	assert.Equal(t, 3, o.Supersample)
}
