package pathview

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitAxes_EqualAspect(t *testing.T) {
	a := fitAxes(Point2{0, 0}, Point2{100, 10}, 400, 400, true)
	assert.InDelta(t, a.sx, a.sy, 1e-12)
	// the data still fits on both axes
	assert.LessOrEqual(t, a.xmin, 0.0)
	assert.GreaterOrEqual(t, a.xmax, 100.0)
	assert.LessOrEqual(t, a.ymin, 0.0)
	assert.GreaterOrEqual(t, a.ymax, 10.0)
	// one unit is the same pixel length horizontally and vertically
	x0, y0 := a.px(Point2{0, 0})
	x1, y1 := a.px(Point2{1, 1})
	assert.InDelta(t, x1-x0, y0-y1, 1e-9)
	// and the plot is filled edge to edge
	xl, _ := a.px(Point2{a.xmin, 0})
	xr, _ := a.px(Point2{a.xmax, 0})
	assert.InDelta(t, 0, xl, 1e-9)
	assert.InDelta(t, 400, xr, 1e-9)
}

func TestFitAxes_Degenerate(t *testing.T) {
	a := fitAxes(Point2{math.Inf(1), math.Inf(1)}, Point2{math.Inf(-1), math.Inf(-1)}, 100, 50, true)
	assert.True(t, a.xmax > a.xmin && a.ymax > a.ymin)
	b := fitAxes(Point2{3, 3}, Point2{3, 3}, 100, 100, true)
	assert.True(t, b.xmin < 3 && b.xmax > 3 && b.ymin < 3 && b.ymax > 3)
}

func TestAxisTicks(t *testing.T) {
	tks := axisTicks(-0.5, 10.5)
	require.GreaterOrEqual(t, len(tks), 3)
	for i, tk := range tks {
		assert.NotEmpty(t, tk.Label)
		assert.True(t, tk.Value >= -0.5 && tk.Value <= 10.5, "tick %v outside range", tk.Value)
		v, err := strconv.ParseFloat(tk.Label, 64)
		require.NoError(t, err, tk.Label)
		assert.InDelta(t, tk.Value, v, 1e-9)
		if i > 1 {
			// evenly spaced
			assert.InDelta(t, tks[1].Value-tks[0].Value, tk.Value-tks[i-1].Value, 1e-9)
		}
	}
	assert.Nil(t, axisTicks(1, 1))
	assert.Nil(t, axisTicks(2, 1))
	assert.Nil(t, axisTicks(math.Inf(-1), 1))
}

func renderTestFigure(t *testing.T, ss int) *Figure {
	t.Helper()
	top, side, err := Record(testScene(), testPaths())
	require.NoError(t, err)
	fig := NewFigure(ss)
	top.Replay(fig.Panel(TopDown))
	side.Replay(fig.Panel(Side))
	return fig
}

func TestFigure_Image(t *testing.T) {
	fig := renderTestFigure(t, 1)
	img := fig.Image()
	assert.Equal(t, PanelW*2, img.Bounds().Dx())
	assert.Equal(t, PanelH, img.Bounds().Dy())

	// inside the top panel's plot area the background is no longer plain white
	p := img.RGBAAt(marginL+20, PanelH/2)
	assert.NotEqual(t, [4]uint8{255, 255, 255, 255}, [4]uint8{p.R, p.G, p.B, p.A})
	// every panel carries title, axis labels and a legend entry
	var legend int
	for _, tx := range fig.texts {
		if tx.s == RayPathLbl {
			legend++
		}
	}
	assert.Equal(t, 2, legend)
}

func TestFigure_SavePNG(t *testing.T) {
	fig := renderTestFigure(t, 2)
	out := filepath.Join(t.TempDir(), "fig.png")
	require.NoError(t, fig.SavePNG(out))
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, PanelW*2, cfg.Width)
	assert.Equal(t, PanelH, cfg.Height)
}

func TestFigure_PanelLookup(t *testing.T) {
	fig := NewFigure(0)
	assert.Equal(t, 1, fig.ss)
	assert.Equal(t, TopDown, fig.Panel(TopDown).View())
	assert.Equal(t, Side, fig.Panel(Side).View())
}
