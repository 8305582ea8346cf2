package pathview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppearanceOf(t *testing.T) {
	cases := []struct {
		explicit, material string
		want               Appearance
		ok                 bool
	}{
		{"", "Glass", Transparent, true},
		{"", "BK7 Glass prism", Transparent, true},
		{"", "Mirror", Opaque, true},
		{"", "glass", Opaque, true}, // marker is case-sensitive
		{"Transparent", "Mirror", Transparent, true},
		{"opaque", "Glass", Opaque, true},
		{"frosted", "Glass", Opaque, false},
	}
	for _, c := range cases {
		got, ok := appearanceOf(c.explicit, c.material)
		assert.Equal(t, c.ok, ok, "%q/%q", c.explicit, c.material)
		if ok {
			assert.Equal(t, c.want, got, "%q/%q", c.explicit, c.material)
		}
	}
}

func TestStyleFor(t *testing.T) {
	g, o := StyleFor(Transparent), StyleFor(Opaque)
	assert.NotEqual(t, g.Fill, o.Fill)
	assert.Equal(t, g.Edge, o.Edge)
	assert.Equal(t, uint8(102), g.Fill.A)
	assert.Equal(t, g.Fill.A, o.Fill.A)
}

func TestAlpha8(t *testing.T) {
	assert.Equal(t, uint8(0), alpha8(-1))
	assert.Equal(t, uint8(255), alpha8(2))
	assert.Equal(t, uint8(230), alpha8(PathAlpha))
}
