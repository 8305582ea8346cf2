package pathview

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingInputError(t *testing.T) {
	err := error(&MissingInputError{Resource: "scene.toml", Err: fs.ErrNotExist})
	assert.Contains(t, err.Error(), "scene.toml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var mi *MissingInputError
	require.True(t, errors.As(err, &mi))
	assert.Equal(t, "scene.toml", mi.Resource)
	assert.Equal(t, `missing input "path_*.csv"`, (&MissingInputError{Resource: "path_*.csv"}).Error())
}

func TestConfigError(t *testing.T) {
	err := missingField("objects[1] (Box)", "size")
	assert.Equal(t, `objects[1] (Box): field "size": required field is missing`, err.Error())
	e2 := &ConfigError{Object: "objects[0]", Reason: "unknown shape type \"Cone\""}
	assert.Equal(t, `objects[0]: unknown shape type "Cone"`, e2.Error())
}
