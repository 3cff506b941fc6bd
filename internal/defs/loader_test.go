package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLevel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "level.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadLevel_Defaults(t *testing.T) {
	path := writeLevel(t, `{"name":"yard","boxes":[{"center":{"X":1,"Y":1,"Z":1},"size":{"X":2,"Y":2,"Z":2}}]}`)

	level, err := LoadLevel(path)
	require.NoError(t, err)
	assert.Equal(t, "yard", level.Name)
	assert.Equal(t, DefaultFloorSize, level.FloorSize)
	require.Len(t, level.Boxes, 1)
	assert.Equal(t, BoxWall, level.Boxes[0].Kind)
}

func TestLoadLevel_Errors(t *testing.T) {
	_, err := LoadLevel(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadLevel(writeLevel(t, `{"boxes":[`))
	assert.Error(t, err)

	_, err = LoadLevel(writeLevel(t, `{"boxes":[{"size":{"X":0,"Y":1,"Z":1}}]}`))
	assert.ErrorContains(t, err, "non-positive size")
}

func TestDefaultLevel_BoxesAreSolid(t *testing.T) {
	level := DefaultLevel()
	assert.Equal(t, DefaultFloorSize, level.FloorSize)
	assert.NotEmpty(t, level.Boxes)
	for _, b := range level.Boxes {
		assert.Positive(t, b.Size.X)
		assert.Positive(t, b.Size.Y)
		assert.Positive(t, b.Size.Z)
	}
}
