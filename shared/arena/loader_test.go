package arena

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	layout, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "arena", layout.Name)
	assert.Equal(t, 1280.0, layout.Width)
	assert.Equal(t, 720.0, layout.Height)
	assert.Equal(t, 620.0, layout.GroundY)
	assert.Equal(t, Point{X: 615, Y: 320}, layout.PlayerSpawn)
	assert.Equal(t, Point{X: 1130, Y: 500}, layout.BossSpawn)
}

func TestDefaultMatchesBundledMap(t *testing.T) {
	layout, err := LoadDefault()
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Width, layout.Width)
	assert.Equal(t, def.GroundY, layout.GroundY)
	assert.Equal(t, def.PlayerSpawn, layout.PlayerSpawn)
	assert.Equal(t, def.BossSpawn, layout.BossSpawn)
}

func TestLoadMissingArenaGroup(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.tmx": &fstest.MapFile{Data: []byte(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
</map>
`)},
	}

	_, err := Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrMissingLayer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "nope.tmx")
	assert.Error(t, err)
}
