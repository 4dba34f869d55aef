package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed maps/*.tmx
var maps embed.FS

// DefaultMap is the path of the bundled arena inside Maps().
const DefaultMap = "maps/arena.tmx"

// ErrMissingLayer is returned when a map lacks the Arena object group.
var ErrMissingLayer = errors.New("arena object group not found")

const (
	arenaGroup       = "Arena"
	groundObject     = "Ground"
	playerSpawnGroup = "PlayerSpawn"
	bossSpawnGroup   = "BossSpawn"
)

// Maps exposes the bundled arena maps.
func Maps() fs.FS {
	return maps
}

// LoadDefault parses the bundled arena map.
func LoadDefault() (*Layout, error) {
	return Load(maps, DefaultMap)
}

// Load parses a TMX file and returns the arena layout. It takes an fs.FS so callers can
// pass the embedded maps or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	w := float64(levelMap.Width * levelMap.TileWidth)
	h := float64(levelMap.Height * levelMap.TileHeight)
	layout := WithSize(w, h)
	layout.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")

	foundArena := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case arenaGroup:
			foundArena = true
			for _, o := range og.Objects {
				if o.Name == groundObject {
					layout.GroundY = o.Y
				}
			}
		case playerSpawnGroup:
			if len(og.Objects) > 0 {
				layout.PlayerSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		case bossSpawnGroup:
			if len(og.Objects) > 0 {
				layout.BossSpawn = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	if !foundArena {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrMissingLayer)
	}
	if layout.GroundY <= 0 || layout.GroundY > h {
		return nil, fmt.Errorf("load TMX %s: ground line %.0f outside map height %.0f", tmxPath, layout.GroundY, h)
	}

	return &layout, nil
}
