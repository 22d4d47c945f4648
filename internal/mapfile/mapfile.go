// Package mapfile loads game maps from structured map files and fully
// validates them before they are allowed anywhere near a game session. A
// map file gives the starting room plus every room's name, description,
// exits, and items; JSON, TOML, and YAML encodings are all accepted and
// are selected by file extension.
package mapfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/roamgame/roam/internal/game"
)

// Map is a complete, validated game map. After Load returns one, nothing
// besides a running game session's item movement ever mutates it.
type Map struct {
	// Start is the name of the room the player begins in. It is always a
	// key of Rooms.
	Start string

	// Rooms is every room in the world, indexed by name.
	Rooms map[string]*game.Room
}

// Load reads the map file at path, decodes it according to its file
// extension (TOML for .toml, YAML for .yaml and .yml, JSON otherwise),
// and validates it. Either a fully valid Map or an error naming the first
// problem found is returned; a partially valid map is never handed out.
func Load(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, err
	}

	var doc interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Map{}, fmt.Errorf("decoding map file: %w", err)
	}

	return parseMap(doc)
}
