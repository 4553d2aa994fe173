package leveldata

import (
	"github.com/samdwyer/icebound/internal/level"
)

// LevelDef is a level definition as stored in JSON: the geometry consumed
// by level.New plus presentation details.
type LevelDef struct {
	ID      string  `json:"id"`   // Unique identifier (e.g., "frostfire")
	Name    string  `json:"name"` // Display name
	Palette Palette `json:"palette"`
	level.Definition
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Default string     `json:"default"` // ID of the level to play when none is chosen
	Levels  []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() (LevelsFile, error) {
	return Load[LevelsFile]("levels.json")
}

// LoadLevelFile loads a single level definition from a JSON file on disk.
func LoadLevelFile(path string) (LevelDef, error) {
	return LoadFile[LevelDef](path)
}
