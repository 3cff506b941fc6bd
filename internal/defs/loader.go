// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadLevel reads a level layout from a JSON file. Missing floor size falls back to the default.
func LoadLevel(path string) (Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}

	var level Level
	if err := json.Unmarshal(file, &level); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}

	if level.FloorSize <= 0 {
		level.FloorSize = DefaultFloorSize
	}
	for i, b := range level.Boxes {
		if b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0 {
			return Level{}, fmt.Errorf("level box %d has non-positive size %+v", i, b.Size)
		}
		if b.Kind == "" {
			level.Boxes[i].Kind = BoxWall
		}
	}
	return level, nil
}
