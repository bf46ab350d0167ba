// Package level describes the selectable mazes and when a run counts as won.
package level

import (
	"fmt"
	"path/filepath"
	"strings"

	"raycaster/internal/maze"
)

// Goal decides whether a player position completes the level.
type Goal interface {
	Reached(x, y float64) bool
	// Marker is the cell the decorative goal marker is drawn at.
	Marker() (x, y float64)
}

// ThresholdGoal is reached once the player is past both MinX and MinY.
type ThresholdGoal struct {
	MinX, MinY float64
}

// DefaultGoal is the exit region shared by the bundled mazes.
var DefaultGoal = ThresholdGoal{MinX: 18, MinY: 7}

// Reached implements Goal.
func (g ThresholdGoal) Reached(x, y float64) bool {
	return x > g.MinX && y > g.MinY
}

// Marker implements Goal.
func (g ThresholdGoal) Marker() (float64, float64) {
	return g.MinX, g.MinY + 1
}

// Level is one entry of the level menu.
type Level struct {
	Name string
	Path string
	Goal Goal
}

// Load reads the level's maze from disk.
func (l Level) Load() (*maze.Maze, error) {
	return maze.Load(l.Path)
}

// DefaultFiles are the bundled level files under the levels directory.
var DefaultFiles = []string{"maze.txt", "mazetky.txt"}

// FromList builds levels from a comma-separated list of file names. Relative
// names are resolved against dir. Every level gets DefaultGoal.
func FromList(dir, list string) ([]Level, error) {
	var levels []Level
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}
		levels = append(levels, Level{Name: filepath.Base(name), Path: path, Goal: DefaultGoal})
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no levels in %q", list)
	}
	return levels, nil
}
