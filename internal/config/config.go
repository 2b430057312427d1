// Package config provides YAML-based configuration loading and startup
// validation for the snake game.
package config

import (
	"errors"
	"fmt"
)

// initialLength is the number of cells in a freshly spawned snake.
const initialLength = 3

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Timing  TimingConfig  `yaml:"timing"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
}

// ArenaConfig defines the arena size in cells, including the wall ring.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation clock, in seconds.
type TimingConfig struct {
	MovePeriod   float64 `yaml:"move_period"`
	RestartDelay float64 `yaml:"restart_delay"`
}

// SpawnConfig defines where the snake and the first food appear on every (re)start.
type SpawnConfig struct {
	Origin Point `yaml:"origin"`
	Food   Point `yaml:"food"`
}

// DisplayConfig defines how the platform draws and drives the game.
type DisplayConfig struct {
	CellWidth int `yaml:"cell_width"`
	TickRate  int `yaml:"tick_rate"`
}

// Point is a cell coordinate in config files.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid snake config")

// Validate checks the configuration before a game is built from it.
func (c SnakeConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	w, h := c.Arena.Width, c.Arena.Height
	if w < initialLength+2 || h < 3 {
		fail("arena %dx%d is too small for a %d-cell snake", w, h, initialLength)
	} else if interior := (w - 2) * (h - 2); interior <= initialLength {
		fail("arena interior has %d cells, need more than %d", interior, initialLength)
	}

	if c.Timing.MovePeriod <= 0 {
		fail("move_period must be positive, got %v", c.Timing.MovePeriod)
	}
	if c.Timing.RestartDelay < 0 {
		fail("restart_delay must not be negative, got %v", c.Timing.RestartDelay)
	}

	o := c.Spawn.Origin
	for i := 0; i < initialLength; i++ {
		if !c.inInterior(Point{X: o.X + i, Y: o.Y}) {
			fail("initial snake at origin (%d, %d) leaves the arena interior", o.X, o.Y)
			break
		}
	}

	f := c.Spawn.Food
	if !c.inInterior(f) {
		fail("initial food (%d, %d) is outside the arena interior", f.X, f.Y)
	} else if f.Y == o.Y && f.X >= o.X && f.X < o.X+initialLength {
		fail("initial food (%d, %d) lies on the initial snake", f.X, f.Y)
	}

	if c.Display.CellWidth < 1 {
		fail("cell_width must be at least 1, got %d", c.Display.CellWidth)
	}
	if c.Display.TickRate < 1 {
		fail("tick_rate must be at least 1, got %d", c.Display.TickRate)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func (c SnakeConfig) inInterior(p Point) bool {
	return p.X > 0 && p.X < c.Arena.Width-1 && p.Y > 0 && p.Y < c.Arena.Height-1
}
