package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  20,
			Height: 20,
		},
		Timing: TimingConfig{
			MovePeriod:   0.1,
			RestartDelay: 1.0,
		},
		Spawn: SpawnConfig{
			Origin: Point{X: 2, Y: 2},
			Food:   Point{X: 6, Y: 4},
		},
		Display: DisplayConfig{
			CellWidth: 2,
			TickRate:  60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
