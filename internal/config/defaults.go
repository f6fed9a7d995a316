package config

import (
	_ "embed"
)

//go:embed defaults/flaptty.yaml
var defaultYAML []byte

// Default returns the hardcoded reference configuration. Used as the final
// fallback if the embedded YAML somehow fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  360,
			Height: 640,
		},
		Avatar: AvatarConfig{
			X:      45,
			StartY: 180,
			Width:  34,
			Height: 24,
		},
		Obstacles: ObstaclesConfig{
			Width:  64,
			Height: 512,
		},
		Physics: PhysicsConfig{
			Gravity:     1,
			Impulse:     -9,
			ScrollSpeed: 4,
		},
		Timing: TimingConfig{
			TickRate:     60,
			SpawnEveryMs: 1500,
		},
	}
}
