// Package config provides YAML-based configuration loading for flaptty.
// Every tuning constant the simulation and the platform use lives here, with
// embedded defaults matching the reference behavior.
package config

import "flaptty/internal/sim"

// Config is the full game configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Avatar    AvatarConfig    `yaml:"avatar"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Timing    TimingConfig    `yaml:"timing"`
}

// BoardConfig defines the virtual board, in world units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AvatarConfig defines the avatar's fixed column, start height, and hitbox.
type AvatarConfig struct {
	X      int `yaml:"x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstaclesConfig defines obstacle dimensions.
type ObstaclesConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines per-tick physics constants.
type PhysicsConfig struct {
	Gravity     int `yaml:"gravity"`
	Impulse     int `yaml:"impulse"`
	ScrollSpeed int `yaml:"scroll_speed"`
}

// TimingConfig defines the two external scheduling rates: simulation ticks
// per second and the obstacle spawn interval.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`
	SpawnEveryMs int `yaml:"spawn_every_ms"`
}

// SimParams converts the configuration into simulation parameters.
func (c Config) SimParams() sim.Params {
	return sim.Params{
		BoardW:       c.Board.Width,
		BoardH:       c.Board.Height,
		AvatarX:      c.Avatar.X,
		AvatarStartY: c.Avatar.StartY,
		AvatarW:      c.Avatar.Width,
		AvatarH:      c.Avatar.Height,
		ObstacleW:    c.Obstacles.Width,
		ObstacleH:    c.Obstacles.Height,
		ScrollSpeed:  c.Physics.ScrollSpeed,
		Gravity:      c.Physics.Gravity,
		Impulse:      c.Physics.Impulse,
	}
}
