// Package config provides YAML-based game configuration loading for the
// games of the collection.
package config

import "github.com/gridtoys/gridtoys/internal/core"

// ParticlesConfig contains all configuration for the falling-sand game.
type ParticlesConfig struct {
	FrameRate int              `yaml:"frame_rate"`
	Width     int              `yaml:"width"`
	Height    int              `yaml:"height"`
	Walls     []core.Point     `yaml:"walls"` // Empty means the built-in scene
	Spawn     ParticlesSpawn   `yaml:"spawn"`
	Physics   ParticlesPhysics `yaml:"physics"`
}

// ParticlesSpawn defines the spawner's initial parameters and limits.
type ParticlesSpawn struct {
	Rate        float64    `yaml:"rate"`
	RateStep    float64    `yaml:"rate_step"`
	Velocity    core.Point `yaml:"velocity"`
	MinVelocity int        `yaml:"min_velocity"`
	MaxVelocity int        `yaml:"max_velocity"`
}

// ParticlesPhysics holds the tunable "feel" constants of the simulation.
type ParticlesPhysics struct {
	Bounce         float64 `yaml:"bounce"`          // Horizontal velocity factor on a blocked move
	GravityBonus   float64 `yaml:"gravity_bonus"`   // Chance of an extra unit of downward speed
	FrictionChance float64 `yaml:"friction_chance"` // Chance horizontal speed decays on ground
	DriftChance    float64 `yaml:"drift_chance"`    // Chance of a sideways nudge on liquid
}

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	FrameRate int `yaml:"frame_rate"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	FallDelay int `yaml:"fall_delay"` // Frames per automatic one-row drop
}

// SnakeConfig contains all configuration for Snake.
type SnakeConfig struct {
	FrameRate int        `yaml:"frame_rate"`
	Width     int        `yaml:"width"`
	Height    int        `yaml:"height"`
	Start     core.Point `yaml:"start"`
}

// ConwayConfig contains all configuration for the Game of Life.
type ConwayConfig struct {
	FrameRate int          `yaml:"frame_rate"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Offset    core.Point   `yaml:"offset"`
	Cells     []core.Point `yaml:"cells"`
}

// RaceConfig contains all configuration for the racer.
type RaceConfig struct {
	FrameRate   int    `yaml:"frame_rate"`
	ViewSize    int    `yaml:"view_size"`
	MinimapSize int    `yaml:"minimap_size"`
	MoveEvery   int    `yaml:"move_every"` // Frames between car moves
	Map         string `yaml:"map"`        // Path to a map file; empty means built-in
}

// NoiseConfig contains all configuration for the noise demo.
type NoiseConfig struct {
	FrameRate int `yaml:"frame_rate"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}
