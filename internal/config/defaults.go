package config

import (
	_ "embed"

	"github.com/gridtoys/gridtoys/internal/core"
)

//go:embed defaults/particles.yaml
var defaultParticlesYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/conway.yaml
var defaultConwayYAML []byte

//go:embed defaults/race.yaml
var defaultRaceYAML []byte

//go:embed defaults/noise.yaml
var defaultNoiseYAML []byte

// DefaultParticlesConfig returns the default falling-sand configuration.
func DefaultParticlesConfig() ParticlesConfig {
	return ParticlesConfig{
		FrameRate: 5,
		Width:     30,
		Height:    30,
		Spawn: ParticlesSpawn{
			Rate:        0.1,
			RateStep:    0.05,
			Velocity:    core.P(1, 0),
			MinVelocity: 1,
			MaxVelocity: 10,
		},
		Physics: ParticlesPhysics{
			Bounce:         0.6,
			GravityBonus:   0.1,
			FrictionChance: 0.5,
			DriftChance:    0.2,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		FrameRate: 30,
		Width:     10,
		Height:    20,
		FallDelay: 15,
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		FrameRate: 10,
		Width:     30,
		Height:    20,
		Start:     core.P(1, 5),
	}
}

// DefaultConwayConfig returns the default Game of Life configuration.
// The pattern is a glider-like cluster next to a block.
func DefaultConwayConfig() ConwayConfig {
	return ConwayConfig{
		FrameRate: 10,
		Width:     20,
		Height:    20,
		Offset:    core.P(10, 0),
		Cells: []core.Point{
			{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3},
			{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 5, Y: 4}, {X: 6, Y: 4},
			{X: 8, Y: 1}, {X: 9, Y: 1}, {X: 8, Y: 2}, {X: 9, Y: 2},
		},
	}
}

// DefaultRaceConfig returns the default racer configuration.
func DefaultRaceConfig() RaceConfig {
	return RaceConfig{
		FrameRate:   30,
		ViewSize:    30,
		MinimapSize: 8,
		MoveEvery:   8,
	}
}

// DefaultNoiseConfig returns the default noise demo configuration.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		FrameRate: 15,
		Width:     10,
		Height:    5,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "particles":
		return defaultParticlesYAML
	case "tetris":
		return defaultTetrisYAML
	case "snake":
		return defaultSnakeYAML
	case "conway":
		return defaultConwayYAML
	case "race":
		return defaultRaceYAML
	case "noise":
		return defaultNoiseYAML
	default:
		return nil
	}
}

//go:embed defaults/race_map.txt
var defaultRaceMap []byte
