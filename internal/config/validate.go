package config

import (
	"errors"
	"fmt"

	"github.com/gridtoys/gridtoys/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func checkFrameRate(fps int) error {
	if fps <= 0 {
		return invalid("frame_rate must be positive, got %d", fps)
	}
	return nil
}

func checkBoard(w, h int) error {
	if w <= 0 || h <= 0 || w > core.MaxDimension || h > core.MaxDimension {
		return invalid("board %dx%d outside 1..%d", w, h, core.MaxDimension)
	}
	return nil
}

func checkProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return invalid("%s must be within [0, 1], got %g", name, p)
	}
	return nil
}

// Validate checks the falling-sand configuration.
func (c ParticlesConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	if err := checkBoard(c.Width, c.Height); err != nil {
		return err
	}
	// Spawn slots occupy the first three rows of column 0.
	if c.Height < 3 {
		return invalid("particles board needs at least 3 rows, got %d", c.Height)
	}
	if err := checkProbability("spawn.rate", c.Spawn.Rate); err != nil {
		return err
	}
	if c.Spawn.RateStep <= 0 || c.Spawn.RateStep > 1 {
		return invalid("spawn.rate_step must be within (0, 1], got %g", c.Spawn.RateStep)
	}
	if c.Spawn.MinVelocity < 1 {
		return invalid("spawn.min_velocity must be at least 1, got %d", c.Spawn.MinVelocity)
	}
	if c.Spawn.MinVelocity > c.Spawn.MaxVelocity {
		return invalid("spawn.min_velocity %d above max_velocity %d", c.Spawn.MinVelocity, c.Spawn.MaxVelocity)
	}
	if vx := c.Spawn.Velocity.X; vx < c.Spawn.MinVelocity || vx > c.Spawn.MaxVelocity {
		return invalid("spawn.velocity.x %d outside [%d, %d]", vx, c.Spawn.MinVelocity, c.Spawn.MaxVelocity)
	}
	for name, p := range map[string]float64{
		"physics.gravity_bonus":   c.Physics.GravityBonus,
		"physics.friction_chance": c.Physics.FrictionChance,
		"physics.drift_chance":    c.Physics.DriftChance,
	} {
		if err := checkProbability(name, p); err != nil {
			return err
		}
	}
	if c.Physics.Bounce < 0 || c.Physics.Bounce > 1 {
		return invalid("physics.bounce must be within [0, 1], got %g", c.Physics.Bounce)
	}
	return nil
}

// Validate checks the Tetris configuration.
func (c TetrisConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	if err := checkBoard(c.Width, c.Height); err != nil {
		return err
	}
	if c.Width < 4 {
		return invalid("tetris board needs at least 4 columns, got %d", c.Width)
	}
	if c.FallDelay <= 0 {
		return invalid("fall_delay must be positive, got %d", c.FallDelay)
	}
	return nil
}

// Validate checks the Snake configuration.
func (c SnakeConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	if err := checkBoard(c.Width, c.Height); err != nil {
		return err
	}
	if c.Start.X < 0 || c.Start.Y < 0 || c.Start.X >= c.Width || c.Start.Y >= c.Height {
		return invalid("snake start %v outside the %dx%d board", c.Start, c.Width, c.Height)
	}
	return nil
}

// Validate checks the Game of Life configuration.
func (c ConwayConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	return checkBoard(c.Width, c.Height)
}

// Validate checks the racer configuration.
func (c RaceConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	if err := checkBoard(c.ViewSize, c.ViewSize); err != nil {
		return err
	}
	if c.MinimapSize <= 0 || c.MinimapSize > core.MaxDimension {
		return invalid("minimap_size must be within 1..%d, got %d", core.MaxDimension, c.MinimapSize)
	}
	if c.MoveEvery <= 0 {
		return invalid("move_every must be positive, got %d", c.MoveEvery)
	}
	return nil
}

// Validate checks the noise demo configuration.
func (c NoiseConfig) Validate() error {
	if err := checkFrameRate(c.FrameRate); err != nil {
		return err
	}
	return checkBoard(c.Width, c.Height)
}
