package particles

import (
	"fmt"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
)

// SpawnSlots are the cells new particles appear at.
var SpawnSlots = []core.Point{{X: 0, Y: 1}, {X: 0, Y: 0}, {X: 0, Y: 2}}

// Palette holds the colors a new particle is drawn from.
var Palette = []core.Color{
	core.RGB(100, 160, 220),
	core.RGB(120, 120, 250),
	core.RGB(150, 150, 250),
}

// Spawner injects particles with a user-adjustable rate and velocity.
type Spawner struct {
	Rate     float64
	Velocity core.Point

	rateStep       float64
	minVel, maxVel int
}

// NewSpawner creates a spawner from the YAML spawn section.
// Rate and the horizontal velocity are clamped to their key ranges.
func NewSpawner(c config.ParticlesSpawn) *Spawner {
	vel := c.Velocity
	vel.X = core.Clamp(vel.X, c.MinVelocity, c.MaxVelocity)
	return &Spawner{
		Rate:     core.ClampF(c.Rate, 0, 1),
		Velocity: vel,
		rateStep: c.RateStep,
		minVel:   c.MinVelocity,
		maxVel:   c.MaxVelocity,
	}
}

// Spawn rolls once against Rate and, on success, adds one particle at a
// random slot. An occupied slot makes the spawn a no-op.
func (s *Spawner) Spawn(e *Engine) bool {
	if !core.Chance(e.rng, s.Rate) {
		return false
	}
	pos := core.Pick(e.rng, SpawnSlots)
	color := core.Pick(e.rng, Palette)
	return e.Add(Particle{Color: color, Pos: pos, Vel: s.Velocity})
}

// HandleKey adjusts the spawn parameters: w/s change the rate and a/d the
// horizontal velocity. It reports whether the key was recognised.
func (s *Spawner) HandleKey(key rune) bool {
	switch key {
	case 'w':
		s.Rate = core.ClampF(s.Rate+s.rateStep, 0, 1)
	case 's':
		s.Rate = core.ClampF(s.Rate-s.rateStep, 0, 1)
	case 'a':
		s.Velocity.X = core.Clamp(s.Velocity.X-1, s.minVel, s.maxVel)
	case 'd':
		s.Velocity.X = core.Clamp(s.Velocity.X+1, s.minVel, s.maxVel)
	default:
		return false
	}
	return true
}

// Status formats the side panel summary.
func (s *Spawner) Status(count int) string {
	return fmt.Sprintf("Particles: %d\nSpawn rate: %.2f\nSpawn velocity: [%d, %d]",
		count, s.Rate, s.Velocity.X, s.Velocity.Y)
}
