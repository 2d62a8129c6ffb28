// Package particles implements a falling-sand simulation: particles move by
// integer raycasting through a grid, then gravity, friction and lateral
// spreading heuristics adjust their velocities.
package particles

import (
	"fmt"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
)

// SolidColor is the color of static wall cells. Particles treat cells of
// this color as ground rather than liquid.
var SolidColor = core.RGB(120, 70, 70)

// Solid is the cell painted for walls.
var Solid = core.Filled(SolidColor)

// Particle is one grain of sand. It occupies exactly the cell at Pos.
type Particle struct {
	Color core.Color
	Pos   core.Point
	Vel   core.Point
}

// Physics holds the tunable constants of the simulation.
type Physics struct {
	Bounce         float64 // Horizontal velocity factor applied (negated) on a blocked move
	GravityBonus   float64 // Chance of one extra unit of downward speed
	FrictionChance float64 // Chance horizontal speed decays by one on ground
	DriftChance    float64 // Chance of a sideways nudge when resting on liquid
}

// PhysicsFromConfig converts the YAML physics section.
func PhysicsFromConfig(c config.ParticlesPhysics) Physics {
	return Physics{
		Bounce:         c.Bounce,
		GravityBonus:   c.GravityBonus,
		FrictionChance: c.FrictionChance,
		DriftChance:    c.DriftChance,
	}
}

// DefaultPhysics returns the stock simulation constants.
func DefaultPhysics() Physics {
	return PhysicsFromConfig(config.DefaultParticlesConfig().Physics)
}

// Engine owns the particle list and mutates the shared grid.
// It is not safe for concurrent use.
type Engine struct {
	buf       *core.Buffer
	rng       core.Random
	physics   Physics
	particles []Particle
}

// NewEngine creates an engine drawing on buf. Cells already filled in buf
// act as static obstacles.
func NewEngine(buf *core.Buffer, rng core.Random, physics Physics) *Engine {
	return &Engine{buf: buf, rng: rng, physics: physics}
}

// Buffer returns the grid the engine draws on.
func (e *Engine) Buffer() *core.Buffer {
	return e.buf
}

// Particles returns the live particles in update order.
// The slice must not be modified.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Add places a particle on the grid. It reports false and does nothing if
// the target cell is out of bounds or occupied.
func (e *Engine) Add(p Particle) bool {
	if !e.buf.IsFree(p.Pos) {
		return false
	}
	e.buf.Set(p.Pos, core.Filled(p.Color))
	e.particles = append(e.particles, p)
	return true
}

// Step runs the movement pass and then the forces pass over every particle.
func (e *Engine) Step() {
	e.move()
	e.applyForces()
}

// CheckInvariants verifies that every particle sits on its own in-bounds
// cell painted with its color.
func (e *Engine) CheckInvariants() error {
	seen := make(map[core.Point]int, len(e.particles))
	for i, p := range e.particles {
		c, ok := e.buf.Get(p.Pos)
		if !ok {
			return fmt.Errorf("particles: particle %d out of bounds at %v", i, p.Pos)
		}
		if c != core.Filled(p.Color) {
			return fmt.Errorf("particles: particle %d at %v not painted (cell %+v)", i, p.Pos, c)
		}
		if j, dup := seen[p.Pos]; dup {
			return fmt.Errorf("particles: particles %d and %d share cell %v", j, i, p.Pos)
		}
		seen[p.Pos] = i
	}
	return nil
}
