package particles

// Snapshot captures the simulation state for determinism testing.
type Snapshot struct {
	Frame     uint64
	Particles []Particle
	Rate      float64
	VelocityX int
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Frame:     g.frame,
		Particles: append([]Particle(nil), g.engine.Particles()...),
		Rate:      g.spawner.Rate,
		VelocityX: g.spawner.Velocity.X,
	}
}
