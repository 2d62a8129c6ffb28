package particles

import "github.com/gridtoys/gridtoys/internal/core"

// Diagonal search orders, chosen 50/50 when a particle comes to rest.
var diagonalOrders = [2][2]int{{-1, 1}, {1, -1}}

var sideways = []int{-1, 1}

// applyForces adjusts every particle's velocity after the movement pass.
func (e *Engine) applyForces() {
	for i := range e.particles {
		e.applyForcesOne(&e.particles[i])
	}
}

func (e *Engine) applyForcesOne(p *Particle) {
	x, y := p.Pos.X, p.Pos.Y
	free := func(dx, dy int) bool { return e.buf.IsFree(core.P(x+dx, y+dy)) }

	if free(0, 1) {
		// Gravity
		p.Vel.Y++
		if core.Chance(e.rng, e.physics.GravityBonus) {
			p.Vel.Y++
		}
	} else if p.Vel.X != 0 && core.Chance(e.rng, e.physics.FrictionChance) {
		p.Vel.X -= core.Sign(p.Vel.X)
	}

	if p.Vel != (core.Point{}) {
		return
	}

	// Slide down a diagonal
	for _, dx := range diagonalOrders[e.rng.IntN(2)] {
		if free(dx, 1) {
			p.Vel = core.P(dx, 1)
			return
		}
	}

	left, right := free(-1, 0), free(1, 0)
	switch {
	case left && !right:
		p.Vel.X = -1
	case right && !left:
		p.Vel.X = 1
	case e.onLiquid(p.Pos):
		if core.Chance(e.rng, e.physics.DriftChance) {
			dx := core.Pick(e.rng, sideways)
			if free(dx, 0) {
				p.Vel.X = dx
			}
		}
	}
}

// onLiquid reports whether the cell below pos holds another particle.
func (e *Engine) onLiquid(pos core.Point) bool {
	c, ok := e.buf.Get(core.P(pos.X, pos.Y+1))
	return ok && !c.IsBlank() && c != Solid
}
