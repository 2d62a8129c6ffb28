package particles

import (
	"fmt"

	"github.com/gridtoys/gridtoys/internal/core"
)

// move resolves every particle's displacement against the grid, one unit
// step at a time, in list order. Earlier particles vacate cells before later
// ones look at them.
func (e *Engine) move() {
	for i := range e.particles {
		e.moveOne(&e.particles[i])
	}
}

func (e *Engine) moveOne(p *Particle) {
	start := p.Pos
	cur := start
	dst := start.Add(p.Vel)

	for cur != dst {
		dx, dy := dst.X-cur.X, dst.Y-cur.Y
		next := core.P(cur.X+core.Sign(dx), cur.Y+core.Sign(dy))
		canH := dx != 0 && e.buf.IsFree(core.P(next.X, cur.Y))
		canV := dy != 0 && e.buf.IsFree(core.P(cur.X, next.Y))
		adx, ady := core.Abs(dx), core.Abs(dy)

		switch {
		case adx > ady && canH:
			cur.X = next.X
		case ady > adx && canV:
			cur.Y = next.Y
		case e.buf.IsFree(next):
			cur = next
		case canH:
			cur.X = next.X
		case canV:
			cur.Y = next.Y
		default:
			e.collide(p, cur, dst)
			dst = cur
		}
	}

	if cur != start {
		e.buf.Set(start, core.Blank())
		e.buf.Set(cur, core.Filled(p.Color))
		p.Pos = cur
	}
}

// collide adjusts the velocity of a particle stopped at cur short of dst.
// A horizontal block bounces, a purely vertical one stops the fall.
func (e *Engine) collide(p *Particle, cur, dst core.Point) {
	switch {
	case cur.X != dst.X:
		p.Vel.X = int(float64(p.Vel.X) * -e.physics.Bounce)
	case cur.Y != dst.Y:
		p.Vel.Y = 0
	default:
		panic(fmt.Sprintf("particles: collision at destination %v", cur))
	}
}
