// Package coretest provides test doubles for core interfaces.
package coretest

// Random is a scripted core.Random. Each call pops the next queued value;
// once a queue is empty Float64 returns 0.99 (no chance fires) and IntN
// returns 0.
type Random struct {
	Floats []float64
	Ints   []int
}

// Float64 returns the next scripted float.
func (r *Random) Float64() float64 {
	if len(r.Floats) == 0 {
		return 0.99
	}
	f := r.Floats[0]
	r.Floats = r.Floats[1:]
	return f
}

// IntN returns the next scripted int modulo n.
func (r *Random) IntN(n int) int {
	if len(r.Ints) == 0 {
		return 0
	}
	i := r.Ints[0]
	r.Ints = r.Ints[1:]
	return i % n
}
