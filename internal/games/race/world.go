package race

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/gridtoys/gridtoys/internal/core"
)

// Map characters. Anything else is open road.
const (
	mapObstacle = 'x'
	mapCar      = 'o'
	mapGrass    = '.'
)

// ErrNoCar is returned for a map without a car start.
var ErrNoCar = errors.New("race: map has no car start 'o'")

// World is a parsed track. Bounds holds the largest column index and the
// last row index, the extent the minimap scales against.
type World struct {
	Bounds    core.Point
	Car       core.Point
	Obstacles map[core.Point]bool
	Grass     []core.Point
}

// ParseMap reads a track: 'x' obstacles, '.' grass and exactly one 'o'
// for the car start.
func ParseMap(text string) (*World, error) {
	w := &World{Obstacles: make(map[core.Point]bool)}
	found := false

	sc := bufio.NewScanner(strings.NewReader(text))
	y := 0
	for ; sc.Scan(); y++ {
		for x, ch := range []rune(sc.Text()) {
			p := core.P(x, y)
			switch ch {
			case mapObstacle:
				w.Obstacles[p] = true
			case mapGrass:
				w.Grass = append(w.Grass, p)
			case mapCar:
				if found {
					return nil, fmt.Errorf("race: second car start at %v (first at %v)", p, w.Car)
				}
				w.Car = p
				found = true
			}
			w.Bounds.X = max(w.Bounds.X, x)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("race: reading map: %w", err)
	}
	if !found {
		return nil, ErrNoCar
	}
	w.Bounds.Y = y - 1
	return w, nil
}

// MinimapSize fits the world's aspect ratio into a square of side limit.
func (w *World) MinimapSize(limit int) (int, int) {
	bw, bh := max(w.Bounds.X, 1), max(w.Bounds.Y, 1)
	if bw > bh {
		return limit, max(1, limit*bh/bw)
	}
	return max(1, limit*bw/bh), limit
}
