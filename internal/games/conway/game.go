// Package conway runs Conway's Game of Life on a bounded board. Each
// generation is written into a second buffer, then the two are swapped.
package conway

import (
	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// Package-level config path (like the other games).
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

var live = core.Filled(core.ColorWhite)

// Game implements the Game of Life.
type Game struct {
	cfg    config.ConwayConfig
	pinned bool

	graphics   *core.Graphics
	back       *core.Buffer // Next generation is written here
	generation int
}

// New creates a Game of Life that loads its config on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultConwayConfig()}
}

// NewWithConfig creates a Game of Life with a fixed config.
func NewWithConfig(cfg config.ConwayConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("conway", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "conway" }

// Title returns the display name.
func (g *Game) Title() string { return "Conway" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Reset seeds the board with the configured live cells. Cells shifted off
// the board are dropped.
func (g *Game) Reset(core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadConway(configPath)
		if err != nil {
			cfg = config.DefaultConwayConfig()
		}
		g.cfg = cfg
	}

	front := core.NewBuffer(g.cfg.Width, g.cfg.Height)
	for _, c := range g.cfg.Cells {
		front.Set(c.Add(g.cfg.Offset), live)
	}
	g.back = core.NewBuffer(g.cfg.Width, g.cfg.Height)
	g.graphics = core.NewGraphics("Conway", front, core.TextItem("Conway's game of life"))
	g.generation = 0
}

// Step computes the next generation. Cells beyond the border count as dead.
func (g *Game) Step() core.StepResult {
	front := g.graphics.Buf
	for y := range front.Height() {
		for x := range front.Width() {
			p := core.P(x, y)
			n := liveNeighbors(front, p)
			alive := !front.CellAt(p).IsBlank()
			if n == 3 || (alive && n == 2) {
				g.back.Set(p, live)
			} else {
				g.back.Set(p, core.Blank())
			}
		}
	}
	g.graphics.Buf, g.back = g.back, front
	g.generation++
	return core.StepResult{State: g.State()}
}

func liveNeighbors(buf *core.Buffer, p core.Point) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if c, ok := buf.Get(core.P(p.X+dx, p.Y+dy)); ok && !c.IsBlank() {
				n++
			}
		}
	}
	return n
}

// HandleKey ignores input.
func (g *Game) HandleKey(core.KeyEvent) {}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State reports the generation count as the score. The board never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.generation}
}

// Check loads the config the next Reset would use.
func (g *Game) Check() error {
	_, err := config.LoadConway(configPath)
	return err
}
