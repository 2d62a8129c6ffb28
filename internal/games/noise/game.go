// Package noise fills a small board one random cell at a time.
package noise

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

const finishedTitle = "The end."

// Game implements the noise demo.
type Game struct {
	cfg    config.NoiseConfig
	pinned bool
	rng    core.Random

	graphics *core.Graphics
	empty    []int // Row-major indices of blank cells
}

// New creates a noise demo that loads its config on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultNoiseConfig()}
}

// NewWithConfig creates a noise demo with a fixed config.
func NewWithConfig(cfg config.NoiseConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("noise", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "noise" }

// Title returns the display name.
func (g *Game) Title() string { return "Noise" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Reset blanks the board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadNoise(configPath)
		if err != nil {
			cfg = config.DefaultNoiseConfig()
		}
		g.cfg = cfg
	}
	g.resetWith(core.NewRandom(runtime.Seed))
}

func (g *Game) resetWith(rng core.Random) {
	g.rng = rng
	buf := core.NewBuffer(g.cfg.Width, g.cfg.Height)
	g.graphics = core.NewGraphics("Noise", buf)
	g.empty = make([]int, buf.Len())
	for i := range g.empty {
		g.empty[i] = i
	}
}

// Step fills one random empty cell. The title changes once the board is full.
func (g *Game) Step() core.StepResult {
	if len(g.empty) > 0 {
		i := g.rng.IntN(len(g.empty))
		g.graphics.Buf.SetIndex(g.empty[i], core.Filled(core.ColorWhite))

		last := len(g.empty) - 1
		g.empty[i] = g.empty[last]
		g.empty = g.empty[:last]

		if len(g.empty) == 0 {
			g.graphics.Title = finishedTitle
		}
	}
	return core.StepResult{State: g.State()}
}

// HandleKey ignores input.
func (g *Game) HandleKey(core.KeyEvent) {}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State reports filled cells as the score and ends once the board is full.
func (g *Game) State() core.GameState {
	if g.graphics == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.graphics.Buf.Len() - len(g.empty),
		GameOver: len(g.empty) == 0,
	}
}

// Check loads the config the next Reset would use.
func (g *Game) Check() error {
	_, err := config.LoadNoise(configPath)
	return err
}
