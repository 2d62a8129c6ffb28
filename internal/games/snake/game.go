// Package snake implements the classic snake on a walled board.
package snake

import (
	"fmt"
	"slices"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

const (
	foodGlyph = 'O'
	bodyGlyph = 'O'
	helpText  = "Use WASD keys to control the snake!"
)

var (
	snakeColor = core.RGB(255, 255, 100)
	foodColor  = core.RGB(255, 100, 100)
)

const panelScore = 0

// Package-level config path (like the other games).
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Snake.
type Game struct {
	cfg    config.SnakeConfig
	pinned bool
	rng    core.Random

	graphics  *core.Graphics
	snake     []core.Point // Tail at index 0, head last
	direction core.Direction
	food      core.Point
	alive     bool
	score     int
	tick      uint64
}

// New creates a Snake game that loads its config on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

// NewWithConfig creates a Snake game with a fixed config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Reset places a one-cell snake heading right and drops the first food.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		g.cfg = cfg
	}
	g.resetWith(core.NewRandom(runtime.Seed))
}

func (g *Game) resetWith(rng core.Random) {
	g.rng = rng
	g.tick = 0
	g.score = 0
	g.alive = true
	g.direction = core.DirRight
	g.snake = []core.Point{g.cfg.Start}

	buf := core.NewBuffer(g.cfg.Width, g.cfg.Height)
	buf.Set(g.cfg.Start, core.Glyph(headGlyph(g.direction), snakeColor))
	g.graphics = core.NewGraphics("Snake", buf,
		core.TextItem(scoreText(0)),
		core.TextItem(helpText),
	)
	g.placeFood()
}

// headGlyph points the head in the direction of travel.
func headGlyph(d core.Direction) rune {
	switch d {
	case core.DirUp:
		return '^'
	case core.DirLeft:
		return '<'
	case core.DirDown:
		return 'V'
	default:
		return '>'
	}
}

func (g *Game) head() core.Point {
	return g.snake[len(g.snake)-1]
}

// placeFood drops food on a random cell not covered by the snake. A full
// board ends the game.
func (g *Game) placeFood() {
	var vacant []core.Point
	for x := range g.cfg.Width {
		for y := range g.cfg.Height {
			p := core.P(x, y)
			if !slices.Contains(g.snake, p) {
				vacant = append(vacant, p)
			}
		}
	}
	if len(vacant) == 0 {
		g.die()
		return
	}
	g.food = core.Pick(g.rng, vacant)
	g.graphics.Buf.Set(g.food, core.Glyph(foodGlyph, foodColor))
}

// Step moves the snake one cell.
func (g *Game) Step() core.StepResult {
	if !g.alive {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	buf := g.graphics.Buf
	head := g.head()
	buf.Set(head, core.Glyph(bodyGlyph, snakeColor))

	next := core.Translated(head, g.direction)
	if !buf.InBounds(next) {
		g.die()
		return core.StepResult{State: g.State()}
	}

	ate := next == g.food
	if ate {
		g.score++
		g.graphics.SetText(panelScore, scoreText(g.score))
	} else {
		buf.Set(g.snake[0], core.Blank())
		g.snake = g.snake[1:]
	}

	if slices.Contains(g.snake, next) {
		g.die()
		return core.StepResult{State: g.State()}
	}
	g.snake = append(g.snake, next)
	buf.Set(next, core.Glyph(headGlyph(g.direction), snakeColor))

	if ate {
		g.placeFood()
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) die() {
	g.alive = false
	g.graphics.SetText(panelScore, fmt.Sprintf("Game over.\nScore: %d", g.score))
}

// HandleKey steers with WASD. Turning back into the neck is ignored.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if !ev.Pressed {
		return
	}
	var d core.Direction
	switch ev.Key {
	case 'w':
		d = core.DirUp
	case 'a':
		d = core.DirLeft
	case 's':
		d = core.DirDown
	case 'd':
		d = core.DirRight
	default:
		return
	}
	if n := len(g.snake); n >= 2 && core.Translated(g.head(), d) == g.snake[n-2] {
		return
	}
	g.direction = d
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State returns the score and whether the snake has died.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.graphics != nil && !g.alive}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Score     int
	Length    int
	Head      core.Point
	Food      core.Point
	Direction core.Direction
	Alive     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Length:    len(g.snake),
		Head:      g.head(),
		Food:      g.food,
		Direction: g.direction,
		Alive:     g.alive,
	}
}

// Check loads the config the next Reset would use.
func (g *Game) Check() error {
	_, err := config.LoadSnake(configPath)
	return err
}
