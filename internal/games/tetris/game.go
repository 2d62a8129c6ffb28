// Package tetris implements falling-block Tetris on a buffer that doubles as
// the board: landed blocks stay painted, the falling piece is repainted on
// every move.
package tetris

import (
	"fmt"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// BlockGlyph is drawn by terminal front-ends for every block.
const BlockGlyph = '#'

const helpText = "Controls:\n--------\nA: move left\nD: move right\nW: rotate\nS: fall faster\n"

// Panel item indices.
const (
	panelScore = iota
	panelNextLabel
	panelNext
	panelHelp
)

// Package-level config path (like the other games).
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements Tetris.
type Game struct {
	cfg    config.TetrisConfig
	pinned bool
	rng    core.Random

	graphics    *core.Graphics
	falling     *Piece // nil once the game is over
	next        Piece
	holdingDown bool
	frame       int
	fallDelay   int
	score       int
	xShift      int
}

// New creates a Tetris game that loads its config on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

// NewWithConfig creates a Tetris game with a fixed config.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Reset clears the board and spawns the first piece.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadTetris(configPath)
		if err != nil {
			cfg = config.DefaultTetrisConfig()
		}
		g.cfg = cfg
	}
	g.resetWith(core.NewRandom(runtime.Seed))
}

func (g *Game) resetWith(rng core.Random) {
	g.rng = rng
	g.holdingDown = false
	g.frame = 0
	g.fallDelay = g.cfg.FallDelay
	g.score = 0
	g.xShift = (g.cfg.Width - 10) / 2

	g.graphics = core.NewGraphics("Tetris", core.NewBuffer(g.cfg.Width, g.cfg.Height),
		core.TextItem(scoreText(0)),
		core.TextItem("Next:"),
		core.BufferItem(core.NewBuffer(4, 4)),
		core.TextItem(helpText),
	)

	first := g.generate()
	g.paint(first)
	g.falling = &first
	g.next = g.generate()
	g.drawPreview()
}

func (g *Game) generate() Piece {
	return Spawn(core.Pick(g.rng, Shapes), g.xShift)
}

// Step advances one frame. The piece falls every fallDelay frames, or
// every frame while the drop key is held.
func (g *Game) Step() core.StepResult {
	g.runFrame()
	return core.StepResult{State: g.State()}
}

func (g *Game) runFrame() {
	if g.falling == nil {
		return
	}

	g.frame++
	if !g.holdingDown && g.frame%g.fallDelay != 0 {
		return
	}

	if g.tryMove(core.DirDown) {
		return
	}

	// Landed.
	g.removeCompleteRows()
	g.falling = nil

	next := g.next
	gameOver := g.collides(next)
	g.paint(next)
	if gameOver {
		g.graphics.SetText(panelScore, fmt.Sprintf("Game over.\nScore: %d", g.score))
		return
	}
	g.falling = &next
	g.next = g.generate()
	g.drawPreview()
}

// HandleKey moves, rotates or drops the falling piece.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if !ev.Pressed {
		if ev.Key == 's' {
			g.holdingDown = false
		}
		return
	}
	if g.falling == nil {
		return
	}

	switch ev.Key {
	case 'a':
		g.tryMove(core.DirLeft)
	case 'd':
		g.tryMove(core.DirRight)
	case 'w':
		g.rotate()
	case 's':
		wasHeld := g.holdingDown
		g.holdingDown = true
		if !wasHeld {
			g.runFrame()
		}
	}
}

func (g *Game) tryMove(d core.Direction) bool {
	moved := g.falling.Translated(d)
	if g.collides(moved) {
		return false
	}
	g.replace(moved)
	return true
}

func (g *Game) rotate() {
	rotated := g.falling.Rotated()
	if !g.collides(rotated) {
		g.replace(rotated)
	}
}

func (g *Game) replace(p Piece) {
	for _, b := range g.falling.Blocks() {
		g.graphics.Buf.Set(b, core.Blank())
	}
	g.paint(p)
	g.falling = &p
}

func (g *Game) paint(p Piece) {
	paintInto(g.graphics.Buf, p)
}

// collides reports whether any block of p is off the board or on a filled
// cell that is not part of the falling piece.
func (g *Game) collides(p Piece) bool {
	for _, b := range p.Blocks() {
		if g.falling != nil && g.falling.Covers(b) {
			continue
		}
		if !g.graphics.Buf.IsFree(b) {
			return true
		}
	}
	return false
}

// removeCompleteRows scans bottom-up. After a clear the same row is checked
// again, since the row above has dropped into it.
func (g *Game) removeCompleteRows() {
	buf := g.graphics.Buf
	w := buf.Width()
	for y := buf.Height() - 1; y >= 0; {
		if !g.rowComplete(y) {
			y--
			continue
		}

		g.score++
		g.graphics.SetText(panelScore, scoreText(g.score))
		if g.score%2 == 0 {
			g.fallDelay = max(1, g.fallDelay-1)
		}

		for sy := y; sy >= 0; sy-- {
			for x := range w {
				above, ok := buf.Get(core.P(x, sy-1))
				if !ok {
					above = core.Blank()
				}
				buf.Set(core.P(x, sy), above)
			}
		}
	}
}

func (g *Game) rowComplete(y int) bool {
	for x := range g.graphics.Buf.Width() {
		if g.graphics.Buf.IsFree(core.P(x, y)) {
			return false
		}
	}
	return true
}

func (g *Game) drawPreview() {
	preview := g.graphics.PanelBuffer(panelNext)
	preview.Clear()
	// Draw the piece relative to its box, ignoring the spawn offset.
	p := Piece{Shape: g.next.Shape, Orientation: g.next.Orientation}
	paintInto(preview, p)
}

func paintInto(buf *core.Buffer, p Piece) {
	for _, b := range p.Blocks() {
		buf.Set(b, core.Glyph(BlockGlyph, p.Shape.Color()))
	}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State returns the score and whether the board has topped out.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.graphics != nil && g.falling == nil,
	}
}

// FallDelay returns the current number of frames per automatic drop.
func (g *Game) FallDelay() int { return g.fallDelay }

// Check loads the config the next Reset would use.
func (g *Game) Check() error {
	_, err := config.LoadTetris(configPath)
	return err
}
