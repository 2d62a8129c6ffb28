//go:build ebiten

package window

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// keyBindings maps every forwarded ebiten key to the game rune it stands for.
var keyBindings = map[ebiten.Key]rune{
	ebiten.KeyW:          'w',
	ebiten.KeyA:          'a',
	ebiten.KeyS:          's',
	ebiten.KeyD:          'd',
	ebiten.KeyArrowUp:    'w',
	ebiten.KeyArrowLeft:  'a',
	ebiten.KeyArrowDown:  's',
	ebiten.KeyArrowRight: 'd',
	ebiten.KeySpace:      ' ',
}

// app adapts a registry.Game to the ebiten.Game interface.
type app struct {
	game   registry.Game
	title  string
	logger *log.Logger
}

// Update forwards key presses and releases, then advances the game one frame.
// Ebiten calls Update at the game's frame rate.
func (a *app) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for k, r := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			a.game.HandleKey(core.Press(r))
		}
		if inpututil.IsKeyJustReleased(k) {
			a.game.HandleKey(core.Release(r))
		}
	}

	a.game.Step()

	if t := a.game.Graphics().Title; t != a.title {
		a.title = t
		ebiten.SetWindowTitle(t)
	}
	return nil
}

// Draw renders the grid and side panel.
func (a *app) Draw(screen *ebiten.Image) {
	g := a.game.Graphics()
	screen.Fill(rgba(backgroundColor))

	w, h := g.Buf.Dimensions()
	vector.DrawFilledRect(screen, margin, margin, float32(w*cellSize), float32(h*cellSize), rgba(gridColor), false)
	drawBuffer(screen, g.Buf, core.P(margin, margin))

	if !g.HasPanel() {
		return
	}

	face := basicfont.Face7x13
	pos := panelOrigin(w)
	for _, item := range g.Panel {
		if item.IsBuffer() {
			drawBuffer(screen, item.Buf, pos)
			pos.Y += item.Buf.Height()*cellSize + itemGap
			continue
		}
		// text.Draw positions by baseline
		bounds := text.BoundString(face, item.Text)
		text.Draw(screen, item.Text, face, pos.X, pos.Y-bounds.Min.Y, rgba(textColor))
		pos.Y += bounds.Dy() + itemGap
	}
}

// Layout keeps a fixed logical size; the window is not resizable.
func (a *app) Layout(int, int) (int, int) {
	g := a.game.Graphics()
	return WindowSize(g.Buf.Width(), g.Buf.Height(), g.HasPanel())
}

func drawBuffer(dst *ebiten.Image, buf *core.Buffer, origin core.Point) {
	w, h := buf.Dimensions()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := buf.CellAt(core.P(x, y))
			if c.IsBlank() {
				continue
			}
			p := cellOrigin(origin, x, y)
			vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), cellSize, cellSize, rgba(c.Color), false)
		}
	}
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Run opens a window and plays game until it is closed or q is pressed.
// A positive rt.TickRate overrides the game's frame rate.
func Run(game registry.Game, rt core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	game.Reset(rt)

	a := &app{game: game, logger: logger}
	g := game.Graphics()
	a.title = g.Title

	rate := game.FrameRate()
	if rt.TickRate > 0 {
		rate = rt.TickRate
	}

	ebiten.SetWindowTitle(g.Title)
	ebiten.SetWindowSize(WindowSize(g.Buf.Width(), g.Buf.Height(), g.HasPanel()))
	ebiten.SetTPS(rate)

	logger.Debug("window opened", "game", game.ID(), "tps", rate)
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
