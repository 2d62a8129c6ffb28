// Package race is a top-down racer. The car keeps its velocity between
// moves; the player nudges it through a blinking cursor that marks where the
// car is heading.
package race

import (
	"fmt"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

const (
	helpText  = "Use WASD to control the car.\nThe blinking dot indicates where you are heading."
	crashText = "Game Over:\nYou crashed!"
)

// Panel item indices.
const (
	panelTime = iota
	panelMinimapLabel
	panelMinimap
	panelHelp
)

var (
	carCell      = core.Filled(core.RGB(250, 250, 250))
	crashCell    = core.Filled(core.RGB(250, 50, 50))
	grassCell    = core.Filled(core.RGB(100, 150, 100))
	obstacleCell = core.Filled(core.RGB(100, 100, 150))
	cursorCell   = core.Filled(core.RGB(200, 250, 200))
	minimapCar   = core.Filled(core.RGB(255, 255, 255))
	minimapRest  = core.Filled(core.RGB(150, 150, 150))
)

// Cursor blink cycle: visible for the first cursorVisible frames of every
// cursorPeriod.
const (
	cursorPeriod  = 10
	cursorVisible = 6
)

// Package-level config path (like the other games).
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the racer.
type Game struct {
	cfg    config.RaceConfig
	pinned bool
	world  *World // Parsed from cfg.Map on Reset when nil

	graphics *core.Graphics
	screen   core.Point // Where the car is drawn in the view
	velocity core.Point
	crashed  bool
	timer    int
	elapsed  int

	cursorPos   core.Point
	cursorDir   core.Point
	cursorTimer int
}

// New creates a racer that loads its config and map on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultRaceConfig()}
}

// NewWithWorld creates a racer with a fixed config and track.
func NewWithWorld(cfg config.RaceConfig, w *World) *Game {
	return &Game{cfg: cfg, pinned: true, world: w}
}

func init() {
	registry.Register("race", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "race" }

// Title returns the display name.
func (g *Game) Title() string { return "Race" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Check loads the config and track the next Reset would use.
func (g *Game) Check() error {
	cfg, err := config.LoadRace(configPath)
	if err != nil {
		return err
	}
	_, err = loadWorld(cfg)
	return err
}

func loadWorld(cfg config.RaceConfig) (*World, error) {
	text, err := config.LoadRaceMap(cfg.Map)
	if err != nil {
		return nil, err
	}
	return ParseMap(text)
}

// Reset puts the car back on its start. A broken config or map falls back
// to the built-in track.
func (g *Game) Reset(core.RuntimeConfig) {
	world := g.world
	if !g.pinned {
		cfg, err := config.LoadRace(configPath)
		if err != nil {
			cfg = config.DefaultRaceConfig()
		}
		g.cfg = cfg
		if world, err = loadWorld(cfg); err != nil {
			world, err = loadWorld(config.DefaultRaceConfig())
			if err != nil {
				panic(err)
			}
		}
	}
	g.start(world)
}

func (g *Game) start(world *World) {
	g.world = &World{
		Bounds:    world.Bounds,
		Car:       world.Car,
		Obstacles: world.Obstacles,
		Grass:     world.Grass,
	}
	size := g.cfg.ViewSize
	g.screen = core.P(size/2-1, size/2-1)
	g.velocity = core.Point{}
	g.crashed = false
	g.timer = 0
	g.elapsed = 0
	g.cursorPos = g.screen
	g.cursorDir = core.Point{}
	g.cursorTimer = 0

	mw, mh := g.world.MinimapSize(g.cfg.MinimapSize)
	g.graphics = core.NewGraphics("Race", core.NewBuffer(size, size),
		core.TextItem(timeText(0)),
		core.TextItem("Minimap:"),
		core.BufferItem(core.NewBuffer(mw, mh)),
		core.TextItem(helpText),
	)
	g.redraw()
}

func timeText(t int) string {
	return fmt.Sprintf("Time: %d", t)
}

// Step advances one frame. Every MoveEvery frames the cursor nudge is
// added to the velocity and the car drives toward its new target.
func (g *Game) Step() core.StepResult {
	g.timer = (g.timer + 1) % g.cfg.MoveEvery

	if g.timer == 0 && !g.crashed {
		g.elapsed++
		g.graphics.SetText(panelTime, timeText(g.elapsed))

		g.velocity = g.velocity.Add(g.cursorDir)
		g.cursorPos = g.screen.Add(g.velocity)
		g.cursorDir = core.Point{}
		g.drive()
	}

	g.cursorTimer = (g.cursorTimer + 1) % cursorPeriod
	g.redraw()
	return core.StepResult{State: g.State()}
}

// drive moves the car toward car+velocity one step at a time along the
// axis with more distance left, stopping on the first obstacle.
func (g *Game) drive() {
	cur := g.world.Car
	dst := cur.Add(g.velocity)
	for cur != dst {
		dx, dy := dst.X-cur.X, dst.Y-cur.Y
		if core.Abs(dx) > core.Abs(dy) {
			cur.X += core.Sign(dx)
		} else {
			cur.Y += core.Sign(dy)
		}
		if g.world.Obstacles[cur] {
			g.crashed = true
			g.graphics.SetText(panelHelp, crashText)
			break
		}
	}
	g.world.Car = cur
}

// HandleKey nudges the cursor one step, at most one cell from the target.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if !ev.Pressed {
		return
	}
	switch ev.Key {
	case 'w':
		g.cursorDir.Y = max(-1, g.cursorDir.Y-1)
	case 'a':
		g.cursorDir.X = max(-1, g.cursorDir.X-1)
	case 's':
		g.cursorDir.Y = min(g.cursorDir.Y+1, 1)
	case 'd':
		g.cursorDir.X = min(g.cursorDir.X+1, 1)
	}
}

// toScreen maps a world position into the view centred on the car.
func (g *Game) toScreen(p core.Point) core.Point {
	return core.P(p.X-g.world.Car.X+g.screen.X, p.Y-g.world.Car.Y+g.screen.Y)
}

func (g *Game) redraw() {
	buf := g.graphics.Buf
	buf.Clear()

	for p := range g.world.Obstacles {
		buf.Set(g.toScreen(p), obstacleCell)
	}
	for _, p := range g.world.Grass {
		buf.Set(g.toScreen(p), grassCell)
	}

	if g.crashed {
		buf.Set(g.screen, crashCell)
	} else {
		buf.Set(g.screen, carCell)
	}

	g.drawMinimap()

	if !g.crashed && g.cursorTimer < cursorVisible {
		buf.Set(g.cursorPos.Add(g.cursorDir), cursorCell)
	}
}

// drawMinimap lights every minimap cell whose slice of the world contains
// the car. Slice edges are inclusive, so a car on a boundary lights both.
func (g *Game) drawMinimap() {
	mm := g.graphics.PanelBuffer(panelMinimap)
	w, h := mm.Dimensions()
	b, car := g.world.Bounds, g.world.Car
	for y := range h {
		for x := range w {
			in := car.X >= b.X*x/w && car.X <= b.X*(x+1)/w &&
				car.Y >= b.Y*y/h && car.Y <= b.Y*(y+1)/h
			if in {
				mm.Set(core.P(x, y), minimapCar)
			} else {
				mm.Set(core.P(x, y), minimapRest)
			}
		}
	}
}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State reports the elapsed time as the score and ends on a crash.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.elapsed, GameOver: g.crashed}
}

// Car returns the car's world position.
func (g *Game) Car() core.Point { return g.world.Car }
