package particles

import (
	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

const helpText = "Control spawn rate with 'W' and 'S'\nControl spawn velocity with 'A' and 'D'"

// Panel item indices.
const (
	panelStatus = iota
	panelHelp
)

// DefaultWalls is the built-in scene: a shelf under the spawner, a ledge
// with a lip in the middle and a funnel on the floor.
var DefaultWalls = []core.Point{
	{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3},
	{X: 6, Y: 3}, {X: 7, Y: 3}, {X: 8, Y: 3}, {X: 9, Y: 3}, {X: 10, Y: 3},
	{X: 12, Y: 13}, {X: 13, Y: 13}, {X: 14, Y: 13}, {X: 15, Y: 13}, {X: 16, Y: 13},
	{X: 17, Y: 13}, {X: 18, Y: 13}, {X: 18, Y: 12}, {X: 18, Y: 11},
	{X: 6, Y: 29}, {X: 6, Y: 28}, {X: 6, Y: 27}, {X: 6, Y: 26}, {X: 5, Y: 26}, {X: 5, Y: 25},
	{X: 7, Y: 29}, {X: 7, Y: 28}, {X: 7, Y: 27}, {X: 7, Y: 26}, {X: 8, Y: 26}, {X: 8, Y: 25},
}

// Package-level config path (like the other games).
var configPath string

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// Game wires the engine and spawner into a playable sandbox.
type Game struct {
	cfg      config.ParticlesConfig
	pinned   bool // cfg was supplied by the caller; skip loading
	engine   *Engine
	spawner  *Spawner
	graphics *core.Graphics
	frame    uint64
}

// New creates a particles game that loads its config on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultParticlesConfig()}
}

// NewWithConfig creates a particles game with a fixed config.
func NewWithConfig(cfg config.ParticlesConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

func init() {
	registry.Register("particles", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "particles" }

// Title returns the display name.
func (g *Game) Title() string { return "Particles" }

// FrameRate returns the native tick rate.
func (g *Game) FrameRate() int { return g.cfg.FrameRate }

// Reset rebuilds the scene and clears all particles.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.pinned {
		cfg, err := config.LoadParticles(configPath)
		if err != nil {
			cfg = config.DefaultParticlesConfig()
		}
		g.cfg = cfg
	}

	buf := core.NewBuffer(g.cfg.Width, g.cfg.Height)
	walls := g.cfg.Walls
	if len(walls) == 0 {
		walls = DefaultWalls
	}
	for _, p := range walls {
		buf.Set(p, Solid)
	}

	g.engine = NewEngine(buf, core.NewRandom(runtime.Seed), PhysicsFromConfig(g.cfg.Physics))
	g.spawner = NewSpawner(g.cfg.Spawn)
	g.graphics = core.NewGraphics("Particles", buf,
		core.TextItem(""),
		core.TextItem(helpText),
	)
	g.frame = 0
	g.updateStatus()
}

// Step advances the simulation by one tick: movement, forces, then spawning.
func (g *Game) Step() core.StepResult {
	g.frame++
	g.engine.Step()
	g.spawner.Spawn(g.engine)
	g.updateStatus()
	return core.StepResult{State: g.State()}
}

// HandleKey forwards spawn controls. Releases are ignored.
func (g *Game) HandleKey(ev core.KeyEvent) {
	if !ev.Pressed {
		return
	}
	if g.spawner.HandleKey(ev.Key) {
		g.updateStatus()
	}
}

func (g *Game) updateStatus() {
	g.graphics.SetText(panelStatus, g.spawner.Status(g.engine.Len()))
}

// Graphics returns the drawing surface.
func (g *Game) Graphics() *core.Graphics { return g.graphics }

// State reports the particle count as the score. The sandbox never ends.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{Score: g.engine.Len()}
}

// Engine exposes the simulation for inspection.
func (g *Game) Engine() *Engine { return g.engine }

// Spawner exposes the spawn controls for inspection.
func (g *Game) Spawner() *Spawner { return g.spawner }

// Check loads the config the next Reset would use.
func (g *Game) Check() error {
	_, err := config.LoadParticles(configPath)
	return err
}
