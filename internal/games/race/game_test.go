package race

import (
	"errors"
	"testing"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
)

const testMap = "x.....\n" +
	".o...x\n" +
	"......"

func newTestGame(t *testing.T, text string, moveEvery int) *Game {
	t.Helper()
	w, err := ParseMap(text)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	cfg := config.DefaultRaceConfig()
	cfg.MoveEvery = moveEvery
	g := NewWithWorld(cfg, w)
	g.Reset(core.RuntimeConfig{})
	return g
}

func TestParseMap(t *testing.T) {
	w, err := ParseMap(testMap)
	if err != nil {
		t.Fatalf("ParseMap: %v", err)
	}
	if w.Car != core.P(1, 1) {
		t.Errorf("car = %v, want (1, 1)", w.Car)
	}
	if w.Bounds != core.P(5, 2) {
		t.Errorf("bounds = %v, want (5, 2)", w.Bounds)
	}
	if len(w.Obstacles) != 2 || !w.Obstacles[core.P(0, 0)] || !w.Obstacles[core.P(5, 1)] {
		t.Errorf("obstacles = %v", w.Obstacles)
	}
	if len(w.Grass) != 15 {
		t.Errorf("grass = %d cells, want 15", len(w.Grass))
	}
}

func TestParseMapErrors(t *testing.T) {
	if _, err := ParseMap("x..\n..."); !errors.Is(err, ErrNoCar) {
		t.Errorf("err = %v, want ErrNoCar", err)
	}
	if _, err := ParseMap("o..\n..o"); err == nil {
		t.Error("expected error for two cars")
	}
}

func TestBuiltInMap(t *testing.T) {
	text, err := config.LoadRaceMap("")
	if err != nil {
		t.Fatal(err)
	}
	w, err := ParseMap(text)
	if err != nil {
		t.Fatalf("built-in map: %v", err)
	}
	if w.Obstacles[w.Car] {
		t.Error("car starts on an obstacle")
	}
}

func TestMinimapSize(t *testing.T) {
	tests := []struct {
		bounds core.Point
		w, h   int
	}{
		{core.P(69, 39), 8, 4},
		{core.P(39, 69), 4, 8},
		{core.P(10, 10), 8, 8},
		{core.P(100, 1), 8, 1},
	}
	for _, tt := range tests {
		w := &World{Bounds: tt.bounds}
		if gw, gh := w.MinimapSize(8); gw != tt.w || gh != tt.h {
			t.Errorf("MinimapSize(%v) = %dx%d, want %dx%d", tt.bounds, gw, gh, tt.w, tt.h)
		}
	}
}

func TestInitialView(t *testing.T) {
	g := newTestGame(t, testMap, 8)
	buf := g.Graphics().Buf

	if w, h := buf.Dimensions(); w != 30 || h != 30 {
		t.Fatalf("view = %dx%d", w, h)
	}
	// Car at world (1,1) is drawn at (14,14); the cursor sits on it while
	// velocity is zero.
	if c := buf.CellAt(core.P(14, 14)); c != cursorCell {
		t.Errorf("car cell = %+v, want cursor on top", c)
	}
	if c := buf.CellAt(core.P(18, 14)); c != obstacleCell {
		t.Errorf("obstacle (5,1) drawn as %+v", c)
	}
	if c := buf.CellAt(core.P(13, 13)); c != obstacleCell {
		t.Errorf("obstacle (0,0) drawn as %+v", c)
	}
	if c := buf.CellAt(core.P(14, 13)); c != grassCell {
		t.Errorf("grass (1,0) drawn as %+v", c)
	}
	if g.Graphics().Panel[panelTime].Text != "Time: 0" {
		t.Errorf("time = %q", g.Graphics().Panel[panelTime].Text)
	}
}

func TestDriveAndCrash(t *testing.T) {
	g := newTestGame(t, testMap, 1)
	g.HandleKey(core.Press('d'))

	for i, want := range []core.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}} {
		g.Step()
		if g.Car() != want {
			t.Fatalf("move %d: car = %v, want %v", i+1, g.Car(), want)
		}
	}

	res := g.Step()
	if !res.State.GameOver {
		t.Fatal("expected crash into (5,1)")
	}
	if res.State.Score != 4 {
		t.Errorf("score = %d, want 4", res.State.Score)
	}
	if got := g.Graphics().Panel[panelHelp].Text; got != crashText {
		t.Errorf("panel = %q", got)
	}
	if c := g.Graphics().Buf.CellAt(core.P(14, 14)); c != crashCell {
		t.Errorf("car cell = %+v, want crash color", c)
	}

	g.Step()
	if g.State().Score != 4 || g.Car() != core.P(5, 1) {
		t.Errorf("state changed after crash: %+v car %v", g.State(), g.Car())
	}
}

func TestMoveTimer(t *testing.T) {
	g := newTestGame(t, testMap, 8)
	g.HandleKey(core.Press('d'))

	for range 7 {
		g.Step()
	}
	if g.Car() != core.P(1, 1) || g.State().Score != 0 {
		t.Fatalf("moved before the 8th frame: car %v", g.Car())
	}
	g.Step()
	if g.Car() != core.P(2, 1) || g.Graphics().Panel[panelTime].Text != "Time: 1" {
		t.Errorf("car %v time %q after 8 frames", g.Car(), g.Graphics().Panel[panelTime].Text)
	}
}

func TestDominantAxisPath(t *testing.T) {
	// Velocity (3,1) from (0,0) visits (1,0), (2,0), (2,1), (3,1).
	open := "o...\n....\n...."
	g := newTestGame(t, open, 1)
	g.velocity = core.P(3, 1)
	g.drive()
	if g.Car() != core.P(3, 1) {
		t.Errorf("car = %v, want (3, 1)", g.Car())
	}

	blocked := "o...\n..x.\n...."
	g = newTestGame(t, blocked, 1)
	g.velocity = core.P(3, 1)
	g.drive()
	if !g.crashed || g.Car() != core.P(2, 1) {
		t.Errorf("crashed=%v car=%v, want crash at (2, 1)", g.crashed, g.Car())
	}
}

func TestCursorClampAndBlink(t *testing.T) {
	g := newTestGame(t, "o.....\n......", 100)

	for range 3 {
		g.HandleKey(core.Press('w'))
		g.HandleKey(core.Press('d'))
	}
	if g.cursorDir != core.P(1, -1) {
		t.Fatalf("cursor dir = %v, want (1, -1)", g.cursorDir)
	}
	g.HandleKey(core.Press('s'))
	if g.cursorDir != core.P(1, 0) {
		t.Fatalf("cursor dir = %v, want (1, 0)", g.cursorDir)
	}

	target := core.P(15, 14)
	for range 5 {
		g.Step()
	}
	if c := g.Graphics().Buf.CellAt(target); c != cursorCell {
		t.Errorf("cursor hidden at frame 5: %+v", c)
	}
	g.Step()
	if c := g.Graphics().Buf.CellAt(target); c == cursorCell {
		t.Error("cursor visible at frame 6")
	}
}

func TestMinimapTracksCar(t *testing.T) {
	g := newTestGame(t, testMap, 1)
	mm := g.Graphics().PanelBuffer(panelMinimap)
	if w, h := mm.Dimensions(); w != 8 || h != 3 {
		t.Fatalf("minimap = %dx%d, want 8x3", w, h)
	}
	lit := 0
	for y := range 3 {
		for x := range 8 {
			if mm.CellAt(core.P(x, y)) == minimapCar {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("car not shown on the minimap")
	}
	if mm.CellAt(core.P(7, 2)) != minimapRest {
		t.Error("far corner lit")
	}
}
