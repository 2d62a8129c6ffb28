package tetris

import (
	"testing"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/core/coretest"
)

// newScripted starts a game whose pieces come out in the given order.
func newScripted(shapes ...Shape) *Game {
	ints := make([]int, len(shapes))
	for i, s := range shapes {
		ints[i] = int(s)
	}
	g := NewWithConfig(config.DefaultTetrisConfig())
	g.resetWith(&coretest.Random{Ints: ints})
	return g
}

func press(g *Game, key rune) {
	g.HandleKey(core.Press(key))
	g.HandleKey(core.Release(key))
}

func fill(g *Game, pts ...core.Point) {
	for _, p := range pts {
		g.graphics.Buf.Set(p, core.Glyph(BlockGlyph, core.ColorGray))
	}
}

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		shape Shape
		want  [4]core.Point
	}{
		{ShapeI, [4]core.Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}}},
		{ShapeO, [4]core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}, {X: 5, Y: 1}}},
		{ShapeT, [4]core.Point{{X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1}}},
		{ShapeL, [4]core.Point{{X: 4, Y: 1}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 6, Y: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			if got := Spawn(tt.shape, 0).Blocks(); got != tt.want {
				t.Errorf("blocks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAllOrientationsHaveFourDistinctBlocks(t *testing.T) {
	for _, s := range Shapes {
		p := Spawn(s, 0)
		for range 4 {
			seen := map[core.Point]bool{}
			for _, b := range p.Blocks() {
				seen[b] = true
			}
			if len(seen) != 4 {
				t.Errorf("%s orientation %d has duplicate blocks", s, p.Orientation)
			}
			p = p.Rotated()
		}
		if p.Orientation != 0 {
			t.Errorf("%s: four rotations did not return to start", s)
		}
	}
}

func TestInitialBoardAndPreview(t *testing.T) {
	g := newScripted(ShapeO, ShapeT)

	want := "....##....\n....##...."
	if got := g.graphics.Buf.String()[:len(want)]; got != want {
		t.Errorf("top rows:\n%s\nwant:\n%s", got, want)
	}
	if g.graphics.Buf.FilledCount() != 4 {
		t.Errorf("filled = %d, want 4", g.graphics.Buf.FilledCount())
	}

	preview := g.graphics.PanelBuffer(panelNext).String()
	if preview != "....\n###.\n.#..\n...." {
		t.Errorf("preview:\n%s", preview)
	}
	if g.graphics.Panel[panelScore].Text != "Score: 0" {
		t.Errorf("score text = %q", g.graphics.Panel[panelScore].Text)
	}
}

func TestFallDelay(t *testing.T) {
	g := newScripted(ShapeO, ShapeT)

	for range 14 {
		g.Step()
	}
	if g.falling.Origin.Y != 0 {
		t.Fatalf("piece fell before fall delay: y=%d", g.falling.Origin.Y)
	}
	g.Step()
	if g.falling.Origin.Y != 1 {
		t.Errorf("y = %d after 15 frames, want 1", g.falling.Origin.Y)
	}
}

func TestHoldingDown(t *testing.T) {
	g := newScripted(ShapeO, ShapeT)

	g.HandleKey(core.Press('s'))
	if g.falling.Origin.Y != 1 {
		t.Fatalf("press did not drop immediately: y=%d", g.falling.Origin.Y)
	}
	// A repeated press while held does not run an extra frame.
	g.HandleKey(core.Press('s'))
	if g.falling.Origin.Y != 1 {
		t.Errorf("repeat press dropped again: y=%d", g.falling.Origin.Y)
	}
	g.Step()
	if g.falling.Origin.Y != 2 {
		t.Errorf("held step did not drop: y=%d", g.falling.Origin.Y)
	}

	g.HandleKey(core.Release('s'))
	g.Step()
	if g.falling.Origin.Y != 2 {
		t.Errorf("released step dropped: y=%d", g.falling.Origin.Y)
	}
}

func TestMoveBlockedByWall(t *testing.T) {
	g := newScripted(ShapeI, ShapeO)

	for range 5 {
		press(g, 'a')
	}
	if g.falling.Origin.X != 0 {
		t.Errorf("origin x = %d, want 0", g.falling.Origin.X)
	}
	if got := g.graphics.Buf.String()[:10]; got != "####......" {
		t.Errorf("top row = %q", got)
	}

	for range 10 {
		press(g, 'd')
	}
	if got := g.graphics.Buf.String()[:10]; got != "......####" {
		t.Errorf("top row = %q", got)
	}
}

func TestRotationBlocked(t *testing.T) {
	// A freshly spawned I piece would poke above the board when stood up.
	g := newScripted(ShapeI, ShapeO)
	press(g, 'w')
	if g.falling.Orientation != 0 {
		t.Errorf("rotated through the top edge")
	}

	// Once there is room it rotates.
	g.HandleKey(core.Press('s'))
	g.Step()
	g.HandleKey(core.Release('s'))
	press(g, 'w')
	if g.falling.Orientation != 1 {
		t.Fatalf("orientation = %d, want 1", g.falling.Orientation)
	}
	if g.graphics.Buf.FilledCount() != 4 {
		t.Errorf("filled = %d after rotation, want 4", g.graphics.Buf.FilledCount())
	}

	// Blocked by a filled cell in the turned shape.
	g = newScripted(ShapeT, ShapeO)
	press(g, 's')
	fill(g, core.P(5, 0))
	press(g, 'w')
	if g.falling.Orientation != 0 {
		t.Errorf("rotated into a filled cell")
	}
}

func TestRowClearCompactionAndScore(t *testing.T) {
	g := newScripted(ShapeO, ShapeT, ShapeI)

	for _, y := range []int{18, 19} {
		for x := range 10 {
			if x != 4 && x != 5 {
				fill(g, core.P(x, y))
			}
		}
	}
	fill(g, core.P(0, 17))

	g.HandleKey(core.Press('s'))
	for range 18 {
		g.Step()
	}

	if g.score != 2 {
		t.Fatalf("score = %d, want 2", g.score)
	}
	if g.FallDelay() != 14 {
		t.Errorf("fall delay = %d, want 14", g.FallDelay())
	}
	if g.graphics.Panel[panelScore].Text != "Score: 2" {
		t.Errorf("score text = %q", g.graphics.Panel[panelScore].Text)
	}

	rows := g.graphics.Buf.String()
	bottom := rows[len(rows)-21:]
	if bottom != "..........\n#........." {
		t.Errorf("bottom rows:\n%s", bottom)
	}
	if g.falling == nil || g.falling.Shape != ShapeT {
		t.Errorf("next piece not spawned: %+v", g.falling)
	}
}

func TestFallDelayFloor(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.FallDelay = 1
	g := NewWithConfig(cfg)
	g.resetWith(&coretest.Random{})
	g.score = 1

	// Complete the bottom row directly and clear it.
	fill(g, core.P(0, 19), core.P(1, 19), core.P(2, 19), core.P(3, 19), core.P(4, 19),
		core.P(5, 19), core.P(6, 19), core.P(7, 19), core.P(8, 19), core.P(9, 19))
	g.removeCompleteRows()

	if g.FallDelay() != 1 {
		t.Errorf("fall delay = %d, want 1", g.FallDelay())
	}
}

func TestGameOver(t *testing.T) {
	g := newScripted(ShapeO, ShapeO)
	fill(g, core.P(4, 2), core.P(5, 2))

	g.HandleKey(core.Press('s'))

	if !g.State().GameOver {
		t.Fatal("expected game over when the next piece cannot spawn")
	}
	if got := g.graphics.Panel[panelScore].Text; got != "Game over.\nScore: 0" {
		t.Errorf("text = %q", got)
	}

	before := g.graphics.Buf.String()
	press(g, 'a')
	g.Step()
	if g.graphics.Buf.String() != before {
		t.Error("board changed after game over")
	}
}

func TestRegistryDefaults(t *testing.T) {
	g := New()
	if g.ID() != "tetris" || g.Title() != "Tetris" || g.FrameRate() != 30 {
		t.Errorf("id=%s title=%s fps=%d", g.ID(), g.Title(), g.FrameRate())
	}
}
