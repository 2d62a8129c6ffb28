package noise

import (
	"testing"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/core/coretest"
)

func TestFillsOneCellPerTick(t *testing.T) {
	g := NewWithConfig(config.DefaultNoiseConfig())
	g.Reset(core.RuntimeConfig{Seed: 5})
	buf := g.Graphics().Buf

	for i := 1; i < buf.Len(); i++ {
		g.Step()
		if n := buf.FilledCount(); n != i {
			t.Fatalf("tick %d: filled = %d", i, n)
		}
		if g.Graphics().Title != "Noise" {
			t.Fatalf("tick %d: title changed early to %q", i, g.Graphics().Title)
		}
	}

	res := g.Step()
	if buf.FilledCount() != buf.Len() {
		t.Errorf("board not full: %d of %d", buf.FilledCount(), buf.Len())
	}
	if g.Graphics().Title != finishedTitle {
		t.Errorf("title = %q, want %q", g.Graphics().Title, finishedTitle)
	}
	if !res.State.GameOver || res.State.Score != 50 {
		t.Errorf("state = %+v", res.State)
	}

	// Further ticks are no-ops.
	g.Step()
	if buf.FilledCount() != buf.Len() {
		t.Error("board changed after the end")
	}
}

func TestSwapRemoveOrder(t *testing.T) {
	g := NewWithConfig(config.NoiseConfig{FrameRate: 15, Width: 3, Height: 1})
	g.resetWith(&coretest.Random{Ints: []int{0, 0, 0}})

	g.Step() // fills 0, index 2 moves into slot 0
	g.Step() // fills 2
	if got := g.Graphics().Buf.String(); got != "#.#" {
		t.Errorf("board = %q, want %q", got, "#.#")
	}
}
