package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/gridtoys/gridtoys/internal/config"
	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/games/conway"
)

func blinker() *conway.Game {
	return conway.NewWithConfig(config.ConwayConfig{
		FrameRate: 10,
		Width:     3,
		Height:    3,
		Cells:     []core.Point{core.P(0, 1), core.P(1, 1), core.P(2, 1)},
	})
}

func TestTranscript(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\nq\n")

	if err := Run(blinker(), core.RuntimeConfig{}, in, &out, WithColorProfile(termenv.Ascii)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := strings.Join([]string{
		`Title: "Conway"`,
		"+---+",
		"|   |",
		"|###|",
		"|   |",
		"+---+",
		"> +---+",
		"| # |",
		"| # |",
		"| # |",
		"+---+",
		"> Good bye.",
		"",
	}, "\n")
	if got := out.String(); got != want {
		t.Errorf("transcript:\n%s\nwant:\n%s", got, want)
	}
}

func TestEndOfInputStops(t *testing.T) {
	var out bytes.Buffer
	if err := Run(blinker(), core.RuntimeConfig{}, strings.NewReader(""), &out, WithColorProfile(termenv.Ascii)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if strings.Contains(out.String(), "Good bye.") {
		t.Error("end of input should not print the farewell")
	}
}

// keyRecorder is a minimal game that remembers the keys it was sent.
type keyRecorder struct {
	graphics *core.Graphics
	keys     []core.KeyEvent
	steps    int
}

func (g *keyRecorder) ID() string                 { return "keys" }
func (g *keyRecorder) Title() string              { return "Keys" }
func (g *keyRecorder) FrameRate() int             { return 1 }
func (g *keyRecorder) Reset(core.RuntimeConfig)   { g.graphics = core.NewGraphics("Keys", core.NewBuffer(1, 1)) }
func (g *keyRecorder) HandleKey(ev core.KeyEvent) { g.keys = append(g.keys, ev) }
func (g *keyRecorder) Graphics() *core.Graphics   { return g.graphics }
func (g *keyRecorder) State() core.GameState      { return core.GameState{} }

func (g *keyRecorder) Step() core.StepResult {
	g.steps++
	return core.StepResult{}
}

func TestFirstCharacterIsPressed(t *testing.T) {
	game := &keyRecorder{}
	var out bytes.Buffer

	if err := Run(game, core.RuntimeConfig{}, strings.NewReader("Wd\n\nax\nquit\n"), &out, WithColorProfile(termenv.Ascii)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []core.KeyEvent{core.Press('w'), core.Press('a')}
	if len(game.keys) != len(want) {
		t.Fatalf("keys = %v, want %v", game.keys, want)
	}
	for i := range want {
		if game.keys[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, game.keys[i], want[i])
		}
	}
	// every line except the final q runs one frame
	if game.steps != 3 {
		t.Errorf("steps = %d, want 3", game.steps)
	}
}

func TestDumpUsesColorBackgrounds(t *testing.T) {
	buf := core.NewBuffer(1, 1)
	buf.Set(core.P(0, 0), core.Filled(core.RGB(0, 0, 255)))

	var out bytes.Buffer
	r := New(&keyRecorder{}, strings.NewReader(""), &out, WithColorProfile(termenv.TrueColor))
	if err := r.Dump(buf); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(out.String(), "48;2;0;0;255") {
		t.Errorf("expected blue background escape in %q", out.String())
	}
}
