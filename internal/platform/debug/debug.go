// Package debug is a line-oriented front-end: it dumps the grid as text,
// reads one line per frame and forwards its first character as a key.
// It works on any reader and writer, which makes game sessions scriptable.
package debug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/gridtoys/gridtoys/internal/core"
	"github.com/gridtoys/gridtoys/internal/registry"
)

// REPL drives one game from line input.
type REPL struct {
	game     registry.Game
	in       *bufio.Reader
	out      io.Writer
	renderer *lipgloss.Renderer
	logger   *log.Logger
}

// Option configures a REPL.
type Option func(*REPL)

// WithColorProfile forces a color profile instead of detecting one from out.
func WithColorProfile(p termenv.Profile) Option {
	return func(r *REPL) {
		r.renderer.SetColorProfile(p)
	}
}

// WithLogger sets the logger used for frame diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *REPL) {
		r.logger = l
	}
}

// New creates a REPL for game reading from in and writing to out.
func New(game registry.Game, in io.Reader, out io.Writer, opts ...Option) *REPL {
	r := &REPL{
		game:     game,
		in:       bufio.NewReader(in),
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run resets the game and loops until "q" or end of input.
func (r *REPL) Run(rt core.RuntimeConfig) error {
	r.game.Reset(rt)
	if _, err := fmt.Fprintf(r.out, "Title: %q\n", r.game.Graphics().Title); err != nil {
		return fmt.Errorf("debug: writing title: %w", err)
	}

	for frame := 0; ; frame++ {
		if err := r.Dump(r.game.Graphics().Buf); err != nil {
			return err
		}
		if _, err := io.WriteString(r.out, "> "); err != nil {
			return fmt.Errorf("debug: writing prompt: %w", err)
		}

		line, err := r.in.ReadString('\n')
		switch {
		case errors.Is(err, io.EOF) && line == "":
			_, err = io.WriteString(r.out, "\n")
			return err
		case err != nil && !errors.Is(err, io.EOF):
			return fmt.Errorf("debug: reading input: %w", err)
		}

		if line = strings.TrimRight(line, "\r\n"); line != "" {
			ch := []rune(line)[0]
			if ch == 'q' {
				_, err := io.WriteString(r.out, "Good bye.\n")
				return err
			}
			r.game.HandleKey(core.Press(ch))
		}

		state := r.game.Step().State
		r.logger.Debug("frame", "n", frame, "score", state.Score, "over", state.GameOver)
	}
}

// Dump writes the grid inside a +---+ frame. Filled cells are drawn with
// their color as background; without color support they fall back to
// their glyph or '#'.
func (r *REPL) Dump(buf *core.Buffer) error {
	w, h := buf.Dimensions()
	border := "+" + strings.Repeat("-", w) + "+\n"
	plain := r.renderer.ColorProfile() == termenv.Ascii

	var sb strings.Builder
	sb.WriteString(border)
	for y := 0; y < h; y++ {
		sb.WriteByte('|')
		for x := 0; x < w; x++ {
			c := buf.CellAt(core.P(x, y))
			switch {
			case c.IsBlank():
				sb.WriteByte(' ')
			case plain && c.Glyph != 0:
				sb.WriteRune(c.Glyph)
			case plain:
				sb.WriteByte('#')
			default:
				sb.WriteString(r.renderer.NewStyle().Background(lipgloss.Color(c.Color.Hex())).Render(" "))
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return fmt.Errorf("debug: writing grid: %w", err)
	}
	return nil
}

// Run is a shorthand for New(game, in, out, opts...).Run(rt).
func Run(game registry.Game, rt core.RuntimeConfig, in io.Reader, out io.Writer, opts ...Option) error {
	return New(game, in, out, opts...).Run(rt)
}
