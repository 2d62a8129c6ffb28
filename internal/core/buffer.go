package core

import "fmt"

// MaxDimension is the largest width or height a Buffer may have.
const MaxDimension = 255

// Cell is one addressable grid unit: blank, or filled with a color.
// Glyph is an optional rune terminal front-ends draw instead of a solid block.
type Cell struct {
	Filled bool
	Color  Color
	Glyph  rune
}

// Blank returns an empty cell.
func Blank() Cell {
	return Cell{}
}

// Filled returns a cell filled with the given color.
func Filled(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// Glyph returns a filled cell that terminal front-ends draw as r.
func Glyph(r rune, c Color) Cell {
	return Cell{Filled: true, Color: c, Glyph: r}
}

// IsBlank reports whether the cell is empty.
func (c Cell) IsBlank() bool {
	return !c.Filled
}

// View is the read-only capability every front-end renders from.
type View interface {
	Dimensions() (w, h int)
	CellAt(p Point) Cell
}

// Buffer is a fixed-size 2D grid of cells stored in row-major order.
type Buffer struct {
	w, h  int
	cells []Cell
}

// NewBuffer allocates a blank buffer. Panics if a dimension is outside
// [1, MaxDimension].
func NewBuffer(w, h int) *Buffer {
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		panic(fmt.Sprintf("core: invalid buffer dimensions %dx%d", w, h))
	}
	return &Buffer{w: w, h: h, cells: make([]Cell, w*h)}
}

// Dimensions returns the buffer width and height.
func (b *Buffer) Dimensions() (w, h int) {
	return b.w, b.h
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int {
	return b.w
}

// Height returns the buffer height in cells.
func (b *Buffer) Height() int {
	return b.h
}

// Len returns the number of cells.
func (b *Buffer) Len() int {
	return len(b.cells)
}

// Bounds returns the rectangle covered by the buffer.
func (b *Buffer) Bounds() Rect {
	return NewRect(0, 0, b.w, b.h)
}

// InBounds reports whether p addresses a cell of the buffer.
func (b *Buffer) InBounds(p Point) bool {
	return b.Bounds().ContainsPoint(p)
}

// Get returns the cell at p. ok is false for out-of-bounds points.
func (b *Buffer) Get(p Point) (Cell, bool) {
	if !b.InBounds(p) {
		return Cell{}, false
	}
	return b.cells[p.Y*b.w+p.X], true
}

// CellAt returns the cell at p, or a blank cell when out of bounds.
func (b *Buffer) CellAt(p Point) Cell {
	c, _ := b.Get(p)
	return c
}

// IsFree reports whether p is in bounds and blank.
// Out-of-bounds points count as occupied.
func (b *Buffer) IsFree(p Point) bool {
	c, ok := b.Get(p)
	return ok && c.IsBlank()
}

// Set stores c at p. Out-of-bounds writes are silently ignored.
func (b *Buffer) Set(p Point, c Cell) {
	if !b.InBounds(p) {
		return
	}
	b.cells[p.Y*b.w+p.X] = c
}

// SetIndex stores c at row-major index i.
func (b *Buffer) SetIndex(i int, c Cell) {
	b.cells[i] = c
}

// Clear blanks every cell.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// FilledCount returns the number of non-blank cells.
func (b *Buffer) FilledCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Filled {
			n++
		}
	}
	return n
}

// String renders the buffer as text, '#' for filled cells (or their glyph)
// and '.' for blank ones. Used by tests and screenshots.
func (b *Buffer) String() string {
	out := make([]rune, 0, (b.w+1)*b.h)
	for y := 0; y < b.h; y++ {
		if y > 0 {
			out = append(out, '\n')
		}
		for x := 0; x < b.w; x++ {
			c := b.cells[y*b.w+x]
			switch {
			case !c.Filled:
				out = append(out, '.')
			case c.Glyph != 0:
				out = append(out, c.Glyph)
			default:
				out = append(out, '#')
			}
		}
	}
	return string(out)
}
