package tetris

import "github.com/gridtoys/gridtoys/internal/core"

// Shape is one of the seven tetrominoes.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// Shapes lists every tetromino in draw order.
var Shapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

func (s Shape) String() string {
	return [...]string{"I", "O", "T", "S", "Z", "J", "L"}[s]
}

// Color returns the shape's block color.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.RGB(235, 50, 50)
	case ShapeO:
		return core.RGB(50, 235, 50)
	case ShapeT:
		return core.RGB(80, 80, 235)
	case ShapeS:
		return core.RGB(170, 170, 50)
	case ShapeZ:
		return core.RGB(50, 170, 170)
	case ShapeJ:
		return core.RGB(170, 50, 170)
	default:
		return core.RGB(200, 100, 100)
	}
}

// spawnOrigin places the shape's visible blocks on the top rows of a
// ten-wide board.
func (s Shape) spawnOrigin() core.Point {
	switch s {
	case ShapeI:
		return core.P(3, -2)
	case ShapeO:
		return core.P(4, 0)
	default:
		return core.P(4, -1)
	}
}

// Block offsets per shape and orientation, relative to the piece origin
// inside a 4x4 box. I, S and Z repeat their first two orientations.
var blockTable = map[Shape][4][4][2]int{
	ShapeI: {
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeT: {
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{2, 1}, {1, 0}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	ShapeZ: {
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
	},
	ShapeJ: {
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {1, 0}, {2, 0}},
	},
	ShapeL: {
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
	},
}

// Piece is a tetromino placed on the board.
type Piece struct {
	Shape       Shape
	Origin      core.Point
	Orientation int // 0..3, clockwise quarter turns
}

// Spawn returns shape at its starting position. xShift moves it right
// for boards wider than ten columns.
func Spawn(shape Shape, xShift int) Piece {
	origin := shape.spawnOrigin()
	origin.X += xShift
	return Piece{Shape: shape, Origin: origin}
}

// Blocks returns the board cells the piece covers.
func (p Piece) Blocks() [4]core.Point {
	var out [4]core.Point
	for i, off := range blockTable[p.Shape][p.Orientation] {
		out[i] = core.P(p.Origin.X+off[0], p.Origin.Y+off[1])
	}
	return out
}

// Translated returns the piece moved one cell in direction d.
func (p Piece) Translated(d core.Direction) Piece {
	p.Origin = core.Translated(p.Origin, d)
	return p
}

// Rotated returns the piece turned a quarter. No wall kicks.
func (p Piece) Rotated() Piece {
	p.Orientation = (p.Orientation + 1) % 4
	return p
}

// Covers reports whether pos is one of the piece's blocks.
func (p Piece) Covers(pos core.Point) bool {
	for _, b := range p.Blocks() {
		if b == pos {
			return true
		}
	}
	return false
}
