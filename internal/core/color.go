package core

import "fmt"

// Color is a 24-bit RGB color used for filled cells.
type Color struct {
	R, G, B uint8
}

// RGB is a convenience constructor for Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors shared by several games.
var (
	ColorWhite = RGB(255, 255, 255)
	ColorBlack = RGB(0, 0, 0)
	ColorGray  = RGB(150, 150, 150)
)

// Hex returns the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns a human-readable representation of the color.
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}
