package core

import "fmt"

// Color represents a foreground or background color for a screen cell.
// It holds either an ANSI 256-color index ("208") or a hex triplet
// ("#ff5a5a"); the platform degrades hex colors to what the terminal supports.
// The empty string is the terminal default.
type Color string

// Predefined colors for text and chrome.
const (
	ColorDefault     Color = ""
	ColorBlack       Color = "#000000"
	ColorWhite       Color = "#ffffff"
	ColorGray        Color = "245"
	ColorBrightWhite Color = "15"
)

// RGB builds a hex Color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// IsHex reports whether the color is a "#rrggbb" triplet.
func (c Color) IsHex() bool {
	return len(c) == 7 && c[0] == '#'
}
