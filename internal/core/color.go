package core

import "math"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// hueWheel pairs palette colors with their hue in degrees.
var hueWheel = [...]struct {
	hue   float64
	color Color
}{
	{0, ColorBrightRed},
	{30, ColorOrange},
	{60, ColorBrightYellow},
	{120, ColorBrightGreen},
	{180, ColorBrightCyan},
	{240, ColorBrightBlue},
	{300, ColorBrightMagenta},
}

// HueColor returns the palette color closest to a hue in degrees.
// Any hue is accepted; it is taken modulo 360.
func HueColor(hue float64) Color {
	h := math.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	best, bestDist := ColorDefault, 361.0
	for _, w := range hueWheel {
		d := math.Abs(h - w.hue)
		d = math.Min(d, 360-d)
		if d < bestDist {
			best, bestDist = w.color, d
		}
	}
	return best
}
