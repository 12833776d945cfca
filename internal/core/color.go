package core

import "image/color"

// Color represents a palette entry shared by every shell.
// The terminal shell maps it to ANSI 256-color codes, the window shell to RGBA.
type Color uint8

// Palette used by the game's draw list.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDarkGray
	ColorBlack
)

// nrgba holds the window colours.
var nrgba = map[Color]color.NRGBA{
	ColorDefault:     {R: 255, G: 255, B: 255, A: 255},
	ColorWhite:       {R: 255, G: 255, B: 255, A: 255},
	ColorBrightWhite: {R: 245, G: 245, B: 245, A: 255},
	ColorGray:        {R: 130, G: 130, B: 130, A: 255},
	ColorDarkGray:    {R: 75, G: 75, B: 75, A: 75},
	ColorBlack:       {R: 0, G: 0, B: 0, A: 255},
}

// NRGBA returns the colour as non-premultiplied 8-bit RGBA. Unknown colours map to white.
func (c Color) NRGBA() color.NRGBA {
	if v, ok := nrgba[c]; ok {
		return v
	}
	return nrgba[ColorDefault]
}
