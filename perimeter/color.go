package perimeter

import "image/color"

// EdgeDarkenFactor is the fraction of each channel removed to derive a
// shape's edge colour from its fill colour.
const EdgeDarkenFactor = 0.6

// Darken returns c with every colour channel scaled by (1 − EdgeDarkenFactor).
// Alpha is preserved.
func Darken(c color.RGBA) color.RGBA {
	k := 1 - EdgeDarkenFactor
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
