package config

import (
	"image/color"
	"math"
)

// ChordColorAt picks the stroke colour for chord label of a circle with
// the given modulus.
func ChordColorAt(palette string, label, modulus int) color.RGBA {
	if palette != PaletteRainbow || modulus <= 0 {
		return ChordColor
	}
	hue := float64(label%modulus) / float64(modulus) * 360
	r, g, b := hsvToRgb(hue, 0.8, 0.95)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
