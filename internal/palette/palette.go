// Package palette provides the Catppuccin Frappé color theme and the
// deterministic ANSI-256 to RGB mapping used by the terminal grid.
package palette

import "image/color"

// Theme holds one Catppuccin-style palette: backgrounds, text tiers,
// surfaces, overlays, and the 14 semantic accents.
type Theme struct {
	Base, Mantle, Crust           color.RGBA
	Text, Subtext1, Subtext0      color.RGBA
	Surface0, Surface1, Surface2  color.RGBA
	Overlay0, Overlay1, Overlay2  color.RGBA
	Blue, Lavender, Sapphire, Sky color.RGBA
	Teal, Green, Yellow, Peach    color.RGBA
	Maroon, Red, Mauve, Pink      color.RGBA
	Flamingo, Rosewater           color.RGBA
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Frappe is the Catppuccin Frappé theme.
// https://github.com/catppuccin/catppuccin
var Frappe = Theme{
	Base:   rgb(0x30, 0x34, 0x46),
	Mantle: rgb(0x29, 0x2c, 0x3c),
	Crust:  rgb(0x23, 0x26, 0x34),

	Text:     rgb(0xc6, 0xd0, 0xf5),
	Subtext1: rgb(0xb5, 0xbf, 0xe2),
	Subtext0: rgb(0xa5, 0xad, 0xce),

	Surface0: rgb(0x41, 0x45, 0x59),
	Surface1: rgb(0x51, 0x57, 0x6d),
	Surface2: rgb(0x62, 0x68, 0x80),

	Overlay0: rgb(0x73, 0x79, 0x94),
	Overlay1: rgb(0x83, 0x8b, 0xa7),
	Overlay2: rgb(0x94, 0x9c, 0xbb),

	Blue:     rgb(0x8c, 0xaa, 0xee),
	Lavender: rgb(0xba, 0xbb, 0xf1),
	Sapphire: rgb(0x85, 0xc1, 0xdc),
	Sky:      rgb(0x99, 0xd1, 0xdb),
	Teal:     rgb(0x81, 0xc8, 0xbe),
	Green:    rgb(0xa6, 0xd1, 0x89),
	Yellow:   rgb(0xe5, 0xc8, 0x90),
	Peach:    rgb(0xef, 0x9f, 0x76),

	Maroon: rgb(0xea, 0x99, 0x9c),
	Red:    rgb(0xe7, 0x82, 0x84),
	Mauve:  rgb(0xca, 0x9e, 0xe6),
	Pink:   rgb(0xf4, 0xb8, 0xe4),

	Flamingo:  rgb(0xee, 0xbe, 0xbe),
	Rosewater: rgb(0xf2, 0xd5, 0xcf),
}

// ansi16 holds the 16 standard ANSI slots 0-15. Bright variants (8-15) map
// to the same accent as their dark counterpart except where the xterm
// convention makes the bright slot genuinely different: 0 (black ->
// surface1) vs 8 (bright black -> surface2), and 7 (white -> subtext1) vs
// 15 (bright white -> text).
var ansi16 = [16]color.RGBA{
	Frappe.Surface1, // 0 black
	Frappe.Red,      // 1 red
	Frappe.Green,    // 2 green
	Frappe.Yellow,   // 3 yellow
	Frappe.Blue,     // 4 blue
	Frappe.Mauve,    // 5 magenta
	Frappe.Teal,     // 6 cyan
	Frappe.Subtext1, // 7 white
	Frappe.Surface2, // 8 bright black
	Frappe.Red,      // 9 bright red
	Frappe.Green,    // 10 bright green
	Frappe.Yellow,   // 11 bright yellow
	Frappe.Blue,     // 12 bright blue
	Frappe.Mauve,    // 13 bright magenta
	Frappe.Teal,     // 14 bright cyan
	Frappe.Text,     // 15 bright white
}

// ANSI256ToRGB converts a 0-255 ANSI color index to an RGB color. It is a
// total, pure function, independent of any global state:
//
//   - 0-15:    the themed 16-slot table above.
//   - 16-231:  the 6x6x6 color cube, computed by closed-form arithmetic.
//   - 232-255: a strictly increasing grayscale ramp.
func ANSI256ToRGB(i uint8) color.RGBA {
	switch {
	case i <= 15:
		return ansi16[i]
	case i <= 231:
		j := int(i) - 16
		r := uint8((j / 36) * 51)
		g := uint8(((j % 36) / 6) * 51)
		b := uint8((j % 6) * 51)
		return rgb(r, g, b)
	default:
		gray := uint8(8 + (int(i)-232)*10)
		return rgb(gray, gray, gray)
	}
}

// BoxDrawingColor is the fixed gray used to render box-drawing glyphs,
// independent of the current SGR foreground.
var BoxDrawingColor = rgb(128, 128, 128)

// Transparent marks the trailing half of a wide glyph; renderers must
// treat it as a zero-width continuation rather than a visible color.
var Transparent = color.RGBA{}
