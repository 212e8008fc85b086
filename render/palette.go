package render

import "github.com/dteedit/dte/term"

// xterm256 is the standard 256-color xterm palette: 16 ANSI colors,
// a 6x6x6 color cube, then a 24-step grayscale ramp. Terminal emulators
// agree on this table closely enough that it's safe to hardcode rather
// than query, the same assumption dte's own 256-color fallback makes.
var xterm256 = buildXterm256()

func buildXterm256() [256]term.RGB {
	var p [256]term.RGB
	ansi16 := []term.RGB{
		{R: 0, G: 0, B: 0}, {R: 205, G: 0, B: 0}, {R: 0, G: 205, B: 0}, {R: 205, G: 205, B: 0},
		{R: 0, G: 0, B: 238}, {R: 205, G: 0, B: 205}, {R: 0, G: 205, B: 205}, {R: 229, G: 229, B: 229},
		{R: 127, G: 127, B: 127}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 255, G: 255, B: 0},
		{R: 92, G: 92, B: 255}, {R: 255, G: 0, B: 255}, {R: 0, G: 255, B: 255}, {R: 255, G: 255, B: 255},
	}
	copy(p[:16], ansi16)

	steps := []uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = term.RGB{R: steps[r], G: steps[g], B: steps[b]}
				i++
			}
		}
	}

	for gray := 0; gray < 24; gray++ {
		v := uint8(8 + gray*10)
		p[232+gray] = term.RGB{R: v, G: v, B: v}
	}
	return p
}
