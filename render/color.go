// Package render turns the editor's in-memory view of a buffer —
// highlighted spans, the status line, the tab bar, the cursor — into
// calls against a term.Screen. It owns exactly the diff: computing
// which cells actually changed between two frames and writing only
// those, the way peco's screenStatusBar built up PrintArgs batches
// and left the underlying termbox.Flush to do the real work. Color
// names come from syntax.Style as free-form strings ("red", "#1e90ff",
// "default"); this package is where those get resolved to term.RGB,
// with lucasb-eyer/go-colorful providing nearest-palette matching for
// terminals that can't do truecolor.
package render

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dteedit/dte/term"
)

// namedColors covers the portable ANSI 16-color names a syntax file
// author is expected to use, keyed the way dte's own color.c table
// does: lowercase, "light"-prefixed bright variants.
var namedColors = map[string]term.RGB{
	"black":        {R: 0, G: 0, B: 0},
	"red":          {R: 205, G: 0, B: 0},
	"green":        {R: 0, G: 205, B: 0},
	"yellow":       {R: 205, G: 205, B: 0},
	"blue":         {R: 0, G: 0, B: 238},
	"magenta":      {R: 205, G: 0, B: 205},
	"cyan":         {R: 0, G: 205, B: 205},
	"gray":         {R: 229, G: 229, B: 229},
	"grey":         {R: 229, G: 229, B: 229},
	"darkgray":     {R: 127, G: 127, B: 127},
	"darkgrey":     {R: 127, G: 127, B: 127},
	"lightred":     {R: 255, G: 0, B: 0},
	"lightgreen":   {R: 0, G: 255, B: 0},
	"lightyellow":  {R: 255, G: 255, B: 0},
	"lightblue":    {R: 92, G: 92, B: 255},
	"lightmagenta": {R: 255, G: 0, B: 255},
	"lightcyan":    {R: 0, G: 255, B: 255},
	"white":        {R: 255, G: 255, B: 255},
}

// ParseColor resolves one syntax.Style color field. "" , "default",
// and "keep" all mean "don't touch this channel" and report ok=false
// so the caller leaves the corresponding term.Attr.HasFg/HasBg unset.
// A "#rrggbb" form is parsed via go-colorful so malformed hex is
// rejected the same way an out-of-range ANSI index would be; a bare
// decimal is treated as an xterm-256 palette index.
func ParseColor(name string) (term.RGB, bool) {
	switch name {
	case "", "default", "keep":
		return term.RGB{}, false
	}
	if name[0] == '#' {
		c, err := colorful.Hex(name)
		if err != nil {
			return term.RGB{}, false
		}
		r, g, b := c.RGB255()
		return term.RGB{R: r, G: g, B: b}, true
	}
	if rgb, ok := namedColors[name]; ok {
		return rgb, true
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 0 && n < len(xterm256) {
		return xterm256[n], true
	}
	return term.RGB{}, false
}

// NearestPaletteColor maps an arbitrary truecolor RGB to the closest
// entry in palette by CIE76 Lab distance, for terminals that only
// advertise 256-color support. go-colorful's Lab conversion is what
// makes "closest" mean perceptually closest rather than closest by
// raw channel distance, which tends to pick visibly wrong colors for
// mid-tones.
func NearestPaletteColor(rgb term.RGB, palette []term.RGB) term.RGB {
	if len(palette) == 0 {
		return rgb
	}
	target := colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	best := palette[0]
	bestDist := target.DistanceLab(toColorful(best))
	for _, p := range palette[1:] {
		d := target.DistanceLab(toColorful(p))
		if d < bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

func toColorful(rgb term.RGB) colorful.Color {
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}
