package render

import (
	"testing"

	"github.com/dteedit/dte/syntax"
	"github.com/dteedit/dte/term"
)

func TestParseColorHex(t *testing.T) {
	rgb, ok := ParseColor("#ff0000")
	if !ok || rgb.R != 255 || rgb.G != 0 || rgb.B != 0 {
		t.Fatalf("unexpected parse: %+v ok=%v", rgb, ok)
	}
}

func TestParseColorNamed(t *testing.T) {
	rgb, ok := ParseColor("blue")
	if !ok || rgb != namedColors["blue"] {
		t.Fatalf("unexpected parse: %+v ok=%v", rgb, ok)
	}
}

func TestParseColorDefaultIsUnset(t *testing.T) {
	if _, ok := ParseColor("default"); ok {
		t.Fatal("expected default to be unset")
	}
	if _, ok := ParseColor(""); ok {
		t.Fatal("expected empty string to be unset")
	}
}

func TestParseColorPaletteIndex(t *testing.T) {
	rgb, ok := ParseColor("196")
	if !ok || rgb != xterm256[196] {
		t.Fatalf("unexpected parse: %+v ok=%v", rgb, ok)
	}
}

func TestParseColorMalformedHexFails(t *testing.T) {
	if _, ok := ParseColor("#zzzzzz"); ok {
		t.Fatal("expected malformed hex to fail")
	}
}

func TestNearestPaletteColorPicksClosest(t *testing.T) {
	palette := []term.RGB{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}}
	got := NearestPaletteColor(term.RGB{R: 10, G: 10, B: 10}, palette)
	if got != palette[0] {
		t.Fatalf("expected nearest to black, got %+v", got)
	}
}

func TestBridgeNilStyleIsZeroAttr(t *testing.T) {
	if Bridge(nil) != (term.Attr{}) {
		t.Fatal("expected zero Attr for nil style")
	}
}

func TestBridgeResolvesColorsAndFlags(t *testing.T) {
	s := &syntax.Style{Foreground: "red", Background: "default", Bold: true}
	a := Bridge(s)
	if !a.HasFg || a.Foreground != namedColors["red"] {
		t.Fatalf("unexpected foreground: %+v", a)
	}
	if a.HasBg {
		t.Fatal("expected background to stay unset for \"default\"")
	}
	if !a.Bold {
		t.Fatal("expected bold to carry over")
	}
}

func TestGridSetGetRoundTrip(t *testing.T) {
	g := NewGrid(4, 2)
	g.Set(1, 1, Cell{Rune: 'x'})
	if g.Get(1, 1).Rune != 'x' {
		t.Fatal("expected cell write to round-trip")
	}
	if g.Get(99, 99).Rune != ' ' {
		t.Fatal("expected out-of-range read to return blank, not panic")
	}
}

func TestGridPutStringAdvancesByWidth(t *testing.T) {
	g := NewGrid(10, 1)
	end := g.PutString(0, 0, "a", term.Attr{})
	if end != 1 {
		t.Fatalf("expected ascii rune to advance by 1, got %d", end)
	}
}

func TestGridFillPaintsRange(t *testing.T) {
	g := NewGrid(5, 1)
	g.Fill(1, 0, 3, term.Attr{Bold: true})
	for x := 1; x < 4; x++ {
		if !g.Get(x, 0).Attr.Bold {
			t.Fatalf("expected cell %d to be filled", x)
		}
	}
	if g.Get(0, 0).Attr.Bold || g.Get(4, 0).Attr.Bold {
		t.Fatal("expected fill not to spill outside its range")
	}
}

type recordingScreen struct {
	term.Screen
	writes map[[2]int]rune
}

func newRecordingScreen() *recordingScreen {
	return &recordingScreen{writes: make(map[[2]int]rune)}
}

func (r *recordingScreen) SetCell(x, y int, ch rune, attr term.Attr) {
	r.writes[[2]int{x, y}] = ch
}

func (r *recordingScreen) Flush() error { return nil }

func TestRendererFlushRepaintsEverythingFirstTime(t *testing.T) {
	screen := newRecordingScreen()
	r := NewRenderer(screen)
	g := NewGrid(2, 1)
	g.Set(0, 0, Cell{Rune: 'a'})
	g.Set(1, 0, Cell{Rune: 'b'})
	if err := r.Flush(g); err != nil {
		t.Fatal(err)
	}
	if len(screen.writes) != 2 {
		t.Fatalf("expected 2 writes on first flush, got %d", len(screen.writes))
	}
}

func TestRendererFlushSkipsUnchangedCells(t *testing.T) {
	screen := newRecordingScreen()
	r := NewRenderer(screen)
	g1 := NewGrid(2, 1)
	g1.Set(0, 0, Cell{Rune: 'a'})
	g1.Set(1, 0, Cell{Rune: 'b'})
	if err := r.Flush(g1); err != nil {
		t.Fatal(err)
	}

	screen.writes = make(map[[2]int]rune)
	g2 := NewGrid(2, 1)
	g2.Set(0, 0, Cell{Rune: 'a'})
	g2.Set(1, 0, Cell{Rune: 'c'})
	if err := r.Flush(g2); err != nil {
		t.Fatal(err)
	}
	if len(screen.writes) != 1 {
		t.Fatalf("expected only the changed cell to be written, got %d writes", len(screen.writes))
	}
	if screen.writes[[2]int{1, 0}] != 'c' {
		t.Fatal("expected the changed cell to be column 1")
	}
}

func TestRendererInvalidateForcesRepaint(t *testing.T) {
	screen := newRecordingScreen()
	r := NewRenderer(screen)
	g := NewGrid(1, 1)
	g.Set(0, 0, Cell{Rune: 'a'})
	if err := r.Flush(g); err != nil {
		t.Fatal(err)
	}

	r.Invalidate()
	screen.writes = make(map[[2]int]rune)
	if err := r.Flush(g); err != nil {
		t.Fatal(err)
	}
	if len(screen.writes) != 1 {
		t.Fatal("expected Invalidate to force a repaint of unchanged cells")
	}
}

func TestPaintLineExpandsTabsAndAppliesSpanStyle(t *testing.T) {
	g := NewGrid(20, 1)
	style := &syntax.Style{Foreground: "red"}
	line := []byte("a\tb")
	spans := []syntax.Span{{Start: 2, End: 3, Style: style}}
	PaintLine(g, 0, 0, line, spans, syntax.NewStyleMap(), term.Attr{}, 4)

	if g.Get(0, 0).Rune != 'a' {
		t.Fatalf("expected 'a' at column 0, got %q", g.Get(0, 0).Rune)
	}
	if g.Get(4, 0).Rune != 'b' {
		t.Fatalf("expected tab to expand to the next 4-column stop, got rune at 4: %q", g.Get(4, 0).Rune)
	}
	if !g.Get(4, 0).Attr.HasFg {
		t.Fatal("expected the span's style to color the 'b' cell")
	}
}
