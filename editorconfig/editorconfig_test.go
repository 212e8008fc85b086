package editorconfig

import (
	"strings"
	"testing"

	"github.com/dteedit/dte/buffer"
)

const sample = `
root = true

[*]
indent_style = space
indent_size = 4

[*.go]
indent_style = tab
tab_width = 8

[Makefile]
indent_style = tab

[*.md]
max_line_length = off
`

func TestParseSectionsAndRoot(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !cfg.Root {
		t.Fatal("expected root = true")
	}
	if len(cfg.Sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(cfg.Sections))
	}
}

func TestResolveCascadesLaterSectionsOverEarlier(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := cfg.Resolve("main.go")
	if got.IndentStyle != "tab" {
		t.Fatalf("expected *.go section to override [*]'s indent_style, got %q", got.IndentStyle)
	}
	if !got.IndentSizeSet || got.IndentSize != 4 {
		t.Fatalf("expected indent_size 4 inherited from [*], got %+v", got)
	}
	if !got.TabWidthSet || got.TabWidth != 8 {
		t.Fatalf("expected tab_width 8 from [*.go], got %+v", got)
	}
}

func TestResolveBasenameOnlyGlob(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := cfg.Resolve("sub/dir/Makefile")
	if got.IndentStyle != "tab" {
		t.Fatalf("expected basename-only glob [Makefile] to match nested path, got %+v", got)
	}
}

func TestApplyToOptionsOverlaysOnlySetFields(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	props := cfg.Resolve("main.go")

	opts := buffer.DefaultLocalOptions()
	props.ApplyToOptions(&opts)

	if opts.ExpandTab {
		t.Fatal("expected indent_style=tab to clear ExpandTab")
	}
	if opts.IndentWidth != 4 {
		t.Fatalf("expected IndentWidth 4, got %d", opts.IndentWidth)
	}
	if opts.TabWidth != 8 {
		t.Fatalf("expected TabWidth 8, got %d", opts.TabWidth)
	}
}

func TestMaxLineLengthOffLeavesTextWidthUnset(t *testing.T) {
	cfg, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	props := cfg.Resolve("README.md")
	if props.MaxLineLengthSet {
		t.Fatalf("expected 'off' to leave max_line_length unset, got %+v", props)
	}
}
