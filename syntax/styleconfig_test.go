package syntax

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadStyleSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.yaml")
	contents := `
styles:
  go.keyword:
    fg: yellow
    bold: true
  go.string:
    fg: green
    bg: black
    italic: true
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := LoadStyleSet(path)
	if err != nil {
		t.Fatalf("LoadStyleSet: %v", err)
	}

	kw := FindStyle(m, "go.keyword")
	if kw == nil {
		t.Fatal("go.keyword not found")
	}
	if kw.Foreground != "yellow" || !kw.Bold {
		t.Errorf("go.keyword = %+v", kw)
	}

	str := FindStyle(m, "go.string")
	if str == nil {
		t.Fatal("go.string not found")
	}
	if str.Foreground != "green" || str.Background != "black" || !str.Italic {
		t.Errorf("go.string = %+v", str)
	}

	if FindStyle(m, "go.nonexistent") != nil {
		t.Error("expected nil for a style never defined")
	}
}

func TestLoadStyleSetMissingFile(t *testing.T) {
	if _, err := LoadStyleSet(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
