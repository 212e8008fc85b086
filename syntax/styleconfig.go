package syntax

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// styleSetFile is the on-disk shape of a style-set config: a flat map
// of fully-qualified style name ("syntaxname.emitname", matching
// StyleMap's lookup key) to its display attributes. Grounded on
// peco's config.go Style/Config pairing, which decodes its own
// fg/bg/flags style map the same way via goccy/go-yaml.NewDecoder;
// this is the structured counterpart to the line-oriented rc/bindings
// grammar, which stays a hand-rolled tokenizer since it long predates
// any config-file-format decision this design makes.
type styleSetFile struct {
	Styles map[string]styleEntry `yaml:"styles"`
}

type styleEntry struct {
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
	Bold       bool   `yaml:"bold"`
	Underline  bool   `yaml:"underline"`
	Italic     bool   `yaml:"italic"`
}

// LoadStyleSet reads a YAML style-set file and returns a populated
// StyleMap, keyed exactly as written (callers needing the
// "syntaxname.emitname" convention are responsible for naming entries
// that way in the file).
func LoadStyleSet(path string) (*StyleMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening style set %s: %w", path, err)
	}
	defer f.Close()

	var file styleSetFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding style set %s: %w", path, err)
	}

	m := NewStyleMap()
	for name, e := range file.Styles {
		m.Set(name, &Style{
			Name:       name,
			Foreground: e.Foreground,
			Background: e.Background,
			Bold:       e.Bold,
			Underline:  e.Underline,
			Italic:     e.Italic,
		})
	}
	return m, nil
}
