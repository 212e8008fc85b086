package editorconfig

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Load walks up from the directory containing absPath, reading and
// merging every .editorconfig file it finds until one declares itself
// root or the filesystem root is reached — the same search peco's
// config loader does for its own dotfiles, generalised to EditorConfig's
// multi-file cascade. Closer directories take precedence: a property a
// nearer file sets always wins over one set further up the tree.
func Load(absPath string) (Properties, error) {
	dir := filepath.Dir(absPath)
	var chain []*Config
	var dirs []string

	for {
		ecPath := filepath.Join(dir, ".editorconfig")
		f, err := os.Open(ecPath)
		if err == nil {
			cfg, perr := Parse(f)
			f.Close()
			if perr != nil {
				return Properties{}, errors.Wrapf(perr, "parsing %s", ecPath)
			}
			chain = append(chain, cfg)
			dirs = append(dirs, dir)
			if cfg.Root {
				break
			}
		} else if !os.IsNotExist(err) {
			return Properties{}, errors.Wrapf(err, "reading %s", ecPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// chain is ordered nearest-to-root (root or topmost last); fold
	// from the outside in so a nearer file's properties override a
	// further one's.
	var out Properties
	for i := len(chain) - 1; i >= 0; i-- {
		rel, err := filepath.Rel(dirs[i], absPath)
		if err != nil {
			rel = absPath
		}
		rel = filepath.ToSlash(rel)
		out.merge(chain[i].Resolve(rel))
	}
	return out, nil
}
