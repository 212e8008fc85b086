// Package rc locates and loads the startup command script: a script
// of ordinary editor commands run once at startup, not the declarative
// JSON/YAML settings document peco's own config.go read. Grounded on
// that file's XDG basedir search
// (LocateRcfile/ConfigLocator), generalized from peco's
// config.{json,yaml,yml} filenames to a single "rc" script file, and
// from peco's one-shot json.Decode to a line-at-a-time run through a
// command.Runner.
package rc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dteedit/dte/internal/util"
)

// Locator finds a candidate rc file within a directory.
type Locator interface {
	Locate(dir string) (string, error)
}

// LocatorFunc adapts a plain function to Locator.
type LocatorFunc func(dir string) (string, error)

func (f LocatorFunc) Locate(dir string) (string, error) { return f(dir) }

// DefaultLocator looks for a file named "rc" in the given directory,
// the dte equivalent of peco's configFilenames lookup.
var DefaultLocator = LocatorFunc(func(dir string) (string, error) {
	file := filepath.Join(dir, "rc")
	if _, err := os.Stat(file); err == nil {
		return file, nil
	}
	return "", fmt.Errorf("rc file not found in %s", dir)
})

// Locate searches, in order, $XDG_CONFIG_HOME/dte, each directory in
// $XDG_CONFIG_DIRS joined with "dte", and ~/.dte — the same basedir
// precedence LocateRcfile used for peco's own config directory.
func Locate(locator Locator) (string, error) {
	home, homeErr := util.Homedir()

	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		if file, err := locator.Locate(filepath.Join(dir, "dte")); err == nil {
			return file, nil
		}
	} else if homeErr == nil {
		if file, err := locator.Locate(filepath.Join(home, ".config", "dte")); err == nil {
			return file, nil
		}
	}

	if dirs := os.Getenv("XDG_CONFIG_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, string(filepath.ListSeparator)) {
			if file, err := locator.Locate(filepath.Join(dir, "dte")); err == nil {
				return file, nil
			}
		}
	}

	if homeErr == nil {
		if file, err := locator.Locate(filepath.Join(home, ".dte")); err == nil {
			return file, nil
		}
	}

	return "", errors.New("rc file not found")
}
