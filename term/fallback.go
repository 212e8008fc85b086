package term

import (
	"os"

	"github.com/pkg/errors"
	xterm "golang.org/x/term"
)

// FallbackSize returns the size in cells of the terminal on stdout
// without going through a tcell.Screen at all: no Init/Fini and no
// switch to raw mode.
func FallbackSize() (w, h int, err error) {
	w, h, err = xterm.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, "querying terminal size")
	}
	return w, h, nil
}

// IsTerminal reports whether stdout is attached to a terminal at all.
func IsTerminal() bool {
	return xterm.IsTerminal(int(os.Stdout.Fd()))
}
