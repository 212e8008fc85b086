package rc

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dteedit/dte/command"
)

// Load runs path as an rc script against runner: one command per
// line, blank lines and lines starting with '#' skipped. Sets
// runner.Ebuf's ConfigFilename/ConfigLine for the duration so command
// implementations gated by AllowInRC (and any error message) report
// the offending file and line, then restores whatever was there
// before — Load is also used for a `-C` supplemental config file,
// which can be sourced in the middle of an interactive session.
func Load(runner *command.Runner, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening rc file %s: %w", path, err)
	}
	defer f.Close()

	prevFile, prevLine := runner.Ebuf.ConfigFilename, runner.Ebuf.ConfigLine
	runner.Ebuf.ConfigFilename = path
	defer func() {
		runner.Ebuf.ConfigFilename = prevFile
		runner.Ebuf.ConfigLine = prevLine
	}()

	scanner := bufio.NewScanner(f)
	var lineNo uint
	for scanner.Scan() {
		lineNo++
		runner.Ebuf.ConfigLine = lineNo
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		runner.HandleCommand(line)
	}
	return scanner.Err()
}
