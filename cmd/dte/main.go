// Command dte is the editor's terminal entrypoint: it parses the CLI
// options, builds an editor.State wired to a real tcell screen, runs
// any startup rc/config/tag/command options, and drives the event
// loop until the user quits. Grounded on peco-peco/cmd/peco/peco.go's
// flags.NewParser/CmdOptions shape, generalized from peco's single
// always-query CLI to this editor's larger option surface.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/dteedit/dte/editor"
	"github.com/dteedit/dte/rc"
	"github.com/dteedit/dte/tags"
	"github.com/dteedit/dte/term"
)

// version is set by an external tool at link time via
//
//	go build -ldflags "-X main.version=vX.Y.Z" ...
var version string

// Exit codes, named so the return value reads at each call site
// instead of a bare literal.
const (
	exitSuccess    = 0
	exitGenericErr = 1
	exitUsageErr   = 64
	exitDataErr    = 65
	exitConfigErr  = 66
)

type cmdOptions struct {
	Help         bool   `short:"h" long:"help" description:"show this help message and exit"`
	Version      bool   `short:"V" long:"version" description:"print the version and exit"`
	Command      string `short:"c" long:"command" value-name:"COMMAND" description:"run a command after loading"`
	Config       string `short:"C" long:"config" value-name:"FILE" description:"load a supplemental config file"`
	Tag          string `short:"t" long:"tag" value-name:"TAG" description:"jump to a tag after loading"`
	Rcfile       string `short:"r" long:"rc" value-name:"FILE" description:"alternate rc file path"`
	PrintKeys    bool   `short:"K" long:"print-keys" description:"pretty-print unhandled keypresses and exit"`
	DumpBuiltin  string `short:"b" long:"dump-builtin" value-name:"NAME" description:"dump a named builtin config to stdout and exit"`
	ListBuiltins bool   `short:"B" long:"list-builtins" description:"list builtin configs and exit"`
	NoRC         bool   `short:"R" long:"no-rc" description:"skip loading the user rc file"`
	NoHistory    bool   `short:"H" long:"no-history" description:"skip loading history"`
	CheckSyntax  string `short:"s" long:"check-syntax" value-name:"FILE" description:"check a syntax file and exit"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	opts := &cmdOptions{}
	parser := flags.NewParser(opts, flags.PrintErrors)
	parser.Usage = "[options] [file[:line[:col]] ...]"
	files, err := parser.ParseArgs(argv)
	if err != nil {
		return exitUsageErr
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		return exitSuccess
	}
	if opts.Version {
		fmt.Fprintf(os.Stdout, "dte %s\n", version)
		return exitSuccess
	}
	if opts.ListBuiltins {
		for _, name := range editor.BuiltinCommandNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return exitSuccess
	}
	if opts.DumpBuiltin != "" {
		dump, ok := editor.DumpBuiltinConfig(opts.DumpBuiltin)
		if !ok {
			fmt.Fprintf(os.Stderr, "dte: no such builtin config: %s\n", opts.DumpBuiltin)
			return exitUsageErr
		}
		fmt.Fprintln(os.Stdout, dump)
		return exitSuccess
	}
	if opts.CheckSyntax != "" {
		// No syntax-file text format is parsed by this editor (syntax
		// definitions are built programmatically via syntax.NewSyntax
		// and friends rather than loaded from a .syntax file on disk)
		// so there is nothing to check but that the path exists.
		if _, err := os.Stat(opts.CheckSyntax); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitDataErr
		}
		fmt.Fprintf(os.Stdout, "%s: no textual syntax format to validate (built-in only)\n", opts.CheckSyntax)
		return exitSuccess
	}

	screen, err := term.NewTcellScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitGenericErr
	}

	if opts.PrintKeys {
		return printKeys(screen)
	}

	s := editor.New(screen)

	if !opts.NoRC {
		if opts.Rcfile != "" {
			if err := rc.Load(s.Runner, opts.Rcfile); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return exitConfigErr
			}
		} else if path, err := rc.Locate(rc.DefaultLocator); err == nil {
			rc.Load(s.Runner, path)
		}
	}
	if opts.Config != "" {
		if err := rc.Load(s.Runner, opts.Config); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitConfigErr
		}
	}

	for _, f := range files {
		path, line, col := splitFileLineCol(f)
		if !s.Runner.RunCommand([]string{"open", path}) {
			fmt.Fprintln(os.Stderr, s.Ebuf.Message())
			return exitDataErr
		}
		if line > 0 {
			if ob := s.ActiveBuffer(); ob != nil {
				ob.View.GotoLine(line)
				if col > 0 {
					ob.View.GotoColumn(col)
				}
			}
		}
	}

	if opts.Tag != "" {
		if tagFile, err := tags.FindTagFile("."); err == nil {
			if tf, err := tags.Load(tagFile); err == nil {
				s.Tags = tf
			}
		}
		if !s.Runner.RunCommand([]string{"tag", opts.Tag}) {
			fmt.Fprintln(os.Stderr, s.Ebuf.Message())
			return exitDataErr
		}
	}

	if opts.Command != "" {
		if !s.Runner.HandleCommand(opts.Command) {
			fmt.Fprintln(os.Stderr, s.Ebuf.Message())
			return exitGenericErr
		}
	}

	exitCode, err := s.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitGenericErr
	}
	return exitCode
}

// splitFileLineCol splits a positional `file[:line[:col]]` argument. A
// colon inside the path itself (Windows drive letters, mainly) is
// avoided by only treating trailing all-digit segments as line/col,
// so "a:b:c" with non-numeric trailing segments is left as a literal
// filename.
func splitFileLineCol(arg string) (path string, line, col int) {
	parts := strings.Split(arg, ":")
	path = parts[0]
	rest := parts[1:]
	nums := make([]int, 0, 2)
	for len(rest) > 0 {
		n, err := strconv.Atoi(rest[len(rest)-1])
		if err != nil {
			break
		}
		nums = append([]int{n}, nums...)
		rest = rest[:len(rest)-1]
	}
	path = strings.Join(append([]string{path}, rest...), ":")
	switch len(nums) {
	case 1:
		line = nums[0]
	case 2:
		line, col = nums[0], nums[1]
	}
	return path, line, col
}

// printKeys drives the raw screen directly (bypassing editor.State
// entirely) and prints each decoded keypress until ctrl-c, the `-K`
// flag's debugging aid for working out what a terminal actually sends
// for a given key combination.
func printKeys(screen term.Screen) int {
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitGenericErr
	}
	defer screen.Fini()
	fmt.Println("press keys to see their decoded form; ctrl-c to quit")
	for {
		ev, ok := screen.PollEvent()
		if !ok {
			return exitSuccess
		}
		switch e := ev.(type) {
		case term.KeyEvent:
			kc := editor.TranslateKeyEvent(e)
			fmt.Println(kc.String())
			if e.Ctrl && e.Rune == 'c' {
				return exitSuccess
			}
		case term.PasteEvent:
			fmt.Printf("paste: %q\n", e.Text)
		case term.ResizeEvent:
			fmt.Printf("resize: %dx%d\n", e.Width, e.Height)
		}
	}
}
