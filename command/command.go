package command

import (
	"github.com/dteedit/dte/errbuf"
)

// Func is a command's implementation. It receives the error sink and
// the already flag/arg-parsed invocation, and reports success the
// same way ErrorBuffer.ErrorMsg/InfoMsg do (false on error).
type Func func(ebuf *errbuf.ErrorBuffer, args Args) bool

// Command is one entry of a CommandSet: its name, its flag/arity
// grammar, and its implementation. Grounded on
// original_source/src/command/run.c's `Command` (name, cmdopts,
// min_args, max_args, cmd) plus args.c's flags string.
type Command struct {
	Name string
	Spec Spec

	// AllowInRC mirrors CMDOPT_ALLOW_IN_RC: commands without this set
	// are rejected by HandleCommand while ErrorBuffer.ConfigFilename
	// is non-empty (i.e. while sourcing an rc file).
	AllowInRC bool

	Func Func
}

// CommandSet is the table a Runner dispatches against: a name lookup
// plus the two optional hooks run.c's CommandRunner carries alongside
// it (alias resolution and macro recording).
type CommandSet struct {
	// Lookup resolves a command name to its Command, or nil if name
	// isn't a known command (the caller then tries LookupAlias).
	Lookup func(name string) *Command

	// LookupAlias resolves name to an alias body, or ("", false) if
	// name is not an alias either. May be nil if aliases aren't
	// supported by this CommandSet.
	LookupAlias func(name string) (string, bool)

	// MacroRecord, if non-nil, is invoked for every successfully
	// dispatched (non-alias) command before its arguments are
	// flag-parsed, so a recorded macro preserves the user's literal
	// argument order. The runner calls it for every command; the macro
	// filter list (command, exec-open, exec-tag, no-op search) is
	// applied by the hook's implementation (Recorder.RecordCommand),
	// not by the runner.
	MacroRecord func(cmd *Command, rawArgs []string)
}
