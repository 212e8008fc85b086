package command

import (
	"github.com/dteedit/dte/change"
	"github.com/dteedit/dte/errbuf"
)

// MaxRecursionDepth bounds alias-expansion/run_commands recursion,
// mirroring original_source/src/command/run.c's MAX_RECURSION_DEPTH.
const MaxRecursionDepth = 16

// RunnerFlag enumerates the bit flags original_source/src/command/run.c
// carries on CommandRunner.flags.
type RunnerFlag int

const (
	// AllowRecording lets MacroRecord fire for dispatched commands.
	AllowRecording RunnerFlag = 1 << iota
	// StopAtFirstError aborts a RunCommands batch on the first failure
	// instead of continuing and reporting the overall failure count.
	StopAtFirstError
)

// Runner dispatches tokenized command vectors against a CommandSet,
// resolving aliases and bracketing each command with a change-tree
// begin/end pair. Grounded directly on
// original_source/src/command/run.c's CommandRunner.
type Runner struct {
	Cmds  *CommandSet
	Ebuf  *errbuf.ErrorBuffer
	Flags RunnerFlag

	// Changes, if non-nil, is begin/end-bracketed around every
	// dispatched (non-alias) command, matching run_command's
	// begin_change(CHANGE_MERGE_NONE) / end_change() pair. A command
	// implementation overrides the merge tag itself by calling
	// Changes.BeginChange again with a different tag.
	Changes *change.Tree

	// Expander resolves variable/tilde references while re-tokenizing
	// alias bodies. May be nil (NopExpander semantics).
	Expander Expander

	recursionCount int
}

// RunCommand dispatches a single already-tokenized command (av[0] is
// the command or alias name, av[1:] its raw arguments). Returns false
// (having recorded an error in r.Ebuf) on any failure.
func (r *Runner) RunCommand(av []string) bool {
	if len(av) == 0 {
		return true
	}
	name := av[0]
	cmd := r.Cmds.Lookup(name)
	if cmd == nil {
		if r.Cmds.LookupAlias == nil {
			return r.Ebuf.ErrorMsgForCmd("", "No such command: %s", name)
		}
		body, ok := r.Cmds.LookupAlias(name)
		if !ok {
			return r.Ebuf.ErrorMsgForCmd("", "No such command or alias: %s", name)
		}
		commands, err := ParseCommands(body, r.expander())
		if err != nil {
			return r.Ebuf.ErrorMsgForCmd("", "Parsing alias %s: %s", name, err)
		}
		// Append the caller's own arguments onto the alias body's last
		// command, exactly as run.c's run_command appends av[1:] onto
		// the parsed alias array before re-running it.
		if len(commands) == 0 {
			commands = [][]string{nil}
		}
		last := len(commands) - 1
		commands[last] = append(append([]string{}, commands[last]...), av[1:]...)
		return r.RunCommands(commands)
	}

	if r.Ebuf.ConfigFilename != "" && !cmd.AllowInRC {
		return r.Ebuf.ErrorMsgForCmd("", "Command %s not allowed in config file", cmd.Name)
	}

	if r.Flags&AllowRecording != 0 && r.Cmds.MacroRecord != nil {
		r.Cmds.MacroRecord(cmd, av[1:])
	}

	if r.Changes != nil {
		r.Changes.BeginChange(change.TagNone)
	}

	args, argErr, flag := ParseArgs(cmd.Spec, av[1:])
	ok := false
	if argErr == ArgErrNone {
		r.Ebuf.CommandName = cmd.Name
		ok = cmd.Func(r.Ebuf, args)
	} else {
		r.Ebuf.ErrorMsgForCmd(cmd.Name, "%s", ArgParseErrorMessage(cmd.Name, cmd.Spec, len(av)-1, argErr, flag))
	}

	if r.Changes != nil {
		r.Changes.EndChange()
	}
	return ok
}

// RunCommands runs every non-empty command vector in commands in
// order, honoring StopAtFirstError and the recursion bound. Returns
// true iff none of the attempted commands failed.
func (r *Runner) RunCommands(commands [][]string) bool {
	if r.recursionCount > MaxRecursionDepth {
		return r.Ebuf.ErrorMsgForCmd("", "alias recursion limit reached")
	}
	r.recursionCount++
	defer func() { r.recursionCount-- }()

	nfailed := 0
	for _, av := range commands {
		if len(av) == 0 {
			continue
		}
		if !r.RunCommand(av) {
			nfailed++
			if r.Flags&StopAtFirstError != 0 {
				break
			}
		}
	}
	return nfailed == 0
}

// HandleCommand tokenizes line (which may contain multiple `;`/
// newline-separated commands) and runs it, recording a syntax-error
// message and returning false if tokenization fails. Callers should
// only invoke this at the top level (recursionCount == 0); nested
// dispatch goes through RunCommand/RunCommands directly, matching the
// original's split between handle_command and run_command(s).
func (r *Runner) HandleCommand(line string) bool {
	commands, err := ParseCommands(line, r.expander())
	if err != nil {
		r.Ebuf.ErrorMsgForCmd("", "Command syntax error: %s", err)
		return false
	}
	return r.RunCommands(commands)
}

func (r *Runner) expander() Expander {
	if r.Expander != nil {
		return r.Expander
	}
	return NopExpander{}
}
