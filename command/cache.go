package command

import "github.com/dteedit/dte/change"

// CachedCommand is a pre-parsed binding or alias body: if the body is
// a single command with static arguments (no variable expansion, no
// multiple commands, valid command and args), the cache stores both
// the resolved function and the parsed CommandArgs; execution then
// skips tokenization and argument parsing. Otherwise the cache stores
// only the raw string and the
// body is re-parsed on each invocation."
type CachedCommand struct {
	Source string

	// Resolved is non-nil only when Source compiled to a single static
	// invocation: a lone command (no `;`/newline), no `$`/`${` variable
	// reference, and a name+args that parsed cleanly against cmds.
	Resolved *Command
	Args     Args

	// dynamic is true when Source could not be statically resolved
	// (multi-command, contains variable references, unknown command,
	// or a flag/arity error) and must be re-tokenized and re-parsed on
	// every invocation instead.
	dynamic bool
}

// containsVarRef reports whether s has an (unescaped) `$` that could
// introduce variable expansion; used only as the static-cache
// eligibility test, not during real tokenization (which already
// handles `\$` correctly).
func containsVarRef(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '$' && (i == 0 || s[i-1] != '\\') {
			return true
		}
	}
	return false
}

// Compile attempts to statically resolve source against cmds, for use
// as a key-binding or alias body. A source containing `$` is marked
// dynamic without tokenizing; otherwise it tokenizes once (to
// validate the source and, on the static path, to obtain the argument
// vector); that tokenization result is only reused at Invoke time on
// the static path.
func Compile(source string, cmds *CommandSet) *CachedCommand {
	cc := &CachedCommand{Source: source}

	if containsVarRef(source) {
		cc.dynamic = true
		return cc
	}

	commands, err := ParseCommands(source, NopExpander{})
	if err != nil {
		cc.dynamic = true
		return cc
	}
	nonEmpty := 0
	var only []string
	for _, av := range commands {
		if len(av) == 0 {
			continue
		}
		nonEmpty++
		only = av
	}
	if nonEmpty != 1 {
		cc.dynamic = true
		return cc
	}

	cmd := cmds.Lookup(only[0])
	if cmd == nil {
		// Might be an alias, or might simply not exist; either way the
		// static path can't bind a *Command, so fall back to dynamic
		// (an unknown command is still re-validated, and re-reported,
		// on every Invoke, matching the runner's own error path).
		cc.dynamic = true
		return cc
	}

	args, argErr, _ := ParseArgs(cmd.Spec, only[1:])
	if argErr != ArgErrNone {
		cc.dynamic = true
		return cc
	}

	cc.Resolved = cmd
	cc.Args = args
	return cc
}

// Invoke runs the cached body via runner, skipping tokenization and
// argument parsing on the static path.
func (cc *CachedCommand) Invoke(runner *Runner) bool {
	if cc.dynamic || cc.Resolved == nil {
		return runner.HandleCommand(cc.Source)
	}

	cmd := cc.Resolved
	if runner.Ebuf.ConfigFilename != "" && !cmd.AllowInRC {
		return runner.Ebuf.ErrorMsgForCmd("", "Command %s not allowed in config file", cmd.Name)
	}
	if runner.Flags&AllowRecording != 0 && runner.Cmds.MacroRecord != nil {
		// Record the source-level arguments, not the parsed Args, so
		// the hook sees the same pre-parse vector RunCommand passes it.
		raw := cc.Args.All()
		if commands, err := ParseCommands(cc.Source, NopExpander{}); err == nil {
			for _, av := range commands {
				if len(av) > 0 {
					raw = av[1:]
				}
			}
		}
		runner.Cmds.MacroRecord(cmd, raw)
	}
	if runner.Changes != nil {
		runner.Changes.BeginChange(change.TagNone)
		defer runner.Changes.EndChange()
	}
	runner.Ebuf.CommandName = cmd.Name
	return cmd.Func(runner.Ebuf, cc.Args)
}
