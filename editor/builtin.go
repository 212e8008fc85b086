package editor

import (
	"fmt"
	"sort"
	"strings"
)

// BuiltinCommandNames and DumpBuiltinConfig back the `-B`/`-b` CLI
// flags. This editor has no embedded config-file assets to dump (no
// original_source/config/*.conf equivalent survived the transform,
// since syntax and binding setup here is built programmatically
// rather than parsed from files), so "builtin config" is taken to
// mean the always-present core command table buildCoreCommandTable
// builds: `-B` lists its names, `-b <name>` prints that command's
// argument spec the way a user would need to invoke it.
func BuiltinCommandNames() []string {
	table := buildCoreCommandTable(&State{})
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DumpBuiltinConfig reports a one-line usage description for name, or
// false if no such builtin command exists.
func DumpBuiltinConfig(name string) (string, bool) {
	cmd, ok := buildCoreCommandTable(&State{})[name]
	if !ok {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s", cmd.Name)
	if cmd.Spec.Flags != "" {
		fmt.Fprintf(&b, " [-%s]", cmd.Spec.Flags)
	}
	if cmd.Spec.MinArgs > 0 || cmd.Spec.MaxArgs > 0 {
		fmt.Fprintf(&b, " (min %d, max %d args)", cmd.Spec.MinArgs, cmd.Spec.MaxArgs)
	}
	if cmd.AllowInRC {
		fmt.Fprint(&b, " [allowed in rc]")
	}
	return b.String(), true
}
