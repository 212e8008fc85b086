package command

import "sort"

// Aliases is a name -> command-line body table, the alias half of a
// CommandSet's lookup chain (original_source/src/command/run.c calls
// back into the editor's alias map via CommandRunner.lookup_alias).
type Aliases struct {
	values map[string]string
}

// NewAliases returns an empty alias table.
func NewAliases() *Aliases {
	return &Aliases{values: make(map[string]string)}
}

// Set defines or redefines name to expand to body.
func (a *Aliases) Set(name, body string) {
	a.values[name] = body
}

// Unset removes name, if defined.
func (a *Aliases) Unset(name string) {
	delete(a.values, name)
}

// Lookup implements the CommandSet.LookupAlias signature.
func (a *Aliases) Lookup(name string) (string, bool) {
	body, ok := a.values[name]
	return body, ok
}

// Names returns the defined alias names in sorted order, for listing
// (e.g. an `alias` command invoked with no arguments).
func (a *Aliases) Names() []string {
	names := make([]string, 0, len(a.values))
	for name := range a.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
