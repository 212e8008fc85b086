package syntax

import (
	"sort"

	"github.com/pkg/errors"
)

// SyntaxSet is the registry of finalized syntaxes, find_syntax's
// HashMap counterpart.
type SyntaxSet struct {
	syntaxes map[string]*Syntax
}

// NewSyntaxSet returns an empty registry.
func NewSyntaxSet() *SyntaxSet {
	return &SyntaxSet{syntaxes: make(map[string]*Syntax)}
}

// FindAnySyntax looks up a syntax by name, sub-syntax or not.
func (s *SyntaxSet) FindAnySyntax(name string) *Syntax {
	return s.syntaxes[name]
}

// FindSyntax looks up a syntax by name, returning nil for
// sub-syntaxes (find_syntax's "never return something meant only to
// be merged" rule).
func (s *SyntaxSet) FindSyntax(name string) *Syntax {
	syn := s.syntaxes[name]
	if syn != nil && syn.IsSubsyntax() {
		return nil
	}
	return syn
}

// visit marks s and every state reachable from it (recursion bounded
// by the longest destination chain, per syntax.c's comment).
func visit(s *State) {
	if s == nil || s.Visited {
		return
	}
	s.Visited = true
	for _, c := range s.Conds {
		visit(c.A.Destination)
	}
	visit(s.DefaultAction.Destination)
}

// FinalizeSyntax runs syntax.c's finalize_syntax checks and, if they
// all pass, registers syn under its name. Errors are appended to
// errs (multiple problems are reported, matching the original's
// "don't stop at the first error_msg call" style); ok reports whether
// the syntax was actually registered.
func FinalizeSyntax(set *SyntaxSet, syn *Syntax, errs *[]error) bool {
	ok := true
	fail := func(format string, args ...interface{}) {
		*errs = append(*errs, errors.Errorf(format, args...))
		ok = false
	}

	if len(syn.States) == 0 {
		fail("empty syntax %q", syn.Name)
		return false
	}

	for name, st := range syn.States {
		if !st.Defined {
			fail("no such state %q", name)
		}
	}
	for name, list := range syn.StringLists {
		if !list.Defined {
			fail("no such list %q", name)
		}
	}
	if syn.Heredoc && !syn.IsSubsyntax() {
		fail("heredocend can be used only in subsyntaxes")
	}
	if set.FindAnySyntax(syn.Name) != nil {
		fail("syntax %q already exists", syn.Name)
	}
	if !ok {
		return false
	}

	// Unused states/lists are warnings only, collected but don't block
	// registration (syntax.c: "Unused states and lists cause warnings
	// only, to make loading WIP syntax files less annoying").
	visit(syn.StartState)
	for name, st := range syn.States {
		if !st.Visited && !st.Copied {
			*errs = append(*errs, errors.Errorf("state %q is unreachable", name))
		}
	}
	for name, list := range syn.StringLists {
		if !list.Used {
			*errs = append(*errs, errors.Errorf("list %q never used", name))
		}
	}

	set.syntaxes[syn.Name] = syn
	return true
}

// findDefaultStyle mirrors find_default_style.
func findDefaultStyle(syn *Syntax, name string) (string, bool) {
	def, ok := syn.DefaultStyles[name]
	return def, ok
}

func updateActionStyle(syn *Syntax, a *Action, styles *StyleMap) {
	name := a.effectiveEmitName()
	if style := FindStyle(styles, syn.Name+"."+name); style != nil {
		a.EmitStyle = style
		return
	}
	def, ok := findDefaultStyle(syn, name)
	if !ok {
		return
	}
	a.EmitStyle = FindStyle(styles, syn.Name+"."+def)
}

// UpdateStateStyles re-resolves every condition's (and the default
// action's) emit style in s against styles.
func UpdateStateStyles(syn *Syntax, s *State, styles *StyleMap) {
	for _, c := range s.Conds {
		updateActionStyle(syn, &c.A, styles)
	}
	updateActionStyle(syn, &s.DefaultAction, styles)
}

// UpdateSyntaxStyles re-resolves every state's styles in syn. A no-op
// for sub-syntaxes, which re-resolve as part of the syntax that
// merges them in.
func UpdateSyntaxStyles(syn *Syntax, styles *StyleMap) {
	if syn.IsSubsyntax() {
		return
	}
	for _, s := range syn.States {
		UpdateStateStyles(syn, s, styles)
	}
}

// UpdateAllSyntaxStyles re-resolves styles across every registered
// syntax, e.g. after the active color scheme changes.
func (set *SyntaxSet) UpdateAllSyntaxStyles(styles *StyleMap) {
	for _, syn := range set.syntaxes {
		UpdateSyntaxStyles(syn, styles)
	}
}

// FindUnusedSubsyntaxes reports (via the returned slice) every
// sub-syntax that was never merged into anything, warning at most
// once per syntax (find_unused_subsyntaxes).
func (set *SyntaxSet) FindUnusedSubsyntaxes() []string {
	var names []string
	for name, syn := range set.syntaxes {
		if !syn.Used && !syn.WarnedUnusedSubsyntax && syn.IsSubsyntax() {
			names = append(names, name)
			syn.WarnedUnusedSubsyntax = true
		}
	}
	sort.Strings(names)
	return names
}

// CollectSyntaxEmitNames returns every "<syntaxname>.<emitname>"
// string used by syn whose emit name has the given prefix, sorted and
// de-duplicated (collect_syntax_emit_names).
func CollectSyntaxEmitNames(syn *Syntax, prefix string) []string {
	set := make(map[string]bool)
	for _, s := range syn.States {
		if emit := s.DefaultAction.effectiveEmitName(); len(emit) >= len(prefix) && emit[:len(prefix)] == prefix {
			set[emit] = true
		}
		for _, c := range s.Conds {
			if emit := c.A.effectiveEmitName(); len(emit) >= len(prefix) && emit[:len(prefix)] == prefix {
				set[emit] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for emit := range set {
		out = append(out, syn.Name+"."+emit)
	}
	sort.Strings(out)
	return out
}
