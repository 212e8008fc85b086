package syntax

import "fmt"

// SyntaxMerge describes one `@@@` merge directive: the sub-syntax to
// clone in, the state control returns to once the sub-syntax's
// states don't set their own destination, and the literal delimiter
// bytes a heredoc-begin condition captured (nil for a merge that
// doesn't involve a heredoc).
type SyntaxMerge struct {
	Subsyn      *Syntax
	ReturnState *State
	Delim       []byte
}

var mergeCounter int

// MergeSyntax deep-clones merge.Subsyn's states into syn under a
// fresh "mN-" name prefix, rewrites every action whose destination
// lands inside the sub-syntax to point at the renamed copy, defaults
// every unset destination to the return state, and substitutes
// merge.Delim into any heredocend condition. Returns the (renamed)
// entry state to transition to. Grounded line-for-line on
// merge_syntax/fix_conditions/fix_action.
func MergeSyntax(syn *Syntax, merge *SyntaxMerge, styles *StyleMap) *State {
	prefix := fmt.Sprintf("m%d-", mergeCounter)
	mergeCounter++

	// Pass 1: clone every state under the prefixed name, deep-copying
	// its condition list so fix-ups below don't mutate the original
	// sub-syntax.
	renamed := make(map[*State]*State, len(merge.Subsyn.States))
	for _, s := range merge.Subsyn.States {
		clone := &State{
			Name:          prefix + s.Name,
			DefaultAction: s.DefaultAction,
			Defined:       s.Defined,
			EmitName:      s.EmitName,
			Heredoc:       s.Heredoc,
			Visited:       false, // unvisited so a return-only state still gets visited
			Copied:        true,  // suppress unreachable-state warnings for merged states
		}
		clone.Conds = make([]*Condition, len(s.Conds))
		for i, c := range s.Conds {
			cc := *c
			clone.Conds[i] = &cc
		}
		renamed[s] = clone
		syn.States[clone.Name] = clone
	}

	fixAction := func(a *Action) {
		if a.Destination != nil {
			if dst, ok := renamed[a.Destination]; ok {
				a.Destination = dst
			}
		}
	}

	// Pass 2: fix up destinations and heredoc-end payloads now that
	// every clone exists.
	for _, clone := range renamed {
		for i, c := range clone.Conds {
			fixAction(&c.A)
			if c.A.Destination == nil && condTypeHasDestination(c.Kind) {
				c.A.Destination = merge.ReturnState
			}
			if c.Kind == CondHeredocEnd {
				c.A.Destination = merge.ReturnState
			}
			if merge.Delim != nil && c.Kind == CondHeredocEnd {
				clone.Conds[i].HeredocDelim = append([]byte(nil), merge.Delim...)
			}
		}
		fixAction(&clone.DefaultAction)
		if clone.DefaultAction.Destination == nil {
			clone.DefaultAction.Destination = merge.ReturnState
		}
		if merge.Delim != nil {
			UpdateStateStyles(syn, clone, styles)
		}
	}

	merge.Subsyn.Used = true
	return renamed[merge.Subsyn.StartState]
}
