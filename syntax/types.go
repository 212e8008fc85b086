// Package syntax implements the regex-driven syntax-highlighting
// engine: a directed graph of named states, each holding an ordered
// list of conditions and a default action, plus the sub-syntax merge
// and finalisation checks that turn a parsed syntax definition into
// something the highlighter can run. Grounded on
// original_source/src/syntax/syntax.c and syntax/merge.c.
package syntax

import "github.com/dlclark/regexp2"

// ConditionKind enumerates this design's exhaustive condition list.
type ConditionKind int

const (
	CondLiteral ConditionKind = iota
	CondLiteralIcase
	CondCharSet
	CondBlank
	CondInList
	CondInListIcase
	CondRegex
	CondHeredocBegin
	CondHeredocEnd
	CondBufferStart
	CondEOL
)

func (k ConditionKind) String() string {
	switch k {
	case CondLiteral:
		return "literal"
	case CondLiteralIcase:
		return "literal-icase"
	case CondCharSet:
		return "charset"
	case CondBlank:
		return "blank"
	case CondInList:
		return "inlist"
	case CondInListIcase:
		return "inlist-icase"
	case CondRegex:
		return "regex"
	case CondHeredocBegin:
		return "heredocbegin"
	case CondHeredocEnd:
		return "heredocend"
	case CondBufferStart:
		return "bufferstart"
	case CondEOL:
		return "eol"
	default:
		return "unknown"
	}
}

// condTypeHasDestination mirrors cond_type_has_destination: every
// condition kind except heredoc-end carries an optional explicit
// destination, defaulting to the enclosing merge's return state when
// merged and unset (heredoc-end's destination is always the return
// state, fixed up separately in merge.go).
func condTypeHasDestination(k ConditionKind) bool {
	return k != CondHeredocEnd
}

// ByteSet is a 256-bit membership set, the bitset payload of a
// CondCharSet condition (the GLOSSARY's "bitset" idea, sized for a
// byte value instead of command package's flag-letter alphabet).
type ByteSet [4]uint64

func (s *ByteSet) Add(b byte) { s[b/64] |= 1 << (b % 64) }

func (s ByteSet) Has(b byte) bool { return s[b/64]&(1<<(b%64)) != 0 }

// NewByteSetFromChars builds a ByteSet containing every byte in chars.
func NewByteSetFromChars(chars string) ByteSet {
	var s ByteSet
	for i := 0; i < len(chars); i++ {
		s.Add(chars[i])
	}
	return s
}

// Action is a condition's (or a state's default) effect: where to
// transition and what style to emit, matching syntax.h's Action.
type Action struct {
	Destination *State
	EmitName    string
	EmitStyle   *Style
}

// effectiveEmitName mirrors get_effective_emit_name: an action's own
// name, falling back to its destination state's name when unset.
func (a *Action) effectiveEmitName() string {
	if a.EmitName != "" {
		return a.EmitName
	}
	if a.Destination != nil {
		return a.Destination.EmitName
	}
	return ""
}

// Condition is one entry in a State's ordered condition list.
type Condition struct {
	Kind ConditionKind

	// Literal / LiteralIcase payload.
	Bytes []byte

	// CharSet payload.
	Set ByteSet

	// InList / InListIcase payload.
	ListName string
	list     *StringList

	// Regex payload (precompiled, matched anchored at the current
	// position via regexp2.FindStringMatchStartingAt).
	Regex *regexp2.Regexp

	// HeredocEnd payload: the literal delimiter captured by the
	// merging parent's heredoc-begin condition, substituted in by
	// MergeSyntax (empty until merged).
	HeredocDelim []byte

	// HeredocBegin payload: names the sub-syntax to merge in and the
	// return state to merge with once the current word's delimiter is
	// known.
	SubsyntaxName string
	ReturnState   string

	A Action
}

// HeredocState records which sub-syntax a heredoc-begin condition in
// this state merges in, resolved once the parent syntax's states are
// all defined (free_heredoc_state's counterpart has no fields worth
// keeping beyond the subsyntax name, since the runtime delimiter is
// captured per-match, not stored on the State).
type HeredocState struct {
	SubsyntaxName string
}

// State is one node of a Syntax's graph.
type State struct {
	Name          string
	Conds         []*Condition
	DefaultAction Action
	Heredoc       *HeredocState

	Defined  bool
	Visited  bool
	Copied   bool
	EmitName string
}

// StringList is a named hash-set of literal words, used by CondInList/
// CondInListIcase conditions.
type StringList struct {
	Name     string
	Words    map[string]bool
	Fold     bool
	Defined  bool
	Used     bool
}

// NewStringList builds a StringList from words, folding to lower-case
// up front when fold is true so lookups can fold the candidate word
// the same way once and compare directly.
func NewStringList(name string, words []string, fold bool) *StringList {
	l := &StringList{Name: name, Words: make(map[string]bool, len(words)), Fold: fold, Defined: true}
	for _, w := range words {
		if fold {
			w = foldCase(w)
		}
		l.Words[w] = true
	}
	return l
}

// Has reports whether word is a member, folding per the list's setting.
func (l *StringList) Has(word string) bool {
	l.Used = true
	if l.Fold {
		word = foldCase(word)
	}
	return l.Words[word]
}

// Syntax is a directed graph of named states plus its string lists and
// default per-name styles.
type Syntax struct {
	Name          string
	States        map[string]*State
	StringLists   map[string]*StringList
	DefaultStyles map[string]string
	StartState    *State

	Heredoc              bool // true if this syntax contains a heredocend condition anywhere
	Used                 bool
	WarnedUnusedSubsyntax bool
}

// NewSyntax returns an empty Syntax ready for states to be added.
func NewSyntax(name string) *Syntax {
	return &Syntax{
		Name:          name,
		States:        make(map[string]*State),
		StringLists:   make(map[string]*StringList),
		DefaultStyles: make(map[string]string),
	}
}

// IsSubsyntax mirrors is_subsyntax: by convention a syntax meant only
// to be merged, never selected directly by filetype, is named with a
// leading dot (matching the syntax file format's `syntax .name`
// sub-syntax declaration).
func (s *Syntax) IsSubsyntax() bool {
	return len(s.Name) > 0 && s.Name[0] == '.'
}

// State returns (creating if necessary) the named, still-undefined
// state — the "referenced but not yet defined" placeholder
// find_state/hashmap_get implicitly relies on via forward references
// in the syntax file format.
func (s *Syntax) State(name string) *State {
	if st, ok := s.States[name]; ok {
		return st
	}
	st := &State{Name: name}
	s.States[name] = st
	return st
}

// FindState looks up a state without creating it.
func (s *Syntax) FindState(name string) *State {
	return s.States[name]
}

// FindStringList looks up a string list without creating it.
func (s *Syntax) FindStringList(name string) *StringList {
	return s.StringLists[name]
}
