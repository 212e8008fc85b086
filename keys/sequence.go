package keys

import (
	"errors"
	"sync"
)

// ErrInSequence is returned by Sequence.AcceptKey when key extends a
// known prefix but has not yet completed a bound chord.
var ErrInSequence = errors.New("expected a key sequence")

// ErrNoMatch is returned by Sequence.AcceptKey when key does not
// extend any bound chord from the current position.
var ErrNoMatch = errors.New("could not match key to any binding")

// Sequence resolves incoming Keys against a set of bound KeyLists,
// tracking progress through multi-key chords (e.g. "C-x,C-n") across
// calls to AcceptKey. Grounded on peco's internal/keyseq.Keyseq type;
// where peco tracks position with its generic Node interface (shared
// with its EachWidth/EachDepth trie walkers), this only ever walks one
// concrete chordNode shape, so AcceptKey holds that directly instead.
type Sequence struct {
	*Matcher
	current *chordNode
	mu      sync.Mutex
}

// NewSequence creates an empty Sequence.
func NewSequence() *Sequence {
	return &Sequence{Matcher: NewMatcher()}
}

// InMiddleOfChain reports whether the matcher is partway through a
// multi-key chord.
func (s *Sequence) InMiddleOfChain() bool {
	return s.current != nil && s.current != s.Matcher.Root()
}

// CancelChain abandons any in-progress multi-key chord.
func (s *Sequence) CancelChain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

func (s *Sequence) current0() *chordNode {
	if s.current == nil {
		s.current = s.Matcher.Root()
	}
	return s.current
}

// AcceptKey advances the chord matcher with key, returning the bound
// value if a complete chord is matched, ErrInSequence if key is a
// proper prefix of one or more bound chords, or ErrNoMatch.
//
// When a matched node still has children, the longest registered
// chord always wins: a shorter prefix bound to its own value never
// fires while a longer chord sharing that prefix is still possible.
func (s *Sequence) AcceptKey(key Key) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.current0()
	n := c.get(key)
	if n == nil {
		s.current = s.Matcher.Root()
		return nil, ErrNoMatch
	}

	if n.hasChildren() {
		s.current = n
		return nil, ErrInSequence
	}

	s.current = s.Matcher.Root()
	data, ok := n.value.(*nodeData)
	if !ok || data == nil {
		return nil, ErrNoMatch
	}
	return data.Value(), nil
}
