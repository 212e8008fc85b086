package keys

// Matcher is a multi-pattern Aho-Corasick matcher over key chords: it
// builds failure links across a chordTrie so that, once Compile has
// run, feeding it a stream of Keys reports every bound chord that
// terminates at each position without backtracking.
type Matcher struct {
	trie *chordTrie
}

// Match reports one bound chord found while scanning a key stream.
type Match struct {
	Index   int
	Pattern KeyList
	Value   any
}

// nodeData is the payload a chordNode carries once it belongs to a
// compiled Matcher: the chord terminating at this node (nil for an
// interior node reached only as a prefix), its bound value, and its
// Aho-Corasick failure link.
type nodeData struct {
	pattern *KeyList
	value   any
	failure *chordNode
}

// Value returns the bound value this chord resolves to.
func (d *nodeData) Value() any { return d.value }

// NewMatcher creates a new, empty Aho-Corasick matcher over key chords.
func NewMatcher() *Matcher {
	return &Matcher{trie: newChordTrie()}
}

// Clear removes every bound chord, resetting the matcher to empty.
func (m *Matcher) Clear() {
	m.trie.root.removeAll()
}

// Add binds pattern to v. Compile must run again before Match/Root
// reflect the new binding.
func (m *Matcher) Add(pattern KeyList, v any) {
	m.trie.put(pattern, &nodeData{pattern: &pattern, value: v})
}

// Root returns the matcher's trie root, mainly for tests and Sequence.
func (m *Matcher) Root() *chordNode { return &m.trie.root }

// Compile balances the underlying trie and fills in every node's
// Aho-Corasick failure link, in breadth-first order so a node's
// failure is always derived from an already-resolved parent.
func (m *Matcher) Compile() error {
	m.trie.balance()
	root := &m.trie.root
	root.value = &nodeData{failure: root}
	m.trie.eachWidth(func(parent *chordNode) bool {
		parent.each(func(child *chordNode) bool {
			fillFailure(child, root, parent)
			return true
		})
		return true
	})
	return nil
}

// fillFailure computes curr's failure link from its parent's failure
// chain, per the standard Aho-Corasick construction.
func fillFailure(curr, root, parent *chordNode) {
	data, _ := curr.value.(*nodeData)
	if data == nil {
		data = &nodeData{}
		curr.value = data
	}
	if parent == root {
		data.failure = root
		return
	}
	data.failure = getNextNode(getNodeFailure(parent, root), root, curr.label)
}

// Match scans text against every compiled chord and streams the
// matches found, in the order they complete.
func (m *Matcher) Match(text KeyList) <-chan Match {
	ch := make(chan Match, 1)
	go m.startMatch(text, ch)
	return ch
}

func (m *Matcher) startMatch(text KeyList, ch chan<- Match) {
	defer close(ch)
	root := &m.trie.root
	curr := root
	for i, r := range text {
		curr = getNextNode(curr, root, r)
		if curr == root {
			continue
		}
		fireAll(curr, root, ch, i)
	}
}

// getNextNode follows failure links from node until it finds a child
// matching r, or falls back to root.
func getNextNode(node, root *chordNode, r Key) *chordNode {
	for {
		if next := node.get(r); next != nil {
			return next
		} else if node == root {
			return root
		}
		node = getNodeFailure(node, root)
	}
}

// fireAll emits every chord that terminates at curr, walking the
// failure chain back to root (a chord ending at curr's suffix may also
// complete here, per Aho-Corasick's output-link semantics).
func fireAll(curr, root *chordNode, ch chan<- Match, idx int) {
	for curr != root {
		data := getNodeData(curr)
		if data.pattern != nil {
			ch <- Match{
				Index:   idx - len(*data.pattern) + 1,
				Pattern: *data.pattern,
				Value:   data.value,
			}
		}
		curr = data.failure
	}
}

func getNodeData(node *chordNode) *nodeData {
	d, _ := node.value.(*nodeData)
	return d
}

func getNodeFailure(node, root *chordNode) *chordNode {
	next := getNodeData(node).failure
	if next == nil {
		return root
	}
	return next
}
