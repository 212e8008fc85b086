package keys

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func checkChordNode(t *testing.T, n *chordNode, size int, want nodeData) {
	t.Helper()
	if n == nil {
		t.Fatalf("nil chordNode, want %+v", want)
	}
	if n.size() != size {
		t.Errorf("unexpected children: %d != %d", n.size(), size)
	}
	d, _ := n.value.(*nodeData)
	if d == nil {
		t.Fatalf("nil data on node, want %+v", want)
	}
	if want.pattern != nil && !d.pattern.Equals(*want.pattern) {
		t.Errorf("pattern unmatched: got %v want %v", *d.pattern, *want.pattern)
	}
	if want.value != nil && d.value != want.value {
		t.Errorf("value unmatched: got %v want %v", d.value, want.value)
	}
	if d.failure == nil {
		t.Errorf("nil failure link, want %+v", want)
	} else if d.failure != want.failure {
		t.Errorf("failure link unmatched: got %p want %p", d.failure, want.failure)
	}
}

func invalidData(failure *chordNode) nodeData {
	return nodeData{failure: failure}
}

func validData(pattern KeyList, value any, failure *chordNode) nodeData {
	return nodeData{pattern: &pattern, value: value, failure: failure}
}

func newTestMatcher() (*Matcher, error) {
	m := NewMatcher()
	m.Add(KeyList{NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB)}, 2)
	m.Add(KeyList{NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlC)}, 4)
	m.Add(KeyList{NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB)}, 6)
	m.Add(KeyList{NewKeyFromKey(KeyCtrlD)}, 7)
	m.Add(KeyList{NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlC), NewKeyFromKey(KeyCtrlD), NewKeyFromKey(KeyCtrlE)}, 10)
	if err := m.Compile(); err != nil {
		return nil, errors.Wrap(err, `failed to compile`)
	}
	return m, nil
}

func TestMatcherFailureLinks(t *testing.T) {
	m, err := newTestMatcher()
	if !assert.NoError(t, err, `creating new matcher should succeed`) {
		return
	}

	r := m.Root()
	checkChordNode(t, r, 3, invalidData(r))
	n1 := r.get(NewKeyFromKey(KeyCtrlA))
	checkChordNode(t, n1, 1, invalidData(r))
	n3 := r.get(NewKeyFromKey(KeyCtrlB))
	checkChordNode(t, n3, 2, invalidData(r))
	n7 := r.get(NewKeyFromKey(KeyCtrlD))
	checkChordNode(t, n7, 0, invalidData(r))
	n2 := n1.get(NewKeyFromKey(KeyCtrlB))
	checkChordNode(t, n2, 1, validData(KeyList{NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB)}, 2, n3))
	n4 := n3.get(NewKeyFromKey(KeyCtrlC))
	checkChordNode(t, n4, 0, validData(KeyList{NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlC)}, 4, r))
	n5 := n3.get(NewKeyFromKey(KeyCtrlA))
	checkChordNode(t, n5, 1, invalidData(n1))
	n8 := n2.get(NewKeyFromKey(KeyCtrlC))
	checkChordNode(t, n8, 1, invalidData(n4))
	n6 := n5.get(NewKeyFromKey(KeyCtrlB))
	checkChordNode(t, n6, 0, validData(KeyList{NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB)}, 6, n2))
	n9 := n8.get(NewKeyFromKey(KeyCtrlD))
	checkChordNode(t, n9, 1, invalidData(n7))
	n10 := n9.get(NewKeyFromKey(KeyCtrlE))
	checkChordNode(t, n10, 0, validData(KeyList{NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlC), NewKeyFromKey(KeyCtrlD), NewKeyFromKey(KeyCtrlE)}, 10, r))
}

func TestMatcherMatch(t *testing.T) {
	m, err := newTestMatcher()
	if !assert.NoError(t, err, `creating new matcher should succeed`) {
		return
	}

	text := KeyList{NewKeyFromKey(KeyCtrlA), NewKeyFromKey(KeyCtrlB), NewKeyFromKey(KeyCtrlC)}
	var got []Match
	for match := range m.Match(text) {
		got = append(got, match)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 matches (C-a,C-b and C-b,C-c), got %d: %+v", len(got), got)
	}
	if got[0].Value != 2 || got[1].Value != 4 {
		t.Errorf("unexpected match values: %+v", got)
	}
}
