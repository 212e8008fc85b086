// Package intern implements an interned string pool, used by the
// syntax engine's syntax.StyleMap to key its style table by integer id
// rather than by the "syntaxname.emitname" string that repeats on
// every highlight pass.
package intern

import (
	"sync"

	"github.com/google/btree"
)

// ID identifies an interned string. The zero value never corresponds to
// a real string (Pool.Intern never assigns it).
type ID uint32

type entry struct {
	id ID
	s  string
}

func (e entry) Less(than btree.Item) bool {
	return e.s < than.(entry).s
}

// Pool interns strings to small integer ids. It is safe for concurrent
// use; the editor keeps exactly one process-wide Pool, mutated only by
// the main thread (per this design's shared-resource policy), but every
// method takes the mutex anyway.
type Pool struct {
	mu     sync.Mutex
	byName *btree.BTree
	byID   []string
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{
		byName: btree.New(32),
		byID:   []string{""}, // index 0 reserved, keeps ID zero invalid
	}
}

// Intern returns the id for s, assigning a new one if s hasn't been seen.
func (p *Pool) Intern(s string) ID {
	p.mu.Lock()
	defer p.mu.Unlock()

	if it := p.byName.Get(entry{s: s}); it != nil {
		return it.(entry).id
	}

	id := ID(len(p.byID))
	p.byID = append(p.byID, s)
	p.byName.ReplaceOrInsert(entry{id: id, s: s})
	return id
}

// Lookup returns the string for id, or "" and false if the id is unknown.
func (p *Pool) Lookup(id ID) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if int(id) <= 0 || int(id) >= len(p.byID) {
		return "", false
	}
	return p.byID[id], true
}

// Len returns the number of interned strings.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byID) - 1
}

// SortedNames returns every interned string in lexical order, for
// debug dumps (the purpose `google/btree` serves here, the same way
// peco's selection.go uses a btree to keep selected lines ordered).
func (p *Pool) SortedNames() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, p.byName.Len())
	p.byName.Ascend(func(it btree.Item) bool {
		out = append(out, it.(entry).s)
		return true
	})
	return out
}
