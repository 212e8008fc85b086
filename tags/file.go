package tags

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

// TagFile is a loaded, cached tags(5) file: its path, the directory
// tag filenames are stored relative to, and an index of every
// definition it contains ordered by name via google/btree (same
// library/ordering-Item pattern peco's selection set uses). Grounded
// on original_source/src/tag.h's TagFile struct, with buf/size
// replaced by the parsed index kept in memory instead of the raw byte
// range load_tag_file() mapped.
type TagFile struct {
	Path    string
	Dir     string
	modTime time.Time
	tree    *btree.BTree
	count   int
}

// FindTagFile searches startDir and its ancestors for a file named
// "tags", the same upward walk open_tag_file performs, stopping at the
// first directory containing one (or the filesystem root).
func FindTagFile(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, "tags")
		if st, err := os.Stat(candidate); err == nil && st.Size() > 0 {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no tags file found")
		}
		dir = parent
	}
}

// Load reads and indexes the tags(5) file at path.
func Load(path string) (*TagFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stating %s", path)
	}

	tf := &TagFile{
		Path: path,
		Dir:  filepath.Dir(path),
	}
	if err := tf.index(f); err != nil {
		return nil, err
	}
	tf.modTime = st.ModTime()
	return tf, nil
}

func (tf *TagFile) index(r *os.File) error {
	tf.tree = btree.New(32)
	tf.count = 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		t, ok := parseLine(scanner.Bytes())
		if !ok {
			continue
		}
		if tf.tree.ReplaceOrInsert(btreeItem{t}) == nil {
			tf.count++
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", tf.Path)
	}
	return nil
}

// Reload re-reads the file if its modification time has advanced
// since the last load, mirroring tag_file_changed's mtime check.
// Returns whether a reload actually happened.
func (tf *TagFile) Reload() (bool, error) {
	st, err := os.Stat(tf.Path)
	if err != nil {
		return false, errors.Wrapf(err, "stating %s", tf.Path)
	}
	if !st.ModTime().After(tf.modTime) {
		return false, nil
	}
	f, err := os.Open(tf.Path)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", tf.Path)
	}
	defer f.Close()
	if err := tf.index(f); err != nil {
		return false, err
	}
	tf.modTime = st.ModTime()
	return true, nil
}

// Len reports the number of indexed tag definitions.
func (tf *TagFile) Len() int { return tf.count }

// Lookup returns every definition named name, ordered the way
// tag_cmp/visibility_cmp/kind_cmp order them: definitions local to
// currentFile first, then other non-local definitions, then
// definitions local to a different file; ties broken by kind,
// de-prioritising struct members ('m') and globals ('v'). currentFile
// must already be relative to tf.Dir, matching how Tag.Filename is
// stored.
func (tf *TagFile) Lookup(name, currentFile string) []Tag {
	var matches []Tag
	tf.tree.AscendRange(
		btreeItem{Tag{Name: name}},
		btreeItem{Tag{Name: name + "\xff"}},
		func(it btree.Item) bool {
			matches = append(matches, it.(btreeItem).Tag)
			return true
		},
	)
	sort.SliceStable(matches, func(i, j int) bool {
		return tagLess(matches[i], matches[j], currentFile)
	})
	return matches
}

// CollectPrefix returns the distinct, sorted tag names starting with
// prefix, the Go analogue of collect_tags' dedup-as-you-scan loop
// (there it relies on the file being pre-sorted by ctags; here the
// btree index already yields ascending order for free).
func (tf *TagFile) CollectPrefix(prefix string) []string {
	var names []string
	var prev string
	tf.tree.AscendGreaterOrEqual(btreeItem{Tag{Name: prefix}}, func(it btree.Item) bool {
		name := it.(btreeItem).Tag.Name
		if !strings.HasPrefix(name, prefix) {
			return false
		}
		if name != prev {
			names = append(names, name)
			prev = name
		}
		return true
	})
	return names
}

// Dump renders every indexed tag as one "name\tfilename\tkind" line,
// in index order, the Go analogue of dump_tags.
func (tf *TagFile) Dump() string {
	var buf bytes.Buffer
	tf.tree.Ascend(func(it btree.Item) bool {
		t := it.(btreeItem).Tag
		buf.WriteString(t.Name)
		buf.WriteByte('\t')
		buf.WriteString(t.Filename)
		buf.WriteByte('\t')
		if t.Kind != 0 {
			buf.WriteByte(t.Kind)
		}
		buf.WriteByte('\n')
		return true
	})
	return buf.String()
}

// tagLess implements tag_cmp: visibility_cmp first, then kind_cmp,
// both ported directly from tag.c.
func tagLess(a, b Tag, currentFile string) bool {
	if v := visibilityCmp(a, b, currentFile); v != 0 {
		return v < 0
	}
	return kindCmp(a, b) < 0
}

func visibilityCmp(a, b Tag, currentFile string) int {
	if !a.Local && !b.Local {
		return 0
	}
	aThisFile := a.Local && currentFile != "" && a.Filename == currentFile
	bThisFile := b.Local && currentFile != "" && b.Filename == currentFile

	if a.Local && !aThisFile {
		if b.Local && !bThisFile {
			return 0
		}
		return 1
	}
	if b.Local && !bThisFile {
		return -1
	}
	if a.Local && aThisFile {
		if b.Local && bThisFile {
			return 0
		}
		return -1
	}
	if b.Local && bThisFile {
		return 1
	}
	return 0
}

func kindCmp(a, b Tag) int {
	if a.Kind == b.Kind {
		return 0
	}
	if a.Kind == 'm' {
		return 1
	}
	if b.Kind == 'm' {
		return -1
	}
	if a.Kind == 'v' {
		return 1
	}
	if b.Kind == 'v' {
		return -1
	}
	return 0
}
