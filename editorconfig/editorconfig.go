package editorconfig

import (
	"bufio"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/pkg/errors"

	"github.com/dteedit/dte/buffer"
)

// Properties holds the subset of EditorConfig keys this design names:
// indent_style, indent_size, tab_width and max_line_length. A zero
// Properties sets nothing; each numeric field has a companion *Set
// flag so "unset" is distinguishable from "set to the zero value".
type Properties struct {
	IndentStyle     string // "tab" or "space"
	IndentSize      int
	IndentSizeSet   bool
	TabWidth        int
	TabWidthSet     bool
	MaxLineLength   int
	MaxLineLengthSet bool
}

// merge overlays src's set fields onto p, src winning — later sections
// in a .editorconfig file take precedence over earlier ones that also
// match, mirroring the reference ini cascade.
func (p *Properties) merge(src Properties) {
	if src.IndentStyle != "" {
		p.IndentStyle = src.IndentStyle
	}
	if src.IndentSizeSet {
		p.IndentSize, p.IndentSizeSet = src.IndentSize, true
	}
	if src.TabWidthSet {
		p.TabWidth, p.TabWidthSet = src.TabWidth, true
	}
	if src.MaxLineLengthSet {
		p.MaxLineLength, p.MaxLineLengthSet = src.MaxLineLength, true
	}
}

// ApplyToOptions overlays the resolved properties onto a buffer's
// local options, following the same precedence .editorconfig itself
// uses: only properties this Properties actually set are touched.
func (p Properties) ApplyToOptions(opts *buffer.LocalOptions) {
	switch p.IndentStyle {
	case "tab":
		opts.ExpandTab = false
	case "space":
		opts.ExpandTab = true
	}
	if p.IndentSizeSet {
		opts.IndentWidth = p.IndentSize
		if !p.TabWidthSet {
			opts.TabWidth = p.IndentSize
		}
	}
	if p.TabWidthSet {
		opts.TabWidth = p.TabWidth
	}
	if p.MaxLineLengthSet {
		opts.TextWidth = p.MaxLineLength
	}
}

// Section is one `[glob]` block: the compiled glob it matched against
// a path relative to the .editorconfig file's directory, and the
// properties it assigns.
type Section struct {
	rawGlob string
	glob    *regexp2.Regexp
	props   Properties
}

// Config is a parsed .editorconfig file: whether it declares itself
// the root of the search (an `ini` top-level `root = true` key) and
// its ordered list of glob sections.
type Config struct {
	Root     bool
	Sections []Section
}

// Parse reads one .editorconfig file's contents. Syntax is the
// simplified ini subset the format uses: `[glob]` section headers,
// `key = value` assignments, `#` or `;` full-line comments, keys are
// case-insensitive, values are lower-cased before interpretation
// except where the glob itself is case-sensitive.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	scanner := bufio.NewScanner(r)

	var cur *Section
	flush := func() {
		if cur != nil {
			cfg.Sections = append(cfg.Sections, *cur)
			cur = nil
		}
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			flush()
			glob := line[1 : len(line)-1]
			re, err := CompileGlob(glob)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
			cur = &Section{rawGlob: glob, glob: re}
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.Errorf("line %d: expected 'key = value'", lineNo)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.ToLower(strings.TrimSpace(val))
		if cur == nil {
			if key == "root" {
				cfg.Root = val == "true"
			}
			continue
		}
		if err := applyProperty(&cur.props, key, val); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading editorconfig")
	}
	return cfg, nil
}

func applyProperty(p *Properties, key, val string) error {
	switch key {
	case "indent_style":
		if val != "tab" && val != "space" {
			return errors.Errorf("invalid indent_style %q", val)
		}
		p.IndentStyle = val
	case "indent_size":
		if val == "tab" {
			// `indent_size = tab` leaves indent_size unset; it is not
			// resolved against tab_width anywhere.
			p.IndentSize, p.IndentSizeSet = 0, false
			return nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "invalid indent_size %q", val)
		}
		p.IndentSize, p.IndentSizeSet = n, true
	case "tab_width":
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "invalid tab_width %q", val)
		}
		p.TabWidth, p.TabWidthSet = n, true
	case "max_line_length":
		if val == "off" {
			p.MaxLineLength, p.MaxLineLengthSet = 0, false
			return nil
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "invalid max_line_length %q", val)
		}
		p.MaxLineLength, p.MaxLineLengthSet = n, true
	}
	// Unrecognised keys are ignored: this design only names four
	// properties as meaningful to this editor.
	return nil
}

// Matches reports whether relPath (already made relative to the
// .editorconfig file's own directory, forward-slash separated) is
// matched by s's glob. A glob with no '/' matches against the
// basename only, per the EditorConfig spec.
func (s Section) Matches(relPath string) bool {
	candidate := relPath
	if !strings.Contains(s.rawGlob, "/") {
		candidate = path.Base(relPath)
	}
	ok, err := s.glob.MatchString(candidate)
	return err == nil && ok
}

// Resolve folds every matching section's properties together, later
// sections overriding earlier ones for any key both set. A section's
// `indent_size = tab` counts as unset, so it does not override an
// earlier numeric indent_size and is not resolved against tab_width.
func (c *Config) Resolve(relPath string) Properties {
	var out Properties
	for _, s := range c.Sections {
		if s.Matches(relPath) {
			out.merge(s.props)
		}
	}
	return out
}
