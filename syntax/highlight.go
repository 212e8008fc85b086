package syntax

// Span is one styled run of bytes within a highlighted line.
type Span struct {
	Start, End int
	Style      *Style
}

// Cookie is the state a line ended in, stashed so the next line can
// resume there and unchanged lines can skip re-highlighting: a state
// id at the end of a line continuation mechanism.
type Cookie struct {
	state *State
}

// HighlightLine walks syn's state graph across line starting in
// startState (nil means syn.StartState), firing the highest-priority
// matching condition at each position or, failing that, the state's
// default action. Returns the emitted spans and the cookie to resume
// the next line with.
//
// lineOffset is line's absolute byte offset in the buffer, needed only
// by the buffer-start condition.
func HighlightLine(syn *Syntax, startState *State, line []byte, lineOffset int) ([]Span, Cookie) {
	state := startState
	if state == nil {
		state = syn.StartState
	}

	var spans []Span
	pos := 0
	for {
		matched := false
		for _, cond := range state.Conds {
			ok, length := matchCondition(cond, line, pos, lineOffset)
			if !ok {
				continue
			}
			matched = true
			emitSpan(&spans, pos, pos+length, cond.A.EmitStyle)
			pos += length
			if cond.A.Destination != nil {
				state = cond.A.Destination
			}
			break
		}
		if matched {
			if pos >= len(line) {
				break
			}
			continue
		}

		// Default action: consume one scalar (or, at EOL, nothing) and
		// stay or transition per the state's default destination.
		if pos >= len(line) {
			break
		}
		n := stepRuneLen(line, pos)
		emitSpan(&spans, pos, pos+n, state.DefaultAction.EmitStyle)
		pos += n
		if state.DefaultAction.Destination != nil {
			state = state.DefaultAction.Destination
		}
	}

	return spans, Cookie{state: state}
}

// emitSpan appends [start,end) to spans, merging into the previous
// span when it shares the same style and is contiguous (keeps runs of
// default-action single-byte consumption from fragmenting into one
// span per byte).
func emitSpan(spans *[]Span, start, end int, style *Style) {
	if start == end {
		return
	}
	if n := len(*spans); n > 0 {
		last := &(*spans)[n-1]
		if last.End == start && last.Style == style {
			last.End = end
			return
		}
	}
	*spans = append(*spans, Span{Start: start, End: end, Style: style})
}

// SameCookie reports whether two cookies name the same state, the
// "previous cookie is unchanged" test that lets the renderer skip
// re-highlighting a line.
func SameCookie(a, b Cookie) bool {
	return a.state == b.state
}

// CookieState exposes the raw state a cookie resumes in, for callers
// that need to pass it back into HighlightLine.
func (c Cookie) CookieState() *State {
	return c.state
}
