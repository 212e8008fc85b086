package command

import "strings"

// EventKind tags one entry of a macro recording, per this design's
// "Macros & hooks": {Command(str), Insert(text), Search(pat, dir, add_to_history)}.
type EventKind int

const (
	EventCommand EventKind = iota
	EventInsert
	EventSearch
)

// Event is one recorded macro step.
type Event struct {
	Kind EventKind

	// Command: the source-level command line, exactly as typed (not
	// the post-parse argument vector) so replay re-tokenizes it fresh.
	Command string

	// Insert: literal text inserted into the buffer (e.g. paste text
	// or typed runes collected between command invocations).
	Insert string

	// Search fields.
	SearchPattern  string
	SearchBackward bool
	AddToHistory   bool
}

// filteredCommands is the set of meta-commands this design names as
// excluded from recording even while recording is active: the
// recording toggle itself and commands whose effects aren't
// meaningfully replayable (command, exec-open, exec-tag, a no-op
// search with no pattern change).
var filteredCommands = map[string]bool{
	"macro":     true, // toggles recording itself
	"command":   true,
	"exec-open": true,
	"exec-tag":  true,
}

// Recorder accumulates Events while Recording is true. It is
// process-wide per this design's shared-resource policy ("a macro
// recording is process-wide"), so callers hold exactly one Recorder.
type Recorder struct {
	Recording bool
	events    []Event
}

// NewRecorder returns an idle (not recording) Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins a fresh recording, discarding any previous one.
func (r *Recorder) Start() {
	r.Recording = true
	r.events = nil
}

// Stop ends the current recording; Events() remains valid afterwards.
func (r *Recorder) Stop() {
	r.Recording = false
}

// Events returns the recorded sequence (nil if nothing was recorded).
func (r *Recorder) Events() []Event {
	return r.events
}

// RecordCommand appends a source-level command line, honoring the
// meta-command filter. name is the command's resolved name (av[0]);
// line is the full source text of the invocation as typed.
func (r *Recorder) RecordCommand(name, line string) {
	if !r.Recording || filteredCommands[name] {
		return
	}
	if name == "search" && strings.TrimSpace(line) == "search" {
		return // no-op search (no pattern given): filtered per spec.
	}
	r.events = append(r.events, Event{Kind: EventCommand, Command: line})
}

// RecordInsert appends a literal text-insertion event (typed runes or
// a paste already collected by the caller).
func (r *Recorder) RecordInsert(text string) {
	if !r.Recording || text == "" {
		return
	}
	r.events = append(r.events, Event{Kind: EventInsert, Insert: text})
}

// RecordSearch appends a search event.
func (r *Recorder) RecordSearch(pattern string, backward, addToHistory bool) {
	if !r.Recording {
		return
	}
	r.events = append(r.events, Event{
		Kind:           EventSearch,
		SearchPattern:  pattern,
		SearchBackward: backward,
		AddToHistory:   addToHistory,
	})
}

// Play replays the recorded events against runner/searchFn, tokenizing
// and running each Command event and invoking searchFn for Search
// events (Insert events are left to the caller's buffer-insertion
// path, since Recorder has no buffer reference of its own).
func (r *Recorder) Play(runner *Runner, insertFn func(text string), searchFn func(pattern string, backward, addToHistory bool)) bool {
	ok := true
	for _, ev := range r.events {
		switch ev.Kind {
		case EventCommand:
			if !runner.HandleCommand(ev.Command) {
				ok = false
			}
		case EventInsert:
			if insertFn != nil {
				insertFn(ev.Insert)
			}
		case EventSearch:
			if searchFn != nil {
				searchFn(ev.SearchPattern, ev.SearchBackward, ev.AddToHistory)
			}
		}
	}
	return ok
}
