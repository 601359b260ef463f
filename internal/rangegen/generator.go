// Package rangegen expands a note range such as "C3-C4-Bass" into one
// sample filename per semitone:
//
//	048-C3-Bass
//	049-C#3-Bass
//	...
//	060-C4-Bass
//
// Generation is a pure function of the input line and an [Options] value;
// the caller owns session state (transpose, spelling, disabled classes) and
// passes a fresh Options on every call.
package rangegen

import (
	"regexp"
	"strings"

	"github.com/backmassage/samplenamer/internal/pitch"
)

// RangeSpec is one parsed "<start>-<end>-<label>" line.
type RangeSpec struct {
	Start string
	End   string
	Label string
}

// Options controls rendering of an expanded range.
type Options struct {
	Transpose int            // octaves, applied as 12 semitones each
	Spelling  pitch.Spelling // output spelling; expansion is always sharp
	Disabled  ClassSet       // classes to omit, matched on the untransposed note
	Label     string         // appended as "-<label>" when non-empty
}

// Status distinguishes the ways a generation can come back empty.
type Status int

const (
	StatusOK          Status = iota
	StatusNoInput            // blank input line
	StatusUnparsable         // not a range, unknown note, or start above end
	StatusAllDisabled        // range valid but every note's class disabled
)

// String returns a short lowercase name for logs.
func (s Status) String() string {
	switch s {
	case StatusNoInput:
		return "no-input"
	case StatusUnparsable:
		return "unparsable"
	case StatusAllDisabled:
		return "all-disabled"
	}
	return "ok"
}

// Result is the outcome of [Generate].
type Result struct {
	Status    Status
	Spec      RangeSpec
	Notes     []string // expanded sharp-spelled notes, before filtering
	Filenames []string
	Disabled  int // notes omitted by the class filter
}

// reRange matches a full range line. Note letters are case-insensitive;
// [pitch.CanonicalNote] fixes the case before decoding.
var reRange = regexp.MustCompile(
	`(?i)^([A-G][#b]?\d+)\s*-\s*([A-G][#b]?\d+)\s*-\s*(.+)$`)

// Parse reads a range line. ok is false for blank or non-matching input.
func Parse(input string) (RangeSpec, bool) {
	m := reRange.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return RangeSpec{}, false
	}
	return RangeSpec{
		Start: pitch.CanonicalNote(m[1]),
		End:   pitch.CanonicalNote(m[2]),
		Label: strings.TrimSpace(m[3]),
	}, true
}

// Expand lists every note from Start to End inclusive in sharp spelling.
// It returns nil when either end does not decode or Start is above End.
func Expand(spec RangeSpec) []string {
	start, ok := pitch.NoteToMIDI(spec.Start)
	if !ok {
		return nil
	}
	end, ok := pitch.NoteToMIDI(spec.End)
	if !ok || start > end {
		return nil
	}
	notes := make([]string, 0, end-start+1)
	for midi := start; midi <= end; midi++ {
		notes = append(notes, pitch.MIDIToNote(midi, pitch.Sharps))
	}
	return notes
}

// Render turns expanded notes into filenames. Each note is transposed by
// opts.Transpose octaves and respelled with opts.Spelling; notes whose
// untransposed class is disabled are dropped. Input order is kept.
func Render(notes []string, opts Options) []string {
	offset := opts.Transpose * 12
	out := make([]string, 0, len(notes))
	for _, note := range notes {
		midi, ok := pitch.NoteToMIDI(note)
		if !ok {
			continue
		}
		class, ok := pitch.Class(note)
		if !ok || opts.Disabled.Has(class) {
			continue
		}
		out = append(out, Filename(midi+offset, opts.Spelling, opts.Label))
	}
	return out
}

// Filename formats one generated name: "<MIDI>-<note>[-<label>]".
func Filename(midi int, s pitch.Spelling, label string) string {
	name := pitch.Pad(midi) + "-" + pitch.MIDIToNote(midi, s)
	if label != "" {
		name += "-" + label
	}
	return name
}

// Generate parses, expands and renders input in one step. The label comes
// from the input line; opts.Label is ignored.
func Generate(input string, opts Options) Result {
	if strings.TrimSpace(input) == "" {
		return Result{Status: StatusNoInput}
	}
	spec, ok := Parse(input)
	if !ok {
		return Result{Status: StatusUnparsable}
	}
	notes := Expand(spec)
	if len(notes) == 0 {
		return Result{Status: StatusUnparsable, Spec: spec}
	}

	opts.Label = spec.Label
	names := Render(notes, opts)
	res := Result{
		Status:    StatusOK,
		Spec:      spec,
		Notes:     notes,
		Filenames: names,
		Disabled:  len(notes) - len(names),
	}
	if len(names) == 0 {
		res.Status = StatusAllDisabled
	}
	return res
}

// MIDINumbers returns the transposed MIDI number of every note that
// survives the class filter, in the same order as [Render].
func MIDINumbers(notes []string, opts Options) []int {
	offset := opts.Transpose * 12
	out := make([]int, 0, len(notes))
	for _, note := range notes {
		midi, ok := pitch.NoteToMIDI(note)
		if !ok {
			continue
		}
		if class, ok := pitch.Class(note); !ok || opts.Disabled.Has(class) {
			continue
		}
		out = append(out, midi+offset)
	}
	return out
}
