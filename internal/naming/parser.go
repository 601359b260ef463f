package naming

import (
	"strings"

	"github.com/backmassage/samplenamer/internal/pitch"
)

// RawFilename holds the decomposition of one input line.
type RawFilename struct {
	Original   string // trimmed input line
	Ext        string // stripped extension with dot, or ""
	BaseNoRR   string // name without extension and "_RR<n>"
	RoundRobin int    // previous round-robin index, 0 when absent
	HadRR      bool
	UniqueID   string // stripped "-<ID>" token without hyphen, or ""
	CoreBase   string // grouping key
	NoteToken  string // hyphen-delimited note found in BaseNoRR, or ""
}

// Decompose runs the extraction steps over one filename. The input is
// trimmed first; every step is a no-op when its pattern is absent.
func Decompose(filename string) RawFilename {
	r := RawFilename{Original: strings.TrimSpace(filename)}

	base, ext := StripExtension(r.Original)
	r.Ext = ext

	r.BaseNoRR, r.RoundRobin, r.HadRR = StripRoundRobin(base)
	r.CoreBase, r.UniqueID = CoreBase(r.BaseNoRR)
	r.NoteToken, _ = ExtractNoteToken(r.BaseNoRR)
	return r
}

// MIDI decodes the note token. ok is false when there is no token or it
// is not a valid note ("-Cb4-").
func (r RawFilename) MIDI() (int, bool) {
	if r.NoteToken == "" {
		return 0, false
	}
	return pitch.NoteToMIDI(r.NoteToken)
}
