// Package midiexport writes a Standard MIDI File that plays every note of a
// generated range once, in order, so an autosampler can record the samples
// the generated names describe. Each note carries a marker with its
// filename.
package midiexport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/backmassage/samplenamer/internal/config"
)

// Resolution is the tick count per quarter note.
const Resolution = 960

// ErrNoNotes is returned when nothing playable is left to write.
var ErrNoNotes = errors.New("no notes in MIDI range 0-127")

// Note is one step of the sequence.
type Note struct {
	MIDI int
	Name string // marker text; usually the generated filename
}

// Settings controls timing and voicing of the sequence.
type Settings struct {
	Name       string  // track name
	Tempo      float64 // BPM
	NoteLength float64 // beats held per note
	NoteGap    float64 // beats of silence after each note
	Velocity   uint8
	Channel    uint8
}

// SettingsFromConfig copies the sequence settings out of cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		Tempo:      cfg.Tempo,
		NoteLength: cfg.NoteLength,
		NoteGap:    cfg.NoteGap,
		Velocity:   uint8(cfg.Velocity),
		Channel:    uint8(cfg.MIDIChannel),
	}
}

// Report lists what happened to each requested note.
type Report struct {
	Written int
	Skipped []int // MIDI numbers outside 0-127
}

// Build assembles an SMF1 file with a tempo track and one note track.
// Notes outside the MIDI range are dropped and listed in the report.
func Build(notes []Note, s Settings) (*smf.SMF, Report, error) {
	var rep Report
	var playable []Note
	for _, n := range notes {
		if n.MIDI < 0 || n.MIDI > 127 {
			rep.Skipped = append(rep.Skipped, n.MIDI)
			continue
		}
		playable = append(playable, n)
	}
	if len(playable) == 0 {
		return nil, rep, ErrNoNotes
	}

	file := smf.NewSMF1()
	file.TimeFormat = smf.MetricTicks(Resolution)

	if err := file.Add(tempoTrack(s.Tempo)); err != nil {
		return nil, rep, fmt.Errorf("add tempo track: %w", err)
	}
	if err := file.Add(noteTrack(playable, s)); err != nil {
		return nil, rep, fmt.Errorf("add note track: %w", err)
	}
	rep.Written = len(playable)
	return file, rep, nil
}

// WriteSequence builds the file and writes it to w.
func WriteSequence(w io.Writer, notes []Note, s Settings) (Report, error) {
	file, rep, err := Build(notes, s)
	if err != nil {
		return rep, err
	}
	if _, err := file.WriteTo(w); err != nil {
		return rep, fmt.Errorf("error writing MIDI file: %w", err)
	}
	return rep, nil
}

// SaveSequence writes the sequence to path, creating parent directories.
func SaveSequence(path string, notes []Note, s Settings) (Report, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Report{}, fmt.Errorf("create MIDI directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return Report{}, fmt.Errorf("create MIDI file: %w", err)
	}
	rep, err := WriteSequence(f, notes, s)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close MIDI file: %w", cerr)
	}
	if err != nil {
		os.Remove(path)
	}
	return rep, err
}

func tempoTrack(bpm float64) smf.Track {
	var track smf.Track
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName("Tempo"))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTempo(bpm))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTimeSig(4, 4, 24, 8))})
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

// noteTrack plays each note for NoteLength beats, then rests NoteGap beats.
func noteTrack(notes []Note, s Settings) smf.Track {
	hold := beatsToTicks(s.NoteLength)
	if hold == 0 {
		hold = 1
	}
	gap := beatsToTicks(s.NoteGap)

	var track smf.Track
	name := s.Name
	if name == "" {
		name = "Samples"
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(name))})

	var delta uint32
	for _, n := range notes {
		key := uint8(n.MIDI)
		if n.Name != "" {
			track = append(track, smf.Event{Delta: delta, Message: smf.Message(smf.MetaMarker(n.Name))})
			delta = 0
		}
		track = append(track, smf.Event{Delta: delta, Message: smf.Message(midi.NoteOn(s.Channel, key, s.Velocity))})
		track = append(track, smf.Event{Delta: hold, Message: smf.Message(midi.NoteOff(s.Channel, key))})
		delta = gap
	}
	track = append(track, smf.Event{Delta: delta, Message: smf.EOT})
	return track
}

func beatsToTicks(beats float64) uint32 {
	if beats <= 0 {
		return 0
	}
	return uint32(math.Round(beats * Resolution))
}
