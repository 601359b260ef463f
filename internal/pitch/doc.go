// Package pitch converts between note names and MIDI numbers.
//
// Convention: MIDI 0 is C-1, so middle C (60) is C4. Octave is
// floor(midi/12) - 1 and the pitch class is the floor modulus, which keeps
// negative MIDI values inside the 12-entry name tables.
//
// Two spellings are supported on the MIDI -> name direction:
//
//	Sharps: C C# D D# E F F# G G# A A# B
//	Flats:  C Db D Eb E F Gb G Ab A Bb B
//
// The name -> MIDI direction accepts either spelling.
package pitch
