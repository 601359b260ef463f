// Package naming renumbers existing sample filenames as round-robin sets.
//
// Each input name is decomposed by a fixed sequence of extraction steps,
// each of which leaves its input unchanged when its pattern does not
// match:
//
//	StripExtension   ".wav", ".aif", ".aiff", ".mp3", ".flac" (any case)
//	StripRoundRobin  trailing "_RR<n>"
//	CoreBase         trailing "-<UPPERCASE/DIGIT token>" unique ID
//	ExtractNoteToken first "-<note>-" such as "-F#5-"
//
// Names that share a core base form a group. Groups are emitted in the
// order their first member appears; members are sorted with a locale
// collator and renamed "<core>_RR1", "<core>_RR2", ... Optionally the
// decoded note token is prepended as a 3-digit MIDI number.
//
// Split: rules.go (patterns and steps), parser.go (decomposition),
// normalize.go (grouping, sorting, renaming).
package naming
