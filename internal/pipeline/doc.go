// Package pipeline runs one command end to end: gather input, apply the
// naming core, write the resulting list and report stats.
//
// Generate:
//
//	range line -> rangegen.Generate -> names (-> optional MIDI sequence)
//
// Convert:
//
//	--input file | stdin | paths (dirs scanned for audio) -> naming.Normalize -> names
//
// Names are written one per line to stdout or to --output; progress and
// warnings go through the logger to stderr.
package pipeline
