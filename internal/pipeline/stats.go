package pipeline

// RunStats tracks counters for one generate or convert run.
type RunStats struct {
	Total    int // notes in the range, or non-blank input names
	Written  int // names emitted
	Disabled int // generate: notes dropped by the class filter
	Groups   int // convert: distinct round-robin groups
	Prefixed int // convert: names that received a MIDI prefix
}

// Unprefixed returns how many emitted names lacked a decodable note token
// when a MIDI prefix was requested.
func (s *RunStats) Unprefixed() int {
	return s.Written - s.Prefixed
}
