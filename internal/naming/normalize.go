package naming

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/backmassage/samplenamer/internal/pitch"
)

// Options controls a normalization pass.
type Options struct {
	AddMIDIPrefix bool         // prepend "<MIDI>_" when a note token decodes
	Locale        language.Tag // collation locale; language.Und means English
}

// Renamed is one output entry.
type Renamed struct {
	Original string // trimmed input line
	Name     string // new name
	Group    string // core base shared by the round-robin set
	Index    int    // 1-based position within the group
	MIDI     int    // prefixed MIDI number when HasMIDI
	HasMIDI  bool
}

// Group is the set of inputs sharing one core base, in sorted order.
type Group struct {
	Core    string
	Members []RawFilename
}

// GroupFiles decomposes lines, drops blanks and groups by core base.
// Groups keep the order in which their first member appeared; members
// keep input order until [SortGroup] is applied.
func GroupFiles(lines []string) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := Decompose(line)
		i, ok := index[r.CoreBase]
		if !ok {
			i = len(groups)
			index[r.CoreBase] = i
			groups = append(groups, Group{Core: r.CoreBase})
		}
		groups[i].Members = append(groups[i].Members, r)
	}
	return groups
}

// NewCollator returns the collator used to order group members. The zero
// tag selects English.
func NewCollator(tag language.Tag) *collate.Collator {
	if tag == language.Und {
		tag = language.English
	}
	return collate.New(tag)
}

// SortGroup orders members by original name using c. Names the collator
// considers equal fall back to byte order so the result does not depend
// on input order.
func SortGroup(g *Group, c *collate.Collator) {
	sort.SliceStable(g.Members, func(i, j int) bool {
		a, b := g.Members[i].Original, g.Members[j].Original
		if cmp := c.CompareString(a, b); cmp != 0 {
			return cmp < 0
		}
		return a < b
	})
}

// Normalize renumbers lines as round-robin sets. Blank lines are
// skipped. The result lists each group in first-seen order with its
// members sorted and numbered from 1.
func Normalize(lines []string, opts Options) []Renamed {
	groups := GroupFiles(lines)
	coll := NewCollator(opts.Locale)

	var out []Renamed
	for gi := range groups {
		g := &groups[gi]
		SortGroup(g, coll)
		for i, m := range g.Members {
			r := Renamed{
				Original: m.Original,
				Group:    g.Core,
				Index:    i + 1,
				Name:     g.Core + "_RR" + strconv.Itoa(i+1),
			}
			if opts.AddMIDIPrefix {
				if midi, ok := m.MIDI(); ok {
					r.MIDI, r.HasMIDI = midi, true
					r.Name = pitch.Pad(midi) + "_" + r.Name
				}
			}
			out = append(out, r)
		}
	}
	return out
}

// Names returns the new names of rs in order.
func Names(rs []Renamed) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}
