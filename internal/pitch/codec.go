package pitch

import (
	"regexp"
	"strconv"
	"strings"
)

// Spelling selects sharp or flat names for the five black-key classes.
type Spelling int

const (
	Sharps Spelling = iota
	Flats
)

// String returns "sharps" or "flats".
func (s Spelling) String() string {
	if s == Flats {
		return "flats"
	}
	return "sharps"
}

var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// reNote matches a complete note string: class then octave digits.
var reNote = regexp.MustCompile(`^([A-G][#b]?)(\d+)$`)

// reClass matches the leading class of a note string.
var reClass = regexp.MustCompile(`^[A-G][#b]?`)

// NoteToMIDI decodes a note such as "F#5" or "Gb3". The whole string must
// be a note; the class is looked up in the sharp table first, then the flat
// table. ok is false for anything else ("H2", "Cb4", "C#", "c4").
func NoteToMIDI(note string) (midi int, ok bool) {
	m := reNote.FindStringSubmatch(note)
	if m == nil {
		return 0, false
	}
	idx, ok := ClassIndex(m[1])
	if !ok {
		return 0, false
	}
	octave, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	return (octave+1)*12 + idx, true
}

// MIDIToNote renders midi as "<name><octave>". There is no range check:
// negative or huge values give syntactically valid names ("B-2", "G9").
func MIDIToNote(midi int, s Spelling) string {
	octave := floorDiv(midi, 12) - 1
	return className(floorMod(midi, 12), s) + strconv.Itoa(octave)
}

// ClassIndex returns the 0-11 position of a class name in either spelling.
func ClassIndex(class string) (int, bool) {
	for i, n := range sharpNames {
		if n == class {
			return i, true
		}
	}
	for i, n := range flatNames {
		if n == class {
			return i, true
		}
	}
	return 0, false
}

// SharpClass returns the sharp spelling of pitch class index (mod 12).
func SharpClass(index int) string {
	return sharpNames[floorMod(index, 12)]
}

// Classes returns the 12 sharp class names in pitch order.
func Classes() []string {
	out := make([]string, len(sharpNames))
	copy(out, sharpNames[:])
	return out
}

// IsBlackKey reports whether the class index is an accidental.
func IsBlackKey(index int) bool {
	switch floorMod(index, 12) {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

// Class returns the letter+accidental prefix of a note string ("F#" for
// "F#5"). ok is false when the string does not start with a class.
func Class(note string) (string, bool) {
	c := reClass.FindString(note)
	return c, c != ""
}

// Pad left-fills the decimal form of midi with "0" to three characters.
// The sign counts as a character, so -9 pads to "0-9"; -12 and 1000 are
// already wide enough and come back unchanged.
func Pad(midi int) string {
	s := strconv.Itoa(midi)
	if n := 3 - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return s
}

// CanonicalNote fixes the case of user-typed notes and classes: the letter
// is upper-cased and an accidental "b" or "B" becomes "b", so "db3" and
// "DB3" both read as "Db3" and "eb" reads as "Eb". Other input is
// upper-cased.
func CanonicalNote(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) < 2 {
		return strings.ToUpper(s)
	}
	letter := strings.ToUpper(s[:1])
	rest := s[1:]
	switch rest[0] {
	case 'b', 'B':
		if len(rest) == 1 || isDigits(rest[1:]) {
			return letter + "b" + rest[1:]
		}
	case '#':
		return letter + rest
	}
	return letter + strings.ToUpper(rest)
}

func className(index int, s Spelling) string {
	if s == Flats {
		return flatNames[index]
	}
	return sharpNames[index]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
