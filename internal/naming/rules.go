package naming

import (
	"regexp"
	"strconv"
)

// --- Compiled step patterns (each anchored where it applies) ---

var (
	// reAudioExt matches a recognized audio extension at the end of a name.
	reAudioExt = regexp.MustCompile(`(?i)\.(wav|aif|mp3|flac|aiff)$`)

	// reRoundRobin matches an existing round-robin suffix.
	reRoundRobin = regexp.MustCompile(`_RR(\d+)$`)

	// reUniqueID matches a trailing unique-ID segment. Case-sensitive:
	// "-A", "-01", "-X7" match; "-Snare" does not.
	reUniqueID = regexp.MustCompile(`-([A-Z0-9]+)$`)

	// reNoteToken matches a note surrounded by hyphens, e.g. "-A#4-".
	reNoteToken = regexp.MustCompile(`-([A-G][#b]?\d+)-`)
)

// StripExtension removes a recognized audio extension. ext keeps the
// original case and leading dot; it is empty when nothing was removed.
func StripExtension(name string) (base, ext string) {
	loc := reAudioExt.FindStringIndex(name)
	if loc == nil {
		return name, ""
	}
	return name[:loc[0]], name[loc[0]:]
}

// StripRoundRobin removes a trailing "_RR<n>" suffix and reports n.
func StripRoundRobin(base string) (baseNoRR string, rr int, ok bool) {
	m := reRoundRobin.FindStringSubmatchIndex(base)
	if m == nil {
		return base, 0, false
	}
	n, err := strconv.Atoi(base[m[2]:m[3]])
	if err != nil {
		// Digits overflowing int still count as a suffix.
		n = 0
	}
	return base[:m[0]], n, true
}

// CoreBase removes a trailing "-<ID>" token made of uppercase letters and
// digits. id is the token without its hyphen, or empty.
func CoreBase(baseNoRR string) (core, id string) {
	m := reUniqueID.FindStringSubmatchIndex(baseNoRR)
	if m == nil {
		return baseNoRR, ""
	}
	return baseNoRR[:m[0]], baseNoRR[m[2]:m[3]]
}

// ExtractNoteToken returns the first hyphen-delimited note in base, such
// as "C4" from "060-C4-Snare". The token is not validated against the
// note tables; "Cb4" is returned and later fails to decode.
func ExtractNoteToken(base string) (string, bool) {
	m := reNoteToken.FindStringSubmatch(base)
	if m == nil {
		return "", false
	}
	return m[1], true
}
