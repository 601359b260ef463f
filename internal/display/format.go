// Package display formats counts, labels and status lines shared by the
// line-oriented commands and the interactive session.
package display

import (
	"fmt"
	"strconv"

	"github.com/backmassage/samplenamer/internal/rangegen"
)

// Status lines for the empty-result states.
const (
	MsgNoRange     = "Enter a range like C3-C4-Bass"
	MsgAllDisabled = "All notes disabled for this range"
	MsgNoFiles     = "No valid audio files found"
)

// NoteCount returns "13 notes" or "11 notes (2 disabled)".
func NoteCount(total, disabled int) string {
	s := plural(total-disabled, "note", "notes")
	if disabled > 0 {
		s += fmt.Sprintf(" (%d disabled)", disabled)
	}
	return s
}

// FileCount returns "1 file" or "3 files".
func FileCount(n int) string {
	return plural(n, "file", "files")
}

// StatusMessage returns the line shown for a generation status. Blank
// input and StatusOK have no message.
func StatusMessage(s rangegen.Status) string {
	switch s {
	case rangegen.StatusUnparsable:
		return MsgNoRange
	case rangegen.StatusAllDisabled:
		return MsgAllDisabled
	}
	return ""
}

// ConvertMessage returns the converter status line given the number of
// non-blank input lines and of converted names. Blank input has no
// message.
func ConvertMessage(inputs, converted int) string {
	if inputs > 0 && converted == 0 {
		return MsgNoFiles
	}
	return ""
}

// TransposeLabel renders an octave offset with an explicit sign: "+1", "0", "-2".
func TransposeLabel(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
