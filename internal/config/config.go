// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults are sharp spelling, no transpose and no MIDI prefix.
package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/backmassage/samplenamer/internal/rangegen"
)

// --- Enum types for validated string fields ---

// Command selects which tool runs.
type Command string

const (
	CommandGenerate Command = "generate" // Range -> filenames.
	CommandConvert  Command = "convert"  // Existing filenames -> round-robin names.
	CommandTUI      Command = "tui"      // Interactive session for both tools.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Limits enforced by [Config.Validate].
const (
	MaxTranspose = 10
	MinVelocity  = 1
	MaxVelocity  = 127
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	Command Command

	// Generator.
	RangeInput   string // "<start>-<end>-<label>" positional.
	Transpose    int    // Octaves. Default: 0.
	UseFlats     bool   // Default: false (sharp names).
	DisableList  string // Raw --disable value, e.g. "C#,F".
	Disabled     rangegen.ClassSet
	MIDIFile     string  // Optional sampling-sequence output path.
	NoteLength   float64 // Beats per sampled note. Default: 4.
	NoteGap      float64 // Beats of silence after each note. Default: 2.
	Velocity     int     // Default: 100.
	Tempo        float64 // BPM for the sampling sequence. Default: 120.
	MIDIChannel  int     // 0-15. Default: 0.

	// Converter.
	InputFile     string   // Read names from file ("-" for stdin).
	InputPaths    []string // Positional files/dirs; dirs are scanned for audio files.
	Recursive     bool     // Walk directories recursively.
	AddMIDIPrefix bool     // Default: false.
	LocaleName    string   // BCP 47 tag for collation. Default: "en".
	Locale        language.Tag

	// Output.
	OutputFile string // Write the name list to file instead of stdout.

	// Display and logging.
	Verbose   bool
	Quiet     bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config with every default applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		Command:     CommandTUI,
		Transpose:   0,
		UseFlats:    false,
		NoteLength:  4,
		NoteGap:     2,
		Velocity:    100,
		Tempo:       120,
		MIDIChannel: 0,
		LocaleName:  "en",
		Locale:      language.English,
		ColorMode:   ColorAuto,
	}
}

// Validate checks enum and numeric fields and resolves derived values
// (disabled class set, collation locale). Command-specific inputs are
// checked only for the command that needs them.
func (c *Config) Validate() error {
	switch c.Command {
	case CommandGenerate, CommandConvert, CommandTUI:
		// valid
	default:
		return fmt.Errorf("invalid command %q (use 'generate', 'convert' or 'tui')", c.Command)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Transpose < -MaxTranspose || c.Transpose > MaxTranspose {
		return fmt.Errorf("transpose must be between -%d and +%d octaves (got %d)", MaxTranspose, MaxTranspose, c.Transpose)
	}
	if c.Velocity < MinVelocity || c.Velocity > MaxVelocity {
		return fmt.Errorf("velocity must be between %d and %d (got %d)", MinVelocity, MaxVelocity, c.Velocity)
	}
	if c.NoteLength <= 0 {
		return errors.New("note length must be positive")
	}
	if c.NoteGap < 0 {
		return errors.New("note gap must not be negative")
	}
	if c.Tempo <= 0 {
		return errors.New("tempo must be positive")
	}
	if c.MIDIChannel < 0 || c.MIDIChannel > 15 {
		return fmt.Errorf("MIDI channel must be between 0 and 15 (got %d)", c.MIDIChannel)
	}

	disabled, err := rangegen.ParseClassList(c.DisableList)
	if err != nil {
		return fmt.Errorf("invalid --disable list: %w", err)
	}
	c.Disabled = disabled

	tag, err := parseLocale(c.LocaleName)
	if err != nil {
		return err
	}
	c.Locale = tag

	if c.Quiet && c.Verbose {
		return errors.New("--quiet and --verbose are mutually exclusive")
	}

	switch c.Command {
	case CommandGenerate:
		if strings.TrimSpace(c.RangeInput) == "" {
			return errors.New("generate needs a range like C3-C4-Bass")
		}
	case CommandConvert:
		if c.InputFile != "" && len(c.InputPaths) > 0 {
			return errors.New("use either --input or positional paths, not both")
		}
	}
	return nil
}

// parseLocale resolves a BCP 47 tag; an empty name selects English.
func parseLocale(name string) (language.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return language.English, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	return tag, nil
}
