package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into generator, converter, output, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, unknown command).
//
// Flags may appear before or after the command and its positional
// arguments: "samplenamer -t 1 generate C3-C4-Bass" and
// "samplenamer generate C3-C4-Bass -t 1" are equivalent.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("samplenamer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(os.Stderr, version) }

	var negated negatedFlags

	defineGeneratorFlags(fs, cfg)
	defineConverterFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		if err == flag.ErrHelp {
			negated.showHelp = true
		} else {
			return err
		}
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "samplenamer v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(positional, cfg)
}

// parseInterleaved runs fs.Parse repeatedly so that flags following a
// positional argument are still recognized. Positionals are returned in
// order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return positional, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either override a default (noColor -> ColorNever) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineGeneratorFlags registers -t/--transpose, --flats, --disable and the sampling-sequence flags.
func defineGeneratorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Transpose, "transpose", cfg.Transpose, "Transpose by octaves (e.g. 1, -2)")
	fs.IntVar(&cfg.Transpose, "t", cfg.Transpose, "Same as --transpose")
	fs.BoolVar(&cfg.UseFlats, "flats", cfg.UseFlats, "Spell accidentals as flats (Db, Eb, ...)")
	fs.StringVar(&cfg.DisableList, "disable", cfg.DisableList, "Note classes to skip, e.g. C#,F")
	fs.StringVar(&cfg.MIDIFile, "midi", cfg.MIDIFile, "Also write a MIDI sampling sequence to path")
	fs.Float64Var(&cfg.NoteLength, "note-length", cfg.NoteLength, "Beats per sampled note")
	fs.Float64Var(&cfg.NoteGap, "gap", cfg.NoteGap, "Beats of silence between notes")
	fs.IntVar(&cfg.Velocity, "velocity", cfg.Velocity, "Note velocity (1-127)")
	fs.Float64Var(&cfg.Tempo, "tempo", cfg.Tempo, "Sequence tempo in BPM")
	fs.IntVar(&cfg.MIDIChannel, "channel", cfg.MIDIChannel, "MIDI channel (0-15)")
}

// defineConverterFlags registers -i/--input, -r/--recursive, -a/--add-midi, --locale.
func defineConverterFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InputFile, "input", cfg.InputFile, "Read filenames from file (- for stdin)")
	fs.StringVar(&cfg.InputFile, "i", cfg.InputFile, "Same as --input")
	fs.BoolVar(&cfg.Recursive, "recursive", cfg.Recursive, "Scan directories recursively")
	fs.BoolVar(&cfg.Recursive, "r", cfg.Recursive, "Same as --recursive")
	fs.BoolVar(&cfg.AddMIDIPrefix, "add-midi", cfg.AddMIDIPrefix, "Prefix names with the MIDI number of their note token")
	fs.BoolVar(&cfg.AddMIDIPrefix, "a", cfg.AddMIDIPrefix, "Same as --add-midi")
	fs.StringVar(&cfg.LocaleName, "locale", cfg.LocaleName, "Collation locale for sorting (BCP 47)")
}

// defineOutputFlags registers -o/--output.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.OutputFile, "output", cfg.OutputFile, "Write names to file instead of stdout")
	fs.StringVar(&cfg.OutputFile, "o", cfg.OutputFile, "Same as --output")
}

// defineDisplayFlags registers --color, --no-color, verbose, quiet, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only print names and errors")
	fs.BoolVar(&cfg.Quiet, "q", false, "Same as --quiet")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Command and its inputs. With no positionals the
// interactive session is selected.
func parsePositionalArgs(args []string, cfg *Config) error {
	if len(args) == 0 {
		cfg.Command = CommandTUI
		return nil
	}
	cmd, err := parseCommand(args[0])
	if err != nil {
		return err
	}
	cfg.Command = cmd
	rest := args[1:]

	switch cmd {
	case CommandGenerate:
		// "C3 - C4 - Bass" may arrive as several words.
		cfg.RangeInput = strings.Join(rest, " ")
	case CommandConvert:
		cfg.InputPaths = rest
	case CommandTUI:
		if len(rest) > 0 {
			cfg.RangeInput = strings.Join(rest, " ")
		}
	}
	return nil
}

// parseCommand accepts a command name or its one-letter alias.
func parseCommand(s string) (Command, error) {
	switch strings.ToLower(s) {
	case "generate", "gen", "g":
		return CommandGenerate, nil
	case "convert", "conv", "c":
		return CommandConvert, nil
	case "tui", "ui":
		return CommandTUI, nil
	}
	return "", fmt.Errorf("unknown command %q (use 'generate', 'convert' or 'tui')", s)
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "samplenamer v" + version + " - sample filename generator and round-robin renamer"},
		{"", ""},
		{"  samplenamer [OPTIONS] generate <start>-<end>-<label>", ""},
		{"  samplenamer [OPTIONS] convert [files|dirs...]", ""},
		{"  samplenamer [OPTIONS] [tui]", ""},
		{"", ""},
		{"Generate", ""},
		{"  -t, --transpose <n>", "Transpose by octaves (default: 0)"},
		{"  --flats", "Spell accidentals as flats"},
		{"  --disable <classes>", "Skip note classes, e.g. C#,F"},
		{"  --midi <path>", "Write a MIDI sampling sequence"},
		{"  --note-length <beats>", "Sampled note length (default: 4)"},
		{"  --gap <beats>", "Silence between notes (default: 2)"},
		{"  --velocity <1-127>", "Note velocity (default: 100)"},
		{"  --tempo <bpm>", "Sequence tempo (default: 120)"},
		{"  --channel <0-15>", "MIDI channel (default: 0)"},
		{"", ""},
		{"Convert", ""},
		{"  -i, --input <path>", "Read filenames from file (- for stdin)"},
		{"  -r, --recursive", "Scan directories recursively"},
		{"  -a, --add-midi", "Prefix names with MIDI number of note token"},
		{"  --locale <tag>", "Collation locale (default: en)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --output <path>", "Write names to file instead of stdout"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"  -q, --quiet", "Only print names and errors"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
