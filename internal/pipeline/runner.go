package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/samplenamer/internal/config"
	"github.com/backmassage/samplenamer/internal/display"
	"github.com/backmassage/samplenamer/internal/logging"
	"github.com/backmassage/samplenamer/internal/midiexport"
	"github.com/backmassage/samplenamer/internal/naming"
	"github.com/backmassage/samplenamer/internal/pitch"
	"github.com/backmassage/samplenamer/internal/rangegen"
)

// Errors for runs that produce no names.
var (
	ErrInvalidRange = errors.New("invalid range")
	ErrAllDisabled  = errors.New("all notes disabled")
	ErrNoFiles      = errors.New("no input names")
)

// GenerateOptions builds the rendering options carried by cfg.
func GenerateOptions(cfg *config.Config) rangegen.Options {
	opts := rangegen.Options{
		Transpose: cfg.Transpose,
		Spelling:  pitch.Sharps,
		Disabled:  cfg.Disabled,
	}
	if cfg.UseFlats {
		opts.Spelling = pitch.Flats
	}
	return opts
}

// ConvertOptions builds the normalizer options carried by cfg.
func ConvertOptions(cfg *config.Config) naming.Options {
	return naming.Options{AddMIDIPrefix: cfg.AddMIDIPrefix, Locale: cfg.Locale}
}

// RunGenerate expands cfg.RangeInput and writes the names to w, or to
// cfg.OutputFile when set. With cfg.MIDIFile set, a sampling sequence for
// the same notes is written as well.
func RunGenerate(ctx context.Context, cfg *config.Config, log *logging.Logger, w io.Writer) (RunStats, error) {
	var stats RunStats
	if err := ctx.Err(); err != nil {
		return stats, err
	}

	opts := GenerateOptions(cfg)
	res := rangegen.Generate(cfg.RangeInput, opts)
	stats.Total = len(res.Notes)
	stats.Disabled = res.Disabled

	switch res.Status {
	case rangegen.StatusNoInput, rangegen.StatusUnparsable:
		// A one-shot run always needs a range, so blank input gets the prompt too.
		log.Warn("%s", display.MsgNoRange)
		return stats, fmt.Errorf("%w: %q", ErrInvalidRange, cfg.RangeInput)
	case rangegen.StatusAllDisabled:
		log.Warn("%s", display.StatusMessage(res.Status))
		return stats, ErrAllDisabled
	}

	log.Info("%s to %s (%s), transpose %s, %s",
		res.Spec.Start, res.Spec.End, res.Spec.Label,
		display.TransposeLabel(cfg.Transpose), opts.Spelling)
	if cfg.Disabled.Len() > 0 {
		log.Debug("Disabled classes: %s", cfg.Disabled)
	}

	if err := emit(cfg, log, w, res.Filenames); err != nil {
		return stats, err
	}
	stats.Written = len(res.Filenames)
	log.Success("Generated %s", display.NoteCount(stats.Total, stats.Disabled))

	if cfg.MIDIFile != "" {
		if err := writeSequence(cfg, log, res, opts); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// RunConvert collects input names, renumbers them as round-robin sets and
// writes the result to w, or to cfg.OutputFile when set.
func RunConvert(ctx context.Context, cfg *config.Config, log *logging.Logger, w io.Writer) (RunStats, error) {
	var stats RunStats
	lines, err := CollectConvertInput(ctx, cfg)
	if err != nil {
		return stats, err
	}

	renamed := naming.Normalize(lines, ConvertOptions(cfg))
	stats.Total = len(renamed)
	if len(renamed) == 0 {
		if msg := display.ConvertMessage(CountNonBlank(lines), 0); msg != "" {
			log.Warn("%s", msg)
		} else {
			log.Warn("No filenames given")
		}
		return stats, ErrNoFiles
	}

	groups := make(map[string]bool)
	for _, r := range renamed {
		groups[r.Group] = true
		if r.HasMIDI {
			stats.Prefixed++
		}
		log.Debug("%s -> %s", r.Original, r.Name)
	}
	stats.Groups = len(groups)

	if err := emit(cfg, log, w, naming.Names(renamed)); err != nil {
		return stats, err
	}
	stats.Written = len(renamed)

	log.Success("Converted %s into %d round-robin groups", display.FileCount(stats.Written), stats.Groups)
	if cfg.AddMIDIPrefix && stats.Unprefixed() > 0 {
		log.Warn("%s had no note token and were left without a MIDI prefix", display.FileCount(stats.Unprefixed()))
	}
	return stats, nil
}

// emit writes names to the configured destination.
func emit(cfg *config.Config, log *logging.Logger, w io.Writer, names []string) error {
	if cfg.OutputFile == "" {
		if err := WriteList(w, names); err != nil {
			return fmt.Errorf("write names: %w", err)
		}
		return nil
	}
	if err := SaveList(cfg.OutputFile, names); err != nil {
		return err
	}
	log.Info("Saved %s to %s", display.FileCount(len(names)), cfg.OutputFile)
	return nil
}

func writeSequence(cfg *config.Config, log *logging.Logger, res rangegen.Result, opts rangegen.Options) error {
	nums := rangegen.MIDINumbers(res.Notes, opts)
	notes := make([]midiexport.Note, len(nums))
	for i, n := range nums {
		notes[i] = midiexport.Note{MIDI: n, Name: res.Filenames[i]}
	}

	settings := midiexport.SettingsFromConfig(cfg)
	settings.Name = res.Spec.Label
	rep, err := midiexport.SaveSequence(cfg.MIDIFile, notes, settings)
	for _, n := range rep.Skipped {
		log.Warn("MIDI note %d is outside 0-127, left out of %s", n, cfg.MIDIFile)
	}
	if err != nil {
		return fmt.Errorf("write MIDI sequence: %w", err)
	}
	log.Success("Wrote %d-note sampling sequence to %s", rep.Written, cfg.MIDIFile)
	return nil
}

// CountNonBlank returns how many lines hold more than whitespace.
func CountNonBlank(lines []string) int {
	n := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
