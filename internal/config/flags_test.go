package config

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestParseFlags_Generate(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{"-t", "-1", "--flats", "generate", "C3-C4-Bass", "--disable", "C#,F"}
	if err := ParseFlags(&cfg, args, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Command != CommandGenerate {
		t.Errorf("Command = %q, want generate", cfg.Command)
	}
	if cfg.RangeInput != "C3-C4-Bass" {
		t.Errorf("RangeInput = %q", cfg.RangeInput)
	}
	if cfg.Transpose != -1 || !cfg.UseFlats || cfg.DisableList != "C#,F" {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestParseFlags_GenerateSplitRange(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseFlags(&cfg, []string{"gen", "C3", "-", "C4", "-", "Soft", "Pad"}, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.RangeInput != "C3 - C4 - Soft Pad" {
		t.Errorf("RangeInput = %q", cfg.RangeInput)
	}
}

func TestParseFlags_Convert(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{"convert", "-a", "kicks/", "snares/", "-r", "--locale", "de"}
	if err := ParseFlags(&cfg, args, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Command != CommandConvert || !cfg.AddMIDIPrefix || !cfg.Recursive || cfg.LocaleName != "de" {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if want := []string{"kicks/", "snares/"}; !reflect.DeepEqual(cfg.InputPaths, want) {
		t.Errorf("InputPaths = %v, want %v", cfg.InputPaths, want)
	}
}

func TestParseFlags_DefaultsToTUI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Command = CommandConvert
	if err := ParseFlags(&cfg, []string{"--no-color"}, "test"); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Command != CommandTUI {
		t.Errorf("Command = %q, want tui", cfg.Command)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"explode"}},
		{"unknown flag", []string{"--bogus", "generate", "C3-C4-x"}},
		{"bad int", []string{"-t", "up", "generate", "C3-C4-x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseFlags(&cfg, tt.args, "test"); err == nil {
				t.Errorf("ParseFlags(%v) should fail", tt.args)
			}
		})
	}
}

func TestApplyNegatedFlags_ColorPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	applyNegatedFlags(&cfg, &negatedFlags{forceColor: true, noColor: true})
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, --no-color should win", cfg.ColorMode)
	}
	cfg = DefaultConfig()
	applyNegatedFlags(&cfg, &negatedFlags{forceColor: true})
	if cfg.ColorMode != ColorAlways {
		t.Errorf("ColorMode = %q, want always", cfg.ColorMode)
	}
}

func TestPrintUsage_MentionsCommands(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, "1.2.3")
	out := buf.String()
	for _, want := range []string{"samplenamer v1.2.3", "generate", "convert", "--add-midi", "--transpose"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
