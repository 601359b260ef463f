package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/backmassage/samplenamer/internal/config"
	"github.com/backmassage/samplenamer/internal/logging"
)

// --- Discover tests ---

func TestDiscover_FiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Kick-A.wav")
	touch(t, dir, "Snare.aif")
	touch(t, dir, "Pad.aiff")
	touch(t, dir, "Loop.mp3")
	touch(t, dir, "Hat.flac")
	touch(t, dir, "readme.txt")
	touch(t, dir, "cover.jpg")

	got, err := Discover(dir, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"Hat.flac", "Kick-A.wav", "Loop.mp3", "Pad.aiff", "Snare.aif"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "KICK.WAV")
	touch(t, dir, "Snare.Flac")

	got, err := Discover(dir, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %v, want 2 files (case-insensitive ext matching)", got)
	}
}

func TestDiscover_SkipsHidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Kick.wav")
	touch(t, dir, "._Kick.wav")
	mkdir(t, dir, ".cache")
	touch(t, filepath.Join(dir, ".cache"), "Ghost.wav")

	got, err := Discover(dir, true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if want := []string{"Kick.wav"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_Recursive(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "Bass")
	mkdir(t, dir, "Keys")
	touch(t, dir, "Top.wav")
	touch(t, filepath.Join(dir, "Keys"), "Keys-C4_RR1.wav")
	touch(t, filepath.Join(dir, "Bass"), "Bass-C2_RR1.wav")

	flat, err := Discover(dir, false)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if want := []string{"Top.wav"}; !reflect.DeepEqual(flat, want) {
		t.Errorf("non-recursive got %v, want %v", flat, want)
	}

	deep, err := Discover(dir, true)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	// Ordered by full path: Bass/..., Keys/..., Top.wav.
	if want := []string{"Bass-C2_RR1.wav", "Keys-C4_RR1.wav", "Top.wav"}; !reflect.DeepEqual(deep, want) {
		t.Errorf("recursive got %v, want %v", deep, want)
	}
}

func TestDiscover_MissingDir(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope"), false); err == nil {
		t.Error("Discover on a missing dir should fail")
	}
}

// --- Input tests ---

func TestReadLines(t *testing.T) {
	got, err := ReadLines(strings.NewReader("Kick-A.wav\r\n\r\nKick-B.wav\nKick-A.wav"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Kick-A.wav", "", "Kick-B.wav", "Kick-A.wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadLines = %q, want %q", got, want)
	}
}

func TestCollectConvertInput_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "names.txt")
	writeFile(t, path, "a.wav\nb.wav\n")

	cfg := config.DefaultConfig()
	cfg.InputFile = path
	got, err := CollectConvertInput(context.Background(), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.wav", "b.wav"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg.InputFile = filepath.Join(dir, "missing.txt")
	if _, err := CollectConvertInput(context.Background(), &cfg); err == nil {
		t.Error("missing input file should fail")
	}
}

func TestCollectConvertInput_Stdin(t *testing.T) {
	withStdin(t, "x.wav\ny.wav\n")
	cfg := config.DefaultConfig()
	got, err := CollectConvertInput(context.Background(), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"x.wav", "y.wav"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCollectConvertInput_Paths(t *testing.T) {
	dir := t.TempDir()
	mkdir(t, dir, "kit")
	touch(t, filepath.Join(dir, "kit"), "Snare-A.wav")
	touch(t, filepath.Join(dir, "kit"), "notes.txt")
	touch(t, dir, "Kick-A.wav")

	cfg := config.DefaultConfig()
	cfg.InputPaths = []string{filepath.Join(dir, "Kick-A.wav"), filepath.Join(dir, "kit")}
	got, err := CollectConvertInput(context.Background(), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Kick-A.wav", "Snare-A.wav"}; !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg.InputPaths = []string{filepath.Join(dir, "gone")}
	if _, err := CollectConvertInput(context.Background(), &cfg); err == nil {
		t.Error("missing path should fail")
	}
}

func TestCollectConvertInput_Cancelled(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Kick-A.wav")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.DefaultConfig()
	cfg.InputPaths = []string{dir}
	if _, err := CollectConvertInput(ctx, &cfg); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// --- Output tests ---

func TestWriteList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteList(&buf, []string{"048-C3-Bass", "049-C#3-Bass"}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "048-C3-Bass\n049-C#3-Bass\n"; got != want {
		t.Errorf("WriteList = %q, want %q", got, want)
	}
}

func TestSaveList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists", GeneratedListFile)
	if err := SaveList(path, []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "a\nb\n" {
		t.Errorf("saved %q", string(b))
	}
}

// --- Runner tests ---

func TestRunGenerate_Octave(t *testing.T) {
	cfg := generateConfig(t, "C3-C4-Bass", nil)
	var out bytes.Buffer
	stats, err := RunGenerate(context.Background(), cfg, quietLogger(t, cfg), &out)
	if err != nil {
		t.Fatalf("RunGenerate: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 13 || lines[0] != "048-C3-Bass" || lines[12] != "060-C4-Bass" {
		t.Errorf("output = %q", lines)
	}
	if stats.Total != 13 || stats.Written != 13 || stats.Disabled != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunGenerate_Options(t *testing.T) {
	cfg := generateConfig(t, "C3-D3-Keys", func(c *config.Config) {
		c.DisableList = "D"
		c.UseFlats = true
		c.Transpose = 1
	})
	var out bytes.Buffer
	stats, err := RunGenerate(context.Background(), cfg, quietLogger(t, cfg), &out)
	if err != nil {
		t.Fatalf("RunGenerate: %v", err)
	}
	if got, want := out.String(), "060-C4-Keys\n061-Db4-Keys\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if stats.Disabled != 1 {
		t.Errorf("Disabled = %d, want 1", stats.Disabled)
	}
}

func TestRunGenerate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		disable string
		want    error
	}{
		{"unparsable", "hello", "", ErrInvalidRange},
		{"reversed", "C4-C3-Bass", "", ErrInvalidRange},
		{"all disabled", "C3-C3-Bass", "C", ErrAllDisabled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := generateConfig(t, tt.input, func(c *config.Config) { c.DisableList = tt.disable })
			var out bytes.Buffer
			_, err := RunGenerate(context.Background(), cfg, quietLogger(t, cfg), &out)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if out.Len() != 0 {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestRunGenerate_OutputAndMIDIFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := generateConfig(t, "A0-C1-Piano", func(c *config.Config) {
		c.OutputFile = filepath.Join(dir, GeneratedListFile)
		c.MIDIFile = filepath.Join(dir, "piano.mid")
	})
	var out bytes.Buffer
	if _, err := RunGenerate(context.Background(), cfg, quietLogger(t, cfg), &out); err != nil {
		t.Fatalf("RunGenerate: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty with --output, got %q", out.String())
	}
	b, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "021-A0-Piano\n022-A#0-Piano\n023-B0-Piano\n024-C1-Piano\n"; got != want {
		t.Errorf("saved list = %q, want %q", got, want)
	}
	if fi, err := os.Stat(cfg.MIDIFile); err != nil || fi.Size() == 0 {
		t.Errorf("MIDI file not written: %v", err)
	}
}

func TestRunConvert(t *testing.T) {
	withStdin(t, "Kick-B.wav\nKick-A.wav\n\n060-C4-Snare_RR1.wav\n")
	cfg := config.DefaultConfig()
	cfg.Command = config.CommandConvert
	cfg.AddMIDIPrefix = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	stats, err := RunConvert(context.Background(), &cfg, quietLogger(t, &cfg), &out)
	if err != nil {
		t.Fatalf("RunConvert: %v", err)
	}
	want := "Kick_RR1\nKick_RR2\n060_060-C4-Snare_RR1\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
	if stats.Written != 3 || stats.Groups != 2 || stats.Prefixed != 1 || stats.Unprefixed() != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunConvert_NoFiles(t *testing.T) {
	withStdin(t, "\n  \n")
	cfg := config.DefaultConfig()
	cfg.Command = config.CommandConvert
	var out bytes.Buffer
	_, err := RunConvert(context.Background(), &cfg, quietLogger(t, &cfg), &out)
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("err = %v, want ErrNoFiles", err)
	}
}

func TestCountNonBlank(t *testing.T) {
	tests := []struct {
		lines []string
		want  int
	}{
		{nil, 0},
		{[]string{"", "  ", "\t"}, 0},
		{[]string{"Kick-A.wav", "", " Kick-B.wav "}, 2},
	}
	for _, tt := range tests {
		if got := CountNonBlank(tt.lines); got != tt.want {
			t.Errorf("CountNonBlank(%q) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

// --- helpers ---

func generateConfig(t *testing.T, input string, mutate func(*config.Config)) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Command = config.CommandGenerate
	cfg.RangeInput = input
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return &cfg
}

func quietLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	c := *cfg
	c.ColorMode = config.ColorNever
	log, err := logging.NewLogger(&c)
	if err != nil {
		t.Fatal(err)
	}
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.Close() })
	return log
}

func withStdin(t *testing.T, s string) {
	t.Helper()
	old := stdin
	stdin = strings.NewReader(s)
	t.Cleanup(func() { stdin = old })
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, name), "")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func mkdir(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, name), 0o755); err != nil {
		t.Fatal(err)
	}
}
