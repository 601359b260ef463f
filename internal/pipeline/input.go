package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/samplenamer/internal/config"
)

// stdin is the reader used for "-" and for convert without inputs.
var stdin io.Reader = os.Stdin

// ReadLines returns every line of r with trailing "\r" removed. Blank lines
// are kept; the normalizer skips them.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// CollectConvertInput gathers the names to convert, in this order of
// precedence: --input (a file, or "-" for stdin), positional paths (files
// by base name, directories scanned for audio files), then stdin.
// Cancellation is checked between paths.
func CollectConvertInput(ctx context.Context, cfg *config.Config) ([]string, error) {
	switch {
	case cfg.InputFile == "-":
		return readFrom(stdin, "stdin")
	case cfg.InputFile != "":
		f, err := os.Open(cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		return readFrom(f, cfg.InputFile)
	case len(cfg.InputPaths) == 0:
		return readFrom(stdin, "stdin")
	}

	var names []string
	for _, p := range cfg.InputPaths {
		if err := ctx.Err(); err != nil {
			return names, err
		}
		fi, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("input not found: %w", err)
		}
		if !fi.IsDir() {
			names = append(names, filepath.Base(p))
			continue
		}
		found, err := Discover(p, cfg.Recursive)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", p, err)
		}
		names = append(names, found...)
	}
	return names, nil
}

func readFrom(r io.Reader, label string) ([]string, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", label, err)
	}
	return lines, nil
}
