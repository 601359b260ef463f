package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Default file names for saved lists.
const (
	GeneratedListFile = "audio-files.txt"
	ConvertedListFile = "converted-audio-files.txt"
)

// WriteList writes names one per line with nothing else around them.
func WriteList(w io.Writer, names []string) error {
	bw := bufio.NewWriter(w)
	for _, n := range names {
		if _, err := bw.WriteString(n + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveList writes names to path, creating parent directories.
func SaveList(path string, names []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := WriteList(f, names); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
