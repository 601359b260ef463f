package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Supported audio file extensions (lowercase, with leading dot).
var audioExtensions = map[string]bool{
	".wav":  true,
	".aif":  true,
	".aiff": true,
	".mp3":  true,
	".flac": true,
}

// IsAudioFile reports whether name has a supported audio extension.
func IsAudioFile(name string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(name))]
}

// Discover lists audio files in dir and returns their base names, ordered
// by full path for a deterministic result. Hidden files (such as "._Kick.wav"
// resource forks) are ignored. With recursive set, subdirectories are walked
// too, skipping hidden directories.
func Discover(dir string, recursive bool) ([]string, error) {
	var paths []string
	if !recursive {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || isHidden(e.Name()) || !IsAudioFile(e.Name()) {
				continue
			}
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	} else {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != dir && isHidden(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !isHidden(d.Name()) && IsAudioFile(d.Name()) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(paths)
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	return names, nil
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
