package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrInputNotFound is returned when a day's input file does not exist.
var ErrInputNotFound = errors.New("input not found")

// InputPath returns the conventional input location of day inside dir,
// e.g. inputs/day_05.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("day_%02d.txt", day))
}

// ReadInput reads the input of day from dir.
func ReadInput(dir string, day int) (string, error) {
	path := InputPath(dir, day)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("reading input %s: %w", path, err)
	}
	return string(data), nil
}
