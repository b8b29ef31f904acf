package file

import (
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/motif/util"
)

var ErrNotPlayable = errors.New("not a playable midi file")

// CheckPlayable returns an error unless path is a regular file with a
// .mid or .midi extension
func CheckPlayable(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrNotPlayable)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotPlayable, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrNotPlayable, path)
	}
	if !util.IsMidiPath(path) {
		return fmt.Errorf("%w: %s does not have a .mid extension", ErrNotPlayable, path)
	}
	return nil
}

// Resolve expands a directory into the midi files below it. A file path is
// returned as is.
func Resolve(path string, maxNum int) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	return util.GatherAllMidiPaths(path, maxNum)
}
