package files_manager

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Stamp records whether a path existed and when it was last modified.
// The zero Stamp stands for a path that did not exist.
type Stamp struct {
	Exists  bool
	ModTime time.Time
}

func StatOutput(path string) (Stamp, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Stamp{}, nil
	}
	if err != nil {
		return Stamp{}, fmt.Errorf("error checking %s: %w", path, err)
	}
	return Stamp{Exists: true, ModTime: info.ModTime()}, nil
}

// UpdatedSince reports whether s shows a write that happened after before.
func (s Stamp) UpdatedSince(before Stamp) bool {
	if !s.Exists {
		return false
	}
	if !before.Exists {
		return true
	}
	return !s.ModTime.Equal(before.ModTime)
}
