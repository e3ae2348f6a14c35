package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrInvalidName is returned when a directory contains a name that is not valid UTF-8.
var ErrInvalidName = errors.New("entry name is not valid UTF-8")

// Lister enumerates the immediate children of a directory.
type Lister interface {
	List(path string) ([]Entry, error)
}

// OSLister lists directories on the local filesystem.
type OSLister struct{}

// List implements Lister.
func (OSLister) List(path string) ([]Entry, error) {
	return ListDirectory(path)
}

// statFn is overridable in tests.
var statFn = os.Stat

// ListDirectory returns the entries of path with every directory ahead of
// every file. Within each group the raw enumeration order is kept; names are
// never sorted. Items that are neither a directory nor a regular file (after
// following symlinks) are skipped.
func ListDirectory(path string) ([]Entry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}
	defer func() {
		_ = dir.Close()
	}()

	// (*os.File).ReadDir keeps directory order; os.ReadDir would sort.
	raw, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	var dirs, files []Entry
	for _, e := range raw {
		name := e.Name()
		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("cannot read directory %s: %w: %q", path, ErrInvalidName, name)
		}

		fullPath := filepath.Join(path, name)
		if skipPlatformEntry(fullPath) {
			continue
		}

		kind, ok := entryKind(e, fullPath)
		if !ok {
			continue
		}

		switch kind {
		case KindDirectory:
			dirs = append(dirs, Entry{Name: name, Kind: KindDirectory})
		default:
			files = append(files, Entry{Name: name, Kind: KindFile})
		}
	}

	entries := make([]Entry, 0, len(dirs)+len(files))
	entries = append(entries, dirs...)
	entries = append(entries, files...)
	return entries, nil
}

func entryKind(e fs.DirEntry, fullPath string) (Kind, bool) {
	mode := e.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := statFn(fullPath)
		if err != nil {
			// Broken link.
			return 0, false
		}
		mode = info.Mode().Type()
	}

	switch {
	case mode.IsDir():
		return KindDirectory, true
	case mode.IsRegular():
		return KindFile, true
	default:
		return 0, false
	}
}
