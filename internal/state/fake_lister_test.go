package state

import (
	"fmt"
	"os"

	fsutil "github.com/kk-code-lab/fee/internal/fs"
)

// fakeLister serves canned listings keyed by path.
type fakeLister struct {
	dirs  map[string][]FileEntry
	calls []string
}

func (f *fakeLister) List(path string) ([]fsutil.Entry, error) {
	f.calls = append(f.calls, path)
	entries, ok := f.dirs[path]
	if !ok {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, os.ErrNotExist)
	}
	return append([]FileEntry(nil), entries...), nil
}

func dir(name string) FileEntry  { return FileEntry{Name: name, Kind: fsutil.KindDirectory} }
func file(name string) FileEntry { return FileEntry{Name: name, Kind: fsutil.KindFile} }

func namedFiles(n int) []FileEntry {
	files := make([]FileEntry, n)
	for i := range files {
		files[i] = file(fmt.Sprintf("file%02d.txt", i))
	}
	return files
}
