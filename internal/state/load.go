package state

import (
	fsutil "github.com/kk-code-lab/fee/internal/fs"
)

// LoadDirectory lists path through lister and, on success, makes it the
// current directory with selection and scroll reset. On failure state is left
// untouched.
func LoadDirectory(state *AppState, lister fsutil.Lister, path string) error {
	if lister == nil {
		lister = fsutil.OSLister{}
	}

	entries, err := lister.List(path)
	if err != nil {
		return err
	}

	state.CurrentPath = path
	state.Files = entries
	state.resetViewport()
	return nil
}

func (s *AppState) resetViewport() {
	s.SelectedIndex = 0
	s.ScrollOffset = 0
}
