package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/fee/internal/fs"
)

// ===== REDUCER =====

// StateReducer applies actions to state
type StateReducer struct {
	lister fsutil.Lister
}

// NewStateReducer creates a reducer that loads listings through lister.
// A nil lister reads the local filesystem.
func NewStateReducer(lister fsutil.Lister) *StateReducer {
	if lister == nil {
		lister = fsutil.OSLister{}
	}
	return &StateReducer{lister: lister}
}

// Reduce applies an action to state. Listing failures are returned and
// leave state as it was.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		state.moveSelectionDown()
		return state, nil

	case NavigateUpAction:
		state.moveSelectionUp()
		return state, nil

	case EnterDirectoryAction:
		file := state.CurrentFile()
		if file == nil || !file.IsDir() {
			return state, nil
		}
		newPath := filepath.Join(state.CurrentPath, file.Name)
		return state, LoadDirectory(state, r.lister, newPath)

	case GoUpAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			return state, nil // Already at root
		}
		return state, LoadDirectory(state, r.lister, parent)

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.clampScrollToSelection()
		return state, nil
	}

	// Everything else redraws without touching state.
	return state, nil
}
