package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/fee/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// reservedRows are screen rows not available to the listing (status line).
const reservedRows = 1

// ===== STATE DEFINITIONS =====

// AppState is the single source of truth for the browser.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string
	Files       []FileEntry // Directories first, then files, in enumeration order

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Dimensions
	ScreenWidth  int
	ScreenHeight int
}

// ===== HELPER METHODS =====

// ViewportHeight is the number of rows available for entries.
func (s *AppState) ViewportHeight() int {
	h := s.ScreenHeight - reservedRows
	if h < 1 {
		return 1
	}
	return h
}

// CurrentFile returns the selected entry, or nil when the listing is empty.
func (s *AppState) CurrentFile() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Files) {
		return nil
	}
	return &s.Files[s.SelectedIndex]
}

// CurrentFilePath returns the path of the selected entry, or the current
// directory when nothing is selected.
func (s *AppState) CurrentFilePath() string {
	current := s.CurrentPath
	if current == "" {
		current = "."
	}
	if file := s.CurrentFile(); file != nil {
		current = filepath.Join(current, file.Name)
	}
	return filepath.Clean(current)
}

// VisibleRange returns the [start, end) listing indices shown in the viewport.
func (s *AppState) VisibleRange() (int, int) {
	start := s.ScrollOffset
	if start < 0 {
		start = 0
	}
	end := start + s.ViewportHeight()
	if end > len(s.Files) {
		end = len(s.Files)
	}
	if start > end {
		start = end
	}
	return start, end
}
