package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{}
type RightArrowAction struct{} // Enter/Right: open directory or hand file to editor
type GoUpAction struct{}       // Esc/Left: parent directory

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// NoopAction is produced by unbound keys; it changes nothing but still redraws.
type NoopAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{} // Ctrl-C
