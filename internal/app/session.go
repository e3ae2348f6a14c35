package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Session owns the terminal while the browser runs. Opening it switches the
// terminal to raw mode with a hidden cursor; Close restores normal mode.
type Session struct {
	screen tcell.Screen
	closed bool
}

// OpenSession initializes screen and takes over the terminal.
func OpenSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()
	return &Session{screen: screen}, nil
}

// Screen returns the underlying screen.
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Close clears the screen, shows the cursor and hands the terminal back in
// line mode. It is safe to call more than once.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.Clear()
	s.screen.ShowCursor(0, 0)
	s.screen.Show()
	s.screen.Fini()
	return nil
}

// Suspended runs fn with the terminal in normal mode and takes it back
// afterwards, forcing a full repaint.
func (s *Session) Suspended(fn func() error) (err error) {
	if err := s.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}
	defer func() {
		if resumeErr := s.screen.Resume(); resumeErr != nil && err == nil {
			err = fmt.Errorf("failed to resume screen: %w", resumeErr)
		}
		s.screen.HideCursor()
		s.screen.Sync()
	}()

	return fn()
}
