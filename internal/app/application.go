package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fee/internal/config"
	"github.com/kk-code-lab/fee/internal/editor"
	fsutil "github.com/kk-code-lab/fee/internal/fs"
	statepkg "github.com/kk-code-lab/fee/internal/state"
	inputui "github.com/kk-code-lab/fee/internal/ui/input"
	renderui "github.com/kk-code-lab/fee/internal/ui/render"
	"github.com/sirupsen/logrus"
)

// Application represents the running app.
type Application struct {
	session    *Session
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	config     config.Config
	launcher   editor.Launcher
	probe      func(path string) (bool, error)
	log        logrus.FieldLogger
	shouldQuit bool
}

// Options replaces the collaborators the application talks to. Zero values
// select the real terminal, filesystem and process launcher.
type Options struct {
	Screen   tcell.Screen
	Lister   fsutil.Lister
	Launcher editor.Launcher
	Probe    func(path string) (bool, error)
	Logger   logrus.FieldLogger
}

// Close restores the terminal.
func (app *Application) Close() error {
	return app.session.Close()
}

// CurrentPath returns the directory being browsed.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}
