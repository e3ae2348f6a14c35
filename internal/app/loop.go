package app

import (
	"errors"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fee/internal/config"
	"github.com/kk-code-lab/fee/internal/editor"
	fsutil "github.com/kk-code-lab/fee/internal/fs"
	"github.com/kk-code-lab/fee/internal/logging"
	statepkg "github.com/kk-code-lab/fee/internal/state"
	"github.com/kk-code-lab/fee/internal/ui/input"
	renderui "github.com/kk-code-lab/fee/internal/ui/render"
	"github.com/mattn/go-isatty"
)

// ErrNotTerminal is returned when fee is started without a terminal.
var ErrNotTerminal = errors.New("stdout is not a terminal")

var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewApplication takes over the terminal and loads the listing of cwd.
func NewApplication(cwd string, cfg config.Config, opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		if !isTerminal() {
			return nil, ErrNotTerminal
		}
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, err
		}
		screen = s
	}

	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	lister := opts.Lister
	if lister == nil {
		lister = fsutil.OSLister{}
	}
	launcher := opts.Launcher
	if launcher == nil {
		launcher = editor.ExecLauncher{}
	}
	probe := opts.Probe
	if probe == nil {
		probe = fsutil.IsValidUTF8
	}

	session, err := OpenSession(screen)
	if err != nil {
		return nil, err
	}

	state := &statepkg.AppState{}
	w, h := session.Screen().Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if err := statepkg.LoadDirectory(state, lister, cwd); err != nil {
		_ = session.Close()
		return nil, err
	}
	log.WithField("path", cwd).WithField("entries", len(state.Files)).Debug("initial listing loaded")

	return &Application{
		session:  session,
		state:    state,
		reducer:  statepkg.NewStateReducer(lister),
		renderer: renderui.NewRenderer(session.Screen(), renderui.ThemeFromConfig(cfg)),
		input:    input.NewInputHandler(),
		config:   cfg,
		launcher: launcher,
		probe:    probe,
		log:      log,
	}, nil
}

// Run processes one event at a time until the user quits or an error ends
// the session. The terminal is restored on every return path.
func (app *Application) Run() (err error) {
	defer func() {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	app.renderer.Render(app.state)

	for !app.shouldQuit {
		ev := app.session.Screen().PollEvent()
		if ev == nil {
			// Screen finalized underneath us.
			return nil
		}

		redraw, err := app.handleEvent(ev)
		if err != nil {
			app.log.WithError(err).Error("session aborted")
			return err
		}
		if redraw && !app.shouldQuit {
			app.renderer.Render(app.state)
		}
	}

	return nil
}

// handleEvent applies ev and reports whether the screen must be redrawn.
func (app *Application) handleEvent(ev tcell.Event) (bool, error) {
	action := app.input.ProcessEvent(ev)
	if action == nil {
		return false, nil
	}
	return true, app.handleAction(action)
}

func (app *Application) handleAction(action statepkg.Action) error {
	switch action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return nil
	case statepkg.RightArrowAction:
		return app.handleRightArrow()
	case statepkg.EnterDirectoryAction, statepkg.GoUpAction:
		prev := app.state.CurrentPath
		if _, err := app.reducer.Reduce(app.state, action); err != nil {
			return err
		}
		if app.state.CurrentPath != prev {
			app.log.WithField("path", app.state.CurrentPath).WithField("entries", len(app.state.Files)).Debug("directory changed")
		}
		return nil
	}

	_, err := app.reducer.Reduce(app.state, action)
	return err
}
