package app

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/kk-code-lab/fee/internal/editor"
	statepkg "github.com/kk-code-lab/fee/internal/state"
	"github.com/sirupsen/logrus"
)

func (app *Application) handleRightArrow() error {
	file := app.state.CurrentFile()
	if file == nil {
		return nil
	}

	if file.IsDir() {
		return app.handleAction(statepkg.EnterDirectoryAction{})
	}

	return app.openFileInEditor(app.state.CurrentFilePath())
}

// editorTemplate picks the text or binary editor for filePath. When both
// commands are identical the file is not probed.
func (app *Application) editorTemplate(filePath string) ([]string, error) {
	if app.config.SameEditor() {
		return app.config.TextEditorCommand, nil
	}

	isText, err := app.probe(filePath)
	if err != nil {
		return nil, err
	}
	if isText {
		return app.config.TextEditorCommand, nil
	}
	return app.config.BinaryEditorCommand, nil
}

func (app *Application) openFileInEditor(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", filePath, err)
	}

	template, err := app.editorTemplate(absPath)
	if err != nil {
		return err
	}

	argv := editor.Expand(template, absPath)
	if len(argv) == 0 {
		app.log.WithField("file", absPath).Debug("no editor configured, ignoring")
		return nil
	}

	log := app.log.WithFields(logrus.Fields{
		"file":   absPath,
		"editor": argv[0],
		"wait":   app.config.WaitForEditorExit,
	})

	return app.session.Suspended(func() error {
		proc, err := app.launcher.Start(argv)
		if err != nil {
			return fmt.Errorf("cannot launch editor %s: %w", argv[0], err)
		}
		log.Info("editor started")

		if !app.config.WaitForEditorExit {
			// The editor keeps running while the browser takes the terminal back.
			return proc.Release()
		}
		return waitForEditor(proc, log)
	})
}

func waitForEditor(proc editor.Process, log logrus.FieldLogger) error {
	err := proc.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		log.WithField("status", exitErr.ExitCode()).Warn("editor exited with non-zero status")
		return nil
	}
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	log.Info("editor exited")
	return nil
}
