package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fee/internal/config"
	"github.com/kk-code-lab/fee/internal/editor"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// recordingScreen notes terminal handoffs into a log shared with the
// launcher so tests can check ordering.
type recordingScreen struct {
	tcell.SimulationScreen
	calls *[]string
	finis int
}

func (s *recordingScreen) Suspend() error {
	*s.calls = append(*s.calls, "suspend")
	return s.SimulationScreen.Suspend()
}

func (s *recordingScreen) Resume() error {
	*s.calls = append(*s.calls, "resume")
	return s.SimulationScreen.Resume()
}

func (s *recordingScreen) Fini() {
	s.finis++
	s.SimulationScreen.Fini()
}

type fakeProcess struct {
	calls   *[]string
	waitErr error
}

func (p *fakeProcess) Wait() error {
	*p.calls = append(*p.calls, "wait")
	return p.waitErr
}

func (p *fakeProcess) Release() error {
	*p.calls = append(*p.calls, "release")
	return nil
}

type fakeLauncher struct {
	calls    *[]string
	argv     [][]string
	startErr error
	waitErr  error
}

func (l *fakeLauncher) Start(argv []string) (editor.Process, error) {
	*l.calls = append(*l.calls, "start")
	l.argv = append(l.argv, append([]string(nil), argv...))
	if l.startErr != nil {
		return nil, l.startErr
	}
	return &fakeProcess{calls: l.calls, waitErr: l.waitErr}, nil
}

type harness struct {
	app      *Application
	screen   *recordingScreen
	launcher *fakeLauncher
	calls    *[]string
	probed   []string
	logs     *logtest.Hook
}

func testConfig() config.Config {
	return config.Config{
		TextEditorCommand:   []string{"ed", "$f"},
		BinaryEditorCommand: []string{"hx", "--", "$f"},
		WaitForEditorExit:   true,
	}
}

func newHarness(t *testing.T, dir string, cfg config.Config) *harness {
	t.Helper()

	calls := []string{}
	h := &harness{calls: &calls}
	h.screen = &recordingScreen{SimulationScreen: tcell.NewSimulationScreen("UTF-8"), calls: h.calls}
	h.launcher = &fakeLauncher{calls: h.calls}

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	h.logs = hook

	app, err := NewApplication(dir, cfg, Options{
		Screen:   h.screen,
		Launcher: h.launcher,
		Probe: func(path string) (bool, error) {
			h.probed = append(h.probed, path)
			return filepath.Ext(path) == ".txt", nil
		},
		Logger: logger,
	})
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })
	h.app = app
	return h
}

// selectName moves the selection onto the entry called name.
func (h *harness) selectName(t *testing.T, name string) {
	t.Helper()
	for i, f := range h.app.state.Files {
		if f.Name == name {
			h.app.state.SelectedIndex = i
			return
		}
	}
	t.Fatalf("entry %q not listed in %s", name, h.app.state.CurrentPath)
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

var errBoom = errors.New("boom")
