package editor

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
)

// Process is a started editor.
type Process interface {
	// Wait blocks until the process exits.
	Wait() error
	// Release gives up the handle without waiting.
	Release() error
}

// Launcher starts an editor from a fully expanded argument list.
type Launcher interface {
	Start(argv []string) (Process, error)
}

// ErrEmptyCommand is returned when Start receives no arguments.
var ErrEmptyCommand = errors.New("empty editor command")

// ExecLauncher starts editors with os/exec, attached to the controlling
// terminal when one can be opened.
type ExecLauncher struct{}

var openTTY = func() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// Start implements Launcher.
func (ExecLauncher) Start(argv []string) (Process, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	cmd := exec.Command(resolveExecutable(argv[0]), argv[1:]...)

	var tty *os.File
	if runtime.GOOS != "windows" {
		if f, err := openTTY(); err == nil {
			tty = f
		}
	}
	if tty != nil {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	err := cmd.Start()
	if tty != nil {
		// The child holds its own descriptor.
		_ = tty.Close()
	}
	if err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *execProcess) Release() error {
	return p.cmd.Process.Release()
}
