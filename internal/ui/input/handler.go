package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fee/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct{}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// ProcessEvent converts a tcell event into an Action. It returns nil for
// events that should neither change state nor redraw.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}
	default:
		return nil
	}
}

// processKeyEvent handles keyboard input
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) statepkg.Action {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}
	case tcell.KeyUp:
		return statepkg.NavigateUpAction{}
	case tcell.KeyDown:
		return statepkg.NavigateDownAction{}
	case tcell.KeyEnter, tcell.KeyRight:
		return statepkg.RightArrowAction{}
	case tcell.KeyEscape, tcell.KeyLeft:
		return statepkg.GoUpAction{}
	case tcell.KeyRune:
		// Some terminals deliver Ctrl-C as a rune with the Ctrl modifier.
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return statepkg.QuitAction{}
		}
	}
	return statepkg.NoopAction{}
}
