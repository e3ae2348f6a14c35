package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/fee/internal/state"
	textutil "github.com/kk-code-lab/fee/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, theme ColorTheme) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
	}
}

// Render repaints the whole screen from state. Nothing is diffed: the
// screen is cleared and every visible row is drawn again.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if state != nil {
		r.drawListing(state, w)
		if h > 1 {
			r.drawStatusLine(state, w, h-1)
		}
	}

	r.screen.Show()
}

// drawListing paints entries scroll..scroll+H at screen rows 0..H.
func (r *Renderer) drawListing(state *statepkg.AppState, w int) {
	start, end := state.VisibleRange()
	base := tcell.StyleDefault.Background(r.theme.Background)

	for idx := start; idx < end; idx++ {
		entry := state.Files[idx]

		style := base.Foreground(r.theme.FileFg)
		if entry.IsDir() {
			style = base.Foreground(r.theme.DirectoryFg)
		}
		if idx == state.SelectedIndex {
			style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}

		name := textutil.TruncateToWidth(textutil.DisplayName(entry.Name), w)
		r.drawTextLine(0, idx-start, w, name, style)
	}
}

// drawStatusLine shows the current directory on the reserved bottom row.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.StatusFg).Dim(true)
	path := textutil.TruncateToWidth(textutil.SanitizeTerminalText(state.CurrentPath), w)
	r.drawTextLine(0, y, w, path, style)
}
