package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine writes text starting at (startX, y), clipped to maxWidth
// columns, and returns the column after the last rune drawn.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := runewidth.RuneWidth(mainc)
		if x-startX+w > maxWidth {
			break
		}
		i++

		// Attach zero-width runes (combining marks) to the base cell.
		var combc []rune
		for i < len(runes) && runewidth.RuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		if w < 1 {
			w = 1
		}
		x += w
	}

	return x
}
