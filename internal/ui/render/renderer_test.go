package render

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fee/internal/config"
	fsutil "github.com/kk-code-lab/fee/internal/fs"
	statepkg "github.com/kk-code-lab/fee/internal/state"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rowText returns the runes of row y with trailing blanks removed.
func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	runes := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		cell := cells[y*w+x]
		if len(cell.Runes) == 0 {
			runes = append(runes, ' ')
			continue
		}
		runes = append(runes, cell.Runes...)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}

func cellStyle(screen tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := screen.GetContents()
	return cells[y*w+x].Style
}

func listing(n int) []statepkg.FileEntry {
	files := make([]statepkg.FileEntry, 0, n)
	for i := 0; i < n; i++ {
		kind := fsutil.KindFile
		if i < 2 {
			kind = fsutil.KindDirectory
		}
		files = append(files, statepkg.FileEntry{Name: fmt.Sprintf("entry%d", i), Kind: kind})
	}
	return files
}

func TestRenderPaintsVisibleWindow(t *testing.T) {
	screen := newTestScreen(t, 20, 4)
	state := &statepkg.AppState{
		CurrentPath:   "/work",
		Files:         listing(10),
		SelectedIndex: 5,
		ScrollOffset:  3,
		ScreenWidth:   20,
		ScreenHeight:  4,
	}

	NewRenderer(screen, GetColorTheme()).Render(state)

	for row, want := range []string{"entry3", "entry4", "entry5"} {
		if got := rowText(screen, row); got != want {
			t.Fatalf("row %d: expected %q, got %q", row, want, got)
		}
	}
	if got := rowText(screen, 3); got != "/work" {
		t.Fatalf("status row: expected %q, got %q", "/work", got)
	}
}

func TestRenderSkipsRowsPastListingEnd(t *testing.T) {
	screen := newTestScreen(t, 20, 6)
	state := &statepkg.AppState{
		CurrentPath:  "/work",
		Files:        listing(2),
		ScreenHeight: 6,
	}

	NewRenderer(screen, GetColorTheme()).Render(state)

	for row := 2; row < 5; row++ {
		if got := rowText(screen, row); got != "" {
			t.Fatalf("row %d should be blank, got %q", row, got)
		}
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	screen := newTestScreen(t, 20, 4)
	renderer := NewRenderer(screen, GetColorTheme())

	state := &statepkg.AppState{CurrentPath: "/a", Files: listing(3), ScreenHeight: 4}
	state.Files[0].Name = "a-very-long-name"
	renderer.Render(state)

	state.Files = []statepkg.FileEntry{{Name: "x", Kind: fsutil.KindFile}}
	renderer.Render(state)

	if got := rowText(screen, 0); got != "x" {
		t.Fatalf("expected stale content cleared, got %q", got)
	}
	if got := rowText(screen, 1); got != "" {
		t.Fatalf("expected row 1 cleared, got %q", got)
	}
}

func TestRenderStylesEntriesAndSelection(t *testing.T) {
	screen := newTestScreen(t, 20, 5)
	cfg := config.Default()
	theme := ThemeFromConfig(cfg)
	state := &statepkg.AppState{
		CurrentPath:   "/work",
		Files:         listing(4),
		SelectedIndex: 3,
		ScreenHeight:  5,
	}

	NewRenderer(screen, theme).Render(state)

	dirFg, _, _ := cellStyle(screen, 0, 0).Decompose()
	if want := tcell.NewRGBColor(59, 120, 255); dirFg != want {
		t.Fatalf("directory row: expected fg %v, got %v", want, dirFg)
	}

	fileFg, _, _ := cellStyle(screen, 0, 2).Decompose()
	if want := tcell.NewRGBColor(46, 199, 219); fileFg != want {
		t.Fatalf("file row: expected fg %v, got %v", want, fileFg)
	}

	selFg, selBg, _ := cellStyle(screen, 0, 3).Decompose()
	if selFg != theme.SelectionFg || selBg != theme.SelectionBg {
		t.Fatalf("selected row: expected %v on %v, got %v on %v", theme.SelectionFg, theme.SelectionBg, selFg, selBg)
	}
}

func TestRenderTruncatesAndSanitizesNames(t *testing.T) {
	screen := newTestScreen(t, 8, 3)
	state := &statepkg.AppState{
		CurrentPath: "/w",
		Files: []statepkg.FileEntry{
			{Name: "averyverylongname.txt", Kind: fsutil.KindFile},
			{Name: "a\x1b[31m", Kind: fsutil.KindFile},
		},
		ScreenHeight: 3,
	}

	NewRenderer(screen, GetColorTheme()).Render(state)

	if got := rowText(screen, 0); got != "averyve…" {
		t.Fatalf("expected truncated name, got %q", got)
	}
	if got := rowText(screen, 1); got != "a?[31m" {
		t.Fatalf("expected sanitized name, got %q", got)
	}
}

func TestRenderHidesCursor(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	screen.ShowCursor(4, 1)

	NewRenderer(screen, GetColorTheme()).Render(&statepkg.AppState{ScreenHeight: 3})

	if _, _, visible := screen.GetCursor(); visible {
		t.Fatalf("expected cursor hidden after render")
	}
}

func TestThemeFromConfigFallsBackToDefaults(t *testing.T) {
	theme := ThemeFromConfig(config.Config{})
	defaults := GetColorTheme()
	if theme != defaults {
		t.Fatalf("expected default theme without colors, got %+v", theme)
	}

	theme = ThemeFromConfig(config.Config{FileColor: &config.RGB{1, 2, 3}})
	if theme.FileFg != tcell.NewRGBColor(1, 2, 3) || theme.DirectoryFg != defaults.DirectoryFg {
		t.Fatalf("unexpected theme %+v", theme)
	}
}
