package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fee/internal/config"
)

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	StatusFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		SelectionBg: tcell.ColorWhite,
		SelectionFg: tcell.ColorBlack,
		StatusFg:    tcell.ColorLightSlateGray,
	}
}

// ThemeFromConfig applies the configured entry colors on top of the defaults.
func ThemeFromConfig(cfg config.Config) ColorTheme {
	theme := GetColorTheme()
	if cfg.DirColor != nil {
		theme.DirectoryFg = rgbColor(*cfg.DirColor)
	}
	if cfg.FileColor != nil {
		theme.FileFg = rgbColor(*cfg.FileColor)
	}
	return theme
}

func rgbColor(c config.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c[0]), int32(c[1]), int32(c[2]))
}
