package ui

import (
	"Countdown/timer"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme applies the dark palette and, when available, the display font.
type CustomTheme struct {
	fyne.Theme
	font fyne.Resource
}

// NewCustomTheme creates the theme. font may be nil to keep the default font.
func NewCustomTheme(font fyne.Resource) fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme(), font: font}
}

// LoadFont reads a TTF file, returning nil when it cannot be used so the
// caller falls back to the default font.
func LoadFont(path string) fyne.Resource {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Font %s unavailable, using default: %v", path, err)
		return nil
	}
	return fyne.NewStaticResource(filepath.Base(path), data)
}

// Color returns the palette color for the given name.
func (t *CustomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground:
		return timer.BackgroundColor
	case theme.ColorNameForeground:
		return timer.ClockColor
	case theme.ColorNameInputBackground:
		return timer.InputColor
	case theme.ColorNameButton:
		return timer.ButtonColor
	}
	return t.Theme.Color(name, variant)
}

// Font returns the font for the given style.
func (t *CustomTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font == nil || style.Monospace {
		return t.Theme.Font(style)
	}
	return t.font
}
