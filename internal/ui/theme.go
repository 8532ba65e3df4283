package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SandstoneTheme is a light, warm theme with a white photo background
type SandstoneTheme struct{}

// NewSandstoneTheme creates a new sandstone theme
func NewSandstoneTheme() fyne.Theme {
	return &SandstoneTheme{}
}

// Color returns theme colors
func (t *SandstoneTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 50, G: 93, B: 136, A: 255} // Slate blue for primary actions
	case theme.ColorNameSuccess:
		return color.RGBA{R: 147, G: 197, B: 75, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 217, G: 83, B: 79, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 244, G: 124, B: 60, A: 255}
	case theme.ColorNameButton:
		return color.RGBA{R: 248, G: 245, B: 240, A: 255} // Sand
	case theme.ColorNameBackground:
		return color.White
	case theme.ColorNameForeground:
		return color.RGBA{R: 62, G: 63, B: 58, A: 255}
	}

	// Always light: the photo area assumes a white background
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *SandstoneTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SandstoneTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *SandstoneTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameSelectionRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
