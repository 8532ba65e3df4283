package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "image-generator.png"
)

// LoadAppIcon loads the application icon from the working directory,
// falling back to the theme's image icon when the file is missing
func LoadAppIcon() fyne.Resource {
	res, err := fyne.LoadResourceFromPath(AppIcon)
	if err != nil {
		return theme.FileImageIcon()
	}
	return res
}
