package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// Prompter shows modal dialogs. All methods are called on the UI thread.
type Prompter interface {
	ShowError(err error)
	ShowInformation(title, message string)

	// ChooseDirectory asks the user for a directory, starting at startDir when it is set.
	// onChosen receives ok=false if the user cancelled.
	ChooseDirectory(startDir string, onChosen func(dir string, ok bool))
}

// dialogPrompter implements Prompter with Fyne dialogs
type dialogPrompter struct {
	window fyne.Window
}

// NewDialogPrompter creates a Prompter that shows dialogs over window
func NewDialogPrompter(window fyne.Window) Prompter {
	return &dialogPrompter{window: window}
}

// ShowError shows an error dialog
func (p *dialogPrompter) ShowError(err error) {
	dialog.ShowError(err, p.window)
}

// ShowInformation shows an information dialog
func (p *dialogPrompter) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, p.window)
}

// ChooseDirectory shows a folder picker
func (p *dialogPrompter) ChooseDirectory(startDir string, onChosen func(dir string, ok bool)) {
	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			p.ShowError(err)
			onChosen("", false)
			return
		}
		if uri == nil {
			onChosen("", false)
			return
		}
		onChosen(uri.Path(), true)
	}, p.window)

	if startDir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(startDir)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}
