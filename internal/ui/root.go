package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-generator/internal/config"
	"github.com/ytget/image-generator/internal/download"
	"github.com/ytget/image-generator/internal/model"
	"github.com/ytget/image-generator/internal/photoapi"
	"github.com/ytget/image-generator/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	downloadSvc  download.Downloader
	settings     *config.Settings
	localization *Localization
	prompter     Prompter
	state        *model.UIState

	categorySelect *widget.Select
	generateBtn    *widget.Button
	downloadBtn    *widget.Button
	photoImage     *canvas.Image
	emptyLabel     *widget.Label
	statusLabel    *widget.Label
	statusSpinner  *widget.ProgressBarInfinite

	// runInBackground runs blocking handler work off the UI thread
	runInBackground func(func())

	// ctx is cancelled when the window closes, aborting in-flight requests
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc download.Downloader, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:          window,
		app:             app,
		downloadSvc:     downloadSvc,
		settings:        settings,
		localization:    localization,
		prompter:        NewDialogPrompter(window),
		state:           model.NewUIState(),
		runInBackground: func(fn func()) { go fn() },
		ctx:             ctx,
		cancel:          cancel,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.Shutdown)

	downloadSvc.SetUpdateCallback(func(photo *model.Photo) {
		log.Printf("Current photo is now %s (%s) %s", photo.ID, photo.Category, photo.GetAttribution())
	})

	ui.setupUI()
	return ui
}

// Shutdown cancels any in-flight request
func (ui *RootUI) Shutdown() {
	ui.cancel()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Category selector; the placeholder is shown while nothing is selected
	ui.categorySelect = widget.NewSelect(model.CategoryOptions(), ui.onCategoryChanged)
	ui.categorySelect.PlaceHolder = ui.localization.GetText(KeyChooseCategory)

	ui.generateBtn = widget.NewButton(ui.localization.GetText(KeyGenerate), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance

	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, nil, settingsBtn,
		container.NewGridWithColumns(3, ui.categorySelect, ui.generateBtn, ui.downloadBtn))

	// Photo area
	ui.photoImage = canvas.NewImageFromImage(nil)
	ui.photoImage.FillMode = canvas.ImageFillContain
	ui.photoImage.SetMinSize(fyne.NewSize(ImageBoxWidth, ImageBoxHeight))
	ui.photoImage.Hide()

	ui.emptyLabel = widget.NewLabel(IconCamera + " " + ui.localization.GetText(KeyEmptyState))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	photoArea := container.NewStack(container.NewCenter(ui.emptyLabel), ui.photoImage)

	// Status line: spinner while busy, attribution once a photo is shown
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusSpinner = widget.NewProgressBarInfinite()
	ui.statusSpinner.Hide()
	statusPanel := container.NewBorder(nil, nil, nil, nil, container.NewStack(ui.statusSpinner, ui.statusLabel))

	content := container.NewBorder(
		topPanel,    // top
		statusPanel, // bottom
		nil,         // left
		nil,         // right
		container.NewPadded(photoArea),
	)

	ui.window.SetContent(content)
	ui.refreshButtons()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.categorySelect.PlaceHolder = ui.localization.GetText(KeyChooseCategory)
	ui.categorySelect.Refresh()
	ui.generateBtn.SetText(ui.localization.GetText(KeyGenerate))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.emptyLabel.SetText(IconCamera + " " + ui.localization.GetText(KeyEmptyState))
	if photo, ok := ui.downloadSvc.Current(); ok && !ui.state.IsBusy() {
		ui.statusLabel.SetText(ui.attributionText(photo))
	}
}

// onCategoryChanged handles selector changes; an empty selection is the placeholder
func (ui *RootUI) onCategoryChanged(selected string) {
	ui.state.SelectCategory(model.Category(selected))
	ui.refreshButtons()
}

// refreshButtons applies the enablement rule to both buttons
func (ui *RootUI) refreshButtons() {
	if ui.state.GenerateEnabled() {
		ui.generateBtn.Enable()
	} else {
		ui.generateBtn.Disable()
	}

	if ui.state.DownloadEnabled() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

// setBusy disables both buttons and shows status text while a handler runs
func (ui *RootUI) setBusy(busy bool, statusKey string) {
	ui.state.SetBusy(busy)
	ui.refreshButtons()

	if busy {
		ui.statusSpinner.Show()
		ui.statusSpinner.Start()
		ui.statusLabel.SetText(ui.localization.GetText(statusKey))
		return
	}

	ui.statusSpinner.Stop()
	ui.statusSpinner.Hide()
	if photo, ok := ui.downloadSvc.Current(); ok {
		ui.statusLabel.SetText(ui.attributionText(photo))
	} else {
		ui.statusLabel.SetText("")
	}
}

// onGenerateClick fetches and displays a random photo for the selected category
func (ui *RootUI) onGenerateClick() {
	if ui.state.IsBusy() {
		return
	}
	category := ui.state.Category()
	if !category.IsValid() {
		return
	}

	log.Printf("Generate requested for category %s", category)
	ui.setBusy(true, KeyFetchingImage)

	ctx := ui.ctx
	ui.runInBackground(func() {
		photo, img, err := ui.downloadSvc.Generate(ctx, category)

		fyne.Do(func() {
			ui.setBusy(false, "")
			if err != nil {
				ui.handleError(err)
				return
			}
			ui.showPhoto(photo, img)
		})
	})
}

// showPhoto renders the display image and enables Download
func (ui *RootUI) showPhoto(photo *model.Photo, img image.Image) {
	ui.photoImage.Image = img
	ui.photoImage.Show()
	ui.photoImage.Refresh()
	ui.emptyLabel.Hide()

	ui.statusLabel.SetText(ui.attributionText(photo))

	ui.state.MarkPhotoReady()
	ui.refreshButtons()
}

// attributionText returns the status line for a displayed photo
func (ui *RootUI) attributionText(photo *model.Photo) string {
	text := photo.ID
	if photo.Author != "" {
		text = fmt.Sprintf(ui.localization.GetText(KeyPhotoByFormat), photo.Author)
	}
	if photo.Description != "" {
		text += MiddleDotSeparator + photo.Description
	}
	return text
}

// onDownloadClick tracks the download, asks for a directory, and saves the full-resolution image
func (ui *RootUI) onDownloadClick() {
	if ui.state.IsBusy() {
		return
	}
	if _, ok := ui.downloadSvc.Current(); !ok {
		ui.handleError(download.ErrNoPhoto)
		return
	}

	ui.setBusy(true, KeyPreparingDownload)

	ctx := ui.ctx
	ui.runInBackground(func() {
		photo, err := ui.downloadSvc.TrackDownload(ctx)

		fyne.Do(func() {
			if err != nil {
				ui.setBusy(false, "")
				ui.handleError(err)
				return
			}
			ui.prompter.ChooseDirectory(ui.settings.GetLastSaveDirectory(), func(dir string, ok bool) {
				if !ok {
					log.Printf("Save cancelled for photo %s", photo.ID)
					ui.setBusy(false, "")
					return
				}
				ui.savePhoto(ctx, photo, dir)
			})
		})
	})
}

// savePhoto writes the full-resolution image into dir
func (ui *RootUI) savePhoto(ctx context.Context, photo *model.Photo, dir string) {
	ui.settings.SetLastSaveDirectory(dir)
	ui.statusLabel.SetText(ui.localization.GetText(KeySavingImage))

	ui.runInBackground(func() {
		path, err := ui.downloadSvc.SavePhoto(ctx, photo, dir)

		fyne.Do(func() {
			ui.setBusy(false, "")
			if err != nil {
				ui.handleError(err)
				return
			}

			filename := filepath.Base(path)
			ui.app.SendNotification(&fyne.Notification{
				Title:   ui.localization.GetText(KeyDownloadComplete),
				Content: filename,
			})
			ui.prompter.ShowInformation(
				ui.localization.GetText(KeyDownloadComplete),
				fmt.Sprintf(ui.localization.GetText(KeyImageSavedFormat), filename, dir),
			)

			if ui.settings.GetAutoRevealOnSave() {
				ui.onRevealFile(path)
			}
		})
	})
}

// onRevealFile reveals a saved file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		log.Printf("Error revealing file %s: %v", path, err)
		ui.prompter.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFile), err))
	}
}

// handleError converts handler errors into the error dialog
func (ui *RootUI) handleError(err error) {
	switch {
	case errors.Is(err, context.Canceled):
		// Window is closing
		return
	case errors.Is(err, download.ErrNoPhoto):
		ui.prompter.ShowError(errors.New(ui.localization.GetText(KeyNoImage)))
	case errors.Is(err, photoapi.ErrMissingAccessKey):
		ui.prompter.ShowError(errors.New(ui.localization.GetText(KeyMissingAccessKey)))
	default:
		ui.prompter.ShowError(err)
	}
	log.Printf("Operation failed: %v", err)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.onSettingsSaved)
}

// onSettingsSaved applies updated settings to the running app
func (ui *RootUI) onSettingsSaved() {
	ui.downloadSvc.SetSource(photoapi.NewClient(ui.settings.ClientConfig()))

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
	log.Printf("Settings applied")
}
