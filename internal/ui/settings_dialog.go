package ui

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/image-generator/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	accessKeyEntry  *widget.Entry
	baseURLEntry    *widget.Entry
	timeoutEntry    *widget.Entry
	languageSelect  *widget.Select
	autoRevealCheck *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.accessKeyEntry = widget.NewPasswordEntry()

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.Validator = validateBaseURL

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.Validator = validateTimeout

	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.autoRevealCheck = widget.NewCheck(sd.localization.GetText(KeyAutoReveal), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAccessKey)+":"),
		sd.accessKeyEntry,

		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.autoRevealCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads saved preferences into the UI. Values that come from the
// environment or defaults are shown as placeholders so saving does not pin them.
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.accessKeyEntry.SetText(sd.settings.StoredAccessKey())
	sd.accessKeyEntry.SetPlaceHolder(accessKeyPlaceholder(sd.settings.EnvAccessKey()))

	sd.baseURLEntry.SetText(sd.settings.StoredAPIBaseURL())
	sd.baseURLEntry.SetPlaceHolder(sd.settings.DefaultAPIBaseURL())

	if seconds := sd.settings.StoredRequestTimeoutSeconds(); seconds > 0 {
		sd.timeoutEntry.SetText(strconv.Itoa(seconds))
	} else {
		sd.timeoutEntry.SetText("")
	}
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(int(sd.settings.DefaultRequestTimeout().Seconds())))

	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnSave())
}

// accessKeyPlaceholder hints at the environment key without revealing it
func accessKeyPlaceholder(envKey string) string {
	if envKey == "" {
		return "UNSPLASH_ACCESS_KEY"
	}
	runes := []rune(envKey)
	if len(runes) > 4 {
		runes = runes[:4]
	}
	return "UNSPLASH_ACCESS_KEY: " + string(runes) + "…"
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetAccessKey(sd.accessKeyEntry.Text)

	if validateBaseURL(sd.baseURLEntry.Text) == nil {
		sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)
	}

	if timeout := strings.TrimSpace(sd.timeoutEntry.Text); timeout == "" {
		sd.settings.SetRequestTimeoutSeconds(0)
	} else if seconds, err := strconv.Atoi(timeout); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAutoRevealOnSave(sd.autoRevealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// validateBaseURL accepts an empty value or an absolute http(s) URL
func validateBaseURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}

// validateTimeout accepts an empty value or a whole number of seconds
func validateTimeout(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if _, err := strconv.Atoi(input); err != nil {
		return fmt.Errorf("timeout must be a whole number of seconds")
	}
	return nil
}
