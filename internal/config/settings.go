package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/image-generator/internal/photoapi"
	"github.com/ytget/image-generator/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAccessKey          = "unsplash_access_key"
	KeyAPIBaseURL         = "unsplash_api_url"
	KeyRequestTimeout     = "request_timeout_seconds"
	KeyLanguage           = "app_language"
	KeyLastSaveDirectory  = "last_save_directory"
	KeyAutoRevealOnSave   = "auto_reveal_on_save"
	MinTimeoutSeconds     = 5
	MaxTimeoutSeconds     = 120
	DefaultTimeoutSeconds = 30
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultAutoRevealOnSave = false
)

// Settings manages application configuration.
// Preference values override environment values, which override defaults.
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager. env may be nil.
func NewSettings(app fyne.App, env *Env) *Settings {
	s := &Settings{app: app}
	if env != nil {
		s.env = *env
	}
	return s
}

// GetAccessKey returns the configured API access key
func (s *Settings) GetAccessKey() string {
	if key := s.StoredAccessKey(); key != "" {
		return key
	}
	return s.EnvAccessKey()
}

// StoredAccessKey returns the access key saved in preferences, ignoring the environment
func (s *Settings) StoredAccessKey() string {
	return strings.TrimSpace(s.app.Preferences().String(KeyAccessKey))
}

// EnvAccessKey returns the access key supplied by the environment
func (s *Settings) EnvAccessKey() string {
	return strings.TrimSpace(s.env.AccessKey)
}

// SetAccessKey stores the API access key. An empty key falls back to the environment.
func (s *Settings) SetAccessKey(key string) {
	s.app.Preferences().SetString(KeyAccessKey, strings.TrimSpace(key))
}

// GetAPIBaseURL returns the API base URL
func (s *Settings) GetAPIBaseURL() string {
	if u := s.StoredAPIBaseURL(); u != "" {
		return u
	}
	return s.DefaultAPIBaseURL()
}

// StoredAPIBaseURL returns the base URL saved in preferences, ignoring environment and default
func (s *Settings) StoredAPIBaseURL() string {
	return strings.TrimSpace(s.app.Preferences().String(KeyAPIBaseURL))
}

// DefaultAPIBaseURL returns the base URL used when no preference is stored
func (s *Settings) DefaultAPIBaseURL() string {
	if u := strings.TrimSpace(s.env.BaseURL); u != "" {
		return u
	}
	return photoapi.DefaultBaseURL
}

// SetAPIBaseURL stores the API base URL
func (s *Settings) SetAPIBaseURL(u string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, strings.TrimSpace(u))
}

// GetRequestTimeout returns the per-request HTTP timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	if seconds := s.StoredRequestTimeoutSeconds(); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return s.DefaultRequestTimeout()
}

// StoredRequestTimeoutSeconds returns the timeout saved in preferences, or 0 if none is stored
func (s *Settings) StoredRequestTimeoutSeconds() int {
	return s.app.Preferences().Int(KeyRequestTimeout)
}

// DefaultRequestTimeout returns the timeout used when no preference is stored
func (s *Settings) DefaultRequestTimeout() time.Duration {
	if s.env.Timeout > 0 {
		return s.env.Timeout
	}
	return DefaultTimeoutSeconds * time.Second
}

// SetRequestTimeoutSeconds sets the per-request HTTP timeout in seconds.
// A value of zero or less removes the preference so the default applies again.
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds <= 0 {
		s.app.Preferences().RemoveValue(KeyRequestTimeout)
		return
	}
	if seconds < MinTimeoutSeconds {
		seconds = MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		seconds = MaxTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastSaveDirectory returns the directory used for the previous save,
// or the user's Pictures directory if none is stored or it no longer exists
func (s *Settings) GetLastSaveDirectory() string {
	dir := s.app.Preferences().String(KeyLastSaveDirectory)
	if dir != "" && platform.IsDirectory(dir) {
		return dir
	}
	defaultDir, err := platform.GetHomePicturesDir()
	if err != nil {
		return ""
	}
	return defaultDir
}

// SetLastSaveDirectory remembers the directory of the last save
func (s *Settings) SetLastSaveDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastSaveDirectory, dir)
}

// GetAutoRevealOnSave returns whether to reveal saved photos in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealOnSave, DefaultAutoRevealOnSave)
}

// SetAutoRevealOnSave sets whether to reveal saved photos in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealOnSave, autoReveal)
}

// ClientConfig returns the photo API client configuration built from the current settings
func (s *Settings) ClientConfig() photoapi.Config {
	return photoapi.Config{
		BaseURL:   s.GetAPIBaseURL(),
		AccessKey: s.GetAccessKey(),
		Timeout:   s.GetRequestTimeout(),
	}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
