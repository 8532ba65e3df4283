package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseCategory    = "choose_category"
	KeyGenerate          = "generate"
	KeyDownload          = "download"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyAccessKey         = "access_key"
	KeyAPIBaseURL        = "api_base_url"
	KeyRequestTimeout    = "request_timeout"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyDownloadComplete  = "download_complete"
	KeyImageSavedFormat  = "image_saved_format"
	KeyNoImage           = "no_image"
	KeyMissingAccessKey  = "missing_access_key"
	KeyEmptyState        = "empty_state"
	KeyFetchingImage     = "fetching_image"
	KeyPreparingDownload = "preparing_download"
	KeySavingImage       = "saving_image"
	KeyPhotoByFormat     = "photo_by_format"
	KeyErrorOpeningFile  = "error_opening_file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Generator",
		KeyChooseCategory:    "Choose Category",
		KeyGenerate:          "Generate Image",
		KeyDownload:          "Download Image",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyAccessKey:         "Unsplash Access Key",
		KeyAPIBaseURL:        "API Base URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyAutoReveal:        "Reveal saved image in file manager",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDownloadComplete:  "Download Complete",
		KeyImageSavedFormat:  "Image saved as %s in %s",
		KeyNoImage:           "No image to download. Generate an image first.",
		KeyMissingAccessKey:  "Unsplash access key is not set. Add it in File > Settings or UNSPLASH_ACCESS_KEY.",
		KeyEmptyState:        "Choose a category and press Generate Image",
		KeyFetchingImage:     "Fetching image...",
		KeyPreparingDownload: "Preparing download...",
		KeySavingImage:       "Saving image...",
		KeyPhotoByFormat:     "Photo by %s on Unsplash",
		KeyErrorOpeningFile:  "Error opening file",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Генератор изображений",
		KeyChooseCategory:    "Выберите категорию",
		KeyGenerate:          "Создать",
		KeyDownload:          "Скачать",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyAccessKey:         "Ключ доступа Unsplash",
		KeyAPIBaseURL:        "Базовый URL API",
		KeyRequestTimeout:    "Тайм-аут запроса (сек)",
		KeyAutoReveal:        "Показывать сохранённый файл в проводнике",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDownloadComplete:  "Загрузка завершена",
		KeyImageSavedFormat:  "Изображение сохранено как %s в %s",
		KeyNoImage:           "Нет изображения для загрузки. Сначала создайте изображение.",
		KeyMissingAccessKey:  "Ключ доступа Unsplash не задан. Укажите его в Файл > Настройки или в UNSPLASH_ACCESS_KEY.",
		KeyEmptyState:        "Выберите категорию и нажмите «Создать»",
		KeyFetchingImage:     "Загрузка изображения...",
		KeyPreparingDownload: "Подготовка загрузки...",
		KeySavingImage:       "Сохранение изображения...",
		KeyPhotoByFormat:     "Фото: %s, Unsplash",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Gerador de Imagens",
		KeyChooseCategory:    "Escolha a Categoria",
		KeyGenerate:          "Gerar Imagem",
		KeyDownload:          "Baixar Imagem",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyAccessKey:         "Chave de Acesso Unsplash",
		KeyAPIBaseURL:        "URL Base da API",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeyAutoReveal:        "Mostrar imagem salva no gerenciador de arquivos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDownloadComplete:  "Download Concluído",
		KeyImageSavedFormat:  "Imagem salva como %s em %s",
		KeyNoImage:           "Nenhuma imagem para baixar. Gere uma imagem primeiro.",
		KeyMissingAccessKey:  "A chave de acesso Unsplash não está definida. Adicione em Arquivo > Configurações ou UNSPLASH_ACCESS_KEY.",
		KeyEmptyState:        "Escolha uma categoria e pressione Gerar Imagem",
		KeyFetchingImage:     "Buscando imagem...",
		KeyPreparingDownload: "Preparando download...",
		KeySavingImage:       "Salvando imagem...",
		KeyPhotoByFormat:     "Foto de %s no Unsplash",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
	}
}
