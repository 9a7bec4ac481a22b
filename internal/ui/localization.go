package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle            = "app_title"
	KeyFile                = "file"
	KeySettings            = "settings"
	KeyLanguage            = "language"
	KeyChooseFile          = "choose_file"
	KeyNoFileSelected      = "no_file_selected"
	KeySelectedFile        = "selected_file"
	KeySelectFormat        = "select_format"
	KeySelectedFormat      = "selected_format"
	KeyConvert             = "convert"
	KeyDownload            = "download"
	KeyStatusWaiting       = "status_waiting"
	KeyStatusValidation    = "status_validation"
	KeyUnsupportedFile     = "unsupported_file"
	KeyStatusConverting    = "status_converting"
	KeyStatusSuccess       = "status_success"
	KeyStatusError         = "status_error"
	KeyDownloadCompleted   = "download_completed"
	KeyDownloadSuccessful  = "download_successful"
	KeyShowInFolder        = "show_in_folder"
	KeyClose               = "close"
	KeyConversionCompleted = "conversion_completed"
	KeyErrorOpeningFile    = "error_opening_file"
	KeyFFmpegDirectory     = "ffmpeg_directory"
	KeyGIFFrameRate        = "gif_frame_rate"
	KeyBrowse              = "browse"
	KeySave                = "save"
	KeyCancel              = "cancel"
	KeySettingsSaved       = "settings_saved"
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

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:            "Video Converter",
		KeyFile:                "File",
		KeySettings:            "Settings",
		KeyLanguage:            "Language",
		KeyChooseFile:          "Choose Video File",
		KeyNoFileSelected:      "No file selected",
		KeySelectedFile:        "Selected file: %s",
		KeySelectFormat:        "Select Output Format (Default: MP4)",
		KeySelectedFormat:      "Selected Format: %s",
		KeyConvert:             "Convert",
		KeyDownload:            "Download",
		KeyStatusWaiting:       "Status: Waiting for input",
		KeyStatusValidation:    "Please select a video file and output format.",
		KeyUnsupportedFile:     "Unsupported file: %s. Choose an .mp4 or .avi video.",
		KeyStatusConverting:    "Converting, please wait...",
		KeyStatusSuccess:       "Conversion successful! Click Download.",
		KeyStatusError:         "Error: %s",
		KeyDownloadCompleted:   "Download Completed",
		KeyDownloadSuccessful:  "Download successful!",
		KeyShowInFolder:        "Show in folder",
		KeyClose:               "Close",
		KeyConversionCompleted: "Conversion completed",
		KeyErrorOpeningFile:    "Error opening file",
		KeyFFmpegDirectory:     "FFmpeg Folder (empty = PATH)",
		KeyGIFFrameRate:        "GIF Frame Rate",
		KeyBrowse:              "Browse",
		KeySave:                "Save",
		KeyCancel:              "Cancel",
		KeySettingsSaved:       "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:            "Видеоконвертер",
		KeyFile:                "Файл",
		KeySettings:            "Настройки",
		KeyLanguage:            "Язык",
		KeyChooseFile:          "Выбрать видеофайл",
		KeyNoFileSelected:      "Файл не выбран",
		KeySelectedFile:        "Выбран файл: %s",
		KeySelectFormat:        "Выберите формат (по умолчанию: MP4)",
		KeySelectedFormat:      "Выбран формат: %s",
		KeyConvert:             "Конвертировать",
		KeyDownload:            "Скачать",
		KeyStatusWaiting:       "Статус: ожидание",
		KeyStatusValidation:    "Выберите видеофайл и формат.",
		KeyUnsupportedFile:     "Неподдерживаемый файл: %s. Выберите видео .mp4 или .avi.",
		KeyStatusConverting:    "Конвертация, подождите...",
		KeyStatusSuccess:       "Конвертация завершена! Нажмите «Скачать».",
		KeyStatusError:         "Ошибка: %s",
		KeyDownloadCompleted:   "Загрузка завершена",
		KeyDownloadSuccessful:  "Файл готов!",
		KeyShowInFolder:        "Показать в папке",
		KeyClose:               "Закрыть",
		KeyConversionCompleted: "Конвертация завершена",
		KeyErrorOpeningFile:    "Ошибка открытия файла",
		KeyFFmpegDirectory:     "Папка FFmpeg (пусто = PATH)",
		KeyGIFFrameRate:        "Частота кадров GIF",
		KeyBrowse:              "Обзор",
		KeySave:                "Сохранить",
		KeyCancel:              "Отмена",
		KeySettingsSaved:       "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:            "Conversor de Vídeo",
		KeyFile:                "Arquivo",
		KeySettings:            "Configurações",
		KeyLanguage:            "Idioma",
		KeyChooseFile:          "Escolher Arquivo de Vídeo",
		KeyNoFileSelected:      "Nenhum arquivo selecionado",
		KeySelectedFile:        "Arquivo selecionado: %s",
		KeySelectFormat:        "Selecione o Formato (Padrão: MP4)",
		KeySelectedFormat:      "Formato selecionado: %s",
		KeyConvert:             "Converter",
		KeyDownload:            "Baixar",
		KeyStatusWaiting:       "Status: Aguardando entrada",
		KeyStatusValidation:    "Selecione um arquivo de vídeo e o formato de saída.",
		KeyUnsupportedFile:     "Arquivo não suportado: %s. Escolha um vídeo .mp4 ou .avi.",
		KeyStatusConverting:    "Convertendo, aguarde...",
		KeyStatusSuccess:       "Conversão concluída! Clique em Baixar.",
		KeyStatusError:         "Erro: %s",
		KeyDownloadCompleted:   "Download Concluído",
		KeyDownloadSuccessful:  "Download concluído com sucesso!",
		KeyShowInFolder:        "Mostrar na pasta",
		KeyClose:               "Fechar",
		KeyConversionCompleted: "Conversão concluída",
		KeyErrorOpeningFile:    "Erro ao abrir arquivo",
		KeyFFmpegDirectory:     "Pasta do FFmpeg (vazio = PATH)",
		KeyGIFFrameRate:        "Taxa de Quadros do GIF",
		KeyBrowse:              "Navegar",
		KeySave:                "Salvar",
		KeyCancel:              "Cancelar",
		KeySettingsSaved:       "Configurações salvas com sucesso!",
	}
}
