package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/video-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyLastDirectory   = "last_directory"
	KeyFFmpegDirectory = "ffmpeg_directory"
	KeyGIFFrameRate    = "gif_fps"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultGIFFrameRate = 10
	MinGIFFrameRate     = 1
	MaxGIFFrameRate     = 50
	DefaultLanguage     = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastDirectory returns the directory the file selector opens in
func (s *Settings) GetLastDirectory() string {
	dir := s.app.Preferences().String(KeyLastDirectory)
	if dir == "" {
		defaultDir, err := platform.GetHomeVideosDir()
		if err != nil {
			return ""
		}
		return defaultDir
	}
	return dir
}

// SetLastDirectory remembers the directory of the last selected file
func (s *Settings) SetLastDirectory(dir string) {
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetFFmpegDirectory returns the directory holding ffmpeg/ffprobe, empty means PATH
func (s *Settings) GetFFmpegDirectory() string {
	return s.app.Preferences().String(KeyFFmpegDirectory)
}

// SetFFmpegDirectory sets the directory holding ffmpeg/ffprobe
func (s *Settings) SetFFmpegDirectory(dir string) {
	s.app.Preferences().SetString(KeyFFmpegDirectory, dir)
}

// GetGIFFrameRate returns the frame rate used for GIF export
func (s *Settings) GetGIFFrameRate() int {
	value := s.app.Preferences().Int(KeyGIFFrameRate)
	if value <= 0 {
		s.SetGIFFrameRate(DefaultGIFFrameRate)
		return DefaultGIFFrameRate
	}
	return value
}

// SetGIFFrameRate sets the GIF frame rate
func (s *Settings) SetGIFFrameRate(fps int) {
	if fps < MinGIFFrameRate {
		fps = MinGIFFrameRate
	}
	if fps > MaxGIFFrameRate {
		fps = MaxGIFFrameRate
	}
	s.app.Preferences().SetInt(KeyGIFFrameRate, fps)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
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
