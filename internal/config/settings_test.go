package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLastDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test setting custom value
	customDir := "/custom/videos"
	settings.SetLastDirectory(customDir)

	retrievedDir := settings.GetLastDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected last directory %s, got %s", customDir, retrievedDir)
	}
}

func TestFFmpegDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Empty by default, meaning ffmpeg is looked up in PATH
	if dir := settings.GetFFmpegDirectory(); dir != "" {
		t.Errorf("Expected empty ffmpeg directory, got %s", dir)
	}

	settings.SetFFmpegDirectory("/opt/ffmpeg/bin")
	if dir := settings.GetFFmpegDirectory(); dir != "/opt/ffmpeg/bin" {
		t.Errorf("Expected ffmpeg directory /opt/ffmpeg/bin, got %s", dir)
	}
}

func TestGIFFrameRate(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	fps := settings.GetGIFFrameRate()
	if fps != DefaultGIFFrameRate {
		t.Errorf("Expected default GIF frame rate %d, got %d", DefaultGIFFrameRate, fps)
	}

	// Test setting custom value
	settings.SetGIFFrameRate(24)
	if got := settings.GetGIFFrameRate(); got != 24 {
		t.Errorf("Expected GIF frame rate 24, got %d", got)
	}

	// Test boundary values
	settings.SetGIFFrameRate(0) // Should be clamped to 1
	if settings.GetGIFFrameRate() != MinGIFFrameRate {
		t.Error("GIF frame rate should be clamped to minimum 1")
	}

	settings.SetGIFFrameRate(120) // Should be clamped to 50
	if settings.GetGIFFrameRate() != MaxGIFFrameRate {
		t.Error("GIF frame rate should be clamped to maximum 50")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
