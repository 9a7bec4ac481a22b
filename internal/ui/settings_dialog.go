package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/video-converter/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	ffmpegDirEntry *widget.Entry
	gifFPSEntry    *widget.Entry
	languageSelect *widget.Select
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
	text := sd.localization.GetText

	// FFmpeg folder selection
	sd.ffmpegDirEntry = widget.NewEntry()
	sd.ffmpegDirEntry.SetPlaceHolder("/usr/local/bin")
	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	ffmpegDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.ffmpegDirEntry)

	// GIF frame rate
	sd.gifFPSEntry = widget.NewEntry()
	sd.gifFPSEntry.SetPlaceHolder(strconv.Itoa(config.MinGIFFrameRate) + "-" + strconv.Itoa(config.MaxGIFFrameRate))

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	slices.Sort(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(text(KeyFFmpegDirectory)+":"),
		ffmpegDirRow,

		widget.NewLabel(text(KeyGIFFrameRate)+":"),
		sd.gifFPSEntry,

		widget.NewSeparator(),
		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.ffmpegDirEntry.SetText(sd.settings.GetFFmpegDirectory())
	sd.gifFPSEntry.SetText(strconv.Itoa(sd.settings.GetGIFFrameRate()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.ffmpegDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the dialog fields to settings and notifies the owner
func (sd *SettingsDialog) apply() {
	// An empty folder means ffmpeg is looked up in PATH
	sd.settings.SetFFmpegDirectory(sd.ffmpegDirEntry.Text)

	if fpsStr := sd.gifFPSEntry.Text; fpsStr != "" {
		if fps, err := strconv.Atoi(fpsStr); err == nil {
			sd.settings.SetGIFFrameRate(fps)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
