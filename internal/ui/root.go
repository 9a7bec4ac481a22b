package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/model"
	"github.com/ytget/video-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	app          fyne.App
	session      *model.Session
	converter    *convert.Service
	worker       *convert.Worker
	settings     *config.Settings
	localization *Localization
	logger       hclog.Logger

	// dispatch runs fn on the UI thread; worker output only reaches widgets through it
	dispatch func(fn func())

	chooseBtn   *widget.Button
	fileLabel   *widget.Label
	formatBtn   *widget.Button
	convertBtn  *widget.Button
	downloadBtn *widget.Button
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	// formatChosen switches the format button from its default prompt
	formatChosen bool
}

// NewRootUI creates and initializes the main UI. ctx bounds every conversion
// started from this window.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, settings *config.Settings, converter *convert.Service, logger hclog.Logger) *RootUI {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		app:          app,
		session:      model.NewSession(),
		converter:    converter,
		worker:       convert.NewWorker(converter, logger.Named("worker")),
		settings:     settings,
		localization: localization,
		logger:       logger,
		dispatch:     fyne.Do,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// File selector
	ui.chooseBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyChooseFile), ui.onChooseFile)
	ui.fileLabel = widget.NewLabel(ui.localization.GetText(KeyNoFileSelected))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	// Format selector
	ui.formatBtn = widget.NewButton(ui.localization.GetText(KeySelectFormat), ui.onShowFormatMenu)

	// Actions
	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvert), ui.onConvert)
	ui.convertBtn.Importance = widget.HighImportance
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownload)
	ui.downloadBtn.Disable()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Status and progress
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusWaiting))
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = 0
	ui.progressBar.Max = 1

	var header fyne.CanvasObject = container.NewBorder(nil, nil, nil, settingsBtn, ui.chooseBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		header = container.NewBorder(nil, nil, logoImage, settingsBtn, ui.chooseBtn)
	}

	form := container.NewVBox(
		header,
		ui.fileLabel,
		ui.formatBtn,
		ui.convertBtn,
		ui.downloadBtn,
		widget.NewSeparator(),
		ui.statusLabel,
		ui.progressBar,
	)

	ui.window.SetContent(container.NewPadded(form))
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
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
	ui.chooseBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyChooseFile))
	ui.convertBtn.SetText(ui.localization.GetText(KeyConvert))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.updateFileLabel()
	ui.updateFormatButton()
	ui.updateStatus()
}

// onChooseFile opens the file selector restricted to supported video files
func (ui *RootUI) onChooseFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return // User cancelled
		}
		reader.Close()

		ui.onFileSelected(reader.URI().Path())
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(model.SupportedInputExtensions))

	if dir := ui.settings.GetLastDirectory(); dir != "" {
		if listable, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(listable)
		}
	}

	fd.Show()
}

// onFileSelected records a chosen input path
func (ui *RootUI) onFileSelected(path string) {
	if path == "" {
		return
	}
	if !platform.HasExtension(path, model.SupportedInputExtensions) {
		ui.logger.Warn("rejecting unsupported input", "path", path)
		ui.statusLabel.SetText(ui.localization.Format(KeyUnsupportedFile, filepath.Base(path)))
		return
	}
	if !ui.session.SelectFile(path) {
		ui.logger.Debug("input ignored while converting", "path", path)
		return
	}
	ui.logger.Info("input selected", "path", path)

	ui.settings.SetLastDirectory(filepath.Dir(path))
	ui.updateFileLabel()
	ui.refreshControls()
}

// onShowFormatMenu shows the output format dropdown under the format button
func (ui *RootUI) onShowFormatMenu() {
	items := make([]*fyne.MenuItem, 0, len(model.Formats()))
	for _, format := range model.Formats() {
		label := format.Label()
		items = append(items, fyne.NewMenuItem(label, func() {
			ui.onFormatSelected(label)
		}))
	}

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(ui.formatBtn)
	pos = pos.Add(fyne.NewPos(0, ui.formatBtn.Size().Height))
	widget.ShowPopUpMenuAtPosition(fyne.NewMenu("", items...), ui.window.Canvas(), pos)
}

// onFormatSelected handles a format selection event
func (ui *RootUI) onFormatSelected(label string) {
	format, err := model.ParseFormat(label)
	if err != nil {
		ui.logger.Warn("ignoring format selection", "error", err)
		return
	}
	ui.session.SelectFormat(format)
	ui.formatChosen = true
	ui.updateFormatButton()
}

// onConvert validates the session and hands the job to the worker
func (ui *RootUI) onConvert() {
	job, err := ui.session.BeginConversion()
	if err != nil {
		ui.logger.Info("conversion not started", "reason", err)
		ui.statusLabel.SetText(ui.localization.GetText(KeyStatusValidation))
		return
	}

	ui.progressBar.SetValue(0)
	ui.refreshControls()
	ui.updateStatus()

	results, err := ui.worker.Start(ui.ctx, job, ui.progressSink())
	if err != nil {
		var convErr *model.ConversionError
		if !errors.As(err, &convErr) {
			convErr = model.NewConversionError(model.ErrExportFailure, "%s", err.Error())
		}
		ui.applyResult(model.Failed(job, convErr))
		return
	}

	go ui.awaitResult(results)
}

// progressSink returns a sink that posts throttled progress to the UI thread
func (ui *RootUI) progressSink() convert.ProgressSink {
	var lastPost time.Time
	return func(fraction float64) {
		now := time.Now()
		if fraction < 1 && now.Sub(lastPost) < ProgressRefreshInterval {
			return
		}
		lastPost = now
		ui.dispatch(func() {
			ui.progressBar.SetValue(fraction)
		})
	}
}

// awaitResult waits for the worker and posts its result to the UI thread
func (ui *RootUI) awaitResult(results <-chan model.Result) {
	result, ok := <-results
	if !ok {
		return
	}
	ui.dispatch(func() {
		ui.applyResult(result)
	})
}

// applyResult folds a worker result into the session and refreshes widgets
func (ui *RootUI) applyResult(result model.Result) {
	if !ui.session.Apply(result) {
		ui.logger.Debug("dropping stale result", "job", result.JobID)
		return
	}

	if result.OK() {
		ui.logger.Info("conversion succeeded", "job", result.JobID, "output", result.OutputPath)
		ui.progressBar.SetValue(1)
		ui.sendCompletionNotification(result.OutputPath)
	} else {
		ui.logger.Warn("conversion failed", "job", result.JobID, "kind", result.Err.Kind, "error", result.Err.Message)
	}

	ui.refreshControls()
	ui.updateStatus()
}

// onDownload shows the confirmation dialog for the converted file
func (ui *RootUI) onDownload() {
	if !ui.session.CanDownload() {
		return
	}
	outputPath := ui.session.OutputPath

	message := ui.localization.GetText(KeyDownloadSuccessful) + "\n" + filepath.Base(outputPath)
	if info, err := os.Stat(outputPath); err == nil {
		message += " (" + humanize.Bytes(uint64(info.Size())) + ")"
	}
	content := widget.NewLabel(message)
	content.Wrapping = fyne.TextWrapWord

	d := dialog.NewCustomConfirm(
		ui.localization.GetText(KeyDownloadCompleted),
		ui.localization.GetText(KeyShowInFolder),
		ui.localization.GetText(KeyClose),
		content,
		func(reveal bool) {
			if reveal {
				ui.onRevealFile(outputPath)
			}
		},
		ui.window,
	)
	d.Resize(fyne.NewSize(DownloadDialogWidth, DownloadDialogHeight))
	d.Show()
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		ui.logger.Error("failed to reveal file", "path", filePath, "error", err)
		dialog.ShowError(errors.New(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window)
	}
}

// sendCompletionNotification sends a system notification for a finished conversion
func (ui *RootUI) sendCompletionNotification(outputPath string) {
	ui.app.SendNotification(fyne.NewNotification(
		ui.localization.GetText(KeyConversionCompleted),
		filepath.Base(outputPath),
	))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed settings to the converter and the texts
func (ui *RootUI) onSettingsSaved() {
	ConfigureConverter(ui.converter, ui.settings, ui.logger)
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshControls enables or disables the actions from session state
func (ui *RootUI) refreshControls() {
	if ui.session.CanConvert() {
		ui.chooseBtn.Enable()
		ui.convertBtn.Enable()
	} else {
		ui.chooseBtn.Disable()
		ui.convertBtn.Disable()
	}

	if ui.session.CanDownload() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}
}

func (ui *RootUI) updateFileLabel() {
	if ui.session.InputPath == "" {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileSelected))
		return
	}
	ui.fileLabel.SetText(ui.localization.Format(KeySelectedFile, filepath.Base(ui.session.InputPath)))
}

func (ui *RootUI) updateFormatButton() {
	if !ui.formatChosen {
		ui.formatBtn.SetText(ui.localization.GetText(KeySelectFormat))
		return
	}
	ui.formatBtn.SetText(ui.localization.Format(KeySelectedFormat, ui.session.Format.Label()))
}

// updateStatus renders the status line for the current session state
func (ui *RootUI) updateStatus() {
	var text string
	switch ui.session.State {
	case model.StateConverting:
		text = ui.localization.GetText(KeyStatusConverting)
	case model.StateConverted:
		text = ui.localization.GetText(KeyStatusSuccess)
	case model.StateFailed:
		text = ui.localization.Format(KeyStatusError, ui.session.LastError.Error())
	default:
		text = ui.localization.GetText(KeyStatusWaiting)
	}
	ui.statusLabel.SetText(text)
}

// ConfigureConverter points converter at the ffmpeg binaries and export
// options stored in settings
func ConfigureConverter(converter *convert.Service, settings *config.Settings, logger hclog.Logger) {
	ffmpegPath, ffprobePath, err := platform.LocateFFmpeg(settings.GetFFmpegDirectory())
	if err != nil {
		// Conversions will report the missing binary in the status line
		logger.Warn("ffmpeg lookup failed", "error", err)
	} else {
		logger.Info("using ffmpeg", "ffmpeg", ffmpegPath, "ffprobe", ffprobePath)
	}

	converter.SetRunner(convert.NewFFmpegRunner(ffmpegPath, ffprobePath, logger.Named("ffmpeg")))
	converter.SetOptions(convert.Options{GIFFrameRate: settings.GetGIFFrameRate()})
}
