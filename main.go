package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/config"
	"github.com/ytget/video-converter/internal/convert"
	"github.com/ytget/video-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.video-converter"
	AppName = "Video Converter"

	WindowWidth  = 520
	WindowHeight = 360
)

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "video-converter",
		Level: hclog.Info,
	})
	logger.Info("starting", "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.Debug("app icon not loaded", "error", err)
	}

	// Closing the window kills a running ffmpeg
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	myWindow.SetOnClosed(cancel)

	// Initialize services
	settings := config.NewSettings(myApp)
	converter := convert.NewService(
		convert.NewFFmpegRunner("", "", logger.Named("ffmpeg")),
		convert.DefaultOptions(),
		logger.Named("convert"),
	)
	ui.ConfigureConverter(converter, settings, logger.Named("convert"))

	// Create and setup UI
	ui.NewRootUI(ctx, myWindow, myApp, settings, converter, logger.Named("ui"))

	// Show and run
	myWindow.ShowAndRun()
}
