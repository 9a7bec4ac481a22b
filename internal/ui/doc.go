package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the file and format selectors, the convert and download actions,
// status text and progress bar to the conversion worker. Worker output reaches
// widgets only through fyne.Do. All UI strings are localized via Localization.
