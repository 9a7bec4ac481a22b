package model

import (
	"fmt"
	"strings"
)

// Format is an output container the converter can produce
type Format string

const (
	FormatMP4 Format = "mp4"
	FormatAVI Format = "avi"
	FormatGIF Format = "gif"
)

// DefaultFormat is used until the user picks another one
const DefaultFormat = FormatMP4

// SupportedInputExtensions lists the extensions the file selector accepts
var SupportedInputExtensions = []string{".mp4", ".avi"}

// Formats returns all output formats in display order
func Formats() []Format {
	return []Format{FormatMP4, FormatAVI, FormatGIF}
}

// ParseFormat converts a label such as "MP4" or "gif" into a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unsupported output format: %q", s)
	}
	return f, nil
}

// IsValid reports whether f is one of the known formats
func (f Format) IsValid() bool {
	switch f {
	case FormatMP4, FormatAVI, FormatGIF:
		return true
	}
	return false
}

// Extension returns the file extension including the leading dot
func (f Format) Extension() string {
	return "." + string(f)
}

// Label returns the upper-case name shown in the format selector
func (f Format) Label() string {
	return strings.ToUpper(string(f))
}

func (f Format) String() string {
	return string(f)
}
