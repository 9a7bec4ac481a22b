package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, ffmpeg discovery, and OS reveal-in-file-manager.
