package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path is empty")
	}
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam+absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux tries known file managers, then falls back to opening the directory
func openFileInManagerLinux(filePath string) error {
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err != nil {
			continue
		}
		var cmd *exec.Cmd
		switch fm {
		case "nautilus", "dolphin":
			cmd = exec.Command(fm, "--select", filePath)
		default:
			cmd = exec.Command(fm, filepath.Dir(filePath))
		}
		if err := cmd.Start(); err == nil {
			return nil
		}
	}

	return exec.Command(XDGOpenCommand, filepath.Dir(filePath)).Start()
}

// GetHomeVideosDir returns the standard videos directory for the user, or the
// home directory when there is none
func GetHomeVideosDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	name := "Videos"
	if runtime.GOOS == OSDarwin {
		name = "Movies"
	}

	videosDir := filepath.Join(homeDir, name)
	if info, err := os.Stat(videosDir); err == nil && info.IsDir() {
		return videosDir, nil
	}
	return homeDir, nil
}

// HasExtension reports whether path ends in one of exts, ignoring case
func HasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
