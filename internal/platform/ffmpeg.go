package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Executable names
const (
	FFmpegName  = "ffmpeg"
	FFprobeName = "ffprobe"
	BinDir      = "bin"
)

// LocateFFmpeg finds ffmpeg and ffprobe. It checks dir first (when set), then a
// bin/ folder next to the executable, then PATH.
func LocateFFmpeg(dir string) (ffmpegPath, ffprobePath string, err error) {
	ffmpegName := executableName(FFmpegName)
	ffprobeName := executableName(FFprobeName)

	var searchPaths []string
	if dir != "" {
		searchPaths = append(searchPaths, dir)
	}
	if exePath, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exePath)
		searchPaths = append(searchPaths,
			filepath.Join(exeDir, BinDir),       // Next to executable
			filepath.Join(exeDir, "..", BinDir), // Parent/bin (for development)
		)
	}

	for _, searchPath := range searchPaths {
		candidate := filepath.Join(searchPath, ffmpegName)
		if isFile(candidate) {
			probe := filepath.Join(searchPath, ffprobeName)
			if !isFile(probe) {
				return "", "", fmt.Errorf("ffprobe not found next to %s", candidate)
			}
			return candidate, probe, nil
		}
	}

	// Fall back to PATH
	ffmpegPath, err = exec.LookPath(ffmpegName)
	if err != nil {
		return "", "", fmt.Errorf("ffmpeg not found: install it or set its folder in settings")
	}
	ffprobePath, err = exec.LookPath(ffprobeName)
	if err != nil {
		return "", "", fmt.Errorf("ffprobe not found: install it or set its folder in settings")
	}
	return ffmpegPath, ffprobePath, nil
}

func executableName(name string) string {
	if runtime.GOOS == OSWindows {
		return name + ".exe"
	}
	return name
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
