package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// FFmpeg invocation constants
const (
	FFmpegCommand       = "ffmpeg"
	FFprobeCommand      = "ffprobe"
	FFprobeLogLevel     = "error"
	FFprobeShowEntries  = "format=duration"
	FFprobeOutputFormat = "csv=p=0"
	ProgressTimePrefix  = "out_time_us="
	// ffmpeg reports microseconds under this key as well
	ProgressTimeMsPrefix = "out_time_ms="
	NotAvailable         = "N/A"

	// stderr lines kept for error messages
	maxErrorLines = 5

	// longest stderr line parsed; longer output is discarded
	maxLineSize = 1024 * 1024
)

// FFmpegRunner runs the ffmpeg and ffprobe executables
type FFmpegRunner struct {
	ffmpegPath  string
	ffprobePath string
	logger      hclog.Logger
}

// NewFFmpegRunner creates a runner for the given binaries. Empty paths fall
// back to looking the commands up in PATH at run time.
func NewFFmpegRunner(ffmpegPath, ffprobePath string, logger hclog.Logger) *FFmpegRunner {
	if ffmpegPath == "" {
		ffmpegPath = FFmpegCommand
	}
	if ffprobePath == "" {
		ffprobePath = FFprobeCommand
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &FFmpegRunner{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, logger: logger}
}

// Probe gets the duration of a media file using ffprobe. Files without a known
// duration report 0.
func (r *FFmpegRunner) Probe(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, r.ffprobePath, "-v", FFprobeLogLevel, "-show_entries", FFprobeShowEntries, "-of", FFprobeOutputFormat, path)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return 0, fmt.Errorf("ffprobe failed: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return 0, fmt.Errorf("failed to run ffprobe: %w", err)
	}

	return parseDuration(string(output))
}

// Run executes ffmpeg and reports progress parsed from -progress pipe:2
func (r *FFmpegRunner) Run(ctx context.Context, args []string, onTime func(seconds float64)) error {
	cmd := exec.CommandContext(ctx, r.ffmpegPath, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	r.logger.Debug("starting ffmpeg", "args", strings.Join(args, " "))
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start ffmpeg: %w", err)
	}

	// Read until EOF before Wait, Wait closes the pipe
	errLines := monitorProgress(stderr, onTime)

	if err := cmd.Wait(); err != nil {
		if len(errLines) > 0 {
			return fmt.Errorf("ffmpeg failed: %s", strings.Join(errLines, "; "))
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

// monitorProgress parses ffmpeg progress output and returns the last
// non-progress lines for error reporting
func monitorProgress(stderr io.Reader, onTime func(seconds float64)) []string {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var errLines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Parse progress line: out_time_us=123456
		if seconds, ok := parseProgressTime(line); ok {
			if onTime != nil {
				onTime(seconds)
			}
			continue
		}
		if isProgressLine(line) {
			continue
		}

		errLines = append(errLines, line)
		if len(errLines) > maxErrorLines {
			errLines = errLines[1:]
		}
	}

	// ffmpeg blocks on a full pipe if nobody reads the rest
	if err := scanner.Err(); err != nil {
		errLines = append(errLines, fmt.Sprintf("stderr unreadable: %v", err))
		_, _ = io.Copy(io.Discard, stderr)
	}
	return errLines
}

func parseProgressTime(line string) (float64, bool) {
	var value string
	switch {
	case strings.HasPrefix(line, ProgressTimePrefix):
		value = strings.TrimPrefix(line, ProgressTimePrefix)
	case strings.HasPrefix(line, ProgressTimeMsPrefix):
		value = strings.TrimPrefix(line, ProgressTimeMsPrefix)
	default:
		return 0, false
	}

	microseconds, err := strconv.ParseInt(value, 10, 64)
	if err != nil || microseconds < 0 {
		return 0, false
	}
	return float64(microseconds) / 1000000.0, true
}

// isProgressLine matches key=value lines emitted by -progress
func isProgressLine(line string) bool {
	idx := strings.IndexByte(line, '=')
	return idx > 0 && !strings.ContainsAny(line[:idx], " :")
}

func parseDuration(output string) (float64, error) {
	durationStr := strings.TrimSpace(output)
	if durationStr == "" || durationStr == NotAvailable {
		return 0, nil
	}
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}
	return duration, nil
}
