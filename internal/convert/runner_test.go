package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/video-converter/internal/model"
)

// writeScript writes an executable shell script standing in for ffmpeg or ffprobe
func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

const (
	failingFFmpeg = `echo "out_time_us=500000" >&2
echo "progress=continue" >&2
echo "clip.mp4: Invalid data found when processing input" >&2
exit 1
`
	workingFFmpeg = `for last; do :; done
echo "frame=1" >&2
echo "out_time_us=1000000" >&2
echo "out_time_ms=2000000" >&2
echo "progress=end" >&2
echo converted > "$last"
`
)

func TestMonitorProgress(t *testing.T) {
	output := strings.Join([]string{
		"frame=10",
		"fps=25.0",
		"out_time_us=1000000",
		"out_time_ms=1500000",
		"out_time=00:00:01.500000",
		"speed=2.01x",
		"progress=continue",
		"out_time_us=N/A",
		"out_time_us=3000000",
		"progress=end",
	}, "\n")

	var times []float64
	errLines := monitorProgress(strings.NewReader(output), func(seconds float64) {
		times = append(times, seconds)
	})

	assert.Equal(t, []float64{1, 1.5, 3}, times)
	assert.Empty(t, errLines)
}

func TestMonitorProgress_CollectsErrors(t *testing.T) {
	output := strings.Join([]string{
		"out_time_us=500000",
		"/videos/broken.mp4: Invalid data found when processing input",
		"",
		"Error opening input files: Invalid data found when processing input",
	}, "\n")

	errLines := monitorProgress(strings.NewReader(output), nil)

	require.Len(t, errLines, 2)
	assert.Contains(t, errLines[0], "Invalid data found")
}

func TestMonitorProgress_KeepsLastErrorLines(t *testing.T) {
	var lines []string
	for i := 0; i < maxErrorLines+3; i++ {
		lines = append(lines, "error line "+string(rune('a'+i)))
	}

	errLines := monitorProgress(strings.NewReader(strings.Join(lines, "\n")), nil)

	require.Len(t, errLines, maxErrorLines)
	assert.Equal(t, lines[len(lines)-1], errLines[len(errLines)-1])
}

func TestIsProgressLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"frame=10", true},
		{"stream_0_0_q=28.0", true},
		{"progress=end", true},
		{"Error while decoding stream #0:0: Invalid data", false},
		{"[libx264 @ 0x55] width not divisible by 2 (w=3)", false},
		{"=oops", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, isProgressLine(test.line), "isProgressLine(%q)", test.line)
	}
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("12.480000\n")
	require.NoError(t, err)
	assert.InDelta(t, 12.48, d, 1e-9)

	d, err = parseDuration("N/A\n")
	require.NoError(t, err)
	assert.Zero(t, d)

	d, err = parseDuration("")
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = parseDuration("garbage")
	assert.Error(t, err)
}

func TestNewFFmpegRunner_Defaults(t *testing.T) {
	r := NewFFmpegRunner("", "", nil)

	assert.Equal(t, FFmpegCommand, r.ffmpegPath)
	assert.Equal(t, FFprobeCommand, r.ffprobePath)
	assert.NotNil(t, r.logger)
}

func TestMonitorProgress_DrainsOverlongLine(t *testing.T) {
	output := strings.Repeat("x", maxLineSize+10) + "\nout_time_us=1000000\n"
	reader := strings.NewReader(output)

	errLines := monitorProgress(reader, nil)

	assert.Zero(t, reader.Len(), "stderr should be read to the end")
	require.NotEmpty(t, errLines)
	assert.Contains(t, errLines[len(errLines)-1], "stderr unreadable")
}

func TestFFmpegRunner_Run(t *testing.T) {
	ffmpeg := writeScript(t, "ffmpeg", workingFFmpeg)
	output := filepath.Join(t.TempDir(), "clip_converted.mp4")
	runner := NewFFmpegRunner(ffmpeg, "", hclog.NewNullLogger())

	var times []float64
	err := runner.Run(context.Background(), []string{"-y", "-i", "clip.mp4", output}, func(seconds float64) {
		times = append(times, seconds)
	})

	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, times)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "converted\n", string(data))
}

func TestFFmpegRunner_Run_Failure(t *testing.T) {
	ffmpeg := writeScript(t, "ffmpeg", failingFFmpeg)
	runner := NewFFmpegRunner(ffmpeg, "", nil)

	var times []float64
	err := runner.Run(context.Background(), []string{"-i", "clip.mp4", "out.mp4"}, func(seconds float64) {
		times = append(times, seconds)
	})

	require.Error(t, err)
	assert.Equal(t, "ffmpeg failed: clip.mp4: Invalid data found when processing input", err.Error())
	assert.Equal(t, []float64{0.5}, times)
}

func TestFFmpegRunner_Run_SilentFailure(t *testing.T) {
	ffmpeg := writeScript(t, "ffmpeg", "exit 3\n")
	runner := NewFFmpegRunner(ffmpeg, "", nil)

	err := runner.Run(context.Background(), []string{"out.mp4"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ffmpeg failed: exit status 3")
}

func TestFFmpegRunner_Run_MissingBinary(t *testing.T) {
	runner := NewFFmpegRunner(filepath.Join(t.TempDir(), "no-ffmpeg"), "", nil)

	err := runner.Run(context.Background(), []string{"out.mp4"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start ffmpeg")
}

func TestFFmpegRunner_Run_ContextCancelled(t *testing.T) {
	ffmpeg := writeScript(t, "ffmpeg", "exec sleep 10\n")
	runner := NewFFmpegRunner(ffmpeg, "", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := runner.Run(ctx, []string{"out.mp4"}, nil)

	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second, "ffmpeg should be killed on cancel")
}

func TestFFmpegRunner_Probe(t *testing.T) {
	ffprobe := writeScript(t, "ffprobe", "echo 12.480000\n")
	runner := NewFFmpegRunner("", ffprobe, nil)

	duration, err := runner.Probe(context.Background(), "clip.mp4")

	require.NoError(t, err)
	assert.InDelta(t, 12.48, duration, 1e-9)
}

func TestFFmpegRunner_Probe_UnknownDuration(t *testing.T) {
	ffprobe := writeScript(t, "ffprobe", "echo N/A\n")
	runner := NewFFmpegRunner("", ffprobe, nil)

	duration, err := runner.Probe(context.Background(), "clip.gif")

	require.NoError(t, err)
	assert.Zero(t, duration)
}

func TestFFmpegRunner_Probe_Failure(t *testing.T) {
	ffprobe := writeScript(t, "ffprobe", "echo \"clip.mp4: Invalid data found when processing input\" >&2\nexit 1\n")
	runner := NewFFmpegRunner("", ffprobe, nil)

	_, err := runner.Probe(context.Background(), "clip.mp4")

	require.Error(t, err)
	assert.Equal(t, "ffprobe failed: clip.mp4: Invalid data found when processing input", err.Error())
}

func TestFFmpegRunner_Probe_MissingBinary(t *testing.T) {
	runner := NewFFmpegRunner("", filepath.Join(t.TempDir(), "no-ffprobe"), nil)

	_, err := runner.Probe(context.Background(), "clip.mp4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run ffprobe")
}

func TestService_Convert_FFmpegErrorReachesResult(t *testing.T) {
	ffmpeg := writeScript(t, "ffmpeg", failingFFmpeg)
	ffprobe := writeScript(t, "ffprobe", "echo 1.0\n")
	service := NewService(NewFFmpegRunner(ffmpeg, ffprobe, nil), DefaultOptions(), hclog.NewNullLogger())

	job := model.NewJob(writeTempVideo(t, "clip.mp4"), model.FormatMP4)
	result := service.Convert(context.Background(), job, nil)

	require.False(t, result.OK())
	assert.Equal(t, model.ErrExportFailure, result.Err.Kind)
	assert.Contains(t, result.Err.Error(), "Invalid data found when processing input")
}
