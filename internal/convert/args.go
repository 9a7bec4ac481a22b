package convert

import (
	"fmt"

	"github.com/ytget/video-converter/internal/model"
)

// Encoder settings per output format
const (
	// MP4
	MP4VideoCodec   = "libx264"
	MP4Preset       = "medium"
	MP4CRF          = "23"
	MP4AudioCodec   = "aac"
	MP4AudioBitrate = "128k"
	FastStartFlag   = "+faststart"

	// AVI frames are PNG-coded. This is an image codec, so files are lossless
	// and large; players without a PNG decoder cannot open them.
	AVIVideoCodec = "png"
	AVIAudioCodec = "pcm_s16le"

	// GIF
	DefaultGIFFrameRate = 10
	GIFLoopForever      = "0"

	ProgressPipeTarget = "pipe:2"
)

// Options tunes the export
type Options struct {
	GIFFrameRate int
}

// DefaultOptions returns the export defaults
func DefaultOptions() Options {
	return Options{GIFFrameRate: DefaultGIFFrameRate}
}

// BuildArgs builds the ffmpeg command arguments for a job
func BuildArgs(format model.Format, inputPath, outputPath string, opts Options) ([]string, error) {
	args := []string{
		"-y",
		"-v", "error",
		"-i", inputPath,
	}

	switch format {
	case model.FormatMP4:
		args = append(args,
			"-c:v", MP4VideoCodec,
			"-preset", MP4Preset,
			"-crf", MP4CRF,
			"-c:a", MP4AudioCodec,
			"-b:a", MP4AudioBitrate,
			"-movflags", FastStartFlag,
		)
	case model.FormatAVI:
		args = append(args,
			"-c:v", AVIVideoCodec,
			"-c:a", AVIAudioCodec,
		)
	case model.FormatGIF:
		fps := opts.GIFFrameRate
		if fps <= 0 {
			fps = DefaultGIFFrameRate
		}
		args = append(args,
			"-an",
			"-vf", gifFilter(fps),
			"-loop", GIFLoopForever,
		)
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}

	return append(args,
		"-progress", ProgressPipeTarget,
		"-nostats",
		outputPath,
	), nil
}

// gifFilter builds a two-pass palette filter graph for better GIF colors
func gifFilter(fps int) string {
	return fmt.Sprintf("fps=%d,split[a][b];[a]palettegen[p];[b][p]paletteuse", fps)
}
