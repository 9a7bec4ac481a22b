package convert

import (
	"context"

	"github.com/ytget/video-converter/internal/model"
)

// Runner abstracts the external encoder
type Runner interface {
	// Probe returns the duration of the media at path in seconds
	Probe(ctx context.Context, path string) (float64, error)
	// Run executes ffmpeg with args, reporting encoded media time in seconds
	Run(ctx context.Context, args []string, onTime func(seconds float64)) error
}

// Converter performs a single job synchronously
type Converter interface {
	Convert(ctx context.Context, job model.Job, reporter *ProgressReporter) model.Result
}

// ProgressSink receives progress fractions in [0, 1]
type ProgressSink func(fraction float64)
