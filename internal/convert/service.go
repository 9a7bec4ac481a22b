package convert

import (
	"context"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/model"
)

// Service converts one job at a time through a Runner
type Service struct {
	logger hclog.Logger

	mu     sync.RWMutex
	runner Runner
	opts   Options
}

// NewService creates a new conversion service
func NewService(runner Runner, opts Options, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{
		logger: logger,
		runner: runner,
		opts:   opts,
	}
}

// SetOptions replaces the export options used by the next job
func (s *Service) SetOptions(opts Options) {
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
}

// SetRunner replaces the encoder used by the next job
func (s *Service) SetRunner(runner Runner) {
	s.mu.Lock()
	s.runner = runner
	s.mu.Unlock()
}

func (s *Service) snapshot() (Runner, Options) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runner, s.opts
}

// Convert runs job to completion. Failures never escape as errors or panics;
// they are returned as a failed model.Result.
func (s *Service) Convert(ctx context.Context, job model.Job, reporter *ProgressReporter) model.Result {
	logger := s.logger.With("job", job.ID, "format", job.Format)
	logger.Info("conversion started", "input", job.InputPath, "output", job.OutputPath)

	if reporter == nil {
		reporter = NewProgressReporter(nil)
	}

	if encoded, err := s.export(ctx, job, reporter); err != nil {
		// Only ffmpeg touches the output; an earlier result survives failures before that
		if encoded {
			if rmErr := os.Remove(job.OutputPath); rmErr != nil && !os.IsNotExist(rmErr) {
				logger.Warn("failed to remove partial output", "error", rmErr)
			}
		}
		logger.Error("conversion failed", "error", err)
		return model.Failed(job, model.NewConversionError(model.ErrExportFailure, "%s", err.Error()))
	}

	reporter.Complete()
	logger.Info("conversion finished")
	return model.Succeeded(job)
}

// export reports whether the encoder was started, since only then may the
// output file be partial
func (s *Service) export(ctx context.Context, job model.Job, reporter *ProgressReporter) (bool, error) {
	runner, opts := s.snapshot()

	args, err := BuildArgs(job.Format, job.InputPath, job.OutputPath, opts)
	if err != nil {
		return false, err
	}

	source, err := OpenSource(ctx, runner, job.InputPath)
	if err != nil {
		return false, err
	}
	defer source.Close()

	reporter.SetTotal(source.Duration)
	reporter.Update(0)

	return true, runner.Run(ctx, args, reporter.Update)
}
