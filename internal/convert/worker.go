package convert

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"

	"github.com/ytget/video-converter/internal/model"
)

// Worker runs at most one conversion at a time in a background goroutine
type Worker struct {
	converter Converter
	busy      atomic.Bool
	logger    hclog.Logger
}

// NewWorker creates a worker around converter
func NewWorker(converter Converter, logger hclog.Logger) *Worker {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Worker{converter: converter, logger: logger}
}

// Busy reports whether a job is running
func (w *Worker) Busy() bool {
	return w.busy.Load()
}

// Start launches job and returns a channel that receives exactly one result.
// Progress is pushed to sink from the worker goroutine.
func (w *Worker) Start(ctx context.Context, job model.Job, sink ProgressSink) (<-chan model.Result, error) {
	if !w.busy.CompareAndSwap(false, true) {
		return nil, model.NewConversionError(model.ErrBusy, "a conversion is already running")
	}

	results := make(chan model.Result, 1)
	reporter := NewProgressReporter(sink)

	go func() {
		result := w.run(ctx, job, reporter)
		// Free the worker before delivering so the receiver can start the next job
		w.busy.Store(false)
		results <- result
		close(results)
	}()

	return results, nil
}

func (w *Worker) run(ctx context.Context, job model.Job, reporter *ProgressReporter) (result model.Result) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("conversion panicked", "job", job.ID, "panic", r)
			result = model.Failed(job, model.NewConversionError(model.ErrExportFailure, "%s", fmt.Sprint(r)))
		}
	}()
	return w.converter.Convert(ctx, job, reporter)
}
