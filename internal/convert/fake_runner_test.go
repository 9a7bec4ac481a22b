package convert

import (
	"context"
	"os"
	"sync"
)

// fakeRunner stands in for ffmpeg: it replays progress times and writes the
// output file named by the last argument
type fakeRunner struct {
	mu sync.Mutex

	duration float64
	probeErr error
	runErr   error
	times    []float64
	block    chan struct{}

	probed []string
	args   [][]string
}

func (f *fakeRunner) Probe(ctx context.Context, path string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probed = append(f.probed, path)
	return f.duration, f.probeErr
}

func (f *fakeRunner) Run(ctx context.Context, args []string, onTime func(seconds float64)) error {
	f.mu.Lock()
	f.args = append(f.args, args)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	output := args[len(args)-1]
	if err := os.WriteFile(output, []byte("partial"), 0o644); err != nil {
		return err
	}
	for _, t := range f.times {
		onTime(t)
	}
	return f.runErr
}

func (f *fakeRunner) lastArgs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.args) == 0 {
		return nil
	}
	return f.args[len(f.args)-1]
}

// progressRecorder collects sink values
type progressRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (p *progressRecorder) sink(v float64) {
	p.mu.Lock()
	p.values = append(p.values, v)
	p.mu.Unlock()
}

func (p *progressRecorder) snapshot() []float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]float64(nil), p.values...)
}
