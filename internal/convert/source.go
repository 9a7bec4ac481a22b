package convert

import (
	"context"
	"fmt"
	"os"
)

// Source is an opened input video. Close must be called once the export is done.
type Source struct {
	Path     string
	Duration float64

	file *os.File
}

// OpenSource opens the input file and probes its duration
func OpenSource(ctx context.Context, runner Runner, path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file does not exist: %s", path)
		}
		return nil, fmt.Errorf("failed to stat input file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("input is not a regular file: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	duration, err := runner.Probe(ctx, path)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Source{Path: path, Duration: duration, file: file}, nil
}

// Close releases the input file. It is safe to call more than once.
func (s *Source) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
