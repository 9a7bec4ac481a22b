package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// ConvertedSuffix is appended to the input base name
	ConvertedSuffix = "_converted"

	// JobIDPrefix prefixes every generated job ID
	JobIDPrefix = "convert-"
)

// Job is one conversion request. It is built from the session when the user
// presses Convert and is never mutated afterwards.
type Job struct {
	ID         string
	InputPath  string
	OutputPath string
	Format     Format
	CreatedAt  time.Time
}

// NewJob derives a job for inputPath converted to format
func NewJob(inputPath string, format Format) Job {
	return Job{
		ID:         generateJobID(),
		InputPath:  inputPath,
		OutputPath: OutputPathFor(inputPath, format),
		Format:     format,
		CreatedAt:  time.Now(),
	}
}

// OutputPathFor returns <dir>/<name>_converted.<format> next to the input
func OutputPathFor(inputPath string, format Format) string {
	ext := filepath.Ext(inputPath)
	baseName := strings.TrimSuffix(inputPath, ext)
	return baseName + ConvertedSuffix + format.Extension()
}

// Result is what the worker hands back to the UI thread once a job ends
type Result struct {
	JobID      string
	OutputPath string
	Err        *ConversionError
	FinishedAt time.Time
}

// Succeeded builds a successful result for job
func Succeeded(job Job) Result {
	return Result{JobID: job.ID, OutputPath: job.OutputPath, FinishedAt: time.Now()}
}

// Failed builds a failed result for job
func Failed(job Job, err *ConversionError) Result {
	return Result{JobID: job.ID, Err: err, FinishedAt: time.Now()}
}

// OK reports whether the conversion produced an output file
func (r Result) OK() bool {
	return r.Err == nil
}

// generateJobID generates a unique job ID using UUID v7 so IDs sort by creation time
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
