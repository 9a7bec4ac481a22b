package convert

import (
	"math"
	"sync"
)

// ProgressReporter turns raw encoder progress into a clamped, non-decreasing
// fraction. Build a new one for every job.
type ProgressReporter struct {
	mu    sync.Mutex
	total float64
	last  float64
	sink  ProgressSink
}

// NewProgressReporter creates a reporter pushing fractions to sink
func NewProgressReporter(sink ProgressSink) *ProgressReporter {
	return &ProgressReporter{total: 1, sink: sink}
}

// SetTotal sets the denominator used by Update
func (p *ProgressReporter) SetTotal(total float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total <= 0 {
		total = 1
	}
	p.total = total
}

// Update reports current against the tracked total
func (p *ProgressReporter) Update(current float64) {
	p.mu.Lock()
	total := p.total
	p.mu.Unlock()
	p.BarsChanged(current, total)
}

// BarsChanged reports current out of total. A zero or negative total counts as 1.
func (p *ProgressReporter) BarsChanged(current, total float64) {
	if total <= 0 {
		total = 1
	}
	fraction := clamp(current / total)

	p.mu.Lock()
	p.total = total
	if fraction < p.last {
		fraction = p.last
	}
	p.last = fraction
	sink := p.sink
	p.mu.Unlock()

	if sink != nil {
		sink(fraction)
	}
}

// Complete pushes a final 1.0
func (p *ProgressReporter) Complete() {
	p.BarsChanged(1, 1)
}

// Fraction returns the last reported fraction
func (p *ProgressReporter) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
