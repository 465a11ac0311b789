package utils

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// ProgressReporter defines methods for reporting progress.
type ProgressReporter interface {
	// SetTotal reinitializes the progress with the new total count.
	SetTotal(total int)
	// Increment increases the progress by one.
	Increment()
}

// NoopProgressReporter is used when no progress output was requested.
type NoopProgressReporter struct{}

func (NoopProgressReporter) SetTotal(int) {}

func (NoopProgressReporter) Increment() {}

// BarProgressReporter is a concrete implementation using progressbar.
type BarProgressReporter struct {
	description string
	writer      io.Writer
	bar         *progressbar.ProgressBar
	total       int
}

// NewBarProgressReporter creates a new BarProgressReporter writing to stderr,
// keeping stdout free for reports.
func NewBarProgressReporter(total int, description string) *BarProgressReporter {
	return NewBarProgressReporterTo(os.Stderr, total, description)
}

func NewBarProgressReporterTo(writer io.Writer, total int, description string) *BarProgressReporter {
	p := &BarProgressReporter{
		description: description,
		writer:      writer,
	}
	p.SetTotal(total)
	return p
}

// SetTotal reinitializes the progress bar with the new total count.
func (p *BarProgressReporter) SetTotal(total int) {
	p.total = total
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionSetDescription(p.description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100e6), // rate-limit updates
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)
}

// Increment increases the progress bar by one.
func (p *BarProgressReporter) Increment() {
	_ = p.bar.Add(1)
}

func (p *BarProgressReporter) Current() int64 {
	return p.bar.State().CurrentNum
}
