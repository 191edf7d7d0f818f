package ingestion

import (
	"fmt"
	"io"
	"time"
)

// ProgressTracker reports per-batch upload progress to an injected writer,
// typically os.Stderr. It must never share a writer with the machine-read
// protocol output on stdout.
type ProgressTracker struct {
	writer    io.Writer
	total     int
	startTime time.Time
	started   bool
}

// NewProgressTracker creates a progress tracker for total batches.
func NewProgressTracker(writer io.Writer, total int) *ProgressTracker {
	return &ProgressTracker{writer: writer, total: total}
}

// Start begins tracking progress.
func (p *ProgressTracker) Start() {
	p.startTime = time.Now()
	p.started = true
}

// Batch reports that the batch with the given 1-based index is being
// uploaded.
func (p *ProgressTracker) Batch(index, size int) {
	if !p.started {
		return
	}
	fmt.Fprintf(p.writer, "Processing batch %d/%d (%d documents)...\n", index, p.total, size)
}

// Finish prints the elapsed time and upload rate for the whole run.
func (p *ProgressTracker) Finish(documents int) {
	if !p.started {
		return
	}
	elapsed := time.Since(p.startTime)
	rate := 0.0
	if elapsed.Seconds() > 0 {
		rate = float64(documents) / elapsed.Seconds()
	}
	fmt.Fprintf(p.writer, "Uploaded %d documents in %s (%.1f documents/s)\n",
		documents, elapsed.Round(time.Millisecond), rate)
}

// Elapsed returns the time elapsed since Start was called.
func (p *ProgressTracker) Elapsed() time.Duration {
	if !p.started {
		return 0
	}
	return time.Since(p.startTime)
}
