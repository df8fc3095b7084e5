package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/drafta-cli/internal/core/domain"
	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
)

// Debouncer is a cancellable delayed-task primitive. Each Trigger
// (re)starts a fixed-delay timer; the task runs only when the delay
// elapses with no further trigger. At most one task is pending per
// debounce window. Stop cancels any pending task permanently, so a
// torn-down consumer is never called with stale work.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the delay, replacing any pending task.
// Triggering a stopped debouncer is a no-op.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Stop on an already-elapsed timer is a no-op, so a trigger
		// racing the firing task can leave that task parked on the
		// lock after its timer was superseded. A task runs only while
		// its own timer is still the current one.
		if d.stopped || d.timer != t {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	d.timer = t
}

// Pending reports whether a task is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending task and rejects future triggers.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// DefaultAnalysisDelay is the debounce window between a text change
// and the analysis pass it triggers.
const DefaultAnalysisDelay = 500 * time.Millisecond

// AnalysisScheduler debounces analyser invocations against a live
// editing stream so analysis does not run on every keystroke.
// Overlapping changes reset the timer rather than queueing passes.
type AnalysisScheduler struct {
	analyzer  driving.AnalysisService
	debouncer *Debouncer
	onResult  func(domain.AnalysisResult)
}

// NewAnalysisScheduler creates a scheduler delivering results to
// onResult after each debounced pass.
func NewAnalysisScheduler(analyzer driving.AnalysisService, delay time.Duration, onResult func(domain.AnalysisResult)) *AnalysisScheduler {
	return &AnalysisScheduler{
		analyzer:  analyzer,
		debouncer: NewDebouncer(delay),
		onResult:  onResult,
	}
}

// TextChanged notes a new text snapshot. The analysis pass runs only
// once the debounce window elapses without a further change.
func (s *AnalysisScheduler) TextChanged(text string) {
	s.debouncer.Trigger(func() {
		s.onResult(s.analyzer.Analyze(text))
	})
}

// Stop cancels any pending pass. Results never fire after Stop.
func (s *AnalysisScheduler) Stop() {
	s.debouncer.Stop()
}
