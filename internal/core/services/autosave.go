package services

import (
	"context"
	"sync"
	"time"

	"github.com/custodia-labs/drafta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/drafta-cli/internal/logger"
)

// DefaultAutosaveInterval is the period between autosave checks.
const DefaultAutosaveInterval = 30 * time.Second

// Autosaver periodically saves the draft in the background. A tick
// writes only when the draft is dirty with a non-blank body, so an
// empty draft is never persisted and clean ticks cost nothing. A
// failed save leaves the draft unsaved and is retried on the next
// tick rather than immediately.
type Autosaver struct {
	interval time.Duration
	drafts   driving.DraftService

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewAutosaver creates an autosaver for a draft service.
func NewAutosaver(drafts driving.DraftService, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	return &Autosaver{
		interval: interval,
		drafts:   drafts,
	}
}

// Start begins the autosave loop. This method blocks until Stop is
// called or the context is cancelled.
func (a *Autosaver) Start(ctx context.Context) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return nil // Already running
	}
	a.running = true
	a.stopCh = make(chan struct{})
	a.mu.Unlock()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.stopCh:
			return nil
		case <-ticker.C:
			a.tick(ctx)
		}
	}
}

// Stop gracefully shuts down the autosaver. The session must stop the
// loop before teardown so the timer is not leaked.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	a.running = false
	close(a.stopCh)
	a.mu.Unlock()

	a.wg.Wait()
}

// tick saves the draft if there is unsaved work.
func (a *Autosaver) tick(ctx context.Context) {
	if !a.drafts.HasUnsavedWork() {
		return
	}

	a.wg.Add(1)
	defer a.wg.Done()

	if err := a.drafts.Save(ctx); err != nil {
		logger.Warn("autosave failed, draft remains unsaved: %v", err)
	}
}
