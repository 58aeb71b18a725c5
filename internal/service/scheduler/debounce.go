package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SaveFn is a deferred write.
type SaveFn func(ctx context.Context) error

// SaveScheduler debounces writes keyed by document id. Scheduling the
// same key again replaces the pending write and restarts its timer, so
// a burst of editor keystrokes collapses into one write.
type SaveScheduler interface {
	// Schedule queues fn to run after the debounce window
	Schedule(key string, fn SaveFn)

	// Flush runs every pending write immediately
	Flush(ctx context.Context) error

	// Close stops all timers and flushes what is pending
	Close(ctx context.Context) error
}

type pendingSave struct {
	timer *time.Timer
	fn    SaveFn
}

type debounceScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	pending map[string]*pendingSave
	closed  bool
	logger  *slog.Logger

	// saveTimeout bounds the background write that fires after the
	// debounce window, since it has no request context to inherit.
	saveTimeout time.Duration
}

// NewSaveScheduler creates a debouncing scheduler
func NewSaveScheduler(delay time.Duration, logger *slog.Logger) SaveScheduler {
	return &debounceScheduler{
		delay:       delay,
		pending:     make(map[string]*pendingSave),
		logger:      logger,
		saveTimeout: 10 * time.Second,
	}
}

// Schedule queues fn to run after the debounce window
func (s *debounceScheduler) Schedule(key string, fn SaveFn) {
	s.mu.Lock()
	if s.closed {
		// Late schedule after shutdown started: write synchronously
		// rather than dropping the save
		s.mu.Unlock()
		s.runSave(key, fn)
		return
	}
	defer s.mu.Unlock()

	if p, ok := s.pending[key]; ok {
		p.timer.Stop()
		p.fn = fn
		p.timer.Reset(s.delay)
		return
	}

	p := &pendingSave{fn: fn}
	p.timer = time.AfterFunc(s.delay, func() {
		s.fire(key)
	})
	s.pending[key] = p
}

// fire runs and removes the pending write for key
func (s *debounceScheduler) fire(key string) {
	s.mu.Lock()
	p, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	s.runSave(key, p.fn)
}

func (s *debounceScheduler) runSave(key string, fn SaveFn) {
	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		s.logger.Error("deferred save failed", "doc_id", key, "error", err)
	}
}

// Flush runs every pending write immediately
func (s *debounceScheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	drained := make(map[string]SaveFn, len(s.pending))
	for key, p := range s.pending {
		p.timer.Stop()
		drained[key] = p.fn
	}
	s.pending = make(map[string]*pendingSave)
	s.mu.Unlock()

	var firstErr error
	for key, fn := range drained {
		if err := fn(ctx); err != nil {
			s.logger.Error("flush save failed", "doc_id", key, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// Close stops all timers and flushes what is pending
func (s *debounceScheduler) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Flush(ctx)
}
