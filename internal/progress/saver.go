package progress

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultDebounce is how long the saver coalesces rapid updates before
// writing.
const DefaultDebounce = time.Second

// Saver debounces snapshot writes: rapid local updates within the window
// coalesce into one Save call, with the in-memory state kept optimistic.
// It holds a confirmed snapshot (last known persisted or externally pushed
// state) and at most one pending snapshot awaiting its write. While a
// pending snapshot exists, external updates are ignored so a concurrent
// writer cannot clobber unsaved local changes.
type Saver struct {
	store    Store
	log      *slog.Logger
	debounce time.Duration

	// OnError, if set, receives save failures. The optimistic state is
	// kept either way; the next local update re-arms the timer.
	OnError func(error)

	mu        sync.Mutex
	userID    string
	confirmed *Progress
	pending   *Progress
	timer     *time.Timer
	gen       uint64
}

// NewSaver returns a saver for one user's aggregate.
func NewSaver(store Store, userID string, log *slog.Logger) *Saver {
	if log == nil {
		log = slog.Default()
	}
	return &Saver{
		store:    store,
		log:      log,
		debounce: DefaultDebounce,
		userID:   userID,
	}
}

// WithDebounce overrides the coalescing window, mainly for tests.
func (s *Saver) WithDebounce(d time.Duration) *Saver {
	s.mu.Lock()
	s.debounce = d
	s.mu.Unlock()
	return s
}

// Current returns the freshest snapshot: the pending one if a write is
// queued, otherwise the confirmed one. May be nil before the first update.
func (s *Saver) Current() *Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return s.pending
	}
	return s.confirmed
}

// Update records a new local snapshot and (re)arms the debounce timer.
// The snapshot is cloned so the caller can keep mutating its aggregate.
func (s *Saver) Update(p *Progress) {
	snap := p.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = snap
	s.gen++
	gen := s.gen

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() { s.flush(gen) })
}

// ApplyExternal folds in a snapshot pushed by another writer. It is
// dropped while a local write is pending: the pending state wins until the
// write completes.
func (s *Saver) ApplyExternal(p *Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		s.log.Debug("external progress update dropped, local write pending", "user", s.userID)
		return
	}
	s.confirmed = p.Clone()
}

// Flush writes any pending snapshot immediately, bypassing the timer.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snap := s.pending
	gen := s.gen
	s.mu.Unlock()

	if snap == nil {
		return nil
	}
	return s.save(ctx, snap, gen)
}

// flush is the timer callback.
func (s *Saver) flush(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.pending == nil {
		s.mu.Unlock()
		return
	}
	snap := s.pending
	s.mu.Unlock()

	if err := s.save(context.Background(), snap, gen); err != nil {
		s.log.Error("progress save failed", "user", s.userID, "error", err)
		if s.OnError != nil {
			s.OnError(err)
		}
	}
}

// save performs the write and, if no newer update arrived meanwhile,
// promotes the snapshot to confirmed and clears pending.
func (s *Saver) save(ctx context.Context, snap *Progress, gen uint64) error {
	if err := s.store.Save(ctx, s.userID, snap); err != nil {
		return err
	}

	s.mu.Lock()
	s.confirmed = snap
	if gen == s.gen {
		s.pending = nil
		s.timer = nil
	}
	s.mu.Unlock()
	return nil
}
