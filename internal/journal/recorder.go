package journal

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/atomic"

	"circularmenu/internal/animation"
	"circularmenu/internal/geometry"
	"circularmenu/internal/menu"
)

const defaultBufferSize = 64

// Store is the write side of the journal.
type Store interface {
	Insert(ctx context.Context, e Entry) (int64, error)
}

// RecorderStats are running counters, safe to read from any goroutine.
type RecorderStats struct {
	Written int64
	Dropped int64
	Failed  int64
}

// Recorder turns snapshots into entries and writes them on a background
// goroutine so the UI thread never waits on the database.
type Recorder struct {
	store  Store
	policy geometry.Policy
	clock  animation.Clock
	ch     chan Entry

	written atomic.Int64
	dropped atomic.Int64
	failed  atomic.Int64

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	wg      sync.WaitGroup
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithBufferSize sets how many entries may wait for the writer. When the
// buffer is full new entries are dropped and counted.
func WithBufferSize(n int) RecorderOption {
	return func(r *Recorder) {
		if n > 0 {
			r.ch = make(chan Entry, n)
		}
	}
}

// WithRecorderPolicy sets the policy used to compute entry timings.
func WithRecorderPolicy(p geometry.Policy) RecorderOption {
	return func(r *Recorder) {
		r.policy = p
	}
}

// WithClock stamps entries with clock instead of the system clock.
func WithClock(c animation.Clock) RecorderOption {
	return func(r *Recorder) {
		r.clock = c
	}
}

// NewRecorder creates a stopped recorder writing to store.
func NewRecorder(store Store, opts ...RecorderOption) (*Recorder, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	r := &Recorder{
		store:  store,
		policy: geometry.DefaultPolicy(),
		clock:  animation.SystemClock{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	if r.ch == nil {
		r.ch = make(chan Entry, defaultBufferSize)
	}
	return r, nil
}

// EntryFor builds the journal entry for snap.
func EntryFor(snap menu.Snapshot, policy geometry.Policy, at time.Time) Entry {
	t := animation.TimingsFor(snap, policy)
	return Entry{
		Seq:           snap.Seq,
		Cause:         snap.Cause.String(),
		Expanded:      snap.Expanded,
		SelectedIndex: snap.SelectedIndex,
		PreviousIndex: snap.PreviousIndex,
		ItemCount:     snap.ItemCount,
		AngleStep:     snap.AngleStep,
		Expansion:     t.Expansion,
		Rotation:      t.Rotation,
		Selection:     t.Selection,
		RecordedAt:    at,
	}
}

// Attach subscribes the recorder to s.
func (r *Recorder) Attach(s *menu.State) (detach func()) {
	return s.Subscribe(r.Observe)
}

// Observe queues snap without blocking.
func (r *Recorder) Observe(snap menu.Snapshot) {
	select {
	case r.ch <- EntryFor(snap, r.policy, r.clock.Now()):
	default:
		r.dropped.Inc()
		slog.Debug("journal buffer full, entry dropped", "seq", snap.Seq, "cause", snap.Cause.String())
	}
}

// Start begins the writer loop.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return errors.New("recorder already running")
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running = true
	r.wg.Add(1)
	r.mu.Unlock()

	go r.loop(ctx)
	return nil
}

// Stop cancels the loop and waits for queued entries to be written.
func (r *Recorder) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.running = false
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Stats returns the current counters.
func (r *Recorder) Stats() RecorderStats {
	return RecorderStats{
		Written: r.written.Load(),
		Dropped: r.dropped.Load(),
		Failed:  r.failed.Load(),
	}
}

func (r *Recorder) loop(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			r.drain()
			return
		case e := <-r.ch:
			r.write(ctx, e)
		}
	}
}

func (r *Recorder) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case e := <-r.ch:
			r.write(ctx, e)
		default:
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, e Entry) {
	if _, err := r.store.Insert(ctx, e); err != nil {
		r.failed.Inc()
		slog.Warn("journal write failed", "seq", e.Seq, "error", err)
		return
	}
	r.written.Inc()
}
