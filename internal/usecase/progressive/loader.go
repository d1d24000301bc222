// Package progressive delivers catalog entries one at a time, paced, with
// generation based cancellation: starting a new run makes every older run stale
// and anything an older run resolves afterwards is dropped.
package progressive

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"clipvault/internal/domain/catalog"
)

const DefaultPace = 120 * time.Millisecond

// EntryResolver looks up one entry's detail record.
type EntryResolver interface {
	GetOne(ctx context.Context, id string) (catalog.Entry, error)
}

type SleepFunc func(ctx context.Context, d time.Duration) error

type Item struct {
	Generation uint64
	Index      int
	Entry      catalog.Entry
}

type Summary struct {
	Generation uint64
	Delivered  int
	Skipped    int
	Superseded bool
}

// Consumer receives delivered items. Returning an error ends the stream.
type Consumer func(Item) error

type Loader struct {
	resolver EntryResolver
	pace     time.Duration
	sleep    SleepFunc
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
}

type Option func(*Loader)

func WithPace(d time.Duration) Option {
	return func(l *Loader) { l.pace = d }
}

func WithSleep(fn SleepFunc) Option {
	return func(l *Loader) { l.sleep = fn }
}

func NewLoader(resolver EntryResolver, logger *slog.Logger, opts ...Option) *Loader {
	l := &Loader{
		resolver: resolver,
		pace:     DefaultPace,
		sleep:    sleepContext,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Start begins a new run and makes every earlier run stale.
func (l *Loader) Start(ids []string) *Run {
	l.mu.Lock()
	l.generation++
	g := l.generation
	l.mu.Unlock()

	return &Run{loader: l, generation: g, ids: slices.Clone(ids)}
}

func (l *Loader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// Stream starts a run and pushes each item to consume as soon as it resolves.
// Delivery happens under the loader lock after a generation check, so once a
// later Start has returned nothing from this run reaches consume.
func (l *Loader) Stream(ctx context.Context, ids []string, consume Consumer) (Summary, error) {
	run := l.Start(ids)
	for {
		item, ok := run.next(ctx)
		if !ok {
			break
		}
		delivered, err := run.push(item, consume)
		if err != nil {
			return run.Summary(), err
		}
		if !delivered {
			break
		}
	}
	return run.Summary(), nil
}

func (l *Loader) deliver(item Item, consume Consumer) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if item.Generation != l.generation {
		return false, nil
	}
	return true, consume(item)
}

// push hands item to consume and counts it only if it actually got there.
func (r *Run) push(item Item, consume Consumer) (bool, error) {
	delivered, err := r.loader.deliver(item, consume)
	if delivered {
		r.delivered++
	}
	return delivered, err
}

// Run walks one ordered id list. It is driven by a single goroutine.
type Run struct {
	loader     *Loader
	generation uint64
	ids        []string
	pos        int
	resolved   int
	delivered  int
	skipped    int
}

func (r *Run) Generation() uint64 { return r.generation }

func (r *Run) Stale() bool {
	return r.loader.Generation() != r.generation
}

// Next resolves ids in order until one succeeds. Failed ids are logged and
// skipped. Every item but the first is preceded by the pacing delay. It returns
// false once the ids are exhausted, the run went stale or ctx is done.
// A resolution already in flight is not aborted when the run goes stale; its
// result is dropped.
func (r *Run) Next(ctx context.Context) (Item, bool) {
	item, ok := r.next(ctx)
	if ok {
		r.delivered++
	}
	return item, ok
}

// next resolves the following item without counting it as delivered.
func (r *Run) next(ctx context.Context) (Item, bool) {
	if r.Stale() || ctx.Err() != nil {
		return Item{}, false
	}
	if r.resolved > 0 && r.pos < len(r.ids) {
		if err := r.loader.sleep(ctx, r.loader.pace); err != nil {
			return Item{}, false
		}
	}

	for r.pos < len(r.ids) {
		if r.Stale() || ctx.Err() != nil {
			return Item{}, false
		}
		idx := r.pos
		id := r.ids[idx]
		r.pos++

		entry, err := r.loader.resolver.GetOne(ctx, id)
		if err != nil {
			r.skipped++
			r.loader.logger.Warn("progressive load skipped entry",
				"entry_id", id,
				"generation", r.generation,
				"error", err)
			continue
		}
		if r.Stale() {
			return Item{}, false
		}
		r.resolved++
		return Item{Generation: r.generation, Index: idx, Entry: entry}, true
	}
	return Item{}, false
}

func (r *Run) Summary() Summary {
	return Summary{
		Generation: r.generation,
		Delivered:  r.delivered,
		Skipped:    r.skipped,
		Superseded: r.Stale(),
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
