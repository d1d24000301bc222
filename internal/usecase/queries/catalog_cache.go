package queries

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"clipvault/internal/domain/catalog"
	"clipvault/internal/pkg/clock"
	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

const DefaultCacheTTL = 30 * time.Second

type CacheOptions struct {
	TTL         time.Duration
	Placeholder string
}

// CatalogQueries is the read side of the catalog.
type CatalogQueries interface {
	ListIDs(ctx context.Context, sort catalog.SortKey) ([]string, error)
	ListDetails(ctx context.Context, sort catalog.SortKey, filter string) ([]catalog.Entry, error)
	GetOne(ctx context.Context, id string) (catalog.Entry, error)
	Invalidate()
}

// CatalogCache holds one unfiltered snapshot of the catalog for a fixed window.
// Within the window every read is served from the same snapshot and the same
// memoized sort orders. Invalidate drops it and the next read reloads.
type CatalogCache struct {
	store    shared.CatalogStore
	resolver shared.FileURLResolver
	clock    clock.Clock
	opts     CacheOptions
	logger   *slog.Logger

	mu    sync.RWMutex
	snap  *snapshot
	epoch uint64
	loads singleflight.Group
}

func NewCatalogCache(store shared.CatalogStore, resolver shared.FileURLResolver, clk clock.Clock, opts CacheOptions, logger *slog.Logger) *CatalogCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultCacheTTL
	}
	return &CatalogCache{
		store:    store,
		resolver: resolver,
		clock:    clk,
		opts:     opts,
		logger:   logger,
	}
}

func (c *CatalogCache) ListIDs(ctx context.Context, sort catalog.SortKey) ([]string, error) {
	s, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	order := s.order(sort)
	ids := make([]string, len(order))
	for i, idx := range order {
		ids[i] = s.entries[idx].ID
	}
	return ids, nil
}

// ListDetails filters the memoized order; stable sorting a subset yields the
// same relative order, so filtering first would give an identical result.
func (c *CatalogCache) ListDetails(ctx context.Context, sort catalog.SortKey, filter string) ([]catalog.Entry, error) {
	s, err := c.current(ctx)
	if err != nil {
		return nil, err
	}
	thumbs := s.thumbnails(ctx, c.resolveThumbnail)

	out := make([]catalog.Entry, 0, len(s.entries))
	for _, idx := range s.order(sort) {
		e := s.entries[idx]
		if !catalog.Matches(e, filter) {
			continue
		}
		e.ThumbnailURL = thumbs[idx]
		out = append(out, e)
	}
	return out, nil
}

func (c *CatalogCache) GetOne(ctx context.Context, id string) (catalog.Entry, error) {
	s, err := c.current(ctx)
	if err != nil {
		return catalog.Entry{}, err
	}
	idx, ok := s.index[id]
	if !ok {
		return catalog.Entry{}, errs.Mark(errs.Newf("entry %s", id), errs.ErrEntryNotFound)
	}
	e := s.entries[idx]
	e.ThumbnailURL = s.thumbnails(ctx, c.resolveThumbnail)[idx]
	return e, nil
}

// Invalidate must be called by every mutation before it reports success.
// A reload already in flight finishes for its callers but is not installed.
func (c *CatalogCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = nil
	c.epoch++
}

func (c *CatalogCache) current(ctx context.Context) (*snapshot, error) {
	c.mu.RLock()
	s, epoch := c.snap, c.epoch
	c.mu.RUnlock()

	if s != nil && c.clock.Now().Sub(s.loadedAt) < c.opts.TTL {
		return s, nil
	}

	v, err, _ := c.loads.Do(strconv.FormatUint(epoch, 10), func() (any, error) {
		return c.reload(context.WithoutCancel(ctx), epoch)
	})
	if err != nil {
		return nil, err
	}
	return v.(*snapshot), nil
}

func (c *CatalogCache) reload(ctx context.Context, epoch uint64) (*snapshot, error) {
	entries, err := c.store.ListEntries(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load catalog snapshot")
	}
	s := newSnapshot(entries, c.clock.Now())

	c.mu.Lock()
	if c.epoch == epoch {
		c.snap = s
	}
	c.mu.Unlock()

	c.logger.Debug("catalog snapshot loaded", "entries", len(entries), "epoch", epoch)
	return s, nil
}

func (c *CatalogCache) resolveThumbnail(ctx context.Context, e catalog.Entry) string {
	if e.ThumbnailRef == nil || *e.ThumbnailRef == "" {
		return c.opts.Placeholder
	}
	u, err := c.resolver.Resolve(ctx, *e.ThumbnailRef)
	if err != nil {
		c.logger.Warn("thumbnail resolution failed", "entry_id", e.ID, "error", err)
		return c.opts.Placeholder
	}
	return u
}

type snapshot struct {
	entries  []catalog.Entry
	index    map[string]int
	loadedAt time.Time

	mu     sync.Mutex
	orders map[catalog.SortKey][]int

	thumbOnce sync.Once
	thumbs    []string
}

func newSnapshot(entries []catalog.Entry, at time.Time) *snapshot {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.ID] = i
	}
	return &snapshot{
		entries:  entries,
		index:    index,
		loadedAt: at,
		orders:   make(map[catalog.SortKey][]int, len(catalog.SortKeys)),
	}
}

func (s *snapshot) order(key catalog.SortKey) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.orders[key]; ok {
		return o
	}
	o := catalog.SortOrder(s.entries, key)
	s.orders[key] = o
	return o
}

func (s *snapshot) thumbnails(ctx context.Context, resolve func(context.Context, catalog.Entry) string) []string {
	s.thumbOnce.Do(func() {
		detached := context.WithoutCancel(ctx)
		s.thumbs = make([]string, len(s.entries))
		for i, e := range s.entries {
			s.thumbs[i] = resolve(detached, e)
		}
	})
	return s.thumbs
}
