package progressive

import (
	"log/slog"
	"sync"
	"time"

	"clipvault/internal/pkg/clock"
)

const DefaultIdleTTL = 15 * time.Minute

// Registry keeps one Loader per client session so that a new stream for the
// same session supersedes the previous one.
type Registry struct {
	resolver EntryResolver
	opts     []Option
	clock    clock.Clock
	idleTTL  time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	loaders map[string]*registryEntry
}

type registryEntry struct {
	loader   *Loader
	lastUsed time.Time
}

func NewRegistry(resolver EntryResolver, clk clock.Clock, logger *slog.Logger, opts ...Option) *Registry {
	return &Registry{
		resolver: resolver,
		opts:     opts,
		clock:    clk,
		idleTTL:  DefaultIdleTTL,
		logger:   logger,
		loaders:  make(map[string]*registryEntry),
	}
}

// For returns the session's loader, creating it on first use. Idle sessions
// are swept on the way.
func (r *Registry) For(session string) *Loader {
	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	for k, e := range r.loaders {
		if k != session && now.Sub(e.lastUsed) > r.idleTTL {
			delete(r.loaders, k)
		}
	}

	e, ok := r.loaders[session]
	if !ok {
		e = &registryEntry{loader: NewLoader(r.resolver, r.logger, r.opts...)}
		r.loaders[session] = e
	}
	e.lastUsed = now
	return e.loader
}

// Detached returns a loader that belongs to no session and is never kept.
func (r *Registry) Detached() *Loader {
	return NewLoader(r.resolver, r.logger, r.opts...)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.loaders)
}
