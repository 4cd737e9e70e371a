package web

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/pkg/logger"
)

// Registry holds the live form instances of the HTTP renderer.
// An instance expires when it has not been used for the configured TTL.
type Registry struct {
	ttl  time.Duration
	opts []signin.Option
	log  *slog.Logger
	now  func() time.Time

	mu    sync.Mutex
	forms map[string]*registryEntry
}

type registryEntry struct {
	engine  *signin.Engine
	expires time.Time
}

// NewRegistry creates a registry whose engines are built with opts.
func NewRegistry(ttl time.Duration, log *slog.Logger, opts ...signin.Option) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		ttl:   ttl,
		opts:  opts,
		log:   log,
		now:   time.Now,
		forms: make(map[string]*registryEntry),
	}
}

// Create builds and stores a new form instance with a random id.
func (r *Registry) Create() (*signin.Engine, error) {
	id := uuid.NewString()
	opts := append([]signin.Option{signin.WithLogger(r.log)}, r.opts...)
	opts = append(opts, signin.WithID(id))

	e, err := signin.New(opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.forms[id] = &registryEntry{engine: e, expires: r.now().Add(r.ttl)}
	r.mu.Unlock()

	r.log.Debug("form created", logger.FormID(id))
	return e, nil
}

// Get returns a live instance and extends its lifetime.
func (r *Registry) Get(id string) (*signin.Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.forms[id]
	if !ok {
		return nil, false
	}
	now := r.now()
	if now.After(entry.expires) {
		return nil, false
	}
	entry.expires = now.Add(r.ttl)
	return entry.engine, true
}

// Remove deletes an instance and ends its subscriptions.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	entry, ok := r.forms[id]
	delete(r.forms, id)
	r.mu.Unlock()

	if ok {
		_ = entry.engine.Close()
		r.log.Debug("form removed", logger.FormID(id))
	}
}

// Sweep removes every expired instance and returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.now()

	r.mu.Lock()
	var expired []*registryEntry
	for id, entry := range r.forms {
		if now.After(entry.expires) {
			expired = append(expired, entry)
			delete(r.forms, id)
		}
	}
	r.mu.Unlock()

	for _, entry := range expired {
		_ = entry.engine.Close()
	}
	if len(expired) > 0 {
		r.log.Debug("expired forms removed", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// Run sweeps expired instances every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}
