package view

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/metrics"
)

// Registry keeps the live listings, each with its own Controller. It holds
// at most maxViews listings and drops any listing unused for ttl.
type Registry struct {
	views    *expirable.LRU[string, *Controller]
	deriver  Deriver
	pageSize int
	logger   *zap.Logger
}

// NewRegistry creates a Registry whose listings derive from d. A ttl of 0
// disables expiry.
func NewRegistry(d Deriver, maxViews int, ttl time.Duration, pageSize int, logger *zap.Logger) *Registry {
	onEvict := func(id string, _ *Controller) {
		metrics.ViewsActive.Dec()
		logger.Debug("view evicted", zap.String("id", id))
	}
	return &Registry{
		views:    expirable.NewLRU[string, *Controller](maxViews, onEvict, ttl),
		deriver:  d,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Create starts a new listing in its initial state and returns its ID.
func (r *Registry) Create() (string, *Controller) {
	id := uuid.New().String()
	c := NewController(r.deriver, r.logger.With(zap.String("view", id)), WithPageSize(r.pageSize))
	r.views.Add(id, c)
	metrics.ViewsActive.Inc()
	r.logger.Debug("view created", zap.String("id", id))
	return id, c
}

// Get returns the listing with the given ID and refreshes its expiry.
func (r *Registry) Get(id string) (*Controller, bool) {
	c, ok := r.views.Get(id)
	if ok {
		// Re-adding an existing key resets its expiry without eviction.
		r.views.Add(id, c)
	}
	return c, ok
}

// Delete removes a listing. It reports whether the listing existed.
func (r *Registry) Delete(id string) bool {
	return r.views.Remove(id)
}

// Len returns the number of live listings.
func (r *Registry) Len() int {
	return r.views.Len()
}
