package view

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/pkg/models"
)

// Deriver computes the filtered and sorted view for a set of criteria.
type Deriver interface {
	Derive(f query.FilterCriteria, s query.SortCriteria) query.View
}

// Snapshot is the externally visible state of a listing.
type Snapshot struct {
	Products   []models.Product     `json:"products"`
	Categories []string             `json:"categories"`
	Total      int                  `json:"total"`
	Page       PageState            `json:"page"`
	Window     PageWindow           `json:"window"`
	Filter     query.FilterCriteria `json:"filter"`
	Sort       query.SortCriteria   `json:"sort"`
}

// Controller owns the State of one listing. Every transition is applied
// under a lock and re-derives dependent state before returning, so callers
// never observe a stale LastPage.
type Controller struct {
	mu      sync.Mutex
	deriver Deriver
	state   State
	view    query.View
	logger  *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the initial page size. Sizes outside PageSizes are ignored.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if ValidPageSize(n) {
			c.state.PageSize = n
		}
	}
}

// NewController returns a Controller in the initial state with its view
// already derived.
func NewController(d Deriver, logger *zap.Logger, opts ...Option) *Controller {
	c := &Controller{
		deriver: d,
		state:   InitialState(),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refresh()
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the visible page and the data needed to render it.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// NextPage advances one page, stopping at the last page.
func (c *Controller) NextPage() Snapshot {
	return c.apply(Action{Type: ActionNextPage})
}

// PrevPage goes back one page, stopping at page 1.
func (c *Controller) PrevPage() Snapshot {
	return c.apply(Action{Type: ActionPrevPage})
}

// SetPage jumps to page n. Pages outside [1, LastPage] are rejected.
func (c *Controller) SetPage(n int) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n < 1 || n > c.state.LastPage {
		return c.snapshot(), fmt.Errorf("%w: %d not in [1, %d]", ErrPageOutOfRange, n, c.state.LastPage)
	}
	c.dispatch(Action{Type: ActionSetPage, Page: n})
	return c.snapshot(), nil
}

// SetPageSize changes the page size and returns to page 1.
func (c *Controller) SetPageSize(n int) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !ValidPageSize(n) {
		return c.snapshot(), fmt.Errorf("%w: %d (allowed %v)", ErrInvalidPageSize, n, PageSizes)
	}
	c.dispatch(Action{Type: ActionSetPageSize, PageSize: n})
	return c.snapshot(), nil
}

// SetFilter replaces the filter and returns to page 1. A filter whose price
// minimum exceeds its maximum is rejected and the current filter is kept.
func (c *Controller) SetFilter(f query.FilterCriteria) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := f.Validate(); err != nil {
		c.logger.Debug("filter rejected", zap.Error(err))
		return c.snapshot(), err
	}
	c.dispatch(Action{Type: ActionSetFilter, Filter: f})
	return c.snapshot(), nil
}

// SetSort replaces the sort criteria. The current page is kept.
func (c *Controller) SetSort(s query.SortCriteria) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := s.Validate(); err != nil {
		return c.snapshot(), err
	}
	c.dispatch(Action{Type: ActionSetSort, Sort: s})
	return c.snapshot(), nil
}

// ToggleSort advances the sort cycle for the clicked column.
func (c *Controller) ToggleSort(field string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dispatch(Action{Type: ActionSetSort, Sort: query.NextSort(c.state.Sort, field)})
	return c.snapshot()
}

func (c *Controller) apply(a Action) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dispatch(a)
	return c.snapshot()
}

// dispatch reduces a and re-derives the view when a can change the result
// set or its page count. Callers hold c.mu.
func (c *Controller) dispatch(a Action) {
	c.state = Reduce(c.state, a)
	switch a.Type {
	case ActionSetFilter, ActionSetSort, ActionSetPageSize:
		c.refresh()
	}
	c.logger.Debug("view transition",
		zap.String("action", string(a.Type)),
		zap.Int("page", c.state.Page),
		zap.Int("page_size", c.state.PageSize),
		zap.Int("last_page", c.state.LastPage),
	)
}

// refresh re-derives the view and recomputes LastPage from it.
func (c *Controller) refresh() {
	c.view = c.deriver.Derive(c.state.Filter, c.state.Sort)
	c.state = Reduce(c.state, Action{
		Type:     ActionUpdateLastPage,
		LastPage: LastPage(len(c.view.Products), c.state.PageSize),
	})
}

func (c *Controller) snapshot() Snapshot {
	categories := make([]string, len(c.view.Categories))
	copy(categories, c.view.Categories)
	return Snapshot{
		Products:   Slice(c.view.Products, c.state.Page, c.state.PageSize),
		Categories: categories,
		Total:      len(c.view.Products),
		Page:       c.state.PageState,
		Window:     Window(c.state.Page, c.state.LastPage, WindowSize),
		Filter:     c.state.Filter,
		Sort:       c.state.Sort,
	}
}
