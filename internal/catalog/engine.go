// Package catalog serves the product listing API: stateless one-shot queries
// and stateful paginated views.
package catalog

import (
	"fmt"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/view"
)

// Request is a one-shot listing query. Zero Page and PageSize select page 1
// and the engine's default size.
type Request struct {
	Filter   query.FilterCriteria
	Sort     query.SortCriteria
	Page     int
	PageSize int
}

// Engine answers listing queries without keeping any per-client state.
type Engine struct {
	deriver  view.Deriver
	pageSize int
}

// NewEngine creates an engine over d. Invalid default sizes fall back to
// view.DefaultPageSize.
func NewEngine(d view.Deriver, defaultPageSize int) *Engine {
	if !view.ValidPageSize(defaultPageSize) {
		defaultPageSize = view.DefaultPageSize
	}
	return &Engine{deriver: d, pageSize: defaultPageSize}
}

// Query derives the listing for req and returns the requested page.
func (e *Engine) Query(req Request) (view.Snapshot, error) {
	if req.PageSize == 0 {
		req.PageSize = e.pageSize
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if !view.ValidPageSize(req.PageSize) {
		return view.Snapshot{}, fmt.Errorf("%w: %d (allowed %v)", view.ErrInvalidPageSize, req.PageSize, view.PageSizes)
	}
	if err := req.Filter.Validate(); err != nil {
		return view.Snapshot{}, err
	}
	if err := req.Sort.Validate(); err != nil {
		return view.Snapshot{}, err
	}

	derived := e.deriver.Derive(req.Filter, req.Sort)
	last := view.LastPage(len(derived.Products), req.PageSize)
	if req.Page < 1 || req.Page > last {
		return view.Snapshot{}, fmt.Errorf("%w: %d not in [1, %d]", view.ErrPageOutOfRange, req.Page, last)
	}

	return view.Snapshot{
		Products:   view.Slice(derived.Products, req.Page, req.PageSize),
		Categories: derived.Categories,
		Total:      len(derived.Products),
		Page:       view.PageState{Page: req.Page, PageSize: req.PageSize, LastPage: last},
		Window:     view.Window(req.Page, last, view.WindowSize),
		Filter:     req.Filter,
		Sort:       req.Sort,
	}, nil
}
