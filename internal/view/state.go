// Package view implements the pagination state machine that sits on top of
// the query pipeline: it owns the filter, sort and page criteria of one
// listing and derives the visible page from them.
package view

import (
	"errors"
	"slices"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/pkg/models"
)

// Validation errors returned by Controller transitions. State is left
// unchanged when one is returned.
var (
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrPageOutOfRange  = errors.New("page out of range")
)

// PageSizes are the page sizes a listing may use.
var PageSizes = []int{10, 20, 30, 50, 100}

// DefaultPageSize is the page size of a new listing.
const DefaultPageSize = 10

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	return slices.Contains(PageSizes, n)
}

// PageState is the pagination position. LastPage is derived from the result
// count and PageSize and is never set directly by users.
type PageState struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	LastPage int `json:"lastPage"`
}

// State is everything a listing needs to derive its visible page.
type State struct {
	PageState
	Filter query.FilterCriteria `json:"filter"`
	Sort   query.SortCriteria   `json:"sort"`
}

// InitialState returns page 1 of an unfiltered, unsorted listing.
func InitialState() State {
	return State{PageState: PageState{Page: 1, PageSize: DefaultPageSize, LastPage: 1}}
}

// ActionType identifies a state transition.
type ActionType string

const (
	ActionNextPage       ActionType = "nextPage"
	ActionPrevPage       ActionType = "prevPage"
	ActionSetPage        ActionType = "changePage"
	ActionUpdateLastPage ActionType = "updateLastPage"
	ActionSetPageSize    ActionType = "changePageSize"
	ActionSetFilter      ActionType = "changeFilter"
	ActionSetSort        ActionType = "changeSort"
)

// Action is a transition request. Only the field matching Type is read.
type Action struct {
	Type     ActionType
	Page     int
	PageSize int
	LastPage int
	Filter   query.FilterCriteria
	Sort     query.SortCriteria
}

// Reduce applies a to s and returns the new state. It performs no
// validation; Controller validates before dispatching.
func Reduce(s State, a Action) State {
	switch a.Type {
	case ActionNextPage:
		s.Page = min(s.Page+1, s.LastPage)
	case ActionPrevPage:
		s.Page = max(s.Page-1, 1)
	case ActionSetPage:
		s.Page = a.Page
	case ActionUpdateLastPage:
		s.LastPage = a.LastPage
	case ActionSetPageSize:
		s.Page = 1
		s.PageSize = a.PageSize
	case ActionSetFilter:
		s.Page = 1
		s.Filter = a.Filter
	case ActionSetSort:
		// The page index survives a re-sort.
		s.Sort = a.Sort
	}
	return s
}

// LastPage returns the number of pages needed for count results, never less
// than 1.
func LastPage(count, pageSize int) int {
	if pageSize <= 0 || count <= 0 {
		return 1
	}
	return (count + pageSize - 1) / pageSize
}

// Slice returns the products on page (1-indexed) of size pageSize. Pages
// past the end yield an empty slice.
func Slice(products []models.Product, page, pageSize int) []models.Product {
	if page < 1 || pageSize <= 0 {
		return []models.Product{}
	}
	start := min((page-1)*pageSize, len(products))
	end := min(page*pageSize, len(products))
	out := make([]models.Product, end-start)
	copy(out, products[start:end])
	return out
}
