package catalog

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/server"
	"github.com/HerbHall/shelfview/internal/view"
)

const maxBodyBytes = 64 << 10

// ViewResponse is a view snapshot tagged with its view ID.
type ViewResponse struct {
	ID string `json:"id"`
	view.Snapshot
}

// SortRequest is the body of PUT /api/v1/views/{id}/sort. With Toggle set
// the column advances through its ascending, descending, unsorted cycle
// and Order is ignored.
type SortRequest struct {
	Column string `json:"column"`
	Order  string `json:"order,omitempty"`
	Toggle bool   `json:"toggle,omitempty"`
}

// PageRequest is the body of PUT /api/v1/views/{id}/page.
type PageRequest struct {
	Page int `json:"page"`
}

// PageSizeRequest is the body of PUT /api/v1/views/{id}/page-size.
type PageSizeRequest struct {
	PageSize int `json:"pageSize"`
}

// ViewHandler serves the stateful paginated view API.
type ViewHandler struct {
	registry *view.Registry
	logger   *zap.Logger
}

// NewViewHandler creates a view API handler backed by registry.
func NewViewHandler(registry *view.Registry, logger *zap.Logger) *ViewHandler {
	return &ViewHandler{registry: registry, logger: logger}
}

// RegisterRoutes implements server.SimpleRouteRegistrar.
func (h *ViewHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/views", h.handleCreate)
	mux.HandleFunc("GET /api/v1/views/{id}", h.handleGet)
	mux.HandleFunc("DELETE /api/v1/views/{id}", h.handleDelete)
	mux.HandleFunc("PUT /api/v1/views/{id}/filter", h.handleSetFilter)
	mux.HandleFunc("PUT /api/v1/views/{id}/sort", h.handleSetSort)
	mux.HandleFunc("POST /api/v1/views/{id}/next", h.handleNext)
	mux.HandleFunc("POST /api/v1/views/{id}/prev", h.handlePrev)
	mux.HandleFunc("PUT /api/v1/views/{id}/page", h.handleSetPage)
	mux.HandleFunc("PUT /api/v1/views/{id}/page-size", h.handleSetPageSize)
}

// handleCreate opens a new view in the initial state.
//
//	@Summary		Create view
//	@Description	Opens a paginated view on page 1 with no filter and no explicit sort.
//	@Tags			views
//	@Produce		json
//	@Success		201 {object} ViewResponse
//	@Router			/views [post]
func (h *ViewHandler) handleCreate(w http.ResponseWriter, _ *http.Request) {
	id, c := h.registry.Create()
	w.Header().Set("Location", "/api/v1/views/"+id)
	writeJSON(w, http.StatusCreated, ViewResponse{ID: id, Snapshot: c.Snapshot()})
}

// handleGet returns the current page of a view.
//
//	@Summary		Get view
//	@Tags			views
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Success		200 {object} ViewResponse
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id} [get]
func (h *ViewHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: c.Snapshot()})
}

// handleDelete closes a view.
//
//	@Summary		Delete view
//	@Tags			views
//	@Param			id path string true "View ID"
//	@Success		204
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id} [delete]
func (h *ViewHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !h.registry.Delete(id) {
		server.NotFound(w, fmt.Sprintf("view %s not found", id), r.URL.Path)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSetFilter replaces the view's filter and returns to page 1.
//
//	@Summary		Set filter
//	@Description	Accepts a JSON FilterCriteria, or a form post with searchText, category, minPrice, maxPrice and inStock where "-1" means no choice.
//	@Tags			views
//	@Accept			json
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Param			filter body query.FilterCriteria false "Filter criteria"
//	@Success		200 {object} ViewResponse
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/filter [put]
func (h *ViewHandler) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var f query.FilterCriteria
	if isForm(r) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			server.BadRequest(w, "invalid form body", r.URL.Path)
			return
		}
		parsed, err := ParseFilterForm(r.PostForm)
		if err != nil {
			server.BadRequest(w, err.Error(), r.URL.Path)
			return
		}
		f = parsed
	} else if !decodeBody(w, r, &f) {
		return
	}

	snap, err := c.SetFilter(f)
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: snap})
}

// handleSetSort sets or toggles the view's sort column.
//
//	@Summary		Set sort
//	@Description	Sets column and order explicitly, or with toggle advances the column's sort cycle. An empty column and order clear the sort.
//	@Tags			views
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Param			sort body SortRequest true "Sort request"
//	@Success		200 {object} ViewResponse
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/sort [put]
func (h *ViewHandler) handleSetSort(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req SortRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Toggle {
		writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: c.ToggleSort(req.Column)})
		return
	}
	snap, err := c.SetSort(query.SortCriteria{
		Column: query.Field(req.Column),
		Order:  query.Order(req.Order),
	})
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: snap})
}

// handleNext advances one page.
//
//	@Summary		Next page
//	@Tags			views
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Success		200 {object} ViewResponse
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/next [post]
func (h *ViewHandler) handleNext(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: c.NextPage()})
}

// handlePrev goes back one page.
//
//	@Summary		Previous page
//	@Tags			views
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Success		200 {object} ViewResponse
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/prev [post]
func (h *ViewHandler) handlePrev(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: c.PrevPage()})
}

// handleSetPage jumps to a page.
//
//	@Summary		Set page
//	@Tags			views
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Param			page body PageRequest true "Target page"
//	@Success		200 {object} ViewResponse
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/page [put]
func (h *ViewHandler) handleSetPage(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req PageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	snap, err := c.SetPage(req.Page)
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: snap})
}

// handleSetPageSize changes the page size and returns to page 1.
//
//	@Summary		Set page size
//	@Tags			views
//	@Accept			json
//	@Produce		json
//	@Param			id path string true "View ID"
//	@Param			pageSize body PageSizeRequest true "Page size (10, 20, 30, 50, 100)"
//	@Success		200 {object} ViewResponse
//	@Failure		400 {object} server.Problem
//	@Failure		404 {object} server.Problem
//	@Router			/views/{id}/page-size [put]
func (h *ViewHandler) handleSetPageSize(w http.ResponseWriter, r *http.Request) {
	id, c, ok := h.lookup(w, r)
	if !ok {
		return
	}
	var req PageSizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	snap, err := c.SetPageSize(req.PageSize)
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, ViewResponse{ID: id, Snapshot: snap})
}

// lookup resolves the {id} path value, writing a 404 when the view is
// unknown or expired.
func (h *ViewHandler) lookup(w http.ResponseWriter, r *http.Request) (string, *view.Controller, bool) {
	id := r.PathValue("id")
	c, ok := h.registry.Get(id)
	if !ok {
		server.NotFound(w, fmt.Sprintf("view %s not found", id), r.URL.Path)
		return id, nil, false
	}
	return id, c, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		server.BadRequest(w, "invalid JSON body: "+err.Error(), r.URL.Path)
		return false
	}
	return true
}

func isForm(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}
