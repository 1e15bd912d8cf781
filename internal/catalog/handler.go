package catalog

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/HerbHall/shelfview/internal/query"
	"github.com/HerbHall/shelfview/internal/server"
	"github.com/HerbHall/shelfview/internal/view"
)

// Lister is the read side of the query pipeline used by the listing API.
type Lister interface {
	view.Deriver
	Categories() []string
}

// CategoriesResponse is the response for GET /api/v1/catalog/categories.
type CategoriesResponse struct {
	Count      int      `json:"count"`
	Categories []string `json:"categories"`
}

// Handler serves the stateless catalog API.
type Handler struct {
	lister Lister
	engine *Engine
	logger *zap.Logger
}

// NewHandler creates a new catalog API handler.
func NewHandler(lister Lister, defaultPageSize int, logger *zap.Logger) *Handler {
	return &Handler{
		lister: lister,
		engine: NewEngine(lister, defaultPageSize),
		logger: logger,
	}
}

// RegisterRoutes implements server.SimpleRouteRegistrar.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/catalog/products", h.handleListProducts)
	mux.HandleFunc("GET /api/v1/catalog/categories", h.handleListCategories)
}

// handleListProducts returns one page of the filtered and sorted catalog.
//
//	@Summary		List products
//	@Description	Filters, sorts and paginates the product catalog in a single request.
//	@Tags			catalog
//	@Produce		json
//	@Param			q query string false "Case-insensitive name substring"
//	@Param			category query string false "Exact category"
//	@Param			min_price query number false "Minimum price (inclusive)"
//	@Param			max_price query number false "Maximum price (inclusive); the range applies only when max_price > 0"
//	@Param			in_stock query bool false "Stock status"
//	@Param			sort query string false "Sort column (id, name, category, price, inStock)"
//	@Param			order query string false "Sort order (asc, desc)"
//	@Param			page query int false "Page number" default(1)
//	@Param			page_size query int false "Page size (10, 20, 30, 50, 100)"
//	@Success		200 {object} view.Snapshot
//	@Failure		400 {object} server.Problem
//	@Router			/catalog/products [get]
func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	req, err := ParseListQuery(r.URL.Query())
	if err != nil {
		server.BadRequest(w, err.Error(), r.URL.Path)
		return
	}

	snap, err := h.engine.Query(req)
	if err != nil {
		writeQueryError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleListCategories returns the distinct product categories.
//
//	@Summary		List categories
//	@Description	Returns the distinct product categories in dataset order.
//	@Tags			catalog
//	@Produce		json
//	@Success		200 {object} CategoriesResponse
//	@Router			/catalog/categories [get]
func (h *Handler) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := h.lister.Categories()
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Count:      len(categories),
		Categories: categories,
	})
}

// -- helpers --

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeQueryError maps validation errors to 400 and anything else to 500.
func writeQueryError(w http.ResponseWriter, r *http.Request, err error, logger *zap.Logger) {
	switch {
	case errors.Is(err, ErrInvalidParam),
		errors.Is(err, query.ErrInvalidPriceRange),
		errors.Is(err, query.ErrInvalidSort),
		errors.Is(err, view.ErrInvalidPageSize),
		errors.Is(err, view.ErrPageOutOfRange):
		server.BadRequest(w, err.Error(), r.URL.Path)
	default:
		logger.Error("catalog request failed", zap.String("path", r.URL.Path), zap.Error(err))
		server.InternalError(w, "internal error", r.URL.Path)
	}
}
