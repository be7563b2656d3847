package handlers

import (
	"net/http"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// ProductEntry is a product as the entries API returns it
type ProductEntry struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	Description string `json:"desc"`
	Category    string `json:"cat"`
	Image       string `json:"img"`
}

// EntriesResponse wraps a product list
type EntriesResponse struct {
	Items []ProductEntry `json:"Items"`
}

// CategoryRequest is the body of /bycat
type CategoryRequest struct {
	Category string `json:"cat"`
}

func toEntries(products []models.Product) EntriesResponse {
	resp := EntriesResponse{Items: make([]ProductEntry, 0, len(products))}
	for _, p := range products {
		resp.Items = append(resp.Items, ProductEntry{
			ID:          p.ID,
			Title:       p.Title,
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			Image:       p.ImageURL,
		})
	}
	return resp
}

// EntriesHandler lists the catalog
type EntriesHandler struct {
	catalog *services.Catalog
	logger  logrus.FieldLogger
}

// NewEntriesHandler creates a new entries handler
func NewEntriesHandler(catalog *services.Catalog, logger logrus.FieldLogger) *EntriesHandler {
	return &EntriesHandler{catalog: catalog, logger: logger}
}

// ServeHTTP handles GET /api/entries
func (h *EntriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toEntries(h.catalog.List("")))
}

// ByCategoryHandler lists one catalog category
type ByCategoryHandler struct {
	catalog *services.Catalog
	logger  logrus.FieldLogger
}

// NewByCategoryHandler creates a new category handler
func NewByCategoryHandler(catalog *services.Catalog, logger logrus.FieldLogger) *ByCategoryHandler {
	return &ByCategoryHandler{catalog: catalog, logger: logger}
}

// ServeHTTP handles POST /api/bycat
func (h *ByCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !decodeRequest(w, r, &req) {
		return
	}
	if req.Category == "" {
		sendErrorResponse(w, "cat is required", http.StatusBadRequest)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, toEntries(h.catalog.List(req.Category)))
}
