package handlers

import (
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/demoblaze/storefront-e2e/internal/services"
	"github.com/sirupsen/logrus"
)

// StoreName is shown in page titles and footers
const StoreName = "Product Store"

// PageData is passed to every page template
type PageData struct {
	Title     string
	StoreName string
	Product   *models.Product
}

// PageHandler renders one storefront page
type PageHandler struct {
	template *template.Template
	name     string
	title    string
	catalog  *services.Catalog
	logger   logrus.FieldLogger
}

// NewPageHandler parses templatePath together with the shared partials from fsys
func NewPageHandler(fsys fs.FS, templatePath, title string, logger logrus.FieldLogger) (*PageHandler, error) {
	partials := path.Join(path.Dir(templatePath), "partials.html")
	tmpl, err := template.ParseFS(fsys, partials, templatePath)
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		template: tmpl,
		name:     path.Base(templatePath),
		title:    title,
		logger:   logger,
	}, nil
}

// WithCatalog makes the page render the product named by the idp_ query parameter
func (h *PageHandler) WithCatalog(catalog *services.Catalog) *PageHandler {
	h.catalog = catalog
	return h
}

// ServeHTTP handles GET requests for the page
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := PageData{
		Title:     h.title,
		StoreName: StoreName,
	}

	if h.catalog != nil {
		id, err := strconv.Atoi(r.URL.Query().Get("idp_"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		product, err := h.catalog.Get(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		data.Product = &product
		data.Title = product.Title
	}

	if err := h.template.ExecuteTemplate(w, h.name, data); err != nil {
		h.logger.WithError(err).WithField("template", h.name).Error("Error rendering template")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
