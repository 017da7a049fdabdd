package api

import (
	"net/http"

	"stockroom/internal/model"
	"stockroom/internal/store"
)

// DashboardHandler serves the derived summary.
type DashboardHandler struct {
	Store *store.Store
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Store.Dashboard())
}

// Status handles GET /api/status.
func (h *DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]bool{"loading": h.Store.Loading()})
}

// SuppliersHandler serves the supplier reference list.
type SuppliersHandler struct {
	Store *store.Store
}

// List handles GET /api/suppliers.
func (h *SuppliersHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers := h.Store.Suppliers()
	if suppliers == nil {
		suppliers = []model.Supplier{}
	}
	jsonResponse(w, http.StatusOK, suppliers)
}

// CategoriesHandler serves the category list with product counts.
type CategoriesHandler struct {
	Store *store.Store
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	categories := h.Store.Categories()
	if categories == nil {
		categories = []model.Category{}
	}
	jsonResponse(w, http.StatusOK, categories)
}
