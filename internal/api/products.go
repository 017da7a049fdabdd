package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"stockroom/internal/db"
	"stockroom/internal/imaging"
	"stockroom/internal/model"
	"stockroom/internal/store"
)

// ProductsHandler handles product endpoints.
type ProductsHandler struct {
	Store *store.Store
	DB    *sql.DB
}

// List handles GET /api/products. A "search" query searches name, SKU,
// category, and supplier; a "category" query filters by exact category.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []model.Product
	switch {
	case r.URL.Query().Has("search"):
		products = h.Store.SearchProducts(r.URL.Query().Get("search"))
	case r.URL.Query().Has("category"):
		products = h.Store.FilterProducts(r.URL.Query().Get("category"))
	default:
		products = h.Store.Products()
	}
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Lookup handles GET /api/products/lookup. The barcode scanner forwards
// decoded strings here; they are treated as free-text lookups since no
// dedicated barcode index exists.
func (h *ProductsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		jsonError(w, http.StatusBadRequest, "code required")
		return
	}

	products := h.Store.SearchProducts(code)
	if products == nil {
		products = []model.Product{}
	}
	jsonResponse(w, http.StatusOK, products)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input model.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if input.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if input.Category == "" {
		jsonError(w, http.StatusBadRequest, "category required")
		return
	}

	product, err := h.Store.AddProduct(input)
	if err != nil {
		slog.Error("failed to add product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to add product")
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// Get handles GET /api/products/{id}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.Store.GetProduct(r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id}.
func (h *ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ProductPatch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.Store.UpdateProduct(r.PathValue("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		slog.Error("failed to update product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	jsonResponse(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id}.
func (h *ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.Store.DeleteProduct(id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete product", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to delete product")
		return
	}

	// Photo cleanup is best-effort; the product itself is gone.
	if err := db.DeleteProductImage(r.Context(), h.DB, id); err != nil {
		slog.Error("failed to delete product image", "product", id, "error", err)
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

// UploadImage handles PUT /api/products/{id}/image.
func (h *ProductsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := h.Store.GetProduct(id); errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	photo, err := imaging.Normalize(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.SetProductImage(r.Context(), h.DB, id, photo.Data, photo.MIME); err != nil {
		slog.Error("failed to save product image", "product", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "image uploaded"})
}

// GetImage handles GET /api/products/{id}/image.
func (h *ProductsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, mime, err := db.GetProductImage(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
