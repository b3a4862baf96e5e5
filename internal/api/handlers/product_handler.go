package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/auraflow/auraflow-be/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service services.ProductServiceProvider
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductPayload defines the structure for create and update requests.
// Price arrives as a JSON string or fixed-point number and is parsed
// exactly; a NullDecimal distinguishes an absent price from zero.
type ProductPayload struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Price       decimal.NullDecimal `json:"price"`
	ImageURL    *string             `json:"image_url"`
}

func (p *ProductPayload) validate() string {
	if p.Name == "" {
		return "Name is required"
	}
	if p.Description == "" {
		return "Description is required"
	}
	if !p.Price.Valid {
		return "Price is required"
	}
	return ""
}

// List handles the request to list products with skip/limit paging.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", 100)

	products, err := h.service.List(skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		writeError(w, "Failed to retrieve products", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Get handles the request to get a single product by its ID.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to get product")
		writeError(w, "Failed to retrieve product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles the request to create a new product.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	product, err := h.service.Create(payload.Name, payload.Description, payload.Price.Decimal, payload.ImageURL)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create product")
		writeError(w, "Failed to create product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// Update handles the request to replace an existing product.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var payload ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, msg, http.StatusBadRequest)
		return
	}

	product, err := h.service.Update(id, payload.Name, payload.Description, payload.Price.Decimal, payload.ImageURL)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to update product")
		writeError(w, "Failed to update product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles the request to delete a product.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to delete product")
		writeError(w, "Failed to delete product", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
