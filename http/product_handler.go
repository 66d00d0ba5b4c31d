package http

import (
	"net/http"
	"strconv"

	"threads-of-tradition/domain"
	"threads-of-tradition/service"
)

// maxUploadBytes caps multipart request bodies (product images, artisan
// certificates).
const maxUploadBytes = 16 << 20 // 16MB

type ProductHandler struct {
	service *service.ProductService
}

func NewProductHandler(service *service.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Upload accepts a multipart form with the product image and metadata.
// Caption and price fields are optional; the engine fills missing ones.
func (h *ProductHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	artisanID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	timeSpent, err := strconv.ParseFloat(r.FormValue("time_spent"), 64)
	if err != nil {
		http.Error(w, "time_spent must be a number", http.StatusBadRequest)
		return
	}

	input := service.ProductUpload{
		ArtisanID: artisanID,
		Material:  r.FormValue("material"),
		TimeSpent: timeSpent,
		Caption:   r.FormValue("caption"),
	}
	if v := r.FormValue("price_min"); v != "" {
		if input.PriceMin, err = strconv.ParseFloat(v, 64); err != nil {
			http.Error(w, "price_min must be a number", http.StatusBadRequest)
			return
		}
	}
	if v := r.FormValue("price_max"); v != "" {
		if input.PriceMax, err = strconv.ParseFloat(v, 64); err != nil {
			http.Error(w, "price_max must be a number", http.StatusBadRequest)
			return
		}
	}

	image, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "product image is required", http.StatusBadRequest)
		return
	}
	defer image.Close()
	input.Image = image
	input.ImageName = header.Filename

	product, err := h.service.Upload(input)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Product uploaded successfully",
		"product": product,
	})
}

// List serves the buyer-facing catalog with optional filters: material,
// min_price, max_price, verified_only.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	filter := domain.ProductFilter{
		Material:     query.Get("material"),
		VerifiedOnly: query.Get("verified_only") == "true",
	}
	if v := query.Get("min_price"); v != "" {
		minPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "min_price must be a number", http.StatusBadRequest)
			return
		}
		filter.MinPrice = &minPrice
	}
	if v := query.Get("max_price"); v != "" {
		maxPrice, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "max_price must be a number", http.StatusBadRequest)
			return
		}
		filter.MaxPrice = &maxPrice
	}

	products, err := h.service.List(filter)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

// Get serves a single product. Registered with a path pattern, so the
// method is enforced by the router.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.service.Get(id)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

// Delete removes one of the authenticated artisan's own products.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}

	artisanID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.service.Delete(id, artisanID); err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
