package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"threads-of-tradition/domain"
	"threads-of-tradition/service"
)

// RecommendationHandler exposes the pricing and caption engine as preview
// endpoints used before an upload.
type RecommendationHandler struct {
	engine   *service.RecommendationService
	artisans *service.ArtisanService
}

func NewRecommendationHandler(engine *service.RecommendationService, artisans *service.ArtisanService) *RecommendationHandler {
	return &RecommendationHandler{engine: engine, artisans: artisans}
}

type recommendationRequest struct {
	Material  string  `json:"material"`
	TimeSpent float64 `json:"time_spent"`
}

// GenerateCaption previews a marketing caption for the authenticated
// artisan's product.
func (h *RecommendationHandler) GenerateCaption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	artisanID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	artisan, err := h.artisans.Profile(artisanID)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	caption, err := h.engine.GenerateCaption(domain.RecommendationInput{
		Material:    req.Material,
		TimeSpent:   req.TimeSpent,
		ArtisanName: artisan.Name,
		Location:    artisan.Location,
	})
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"caption": caption})
}

// RecommendPrice previews a price range for a material and labor time.
func (h *RecommendationHandler) RecommendPrice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	priceRange, err := h.engine.RecommendPrice(req.Material, req.TimeSpent)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"price_min":     priceRange.Min,
		"price_max":     priceRange.Max,
		"price_display": fmt.Sprintf("₹%.0f - ₹%.0f", priceRange.Min, priceRange.Max),
	})
}

// Materials lists the configured material identifiers for dropdowns.
func (h *RecommendationHandler) Materials(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"materials": h.engine.Materials()})
}
