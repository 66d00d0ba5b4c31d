package http

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"threads-of-tradition/service"
)

type ArtisanHandler struct {
	service *service.ArtisanService
}

func NewArtisanHandler(service *service.ArtisanService) *ArtisanHandler {
	return &ArtisanHandler{service: service}
}

type artisanCredentials struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an artisan account. Accepts JSON, or multipart form
// data when a certificate file accompanies the registration.
func (h *ArtisanHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input service.ArtisanRegistration
	var certificate multipart.File

	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "invalid form data", http.StatusBadRequest)
			return
		}
		input = service.ArtisanRegistration{
			Name:     r.FormValue("name"),
			Location: r.FormValue("location"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		if file, header, err := r.FormFile("certificate"); err == nil {
			certificate = file
			input.Certificate = file
			input.CertificateName = header.Filename
		}
	} else {
		var creds artisanCredentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		input = service.ArtisanRegistration{
			Name:     creds.Name,
			Location: creds.Location,
			Email:    creds.Email,
			Password: creds.Password,
		}
	}
	if certificate != nil {
		defer certificate.Close()
	}

	artisan, token, err := h.service.Register(input)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration successful",
		"token":   token,
		"artisan": artisan,
	})
}

func (h *ArtisanHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds artisanCredentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	artisan, token, err := h.service.Login(creds.Email, creds.Password)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"artisan": artisan,
	})
}

// Profile serves GET (fetch) and PUT (update name/location) for the
// authenticated artisan.
func (h *ArtisanHandler) Profile(w http.ResponseWriter, r *http.Request) {
	artisanID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		artisan, err := h.service.Profile(artisanID)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"artisan": artisan})

	case http.MethodPut:
		var update struct {
			Name     string `json:"name"`
			Location string `json:"location"`
		}
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		artisan, err := h.service.UpdateProfile(artisanID, update.Name, update.Location)
		if err != nil {
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Profile updated successfully",
			"artisan": artisan,
		})

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// Products lists the authenticated artisan's uploads.
func (h *ArtisanHandler) Products(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	artisanID, ok := userIDFrom(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	products, err := h.service.Products(artisanID)
	if err != nil {
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}
