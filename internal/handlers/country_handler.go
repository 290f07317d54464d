package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// CountryHandler handles country HTTP requests.
type CountryHandler struct {
	countryService *services.CountryService
	validator      *validator.Validate
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(cs *services.CountryService) *CountryHandler {
	return &CountryHandler{
		countryService: cs,
		validator:      validator.New(),
	}
}

// CreateCountry handles POST /countries.
func (h *CountryHandler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCountryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	country, err := h.countryService.CreateCountry(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Country", country)
}

// GetCountry handles GET /countries/{id}.
func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.countryService.GetCountryByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Country", country)
}

// ListCountries handles GET /countries.
func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	countries, total, err := h.countryService.ListCountries(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Country", countries, page, total)
}

// UpdateCountry handles PUT /countries/{id}.
func (h *CountryHandler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCountryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	country, err := h.countryService.UpdateCountry(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Country", country)
}

// DeleteCountry handles DELETE /countries/{id}.
func (h *CountryHandler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	if err := h.countryService.DeleteCountry(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Country", nil)
}
