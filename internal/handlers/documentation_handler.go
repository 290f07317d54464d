package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// DocumentationHandler handles documentation HTTP requests.
type DocumentationHandler struct {
	docService *services.DocumentationService
	validator  *validator.Validate
}

// NewDocumentationHandler creates a new DocumentationHandler.
func NewDocumentationHandler(ds *services.DocumentationService) *DocumentationHandler {
	return &DocumentationHandler{
		docService: ds,
		validator:  validator.New(),
	}
}

// CreateDocumentation handles POST /documentation.
func (h *DocumentationHandler) CreateDocumentation(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDocumentationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	doc, err := h.docService.CreateDocumentation(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Documentation", doc)
}

// GetDocumentation handles GET /documentation/{id}.
func (h *DocumentationHandler) GetDocumentation(w http.ResponseWriter, r *http.Request) {
	doc, err := h.docService.GetDocumentationByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Documentation", doc)
}

// ListDocumentation handles GET /documentation.
func (h *DocumentationHandler) ListDocumentation(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	docs, total, err := h.docService.ListDocumentation(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Documentation", docs, page, total)
}

// UpdateDocumentation handles PUT /documentation/{id}.
func (h *DocumentationHandler) UpdateDocumentation(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateDocumentationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	doc, err := h.docService.UpdateDocumentation(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Documentation", doc)
}

// DeleteDocumentation handles DELETE /documentation/{id}.
func (h *DocumentationHandler) DeleteDocumentation(w http.ResponseWriter, r *http.Request) {
	if err := h.docService.DeleteDocumentation(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Documentation", nil)
}
