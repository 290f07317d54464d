package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// AdminHandler handles admin account HTTP requests.
type AdminHandler struct {
	adminService *services.AdminService
	validator    *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(as *services.AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: as,
		validator:    validator.New(),
	}
}

// CreateAdmin handles POST /admins. The temporary password is mailed, never
// returned in the response.
func (h *AdminHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	admin, err := h.adminService.CreateAdmin(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "admin.created", "", admin)
}

// GetAdmin handles GET /admins/{id}.
func (h *AdminHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminService.GetAdminByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Admin", admin)
}

// ListAdmins handles GET /admins.
func (h *AdminHandler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	admins, total, err := h.adminService.ListAdmins(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Admin", admins, page, total)
}

// UpdateAdmin handles PUT /admins/{id}.
func (h *AdminHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAdminRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	admin, err := h.adminService.UpdateAdmin(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Admin", admin)
}

// DeleteAdmin handles DELETE /admins/{id}. Admins are deactivated, not removed.
func (h *AdminHandler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.DeactivateAdmin(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Admin", nil)
}
