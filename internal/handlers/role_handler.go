package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// RoleHandler handles role HTTP requests.
type RoleHandler struct {
	roleService *services.RoleService
	validator   *validator.Validate
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(rs *services.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: rs,
		validator:   validator.New(),
	}
}

// CreateRole handles POST /roles.
func (h *RoleHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	role, err := h.roleService.CreateRole(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Role", role)
}

// GetRole handles GET /roles/{id}.
func (h *RoleHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	role, err := h.roleService.GetRoleByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Role", role)
}

// ListRoles handles GET /roles.
func (h *RoleHandler) ListRoles(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	roles, total, err := h.roleService.ListRoles(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Role", roles, page, total)
}

// UpdateRole handles PUT /roles/{id}.
func (h *RoleHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	role, err := h.roleService.UpdateRole(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Role", role)
}

// DeleteRole handles DELETE /roles/{id}.
func (h *RoleHandler) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.DeleteRole(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Role", nil)
}
