package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quizmint/quizadmin-api/internal/middleware"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// AuthHandler handles login and password changes.
type AuthHandler struct {
	authService *services.AuthService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: as,
		validator:   validator.New(),
	}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	resp, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "auth.loginSuccess", "", resp)
}

// ChangePassword handles POST /auth/change_password for the authenticated admin.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	authCtx, err := middleware.GetAuthContext(r)
	if err != nil {
		respondAppError(w, r, err)
		return
	}

	if err := h.authService.ChangePassword(r.Context(), authCtx, &req); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "auth.passwordChanged", "", nil)
}
