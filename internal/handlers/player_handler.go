package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// PlayerHandler handles player HTTP requests.
type PlayerHandler struct {
	playerService *services.PlayerService
	validator     *validator.Validate
}

// NewPlayerHandler creates a new PlayerHandler.
func NewPlayerHandler(ps *services.PlayerService) *PlayerHandler {
	return &PlayerHandler{
		playerService: ps,
		validator:     validator.New(),
	}
}

// CreatePlayer handles POST /players.
func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Player", player)
}

// GetPlayer handles GET /players/{id}.
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.playerService.GetPlayerByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Player", player)
}

// ListPlayers handles GET /players.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	players, total, err := h.playerService.ListPlayers(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Player", players, page, total)
}

// UpdatePlayer handles PUT /players/{id}.
func (h *PlayerHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePlayerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	player, err := h.playerService.UpdatePlayer(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Player", player)
}

// DeletePlayer handles DELETE /players/{id}. Players are deactivated, not removed.
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.DeactivatePlayer(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Player", nil)
}
