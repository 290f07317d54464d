package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// FeedbackHandler handles feedback HTTP requests.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
	validator       *validator.Validate
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: fs,
		validator:       validator.New(),
	}
}

// CreateFeedback handles POST /feedback.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Feedback", feedback)
}

// GetFeedback handles GET /feedback/{id}.
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedbackService.GetFeedbackByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Feedback", feedback)
}

// ListFeedback handles GET /feedback. Accepts resolved, minRating and
// maxRating on top of the uniform list parameters.
func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()
	q := r.URL.Query()

	var resolved *bool
	if v := q.Get("resolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			resolved = &b
		}
	}
	var minRating, maxRating *int
	if v, err := strconv.Atoi(q.Get("minRating")); err == nil {
		minRating = &v
	}
	if v, err := strconv.Atoi(q.Get("maxRating")); err == nil {
		maxRating = &v
	}

	feedbacks, total, err := h.feedbackService.ListFeedback(r.Context(), params.Search, resolved, minRating, maxRating, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Feedback", feedbacks, page, total)
}

// UpdateFeedback handles PUT /feedback/{id}.
func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateFeedbackRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	feedback, err := h.feedbackService.UpdateFeedback(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Feedback", feedback)
}

// DeleteFeedback handles DELETE /feedback/{id}.
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	if err := h.feedbackService.DeleteFeedback(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Feedback", nil)
}
