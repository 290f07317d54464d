package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// TopicHandler handles topic HTTP requests.
type TopicHandler struct {
	topicService *services.TopicService
	validator    *validator.Validate
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(ts *services.TopicService) *TopicHandler {
	return &TopicHandler{
		topicService: ts,
		validator:    validator.New(),
	}
}

// CreateTopic handles POST /topics.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	topic, err := h.topicService.CreateTopic(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Topic", topic)
}

// GetTopic handles GET /topics/{id}.
func (h *TopicHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topic, err := h.topicService.GetTopicByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Topic", topic)
}

// ListTopics handles GET /topics.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	topics, total, err := h.topicService.ListTopics(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Topic", topics, page, total)
}

// UpdateTopic handles PUT /topics/{id}.
func (h *TopicHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	topic, err := h.topicService.UpdateTopic(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Topic", topic)
}

// DeleteTopic handles DELETE /topics/{id}.
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	if err := h.topicService.DeleteTopic(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Topic", nil)
}
