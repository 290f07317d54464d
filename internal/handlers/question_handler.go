package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// QuestionHandler handles question HTTP requests.
type QuestionHandler struct {
	questionService *services.QuestionService
	validator       *validator.Validate
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(qs *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: qs,
		validator:       validator.New(),
	}
}

// CreateQuestion handles POST /questions.
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	question, err := h.questionService.CreateQuestion(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Question", question)
}

// GetQuestion handles GET /questions/{id}.
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.questionService.GetQuestionByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Question", question)
}

// ListQuestions handles GET /questions. Accepts an extra kind parameter to
// narrow to one question variant.
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()
	kind := models.QuestionKind(r.URL.Query().Get("kind"))

	questions, total, err := h.questionService.ListQuestions(r.Context(), params.Search, kind, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Question", questions, page, total)
}

// UpdateQuestion handles PUT /questions/{id}.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	question, err := h.questionService.UpdateQuestion(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Question", question)
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.questionService.DeleteQuestion(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Question", nil)
}

// GradeQuestion handles POST /questions/{id}/grade, checking a submission
// against the stored answer.
func (h *QuestionHandler) GradeQuestion(w http.ResponseWriter, r *http.Request) {
	var sub models.Submission
	if !decodeJSON(w, r, &sub) {
		return
	}

	correct, err := h.questionService.GradeQuestion(r.Context(), mux.Vars(r)["id"], sub)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Question", map[string]bool{"correct": correct})
}
