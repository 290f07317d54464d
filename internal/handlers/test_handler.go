package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// TestHandler handles test HTTP requests.
type TestHandler struct {
	testService *services.TestService
	validator   *validator.Validate
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(ts *services.TestService) *TestHandler {
	return &TestHandler{
		testService: ts,
		validator:   validator.New(),
	}
}

// CreateTest handles POST /tests.
func (h *TestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	test, err := h.testService.CreateTest(r.Context(), &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusCreated, "message.createSuccess", "Test", test)
}

// GetTest handles GET /tests/{id}.
func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	test, err := h.testService.GetTestByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.getSuccess", "Test", test)
}

// ListTests handles GET /tests.
func (h *TestHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	params := ParseListParams(r)
	page := params.ToPage()

	tests, total, err := h.testService.ListTests(r.Context(), params.Search, params.Status, page)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondList(w, r, "Test", tests, page, total)
}

// UpdateTest handles PUT /tests/{id}.
func (h *TestHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTestRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	test, err := h.testService.UpdateTest(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.updateSuccess", "Test", test)
}

// DeleteTest handles DELETE /tests/{id}.
func (h *TestHandler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	if err := h.testService.DeleteTest(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.deleteSuccess", "Test", nil)
}
