package handlers

import (
	"net/http"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/services"
)

// maxUploadSize bounds in-memory parsing of multipart bodies.
const maxUploadSize = 10 << 20 // 10 MB

// UploadHandler handles media uploads.
type UploadHandler struct {
	uploadService *services.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(us *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: us}
}

// UploadFile handles POST /upload with a multipart "file" field. The route is
// registered even without Cloudinary credentials; uploads then report the
// storage backend as unavailable instead of panicking.
func (h *UploadHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if h.uploadService == nil {
		respondAppError(w, r, &apperr.Error{
			Kind:   apperr.Internal,
			Key:    "message.internalError",
			Status: http.StatusServiceUnavailable,
		})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondAppError(w, r, apperr.NewValidation("validation.invalidPayload", nil))
		return
	}

	_, fileHeader, err := r.FormFile("file")
	if err != nil {
		respondAppError(w, r, apperr.NewValidation("validation.invalidPayload", nil))
		return
	}

	url, err := h.uploadService.UploadFile(r.Context(), fileHeader)
	if err != nil {
		respondAppError(w, r, err)
		return
	}
	respondOK(w, r, http.StatusOK, "message.uploadSuccess", "", map[string]string{"url": url})
}
