package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/models"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func multipartFileRequest(t *testing.T) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "question.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("not-a-real-png")); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFileWithoutBackend(t *testing.T) {
	h := NewUploadHandler(nil)
	rec := httptest.NewRecorder()

	h.UploadFile(rec, multipartFileRequest(t))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var env models.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	if env.Success || env.Status != http.StatusServiceUnavailable {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if env.Message != "Something went wrong. Please try again later." {
		t.Errorf("message = %q", env.Message)
	}
}

func TestUploadFileMissingFileField(t *testing.T) {
	h := NewUploadHandler(nil)
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", bytes.NewBufferString("not multipart"))
	h.UploadFile(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("nil backend must answer before body parsing, status = %d", rec.Code)
	}
}
