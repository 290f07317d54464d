package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLanguage(t *testing.T) {
	var resolved string
	handler := Language(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolved = LanguageFromRequest(r)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantLang   string
	}{
		{"absent header defaults", "", http.StatusOK, "en-US"},
		{"supported language passes through", "fr-FR", http.StatusOK, "fr-FR"},
		{"unsupported language rejected", "xx-XX", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)
			if tt.header != "" {
				req.Header.Set("Content-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if resolved != tt.wantLang {
				t.Errorf("resolved language = %q, want %q", resolved, tt.wantLang)
			}
		})
	}
}
