package middleware

import (
	"context"
	"net/http"

	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

const contextKeyLanguage contextKey = "language"

// Language resolves the Content-Language header for the request. An absent
// header falls back to the default language; an unrecognized tag is rejected
// with a 400 before any handler runs.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := r.Header.Get("Content-Language")
		if lang == "" {
			lang = i18n.DefaultLanguage
		}
		if !i18n.Supported(lang) {
			msg := i18n.T(i18n.DefaultLanguage, "auth.unsupportedLanguage", nil)
			utils.RespondError(w, http.StatusBadRequest, msg, nil)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyLanguage, lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LanguageFromRequest returns the resolved language tag for the request.
func LanguageFromRequest(r *http.Request) string {
	if lang, ok := r.Context().Value(contextKeyLanguage).(string); ok {
		return lang
	}
	return i18n.DefaultLanguage
}
