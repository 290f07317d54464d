package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/middleware"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/query"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

// ListParams are the uniform query parameters of every list endpoint.
type ListParams struct {
	Page      int64
	PageSize  int64
	Search    string
	Status    *int
	SortOrder int
}

// ParseListParams reads the uniform list parameters, applying defaults for
// anything absent or unparsable. pageSize accepts both spellings.
func ParseListParams(r *http.Request) ListParams {
	q := r.URL.Query()

	page, err := strconv.ParseInt(q.Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	sizeStr := q.Get("pageSize")
	if sizeStr == "" {
		sizeStr = q.Get("page_size")
	}
	pageSize, err := strconv.ParseInt(sizeStr, 10, 64)
	if err != nil || pageSize < 1 {
		pageSize = query.DefaultPageSize
	}

	var status *int
	if s := q.Get("status"); s == "0" || s == "1" {
		v, _ := strconv.Atoi(s)
		status = &v
	}

	sortOrder, err := strconv.Atoi(q.Get("sortOrder"))
	if err != nil || sortOrder != query.SortAsc {
		sortOrder = query.SortDesc
	}

	return ListParams{
		Page:      page,
		PageSize:  pageSize,
		Search:    q.Get("search"),
		Status:    status,
		SortOrder: sortOrder,
	}
}

// ToPage converts the parsed parameters into a clamped page request.
func (p ListParams) ToPage() query.Page {
	return query.NewPage(p.Page, p.PageSize, p.SortOrder)
}

// respondList renders the uniform paginated envelope for one page of items.
func respondList(w http.ResponseWriter, r *http.Request, field string, items interface{}, page query.Page, totalCount int64) {
	lang := middleware.LanguageFromRequest(r)
	msg := i18n.T(lang, "message.listSuccess", map[string]string{"field": field})
	utils.RespondSuccess(w, http.StatusOK, msg, models.ListData{
		Items:       items,
		TotalPages:  page.TotalPages(totalCount),
		TotalCount:  totalCount,
		CurrentPage: page.Number,
	})
}

// respondOK renders a localized success envelope for a single entity outcome.
func respondOK(w http.ResponseWriter, r *http.Request, code int, messageKey, field string, data interface{}) {
	lang := middleware.LanguageFromRequest(r)
	msg := i18n.T(lang, messageKey, map[string]string{"field": field})
	utils.RespondSuccess(w, code, msg, data)
}

// respondAppError classifies err and renders the uniform error envelope with a
// localized message.
func respondAppError(w http.ResponseWriter, r *http.Request, err error) {
	lang := middleware.LanguageFromRequest(r)
	e := apperr.As(err)
	utils.RespondError(w, e.HTTPStatus(), i18n.T(lang, e.Key, e.Params), nil)
}

// decodeJSON decodes the request body, reporting a localized validation error
// on malformed payloads.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		lang := middleware.LanguageFromRequest(r)
		utils.RespondError(w, http.StatusBadRequest, i18n.T(lang, "validation.invalidPayload", nil), nil)
		return false
	}
	return true
}

// respondValidationError renders a field-level validation failure.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	lang := middleware.LanguageFromRequest(r)
	msg := i18n.T(lang, "validation.failed", map[string]string{"details": err.Error()})
	utils.RespondError(w, http.StatusBadRequest, msg, nil)
}
