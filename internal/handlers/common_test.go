package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/quizmint/quizadmin-api/internal/query"
)

func TestParseListParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want ListParams
	}{
		{
			"defaults",
			"/api/v1/countries",
			ListParams{Page: 1, PageSize: query.DefaultPageSize, SortOrder: query.SortDesc},
		},
		{
			"explicit values",
			"/api/v1/countries?page=3&pageSize=25&search=fra&sortOrder=1",
			ListParams{Page: 3, PageSize: 25, Search: "fra", SortOrder: query.SortAsc},
		},
		{
			"snake_case page size accepted",
			"/api/v1/countries?page_size=15",
			ListParams{Page: 1, PageSize: 15, SortOrder: query.SortDesc},
		},
		{
			"unparsable values fall back",
			"/api/v1/countries?page=abc&pageSize=-2&sortOrder=up",
			ListParams{Page: 1, PageSize: query.DefaultPageSize, SortOrder: query.SortDesc},
		},
		{
			"sort order other than ascending collapses",
			"/api/v1/countries?sortOrder=5",
			ListParams{Page: 1, PageSize: query.DefaultPageSize, SortOrder: query.SortDesc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			got := ParseListParams(r)
			if got.Page != tt.want.Page || got.PageSize != tt.want.PageSize ||
				got.Search != tt.want.Search || got.SortOrder != tt.want.SortOrder {
				t.Errorf("ParseListParams() = %+v, want %+v", got, tt.want)
			}
			if got.Status != nil {
				t.Errorf("status should be nil when absent, got %v", *got.Status)
			}
		})
	}
}

func TestParseListParamsStatus(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/admins?status=1", nil)
	p := ParseListParams(r)
	if p.Status == nil || *p.Status != 1 {
		t.Fatalf("status = %v, want 1", p.Status)
	}

	r = httptest.NewRequest("GET", "/api/v1/admins?status=2", nil)
	if p := ParseListParams(r); p.Status != nil {
		t.Errorf("out-of-range status should be ignored, got %v", *p.Status)
	}
}

func TestListParamsToPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/countries?page=2&pageSize=1000", nil)
	page := ParseListParams(r).ToPage()

	if page.Size != query.MaxPageSize {
		t.Errorf("oversized page size should clamp to %d, got %d", query.MaxPageSize, page.Size)
	}
	if page.Number != 2 || page.Skip() != 100 {
		t.Errorf("page = %+v, skip = %d", page, page.Skip())
	}
}
