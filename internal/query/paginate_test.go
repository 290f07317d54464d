package query

import "testing"

func TestNewPage(t *testing.T) {
	tests := []struct {
		name          string
		number        int64
		size          int64
		sortOrder     int
		wantNumber    int64
		wantSize      int64
		wantSortOrder int
	}{
		{"defaults", 0, 0, 0, 1, DefaultPageSize, SortDesc},
		{"valid inputs kept", 3, 25, SortAsc, 3, 25, SortAsc},
		{"oversized page clamped", 1, 1000, SortDesc, 1, MaxPageSize, SortDesc},
		{"negative page coerced to first", -5, 10, SortDesc, 1, 10, SortDesc},
		{"negative size defaulted", 2, -1, SortDesc, 2, DefaultPageSize, SortDesc},
		{"unknown sort order collapses to descending", 1, 10, 42, 1, 10, SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage(tt.number, tt.size, tt.sortOrder)
			if p.Number != tt.wantNumber || p.Size != tt.wantSize || p.SortOrder != tt.wantSortOrder {
				t.Errorf("NewPage(%d, %d, %d) = {%d %d %d}, want {%d %d %d}",
					tt.number, tt.size, tt.sortOrder,
					p.Number, p.Size, p.SortOrder,
					tt.wantNumber, tt.wantSize, tt.wantSortOrder)
			}
			if p.SortKey != defaultSortKey {
				t.Errorf("SortKey = %q, want %q", p.SortKey, defaultSortKey)
			}
		})
	}
}

func TestPageSkip(t *testing.T) {
	if got := NewPage(1, 10, SortDesc).Skip(); got != 0 {
		t.Errorf("first page Skip() = %d, want 0", got)
	}
	if got := NewPage(4, 25, SortDesc).Skip(); got != 75 {
		t.Errorf("Skip() = %d, want 75", got)
	}
}

func TestPageTotalPages(t *testing.T) {
	p := NewPage(1, 10, SortDesc)

	tests := []struct {
		totalCount int64
		want       int64
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{95, 10},
	}
	for _, tt := range tests {
		if got := p.TotalPages(tt.totalCount); got != tt.want {
			t.Errorf("TotalPages(%d) = %d, want %d", tt.totalCount, got, tt.want)
		}
	}
}
