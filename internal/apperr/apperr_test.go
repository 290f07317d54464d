package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", New(Validation, "validation.invalidPayload"), http.StatusBadRequest},
		{"not found", NewNotFound("Country"), http.StatusNotFound},
		{"authorization", New(Authorization, "auth.invalidCredentials"), http.StatusForbidden},
		{"conflict defaults to bad request", New(Conflict, "validation.duplicate"), http.StatusBadRequest},
		{"internal", Wrap(fmt.Errorf("boom")), http.StatusInternalServerError},
		{"explicit status wins", NewConflict("Role", http.StatusNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAs(t *testing.T) {
	orig := NewNotFound("Topic")
	if got := As(fmt.Errorf("fetching: %w", orig)); got != orig {
		t.Errorf("As() should unwrap to the original classified error, got %+v", got)
	}

	plain := errors.New("driver timeout")
	got := As(plain)
	if got.Kind != Internal || got.Key != "message.internalError" {
		t.Errorf("unknown errors should classify as Internal, got %+v", got)
	}
	if !errors.Is(got, plain) {
		t.Error("wrapped cause must stay reachable via errors.Is")
	}
}

func TestNewNotFoundParams(t *testing.T) {
	e := NewNotFound("Player")
	if e.Key != "validation.notFound" || e.Params["field"] != "Player" {
		t.Errorf("unexpected error: %+v", e)
	}
}
