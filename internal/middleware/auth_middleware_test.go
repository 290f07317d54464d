package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

func TestMain(m *testing.M) {
	if err := i18n.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

var testSecret = []byte("test-secret")

type stubAdminSource struct {
	admin *models.Admin
	err   error
}

func (s *stubAdminSource) GetActiveAdminByEmail(_ context.Context, _ string) (*models.Admin, error) {
	return s.admin, s.err
}

type stubRoleSource struct {
	roles []models.Role
	err   error
}

func (s *stubRoleSource) GetRolesByIDs(_ context.Context, _ []primitive.ObjectID) ([]models.Role, error) {
	return s.roles, s.err
}

func testAdmin() *models.Admin {
	return &models.Admin{
		ID:    primitive.NewObjectID(),
		Email: "admin@example.com",
		Roles: []primitive.ObjectID{primitive.NewObjectID()},
	}
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken("admin@example.com", testSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + token
}

func runGuard(t *testing.T, admins AdminSource, roles RoleSource, required models.Permission, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	m := NewAuthMiddleware(testSecret, admins, roles, zap.NewNop())

	reached := false
	handler := m.Guard(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}, required)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec, reached
}

func decodeAuthError(t *testing.T, rec *httptest.ResponseRecorder) models.AuthErrorResponse {
	t.Helper()
	var resp models.AuthErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
	return resp
}

func TestGuardMissingToken(t *testing.T) {
	rec, reached := runGuard(t, &stubAdminSource{}, &stubRoleSource{}, models.PermViewRole, "")

	if reached {
		t.Fatal("handler must not run without a token")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "No token provided" || resp.Error != "Unauthorized" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
	if resp.Details != "" {
		t.Errorf("missing-token rejection should carry no details, got %q", resp.Details)
	}
}

func TestGuardInvalidToken(t *testing.T) {
	rec, reached := runGuard(t, &stubAdminSource{}, &stubRoleSource{}, models.PermViewRole, "Bearer not-a-token")

	if reached {
		t.Fatal("handler must not run with an invalid token")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "Invalid or expired token" || resp.Error != "Unauthorized" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
	if resp.Details == "" {
		t.Error("invalid-token rejection should carry parser details")
	}
}

func TestGuardWrongSigningKey(t *testing.T) {
	token, err := utils.GenerateToken("admin@example.com", []byte("other-secret"))
	if err != nil {
		t.Fatal(err)
	}
	rec, reached := runGuard(t, &stubAdminSource{}, &stubRoleSource{}, models.PermViewRole, "Bearer "+token)

	if reached {
		t.Fatal("handler must not run with a token signed by another key")
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "Invalid or expired token" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestGuardUnknownAdmin(t *testing.T) {
	admins := &stubAdminSource{admin: nil}
	rec, reached := runGuard(t, admins, &stubRoleSource{}, models.PermViewRole, bearerToken(t))

	if reached {
		t.Fatal("handler must not run for an unknown admin")
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "Admin not found" || resp.Error != "Forbidden" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
}

func TestGuardAdminLookupFailure(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	m := NewAuthMiddleware(testSecret, &stubAdminSource{err: fmt.Errorf("connection refused")}, &stubRoleSource{}, zap.New(core))
	handler := m.Guard(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run when the admin store is down")
	}, models.PermViewRole)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	req.Header.Set("Authorization", bearerToken(t))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "Admin not found" || resp.Error != "Forbidden" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
	entries := observed.TakeAll()
	if len(entries) != 1 {
		t.Fatalf("store failure should log one error, got %d entries", len(entries))
	}
	if entries[0].Message != "admin lookup failed during authentication" {
		t.Errorf("logged %q", entries[0].Message)
	}
}

func TestGuardUnknownAdminNotLogged(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	admins := &stubAdminSource{err: apperr.NewNotFound("Admin")}
	m := NewAuthMiddleware(testSecret, admins, &stubRoleSource{}, zap.New(core))
	handler := m.Guard(func(w http.ResponseWriter, r *http.Request) {}, models.PermViewRole)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	req.Header.Set("Authorization", bearerToken(t))
	handler(httptest.NewRecorder(), req)

	if entries := observed.TakeAll(); len(entries) != 0 {
		t.Errorf("unknown admin should not log errors, got %d entries", len(entries))
	}
}

func TestGuardRoleLookupFailure(t *testing.T) {
	admins := &stubAdminSource{admin: testAdmin()}
	roles := &stubRoleSource{err: fmt.Errorf("connection reset")}
	rec, reached := runGuard(t, admins, roles, models.PermViewRole, bearerToken(t))

	if reached {
		t.Fatal("handler must not run when role lookup fails")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "An error occurred during authorization" || resp.Error != "Forbidden" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
	if resp.Details != "connection reset" {
		t.Errorf("details = %q, want the lookup error", resp.Details)
	}
}

func TestGuardNoRolesAssigned(t *testing.T) {
	admins := &stubAdminSource{admin: testAdmin()}
	rec, reached := runGuard(t, admins, &stubRoleSource{}, models.PermViewRole, bearerToken(t))

	if reached {
		t.Fatal("handler must not run without assigned roles")
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "No roles assigned to this admin" || resp.Error != "Forbidden" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
}

func TestGuardPermissionDenied(t *testing.T) {
	admins := &stubAdminSource{admin: testAdmin()}
	roles := &stubRoleSource{roles: []models.Role{{
		Name:        "Role Manager",
		Permissions: []models.Permission{9, 10, 11, 12},
	}}}
	rec, reached := runGuard(t, admins, roles, models.PermViewPlayer, bearerToken(t))

	if reached {
		t.Fatal("handler must not run without the required permission")
	}
	resp := decodeAuthError(t, rec)
	if resp.Message != "You do not have permission to perform this action" || resp.Error != "Forbidden" {
		t.Errorf("unexpected rejection: %+v", resp)
	}
}

func TestGuardAdmits(t *testing.T) {
	admins := &stubAdminSource{admin: testAdmin()}
	roles := &stubRoleSource{roles: []models.Role{{
		Name:        "Role Manager",
		Permissions: []models.Permission{9, 10, 11, 12},
	}}}
	rec, reached := runGuard(t, admins, roles, models.PermViewRole, bearerToken(t))

	if !reached {
		t.Fatalf("handler should run, got status %d body %s", rec.Code, rec.Body.String())
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGuardPermNoneSkipsRoleCheck(t *testing.T) {
	admins := &stubAdminSource{admin: testAdmin()}
	roles := &stubRoleSource{err: fmt.Errorf("role store down")}
	_, reached := runGuard(t, admins, roles, models.PermNone, bearerToken(t))

	if !reached {
		t.Fatal("PermNone routes only require authentication")
	}
}

func TestGuardLocalizedRejection(t *testing.T) {
	m := NewAuthMiddleware(testSecret, &stubAdminSource{}, &stubRoleSource{}, zap.NewNop())
	handler := m.Guard(func(w http.ResponseWriter, r *http.Request) {}, models.PermViewRole)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/roles", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyLanguage, "fr-FR"))
	rec := httptest.NewRecorder()
	handler(rec, req)

	resp := decodeAuthError(t, rec)
	if resp.Message != "Aucun jeton fourni" {
		t.Errorf("message = %q, want the fr-FR translation", resp.Message)
	}
}

func TestGetAuthContext(t *testing.T) {
	admin := testAdmin()
	admins := &stubAdminSource{admin: admin}

	m := NewAuthMiddleware(testSecret, admins, &stubRoleSource{}, zap.NewNop())
	var got *models.AuthContext
	handler := m.Guard(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GetAuthContext(r)
	}, models.PermNone)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/change_password", nil)
	req.Header.Set("Authorization", bearerToken(t))
	handler(httptest.NewRecorder(), req)

	if got == nil {
		t.Fatal("auth context missing inside handler")
	}
	if got.Email != admin.Email || got.AdminID != admin.ID {
		t.Errorf("auth context = %+v", got)
	}

	if _, err := GetAuthContext(httptest.NewRequest(http.MethodGet, "/", nil)); err == nil {
		t.Error("expected error for a request that never passed Guard")
	}
}
