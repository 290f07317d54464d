package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/i18n"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

const contextKeyAuth contextKey = "authContext"

// AdminSource resolves an authenticated identity to an admin document.
type AdminSource interface {
	GetActiveAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// RoleSource fetches role documents for a set of role ids.
type RoleSource interface {
	GetRolesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Role, error)
}

// AuthMiddleware verifies bearer tokens and gates routes on permission codes.
type AuthMiddleware struct {
	jwtSecret []byte
	admins    AdminSource
	roles     RoleSource
	logger    *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(secret []byte, admins AdminSource, roles RoleSource, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret: secret,
		admins:    admins,
		roles:     roles,
		logger:    logger,
	}
}

// Guard authenticates the request and, when required is not PermNone, checks
// that at least one of the admin's roles grants the permission code. Every
// rejection short-circuits: the wrapped handler is never reached.
func (m *AuthMiddleware) Guard(next http.HandlerFunc, required models.Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := LanguageFromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.RespondAuthError(w, http.StatusForbidden,
				i18n.T(lang, "auth.noToken", nil), "Unauthorized", "")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondAuthError(w, http.StatusForbidden,
				i18n.T(lang, "auth.invalidToken", nil), "Unauthorized", "malformed authorization header")
			return
		}

		email, err := m.verifyToken(parts[1])
		if err != nil {
			utils.RespondAuthError(w, http.StatusForbidden,
				i18n.T(lang, "auth.invalidToken", nil), "Unauthorized", err.Error())
			return
		}

		admin, err := m.admins.GetActiveAdminByEmail(r.Context(), email)
		if err != nil || admin == nil {
			// A store outage rejects like an unknown admin but must stay
			// visible in the logs.
			if err != nil && apperr.As(err).Kind == apperr.Internal {
				m.logger.Error("admin lookup failed during authentication",
					zap.String("email", email), zap.Error(err))
			}
			utils.RespondAuthError(w, http.StatusForbidden,
				i18n.T(lang, "admin.notFound", nil), "Forbidden", "")
			return
		}

		authCtx := &models.AuthContext{
			AdminID: admin.ID,
			Email:   admin.Email,
			Roles:   admin.Roles,
		}

		if required != models.PermNone {
			roles, err := m.roles.GetRolesByIDs(r.Context(), admin.Roles)
			if err != nil {
				m.logger.Error("role lookup failed during authorization",
					zap.String("email", admin.Email), zap.Error(err))
				utils.RespondAuthError(w, http.StatusForbidden,
					"An error occurred during authorization", "Forbidden", err.Error())
				return
			}
			if len(roles) == 0 {
				utils.RespondAuthError(w, http.StatusForbidden,
					i18n.T(lang, "role.notFound", nil), "Forbidden", "")
				return
			}
			if !models.HasPermission(roles, required) {
				utils.RespondAuthError(w, http.StatusForbidden,
					i18n.T(lang, "auth.permissionDenied", nil), "Forbidden", "")
				return
			}
		}

		ctx := context.WithValue(r.Context(), contextKeyAuth, authCtx)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// verifyToken parses and validates a bearer token, returning the email claim.
// Expiry and tampering are deliberately folded into one rejection.
func (m *AuthMiddleware) verifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return "", fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email claim missing from token")
	}
	return email, nil
}

// GetAuthContext retrieves the AuthContext placed in the request context by Guard.
func GetAuthContext(r *http.Request) (*models.AuthContext, error) {
	authCtx, ok := r.Context().Value(contextKeyAuth).(*models.AuthContext)
	if !ok || authCtx == nil {
		return nil, fmt.Errorf("authentication context not found in request")
	}
	return authCtx, nil
}
