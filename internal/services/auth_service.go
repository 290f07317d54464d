package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

// AuthService handles admin login and password changes.
type AuthService struct {
	adminService *AdminService
	jwtSecret    []byte
	logger       *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(as *AdminService, jwtSecret []byte, logger *zap.Logger) *AuthService {
	return &AuthService{
		adminService: as,
		jwtSecret:    jwtSecret,
		logger:       logger,
	}
}

// Login verifies credentials and issues a JWT carrying the admin's email claim.
// Unknown email and wrong password produce the same rejection.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	admin, err := s.adminService.GetActiveAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.New(apperr.Authorization, "auth.invalidCredentials")
	}
	if !utils.CheckPasswordHash(req.Password, admin.Salt, admin.Password) {
		return nil, apperr.New(apperr.Authorization, "auth.invalidCredentials")
	}

	token, err := utils.GenerateToken(admin.Email, s.jwtSecret)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	return &models.LoginResponse{
		Token:               token,
		AdminID:             admin.ID.Hex(),
		Email:               admin.Email,
		NeedsPasswordChange: admin.NeedsPasswordChange,
	}, nil
}

// ChangePassword verifies the old password and stores a new hash with a fresh salt.
func (s *AuthService) ChangePassword(ctx context.Context, authCtx *models.AuthContext, req *models.ChangePasswordRequest) error {
	admin, err := s.adminService.GetActiveAdminByEmail(ctx, authCtx.Email)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(req.OldPassword, admin.Salt, admin.Password) {
		return apperr.New(apperr.Authorization, "auth.invalidCredentials")
	}

	salt := utils.GenerateRandomString(16)
	hash, err := utils.HashPassword(req.NewPassword, salt)
	if err != nil {
		return apperr.Wrap(err)
	}
	return s.adminService.UpdatePassword(ctx, admin.ID, hash, salt)
}
