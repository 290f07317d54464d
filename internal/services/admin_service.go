package services

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/query"
	"github.com/quizmint/quizadmin-api/internal/utils"
)

// AdminService provides admin account CRUD. Admins are soft-deleted only:
// delete flips the status flag and the record stays behind.
type AdminService struct {
	admins      *mongo.Collection
	roleService *RoleService
	logger      *zap.Logger
}

// NewAdminService creates a new AdminService.
func NewAdminService(db *mongo.Database, rs *RoleService, logger *zap.Logger) *AdminService {
	return &AdminService{
		admins:      db.Collection("admins"),
		roleService: rs,
		logger:      logger,
	}
}

// CreateAdmin creates an admin with a generated temporary password and mails
// it to the new account. The admin must change it on first login.
func (s *AdminService) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := query.Exists(ctx, s.admins, bson.M{"email": req.Email})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if exists {
		return nil, apperr.NewConflict("Admin", http.StatusBadRequest)
	}

	roleIDs, err := s.resolveRoleIDs(ctx, req.Roles)
	if err != nil {
		return nil, err
	}

	var supervisor *primitive.ObjectID
	if req.Supervisor != "" {
		supID, err := primitive.ObjectIDFromHex(req.Supervisor)
		if err != nil {
			return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "supervisor"})
		}
		found, err := query.Exists(ctx, s.admins, bson.M{"_id": supID})
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		if !found {
			return nil, apperr.NewNotFound("Supervisor")
		}
		supervisor = &supID
	}

	tempPassword := utils.GenerateRandomString(12)
	salt := utils.GenerateRandomString(16)
	hash, err := utils.HashPassword(tempPassword, salt)
	if err != nil {
		return nil, apperr.Wrap(err)
	}

	admin := &models.Admin{
		ID:                  primitive.NewObjectID(),
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Password:            hash,
		Salt:                salt,
		Roles:               roleIDs,
		Supervisor:          supervisor,
		Status:              models.StatusActive,
		NeedsPasswordChange: true,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if _, err := s.admins.InsertOne(ctx, admin); err != nil {
		return nil, apperr.Wrap(err)
	}

	if err := utils.SendEmail("admin_invite", "Your admin account", req.Email, map[string]string{
		"FirstName":    req.FirstName,
		"TempPassword": tempPassword,
	}); err != nil {
		s.logger.Warn("failed to send admin invite email", zap.String("email", req.Email), zap.Error(err))
	}
	return admin, nil
}

// GetAdminByID retrieves an admin by hex id.
func (s *AdminService) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "admin"})
	}

	var admin models.Admin
	if err := query.FindOne(ctx, s.admins, bson.M{"_id": objID}, &admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Admin")
		}
		return nil, apperr.Wrap(err)
	}
	return &admin, nil
}

// GetActiveAdminByEmail resolves an identity claim to an active admin. Used by
// the authentication middleware; inactive accounts are treated as absent.
func (s *AdminService) GetActiveAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	filter := bson.M{"email": email, "status": models.StatusActive}
	if err := query.FindOne(ctx, s.admins, filter, &admin); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Admin")
		}
		return nil, apperr.Wrap(err)
	}
	return &admin, nil
}

// ListAdmins returns one page of admins matching the search and status filters.
// Search covers first name, last name and email.
func (s *AdminService) ListAdmins(ctx context.Context, search string, status *int, page query.Page) ([]models.Admin, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.AnyContains{
			Fields: []string{"first_name", "last_name", "email"},
			Value:  search,
		})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	admins, total, err := query.FindPage[models.Admin](ctx, s.admins, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return admins, total, nil
}

// UpdateAdmin applies a partial update to an admin.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, req *models.UpdateAdminRequest) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "admin"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.FirstName != nil {
		set["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		set["last_name"] = *req.LastName
	}
	if req.Roles != nil {
		roleIDs, err := s.resolveRoleIDs(ctx, req.Roles)
		if err != nil {
			return nil, err
		}
		set["roles"] = roleIDs
	}
	if req.Supervisor != nil {
		supID, err := primitive.ObjectIDFromHex(*req.Supervisor)
		if err != nil {
			return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "supervisor"})
		}
		set["supervisor"] = supID
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.admins.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Admin")
	}
	return s.GetAdminByID(ctx, id)
}

// DeactivateAdmin soft-deletes an admin by flipping its status to inactive.
func (s *AdminService) DeactivateAdmin(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "admin"})
	}

	update := bson.M{"$set": bson.M{"status": models.StatusInactive, "updated_at": time.Now()}}
	res, err := s.admins.UpdateByID(ctx, objID, update)
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("Admin")
	}
	return nil
}

// UpdatePassword replaces the admin's credential hash and clears the
// needs-password-change flag.
func (s *AdminService) UpdatePassword(ctx context.Context, id primitive.ObjectID, hash, salt string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"password":              hash,
		"salt":                  salt,
		"needs_password_change": false,
		"updated_at":            time.Now(),
	}}
	res, err := s.admins.UpdateByID(ctx, id, update)
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("Admin")
	}
	return nil
}

// resolveRoleIDs parses and verifies a set of role hex ids, requiring every
// referenced role to exist.
func (s *AdminService) resolveRoleIDs(ctx context.Context, hexIDs []string) ([]primitive.ObjectID, error) {
	roleIDs := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "role"})
		}
		roleIDs = append(roleIDs, id)
	}

	roles, err := s.roleService.GetRolesByIDs(ctx, roleIDs)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if len(roles) != len(roleIDs) {
		return nil, apperr.NewNotFound("Role")
	}
	return roleIDs, nil
}
