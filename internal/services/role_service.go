package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/query"
)

const roleCacheTTL = 5 * time.Minute

// RoleService provides role CRUD and the permission-set lookup used by the
// authorization gate. Lookups go through a redis cache when one is configured.
type RoleService struct {
	roles  *mongo.Collection
	cache  *redis.Client
	logger *zap.Logger
}

// NewRoleService creates a new RoleService. cache may be nil to disable caching.
func NewRoleService(db *mongo.Database, cache *redis.Client, logger *zap.Logger) *RoleService {
	return &RoleService{
		roles:  db.Collection("roles"),
		cache:  cache,
		logger: logger,
	}
}

func roleCacheKey(id primitive.ObjectID) string {
	return "role:" + id.Hex()
}

// CreateRole creates a role after validating its permission codes against the
// global enumeration and its name for uniqueness.
func (s *RoleService) CreateRole(ctx context.Context, req *models.CreateRoleRequest) (*models.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for _, code := range req.Permissions {
		if !models.IsValidPermission(code) {
			return nil, apperr.NewValidation("role.invalidPermission",
				map[string]string{"code": strconv.Itoa(int(code))})
		}
	}

	exists, err := query.Exists(ctx, s.roles, bson.M{"name": req.Name})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if exists {
		return nil, apperr.NewConflict("Role", http.StatusBadRequest)
	}

	role := &models.Role{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Permissions: req.Permissions,
		Status:      models.StatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := s.roles.InsertOne(ctx, role); err != nil {
		return nil, apperr.Wrap(err)
	}
	return role, nil
}

// GetRoleByID retrieves a role by its hex id.
func (s *RoleService) GetRoleByID(ctx context.Context, id string) (*models.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "role"})
	}

	var role models.Role
	if err := query.FindOne(ctx, s.roles, bson.M{"_id": objID}, &role); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Role")
		}
		return nil, apperr.Wrap(err)
	}
	return &role, nil
}

// GetRolesByIDs returns the active roles matching ids. An empty input yields an
// empty result without touching the store; an empty result for a non-empty
// input is valid, not an error. Cached roles are served from redis.
func (s *RoleService) GetRolesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Role, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	roles := make([]models.Role, 0, len(ids))
	missing := ids

	if s.cache != nil {
		missing = missing[:0:0]
		for _, id := range ids {
			data, err := s.cache.Get(ctx, roleCacheKey(id)).Bytes()
			if err != nil {
				missing = append(missing, id)
				continue
			}
			var role models.Role
			if err := json.Unmarshal(data, &role); err != nil {
				missing = append(missing, id)
				continue
			}
			roles = append(roles, role)
		}
	}

	if len(missing) > 0 {
		filter := bson.M{
			"_id":    bson.M{"$in": missing},
			"status": models.StatusActive,
		}
		cursor, err := s.roles.Find(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("role lookup failed: %w", err)
		}
		defer cursor.Close(ctx)

		var fetched []models.Role
		if err := cursor.All(ctx, &fetched); err != nil {
			return nil, fmt.Errorf("role lookup failed: %w", err)
		}
		roles = append(roles, fetched...)

		if s.cache != nil {
			for _, role := range fetched {
				data, err := json.Marshal(role)
				if err != nil {
					continue
				}
				if err := s.cache.Set(ctx, roleCacheKey(role.ID), data, roleCacheTTL).Err(); err != nil {
					s.logger.Warn("failed to cache role", zap.String("role", role.Name), zap.Error(err))
				}
			}
		}
	}
	return roles, nil
}

// ListRoles returns one page of roles matching the search and status filters.
func (s *RoleService) ListRoles(ctx context.Context, search string, status *int, page query.Page) ([]models.Role, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.Contains{Field: "name", Value: search})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	roles, total, err := query.FindPage[models.Role](ctx, s.roles, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return roles, total, nil
}

// UpdateRole applies a partial update. A duplicate name reports 404, matching
// the observed behavior of the update paths.
func (s *RoleService) UpdateRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.Role, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "role"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		exists, err := query.Exists(ctx, s.roles, bson.M{"name": *req.Name, "_id": bson.M{"$ne": objID}})
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		if exists {
			return nil, apperr.NewConflict("Role", http.StatusNotFound)
		}
		set["name"] = *req.Name
	}
	if req.Permissions != nil {
		for _, code := range req.Permissions {
			if !models.IsValidPermission(code) {
				return nil, apperr.NewValidation("role.invalidPermission",
					map[string]string{"code": strconv.Itoa(int(code))})
			}
		}
		set["permissions"] = req.Permissions
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.roles.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Role")
	}

	s.invalidate(ctx, objID)
	return s.GetRoleByID(ctx, id)
}

// DeleteRole removes a role and evicts it from the cache.
func (s *RoleService) DeleteRole(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "role"})
	}

	res, err := s.roles.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Role")
	}

	s.invalidate(ctx, objID)
	return nil
}

func (s *RoleService) invalidate(ctx context.Context, id primitive.ObjectID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, roleCacheKey(id)).Err(); err != nil {
		s.logger.Warn("failed to evict role from cache", zap.String("id", id.Hex()), zap.Error(err))
	}
}
