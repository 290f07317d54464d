package services

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/query"
)

// PlayerService provides player CRUD. Players are soft-deleted only.
type PlayerService struct {
	players   *mongo.Collection
	countries *mongo.Collection
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(db *mongo.Database) *PlayerService {
	return &PlayerService{
		players:   db.Collection("players"),
		countries: db.Collection("countries"),
	}
}

// CreatePlayer creates a player with a unique email under an existing country.
func (s *PlayerService) CreatePlayer(ctx context.Context, req *models.CreatePlayerRequest) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	exists, err := query.Exists(ctx, s.players, bson.M{"email": req.Email})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if exists {
		return nil, apperr.NewConflict("Player", http.StatusBadRequest)
	}

	countryID, err := primitive.ObjectIDFromHex(req.CountryID)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "country"})
	}
	found, err := query.Exists(ctx, s.countries, bson.M{"_id": countryID})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if !found {
		return nil, apperr.NewNotFound("Country")
	}

	player := &models.Player{
		ID:        primitive.NewObjectID(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		CountryID: countryID,
		Status:    models.StatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := s.players.InsertOne(ctx, player); err != nil {
		return nil, apperr.Wrap(err)
	}
	return player, nil
}

// GetPlayerByID retrieves a player by hex id.
func (s *PlayerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "player"})
	}

	var player models.Player
	if err := query.FindOne(ctx, s.players, bson.M{"_id": objID}, &player); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Player")
		}
		return nil, apperr.Wrap(err)
	}
	return &player, nil
}

// ListPlayers returns one page of players. Search matches name and email.
func (s *PlayerService) ListPlayers(ctx context.Context, search string, status *int, page query.Page) ([]models.Player, int64, error) {
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

	players, total, err := query.FindPage[models.Player](ctx, s.players, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return players, total, nil
}

// UpdatePlayer applies a partial update.
func (s *PlayerService) UpdatePlayer(ctx context.Context, id string, req *models.UpdatePlayerRequest) (*models.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "player"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.FirstName != nil {
		set["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		set["last_name"] = *req.LastName
	}
	if req.CountryID != nil {
		countryID, err := primitive.ObjectIDFromHex(*req.CountryID)
		if err != nil {
			return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "country"})
		}
		found, err := query.Exists(ctx, s.countries, bson.M{"_id": countryID})
		if err != nil {
			return nil, apperr.Wrap(err)
		}
		if !found {
			return nil, apperr.NewNotFound("Country")
		}
		set["country_id"] = countryID
	}
	if req.Score != nil {
		set["score"] = *req.Score
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.players.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Player")
	}
	return s.GetPlayerByID(ctx, id)
}

// DeactivatePlayer soft-deletes a player by flipping its status to inactive.
func (s *PlayerService) DeactivatePlayer(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "player"})
	}

	update := bson.M{"$set": bson.M{"status": models.StatusInactive, "updated_at": time.Now()}}
	res, err := s.players.UpdateByID(ctx, objID, update)
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NewNotFound("Player")
	}
	return nil
}
