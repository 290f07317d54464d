package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quizmint/quizadmin-api/internal/apperr"
	"github.com/quizmint/quizadmin-api/internal/models"
	"github.com/quizmint/quizadmin-api/internal/query"
)

// TopicService provides topic CRUD.
type TopicService struct {
	topics    *mongo.Collection
	countries *mongo.Collection
}

// NewTopicService creates a new TopicService.
func NewTopicService(db *mongo.Database) *TopicService {
	return &TopicService{
		topics:    db.Collection("topics"),
		countries: db.Collection("countries"),
	}
}

// CreateTopic creates a topic under an existing country.
func (s *TopicService) CreateTopic(ctx context.Context, req *models.CreateTopicRequest) (*models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

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

	topic := &models.Topic{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		CountryID:   countryID,
		Status:      models.StatusActive,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if _, err := s.topics.InsertOne(ctx, topic); err != nil {
		return nil, apperr.Wrap(err)
	}
	return topic, nil
}

// GetTopicByID retrieves a topic by hex id.
func (s *TopicService) GetTopicByID(ctx context.Context, id string) (*models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "topic"})
	}

	var topic models.Topic
	if err := query.FindOne(ctx, s.topics, bson.M{"_id": objID}, &topic); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Topic")
		}
		return nil, apperr.Wrap(err)
	}
	return &topic, nil
}

// ListTopics returns one page of topics. Search matches name and description.
func (s *TopicService) ListTopics(ctx context.Context, search string, status *int, page query.Page) ([]models.Topic, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.AnyContains{Fields: []string{"name", "description"}, Value: search})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	topics, total, err := query.FindPage[models.Topic](ctx, s.topics, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return topics, total, nil
}

// UpdateTopic applies a partial update.
func (s *TopicService) UpdateTopic(ctx context.Context, id string, req *models.UpdateTopicRequest) (*models.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "topic"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
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
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.topics.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Topic")
	}
	return s.GetTopicByID(ctx, id)
}

// DeleteTopic removes a topic.
func (s *TopicService) DeleteTopic(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "topic"})
	}

	res, err := s.topics.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Topic")
	}
	return nil
}
