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

// FeedbackService provides feedback CRUD.
type FeedbackService struct {
	feedbacks *mongo.Collection
	players   *mongo.Collection
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(db *mongo.Database) *FeedbackService {
	return &FeedbackService{
		feedbacks: db.Collection("feedbacks"),
		players:   db.Collection("players"),
	}
}

// CreateFeedback records feedback from an existing player.
func (s *FeedbackService) CreateFeedback(ctx context.Context, req *models.CreateFeedbackRequest) (*models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	playerID, err := primitive.ObjectIDFromHex(req.PlayerID)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "player"})
	}
	found, err := query.Exists(ctx, s.players, bson.M{"_id": playerID})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if !found {
		return nil, apperr.NewNotFound("Player")
	}

	feedback := &models.Feedback{
		ID:        primitive.NewObjectID(),
		PlayerID:  playerID,
		Subject:   req.Subject,
		Body:      req.Body,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if _, err := s.feedbacks.InsertOne(ctx, feedback); err != nil {
		return nil, apperr.Wrap(err)
	}
	return feedback, nil
}

// GetFeedbackByID retrieves feedback by hex id.
func (s *FeedbackService) GetFeedbackByID(ctx context.Context, id string) (*models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "feedback"})
	}

	var feedback models.Feedback
	if err := query.FindOne(ctx, s.feedbacks, bson.M{"_id": objID}, &feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Feedback")
		}
		return nil, apperr.Wrap(err)
	}
	return &feedback, nil
}

// ListFeedback returns one page of feedback. Search matches subject and body;
// resolved narrows by triage state; rating bounds narrow by score.
func (s *FeedbackService) ListFeedback(ctx context.Context, search string, resolved *bool, minRating, maxRating *int, page query.Page) ([]models.Feedback, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.AnyContains{Fields: []string{"subject", "body"}, Value: search})
	}
	if resolved != nil {
		conds = append(conds, query.Eq{Field: "resolved", Value: *resolved})
	}
	if minRating != nil || maxRating != nil {
		r := query.Range{Field: "rating"}
		if minRating != nil {
			r.Min = *minRating
		}
		if maxRating != nil {
			r.Max = *maxRating
		}
		conds = append(conds, r)
	}

	feedbacks, total, err := query.FindPage[models.Feedback](ctx, s.feedbacks, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return feedbacks, total, nil
}

// UpdateFeedback applies a partial update, typically resolving the feedback.
func (s *FeedbackService) UpdateFeedback(ctx context.Context, id string, req *models.UpdateFeedbackRequest) (*models.Feedback, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "feedback"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Subject != nil {
		set["subject"] = *req.Subject
	}
	if req.Body != nil {
		set["body"] = *req.Body
	}
	if req.Resolved != nil {
		set["resolved"] = *req.Resolved
	}

	res, err := s.feedbacks.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Feedback")
	}
	return s.GetFeedbackByID(ctx, id)
}

// DeleteFeedback removes feedback.
func (s *FeedbackService) DeleteFeedback(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "feedback"})
	}

	res, err := s.feedbacks.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Feedback")
	}
	return nil
}
