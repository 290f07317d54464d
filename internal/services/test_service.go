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

// TestService provides test CRUD.
type TestService struct {
	tests     *mongo.Collection
	topics    *mongo.Collection
	questions *mongo.Collection
}

// NewTestService creates a new TestService.
func NewTestService(db *mongo.Database) *TestService {
	return &TestService{
		tests:     db.Collection("tests"),
		topics:    db.Collection("topics"),
		questions: db.Collection("questions"),
	}
}

// CreateTest assembles a test from existing questions under an existing topic.
func (s *TestService) CreateTest(ctx context.Context, req *models.CreateTestRequest) (*models.Test, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	topicID, err := primitive.ObjectIDFromHex(req.TopicID)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "topic"})
	}
	found, err := query.Exists(ctx, s.topics, bson.M{"_id": topicID})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if !found {
		return nil, apperr.NewNotFound("Topic")
	}

	questionIDs, err := s.resolveQuestionIDs(ctx, req.Questions)
	if err != nil {
		return nil, err
	}

	test := &models.Test{
		ID:              primitive.NewObjectID(),
		Title:           req.Title,
		TopicID:         topicID,
		Questions:       questionIDs,
		DurationMinutes: req.DurationMinutes,
		PassMark:        req.PassMark,
		Status:          models.StatusActive,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if _, err := s.tests.InsertOne(ctx, test); err != nil {
		return nil, apperr.Wrap(err)
	}
	return test, nil
}

// GetTestByID retrieves a test by hex id.
func (s *TestService) GetTestByID(ctx context.Context, id string) (*models.Test, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "test"})
	}

	var test models.Test
	if err := query.FindOne(ctx, s.tests, bson.M{"_id": objID}, &test); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Test")
		}
		return nil, apperr.Wrap(err)
	}
	return &test, nil
}

// ListTests returns one page of tests. Search matches the title.
func (s *TestService) ListTests(ctx context.Context, search string, status *int, page query.Page) ([]models.Test, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.Contains{Field: "title", Value: search})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	tests, total, err := query.FindPage[models.Test](ctx, s.tests, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return tests, total, nil
}

// UpdateTest applies a partial update.
func (s *TestService) UpdateTest(ctx context.Context, id string, req *models.UpdateTestRequest) (*models.Test, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "test"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Questions != nil {
		questionIDs, err := s.resolveQuestionIDs(ctx, req.Questions)
		if err != nil {
			return nil, err
		}
		set["questions"] = questionIDs
	}
	if req.DurationMinutes != nil {
		set["duration_minutes"] = *req.DurationMinutes
	}
	if req.PassMark != nil {
		set["pass_mark"] = *req.PassMark
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.tests.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Test")
	}
	return s.GetTestByID(ctx, id)
}

// DeleteTest removes a test.
func (s *TestService) DeleteTest(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "test"})
	}

	res, err := s.tests.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Test")
	}
	return nil
}

// resolveQuestionIDs parses question hex ids and verifies every one exists.
func (s *TestService) resolveQuestionIDs(ctx context.Context, hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "question"})
		}
		ids = append(ids, id)
	}

	count, err := s.questions.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if count != int64(len(ids)) {
		return nil, apperr.NewNotFound("Question")
	}
	return ids, nil
}
