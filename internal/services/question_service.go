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

// QuestionService provides question CRUD and grading.
type QuestionService struct {
	questions *mongo.Collection
	topics    *mongo.Collection
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(db *mongo.Database) *QuestionService {
	return &QuestionService{
		questions: db.Collection("questions"),
		topics:    db.Collection("topics"),
	}
}

// CreateQuestion creates a question after checking the kind tag and that the
// answer shape matches it.
func (s *QuestionService) CreateQuestion(ctx context.Context, req *models.CreateQuestionRequest) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if !models.ValidQuestionKind(req.Kind) {
		return nil, apperr.NewValidation("validation.failed",
			map[string]string{"details": "unknown question kind " + string(req.Kind)})
	}

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

	question := &models.Question{
		ID:         primitive.NewObjectID(),
		Prompt:     req.Prompt,
		Kind:       req.Kind,
		Answer:     req.Answer,
		TopicID:    topicID,
		Difficulty: req.Difficulty,
		ImageURL:   req.ImageURL,
		Status:     models.StatusActive,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := question.ValidateAnswerShape(); err != nil {
		return nil, apperr.NewValidation("validation.failed", map[string]string{"details": err.Error()})
	}

	if _, err := s.questions.InsertOne(ctx, question); err != nil {
		return nil, apperr.Wrap(err)
	}
	return question, nil
}

// GetQuestionByID retrieves a question by hex id.
func (s *QuestionService) GetQuestionByID(ctx context.Context, id string) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "question"})
	}

	var question models.Question
	if err := query.FindOne(ctx, s.questions, bson.M{"_id": objID}, &question); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Question")
		}
		return nil, apperr.Wrap(err)
	}
	return &question, nil
}

// ListQuestions returns one page of questions. Search matches the prompt; kind
// narrows to a single variant when supplied.
func (s *QuestionService) ListQuestions(ctx context.Context, search string, kind models.QuestionKind, status *int, page query.Page) ([]models.Question, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.Contains{Field: "prompt", Value: search})
	}
	if kind != "" {
		if !models.ValidQuestionKind(kind) {
			return nil, 0, apperr.NewValidation("validation.failed",
				map[string]string{"details": "unknown question kind " + string(kind)})
		}
		conds = append(conds, query.Eq{Field: "kind", Value: kind})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	questions, total, err := query.FindPage[models.Question](ctx, s.questions, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return questions, total, nil
}

// UpdateQuestion applies a partial update. The kind is immutable; a replacement
// answer must match the stored kind.
func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, req *models.UpdateQuestionRequest) (*models.Question, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	question, err := s.GetQuestionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Prompt != nil {
		set["prompt"] = *req.Prompt
	}
	if req.Answer != nil {
		candidate := *question
		candidate.Answer = *req.Answer
		if err := candidate.ValidateAnswerShape(); err != nil {
			return nil, apperr.NewValidation("validation.failed", map[string]string{"details": err.Error()})
		}
		set["answer"] = *req.Answer
	}
	if req.Difficulty != nil {
		set["difficulty"] = *req.Difficulty
	}
	if req.ImageURL != nil {
		set["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.questions.UpdateByID(ctx, question.ID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Question")
	}
	return s.GetQuestionByID(ctx, id)
}

// DeleteQuestion removes a question.
func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "question"})
	}

	res, err := s.questions.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Question")
	}
	return nil
}

// GradeQuestion grades a submission against a stored question.
func (s *QuestionService) GradeQuestion(ctx context.Context, id string, sub models.Submission) (bool, error) {
	question, err := s.GetQuestionByID(ctx, id)
	if err != nil {
		return false, err
	}
	correct, err := question.Grade(sub)
	if err != nil {
		return false, apperr.NewValidation("validation.failed", map[string]string{"details": err.Error()})
	}
	return correct, nil
}
