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

// DocumentationService provides documentation CRUD.
type DocumentationService struct {
	docs   *mongo.Collection
	topics *mongo.Collection
}

// NewDocumentationService creates a new DocumentationService.
func NewDocumentationService(db *mongo.Database) *DocumentationService {
	return &DocumentationService{
		docs:   db.Collection("documentations"),
		topics: db.Collection("topics"),
	}
}

// CreateDocumentation creates documentation under an existing topic.
func (s *DocumentationService) CreateDocumentation(ctx context.Context, req *models.CreateDocumentationRequest) (*models.Documentation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
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

	doc := &models.Documentation{
		ID:            primitive.NewObjectID(),
		Title:         req.Title,
		Body:          req.Body,
		TopicID:       topicID,
		AttachmentURL: req.AttachmentURL,
		Status:        models.StatusActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if _, err := s.docs.InsertOne(ctx, doc); err != nil {
		return nil, apperr.Wrap(err)
	}
	return doc, nil
}

// GetDocumentationByID retrieves documentation by hex id.
func (s *DocumentationService) GetDocumentationByID(ctx context.Context, id string) (*models.Documentation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "documentation"})
	}

	var doc models.Documentation
	if err := query.FindOne(ctx, s.docs, bson.M{"_id": objID}, &doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NewNotFound("Documentation")
		}
		return nil, apperr.Wrap(err)
	}
	return &doc, nil
}

// ListDocumentation returns one page of documentation. Search matches title and body.
func (s *DocumentationService) ListDocumentation(ctx context.Context, search string, status *int, page query.Page) ([]models.Documentation, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var conds []query.Condition
	if search != "" {
		conds = append(conds, query.AnyContains{Fields: []string{"title", "body"}, Value: search})
	}
	if status != nil {
		conds = append(conds, query.Eq{Field: "status", Value: *status})
	}

	docs, total, err := query.FindPage[models.Documentation](ctx, s.docs, query.Build(conds...), page)
	if err != nil {
		return nil, 0, apperr.Wrap(err)
	}
	return docs, total, nil
}

// UpdateDocumentation applies a partial update.
func (s *DocumentationService) UpdateDocumentation(ctx context.Context, id string, req *models.UpdateDocumentationRequest) (*models.Documentation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperr.NewValidation("validation.invalidID", map[string]string{"field": "documentation"})
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Body != nil {
		set["body"] = *req.Body
	}
	if req.TopicID != nil {
		topicID, err := primitive.ObjectIDFromHex(*req.TopicID)
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
		set["topic_id"] = topicID
	}
	if req.AttachmentURL != nil {
		set["attachment_url"] = *req.AttachmentURL
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	res, err := s.docs.UpdateByID(ctx, objID, bson.M{"$set": set})
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NewNotFound("Documentation")
	}
	return s.GetDocumentationByID(ctx, id)
}

// DeleteDocumentation removes documentation.
func (s *DocumentationService) DeleteDocumentation(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperr.NewValidation("validation.invalidID", map[string]string{"field": "documentation"})
	}

	res, err := s.docs.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return apperr.Wrap(err)
	}
	if res.DeletedCount == 0 {
		return apperr.NewNotFound("Documentation")
	}
	return nil
}
