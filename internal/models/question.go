package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionKind discriminates the closed set of question variants.
type QuestionKind string

const (
	KindTrueFalse      QuestionKind = "true_false"
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindMatching       QuestionKind = "matching"
	KindFillInBlank    QuestionKind = "fill_in_blank"
)

// ValidQuestionKind reports whether k is one of the four supported variants.
func ValidQuestionKind(k QuestionKind) bool {
	switch k {
	case KindTrueFalse, KindMultipleChoice, KindMatching, KindFillInBlank:
		return true
	}
	return false
}

// TrueFalseAnswer holds the correct value for a true/false question.
type TrueFalseAnswer struct {
	Value bool `bson:"value" json:"value"`
}

// MultipleChoiceAnswer holds the options and the index of the correct one.
type MultipleChoiceAnswer struct {
	Options      []string `bson:"options" json:"options" validate:"min=2"`
	CorrectIndex int      `bson:"correct_index" json:"correct_index" validate:"min=0"`
}

// MatchPair is one left/right pairing in a matching question.
type MatchPair struct {
	Left  string `bson:"left" json:"left"`
	Right string `bson:"right" json:"right"`
}

// MatchingAnswer holds the correct pairings for a matching question.
type MatchingAnswer struct {
	Pairs []MatchPair `bson:"pairs" json:"pairs" validate:"min=1"`
}

// FillInBlankAnswer holds the expected blank values, in order.
type FillInBlankAnswer struct {
	Blanks        []string `bson:"blanks" json:"blanks" validate:"min=1"`
	CaseSensitive bool     `bson:"case_sensitive" json:"case_sensitive"`
}

// Answer is the per-kind answer shape; exactly one field is set, matching the
// question's Kind.
type Answer struct {
	TrueFalse      *TrueFalseAnswer      `bson:"true_false,omitempty" json:"true_false,omitempty"`
	MultipleChoice *MultipleChoiceAnswer `bson:"multiple_choice,omitempty" json:"multiple_choice,omitempty"`
	Matching       *MatchingAnswer       `bson:"matching,omitempty" json:"matching,omitempty"`
	FillInBlank    *FillInBlankAnswer    `bson:"fill_in_blank,omitempty" json:"fill_in_blank,omitempty"`
}

// Question is one quiz question belonging to a topic.
type Question struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Prompt     string             `bson:"prompt" json:"prompt" validate:"required"`
	Kind       QuestionKind       `bson:"kind" json:"kind" validate:"required"`
	Answer     Answer             `bson:"answer" json:"answer"`
	TopicID    primitive.ObjectID `bson:"topic_id" json:"topic_id"`
	Difficulty int                `bson:"difficulty" json:"difficulty" validate:"min=1,max=5"`
	ImageURL   string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Status     int                `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Submission is a player's submitted answer; the field matching the question's
// kind is consulted, the rest are ignored.
type Submission struct {
	Bool        *bool       `json:"bool,omitempty"`
	OptionIndex *int        `json:"option_index,omitempty"`
	Pairs       []MatchPair `json:"pairs,omitempty"`
	Blanks      []string    `json:"blanks,omitempty"`
}

// ValidateAnswerShape checks that the answer field matching the question kind
// is present and internally consistent.
func (q *Question) ValidateAnswerShape() error {
	switch q.Kind {
	case KindTrueFalse:
		if q.Answer.TrueFalse == nil {
			return fmt.Errorf("true_false answer is required for kind %s", q.Kind)
		}
	case KindMultipleChoice:
		a := q.Answer.MultipleChoice
		if a == nil {
			return fmt.Errorf("multiple_choice answer is required for kind %s", q.Kind)
		}
		if len(a.Options) < 2 {
			return fmt.Errorf("multiple_choice requires at least 2 options")
		}
		if a.CorrectIndex < 0 || a.CorrectIndex >= len(a.Options) {
			return fmt.Errorf("correct_index %d out of range", a.CorrectIndex)
		}
	case KindMatching:
		if q.Answer.Matching == nil || len(q.Answer.Matching.Pairs) == 0 {
			return fmt.Errorf("matching answer requires at least 1 pair")
		}
	case KindFillInBlank:
		if q.Answer.FillInBlank == nil || len(q.Answer.FillInBlank.Blanks) == 0 {
			return fmt.Errorf("fill_in_blank answer requires at least 1 blank")
		}
	default:
		return fmt.Errorf("unknown question kind %q", q.Kind)
	}
	return nil
}

// Grade compares a submission against the question's answer, dispatching on the
// kind tag. Matching pairs are order-insensitive; blanks are order-sensitive.
func (q *Question) Grade(sub Submission) (bool, error) {
	switch q.Kind {
	case KindTrueFalse:
		if q.Answer.TrueFalse == nil || sub.Bool == nil {
			return false, fmt.Errorf("true_false grading requires a boolean submission")
		}
		return *sub.Bool == q.Answer.TrueFalse.Value, nil

	case KindMultipleChoice:
		if q.Answer.MultipleChoice == nil || sub.OptionIndex == nil {
			return false, fmt.Errorf("multiple_choice grading requires an option index")
		}
		return *sub.OptionIndex == q.Answer.MultipleChoice.CorrectIndex, nil

	case KindMatching:
		if q.Answer.Matching == nil {
			return false, fmt.Errorf("matching question has no answer")
		}
		want := q.Answer.Matching.Pairs
		if len(sub.Pairs) != len(want) {
			return false, nil
		}
		expected := make(map[string]string, len(want))
		for _, p := range want {
			expected[p.Left] = p.Right
		}
		for _, p := range sub.Pairs {
			if expected[p.Left] != p.Right {
				return false, nil
			}
		}
		return true, nil

	case KindFillInBlank:
		a := q.Answer.FillInBlank
		if a == nil {
			return false, fmt.Errorf("fill_in_blank question has no answer")
		}
		if len(sub.Blanks) != len(a.Blanks) {
			return false, nil
		}
		for i, blank := range a.Blanks {
			got := strings.TrimSpace(sub.Blanks[i])
			if a.CaseSensitive {
				if got != blank {
					return false, nil
				}
			} else if !strings.EqualFold(got, blank) {
				return false, nil
			}
		}
		return true, nil
	}
	return false, fmt.Errorf("unknown question kind %q", q.Kind)
}

// CreateQuestionRequest is the payload for creating a question.
type CreateQuestionRequest struct {
	Prompt     string       `json:"prompt" validate:"required"`
	Kind       QuestionKind `json:"kind" validate:"required"`
	Answer     Answer       `json:"answer"`
	TopicID    string       `json:"topic_id" validate:"required"`
	Difficulty int          `json:"difficulty" validate:"min=1,max=5"`
	ImageURL   string       `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateQuestionRequest is the payload for updating a question. The answer, when
// present, must match the question's (possibly updated) kind.
type UpdateQuestionRequest struct {
	Prompt     *string `json:"prompt,omitempty"`
	Answer     *Answer `json:"answer,omitempty"`
	Difficulty *int    `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Status     *int    `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}
