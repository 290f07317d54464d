package models

import "testing"

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestGradeTrueFalse(t *testing.T) {
	q := Question{
		Kind:   KindTrueFalse,
		Answer: Answer{TrueFalse: &TrueFalseAnswer{Value: true}},
	}

	correct, err := q.Grade(Submission{Bool: boolPtr(true)})
	if err != nil || !correct {
		t.Fatalf("expected correct, got %v, err %v", correct, err)
	}
	correct, err = q.Grade(Submission{Bool: boolPtr(false)})
	if err != nil || correct {
		t.Fatalf("expected incorrect, got %v, err %v", correct, err)
	}
	if _, err := q.Grade(Submission{}); err == nil {
		t.Fatal("expected error for missing boolean submission")
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	q := Question{
		Kind: KindMultipleChoice,
		Answer: Answer{MultipleChoice: &MultipleChoiceAnswer{
			Options:      []string{"Paris", "Lyon", "Nice"},
			CorrectIndex: 0,
		}},
	}

	if correct, _ := q.Grade(Submission{OptionIndex: intPtr(0)}); !correct {
		t.Fatal("expected correct option to grade true")
	}
	if correct, _ := q.Grade(Submission{OptionIndex: intPtr(2)}); correct {
		t.Fatal("expected wrong option to grade false")
	}
}

func TestGradeMatching(t *testing.T) {
	q := Question{
		Kind: KindMatching,
		Answer: Answer{Matching: &MatchingAnswer{Pairs: []MatchPair{
			{Left: "dog", Right: "bark"},
			{Left: "cat", Right: "meow"},
		}}},
	}

	submittedReversed := []MatchPair{
		{Left: "cat", Right: "meow"},
		{Left: "dog", Right: "bark"},
	}
	if correct, _ := q.Grade(Submission{Pairs: submittedReversed}); !correct {
		t.Fatal("pair order must not matter")
	}

	wrong := []MatchPair{
		{Left: "dog", Right: "meow"},
		{Left: "cat", Right: "bark"},
	}
	if correct, _ := q.Grade(Submission{Pairs: wrong}); correct {
		t.Fatal("mismatched pairs must grade false")
	}

	if correct, _ := q.Grade(Submission{Pairs: submittedReversed[:1]}); correct {
		t.Fatal("missing pairs must grade false")
	}
}

func TestGradeFillInBlank(t *testing.T) {
	q := Question{
		Kind: KindFillInBlank,
		Answer: Answer{FillInBlank: &FillInBlankAnswer{
			Blanks: []string{"Mitochondria", "ATP"},
		}},
	}

	if correct, _ := q.Grade(Submission{Blanks: []string{" mitochondria ", "atp"}}); !correct {
		t.Fatal("case-insensitive match with surrounding spaces should grade true")
	}
	if correct, _ := q.Grade(Submission{Blanks: []string{"ATP", "Mitochondria"}}); correct {
		t.Fatal("blanks are order-sensitive")
	}

	q.Answer.FillInBlank.CaseSensitive = true
	if correct, _ := q.Grade(Submission{Blanks: []string{"mitochondria", "atp"}}); correct {
		t.Fatal("case-sensitive mode must reject different casing")
	}
}

func TestGradeUnknownKind(t *testing.T) {
	q := Question{Kind: "essay"}
	if _, err := q.Grade(Submission{}); err == nil {
		t.Fatal("expected error for unknown question kind")
	}
}

func TestValidateAnswerShape(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			"valid true_false",
			Question{Kind: KindTrueFalse, Answer: Answer{TrueFalse: &TrueFalseAnswer{}}},
			false,
		},
		{
			"true_false missing answer",
			Question{Kind: KindTrueFalse},
			true,
		},
		{
			"multiple_choice index out of range",
			Question{Kind: KindMultipleChoice, Answer: Answer{MultipleChoice: &MultipleChoiceAnswer{
				Options: []string{"a", "b"}, CorrectIndex: 2,
			}}},
			true,
		},
		{
			"multiple_choice too few options",
			Question{Kind: KindMultipleChoice, Answer: Answer{MultipleChoice: &MultipleChoiceAnswer{
				Options: []string{"a"},
			}}},
			true,
		},
		{
			"matching without pairs",
			Question{Kind: KindMatching, Answer: Answer{Matching: &MatchingAnswer{}}},
			true,
		},
		{
			"unknown kind",
			Question{Kind: "essay"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.ValidateAnswerShape()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAnswerShape() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
