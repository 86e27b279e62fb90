package domain

import (
	"fmt"
	"time"
)

const (
	// QuizOptionCount is the number of options every multiple-choice question carries.
	QuizOptionCount = 4
	// MinQuizQuestions and MaxQuizQuestions bound a quiz generation request.
	MinQuizQuestions = 1
	MaxQuizQuestions = 50
)

// QuizStatus is the lifecycle state of a quiz.
type QuizStatus string

const (
	QuizStatusGenerated QuizStatus = "GENERATED"
	QuizStatusSubmitted QuizStatus = "SUBMITTED"
)

// Quiz is a generated multiple-choice quiz over a document.
type Quiz struct {
	ID           string
	DocumentID   string
	NumQuestions int
	Score        *int
	Completed    bool
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

// NewQuiz creates a quiz in the Generated state.
func NewQuiz(id, documentID string, numQuestions int) *Quiz {
	return &Quiz{
		ID:           id,
		DocumentID:   documentID,
		NumQuestions: numQuestions,
		CreatedAt:    time.Now(),
	}
}

// Status derives the lifecycle state from the completion flag.
func (q *Quiz) Status() QuizStatus {
	if q.Completed {
		return QuizStatusSubmitted
	}
	return QuizStatusGenerated
}

// QuizQuestion is one question of a quiz. Position is the model array index.
type QuizQuestion struct {
	ID            string
	QuizID        string
	Position      int
	Question      string
	Options       []string
	CorrectOption int
	UserAnswer    *int
}

// Validate checks the shape every persisted question must have.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question is required")
	}
	if len(q.Options) != QuizOptionCount {
		return NewValidationError(fmt.Sprintf("question must have exactly %d options, got %d", QuizOptionCount, len(q.Options)))
	}
	if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("correct option %d is out of range", q.CorrectOption))
	}
	return nil
}

// GeneratedQuestion is a validated multiple-choice question as produced by the model.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// QuizResult is returned after a submission is scored.
type QuizResult struct {
	Score     int
	Total     int
	Questions []*QuizQuestion
}

// ValidateQuestionCount checks a requested quiz size.
func ValidateQuestionCount(n int) error {
	if n < MinQuizQuestions || n > MaxQuizQuestions {
		return NewValidationError(fmt.Sprintf("number of questions must be between %d and %d, got %d", MinQuizQuestions, MaxQuizQuestions, n))
	}
	return nil
}

// ScoreAnswers records answers on the questions in order and returns the
// number of correct ones. answers and questions must have equal length.
func ScoreAnswers(questions []*QuizQuestion, answers []int) (int, error) {
	if len(answers) != len(questions) {
		return 0, NewValidationError(fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)))
	}
	score := 0
	for i, q := range questions {
		answer := answers[i]
		q.UserAnswer = &answer
		if answer == q.CorrectOption {
			score++
		}
	}
	return score, nil
}
