package dto

import (
	"time"

	"study-assistant/internal/domain"
)

// QuizResponse represents a quiz in the API response
type QuizResponse struct {
	ID           string     `json:"id"`
	DocumentID   string     `json:"document_id"`
	NumQuestions int        `json:"num_questions"`
	Score        *int       `json:"score"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
}

// QuizQuestionResponse represents one question. UserAnswer is null until
// the quiz is submitted.
type QuizQuestionResponse struct {
	ID            string   `json:"id"`
	QuizID        string   `json:"quiz_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
	UserAnswer    *int     `json:"user_answer"`
}

// GenerateQuizRequest asks for a quiz of NumQuestions questions.
type GenerateQuizRequest struct {
	NumQuestions int `json:"numQuestions"`
}

type GenerateQuizResponse struct {
	Quiz QuizResponse `json:"quiz"`
}

type QuizzesResponse struct {
	Quizzes []QuizResponse `json:"quizzes"`
}

type QuizQuestionsResponse struct {
	Questions []QuizQuestionResponse `json:"questions"`
}

// SubmitQuizRequest carries one answer index per question, in order.
type SubmitQuizRequest struct {
	Answers []int      `json:"answers"`
	UserID  FlexibleID `json:"userId"`
}

type SubmitQuizResponse struct {
	Score     int                    `json:"score"`
	Total     int                    `json:"total"`
	Questions []QuizQuestionResponse `json:"questions"`
}

func NewQuizResponse(q *domain.Quiz) QuizResponse {
	return QuizResponse{
		ID:           q.ID,
		DocumentID:   q.DocumentID,
		NumQuestions: q.NumQuestions,
		Score:        q.Score,
		Completed:    q.Completed,
		CompletedAt:  q.CompletedAt,
		CreatedAt:    q.CreatedAt,
	}
}

func NewQuizzesResponse(quizzes []*domain.Quiz) QuizzesResponse {
	out := make([]QuizResponse, len(quizzes))
	for i, q := range quizzes {
		out[i] = NewQuizResponse(q)
	}
	return QuizzesResponse{Quizzes: out}
}

func NewQuizQuestionResponses(questions []*domain.QuizQuestion) []QuizQuestionResponse {
	out := make([]QuizQuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = QuizQuestionResponse{
			ID:            q.ID,
			QuizID:        q.QuizID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			UserAnswer:    q.UserAnswer,
		}
	}
	return out
}

func NewSubmitQuizResponse(r *domain.QuizResult) SubmitQuizResponse {
	return SubmitQuizResponse{
		Score:     r.Score,
		Total:     r.Total,
		Questions: NewQuizQuestionResponses(r.Questions),
	}
}
