package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"
	"study-assistant/internal/util"

	"github.com/jmoiron/sqlx"
)

const (
	quizColumns         = `id, document_id, num_questions, score, completed, completed_at, created_at`
	quizQuestionColumns = `id, quiz_id, position, question, options, correct_option, user_answer`
)

type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:           m.ID,
		DocumentID:   m.DocumentID,
		NumQuestions: m.NumQuestions,
		Score:        util.NullInt64ToIntPtr(m.Score),
		Completed:    m.Completed,
		CompletedAt:  util.NullTimeToPtr(m.CompletedAt),
		CreatedAt:    m.CreatedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	var completedAt sql.NullTime
	if q.CompletedAt != nil {
		completedAt = util.TimeToNullTime(*q.CompletedAt)
	}
	return &models.Quiz{
		ID:           q.ID,
		DocumentID:   q.DocumentID,
		NumQuestions: q.NumQuestions,
		Score:        util.IntPtrToNullInt64(q.Score),
		Completed:    q.Completed,
		CompletedAt:  completedAt,
		CreatedAt:    q.CreatedAt,
	}
}

func toDomainQuizQuestion(m *models.QuizQuestion) *domain.QuizQuestion {
	if m == nil {
		return nil
	}
	options := []string(m.Options)
	if options == nil {
		options = []string{}
	}
	return &domain.QuizQuestion{
		ID:            m.ID,
		QuizID:        m.QuizID,
		Position:      m.Position,
		Question:      m.Question,
		Options:       options,
		CorrectOption: m.CorrectOption,
		UserAnswer:    util.NullInt64ToIntPtr(m.UserAnswer),
	}
}

func fromDomainQuizQuestion(q *domain.QuizQuestion) *models.QuizQuestion {
	if q == nil {
		return nil
	}
	return &models.QuizQuestion{
		ID:            q.ID,
		QuizID:        q.QuizID,
		Position:      q.Position,
		Question:      q.Question,
		Options:       models.StringSlice(q.Options),
		CorrectOption: q.CorrectOption,
		UserAnswer:    util.IntPtrToNullInt64(q.UserAnswer),
	}
}

func (r *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}
	query := `INSERT INTO quizzes (` + quizColumns + `)
	          VALUES (:id, :document_id, :num_questions, :score, :completed, :completed_at, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainQuiz(quiz)); err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (r *QuizDatabaseAdapter) CreateQuizQuestion(ctx context.Context, question *domain.QuizQuestion) error {
	query := `INSERT INTO quiz_questions (` + quizQuestionColumns + `)
	          VALUES (:id, :quiz_id, :position, :question, :options, :correct_option, :user_answer)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, fromDomainQuizQuestion(question)); err != nil {
		return fmt.Errorf("failed to create quiz question: %w", err)
	}
	return nil
}

func (r *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var quiz models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &quiz, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz %s: %w", id, err)
	}
	return toDomainQuiz(&quiz), nil
}

func (r *QuizDatabaseAdapter) ListQuizzesByDocument(ctx context.Context, documentID string) ([]*domain.Quiz, error) {
	var rows []models.Quiz
	query := `SELECT ` + quizColumns + ` FROM quizzes WHERE document_id = $1 ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, documentID); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}
	quizzes := make([]*domain.Quiz, len(rows))
	for i := range rows {
		quizzes[i] = toDomainQuiz(&rows[i])
	}
	return quizzes, nil
}

func (r *QuizDatabaseAdapter) ListQuestionsByQuiz(ctx context.Context, quizID string) ([]*domain.QuizQuestion, error) {
	var rows []models.QuizQuestion
	query := `SELECT ` + quizQuestionColumns + ` FROM quiz_questions WHERE quiz_id = $1 ORDER BY position`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to list quiz questions: %w", err)
	}
	questions := make([]*domain.QuizQuestion, len(rows))
	for i := range rows {
		questions[i] = toDomainQuizQuestion(&rows[i])
	}
	return questions, nil
}

func (r *QuizDatabaseAdapter) UpdateQuestionUserAnswer(ctx context.Context, questionID string, answer int) error {
	query := `UPDATE quiz_questions SET user_answer = $1 WHERE id = $2`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, answer, questionID); err != nil {
		return fmt.Errorf("failed to save answer for question %s: %w", questionID, err)
	}
	return nil
}

func (r *QuizDatabaseAdapter) UpdateQuizResult(ctx context.Context, quizID string, score int, completedAt time.Time) error {
	query := `UPDATE quizzes SET score = $1, completed = TRUE, completed_at = $2 WHERE id = $3`
	if _, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, score, completedAt, quizID); err != nil {
		return fmt.Errorf("failed to save result for quiz %s: %w", quizID, err)
	}
	return nil
}

func (r *QuizDatabaseAdapter) DeleteQuestionsByQuiz(ctx context.Context, quizID string) (int64, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quiz_questions WHERE quiz_id = $1`, quizID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete questions of quiz %s: %w", quizID, err)
	}
	return res.RowsAffected()
}

func (r *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, quizID string) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quizzes WHERE id = $1`, quizID)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz %s: %w", quizID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *QuizDatabaseAdapter) CountQuizzesByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM quizzes q
	          JOIN documents d ON d.id = q.document_id
	          WHERE d.owner_id = $1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &count, query, ownerID); err != nil {
		return 0, fmt.Errorf("failed to count quizzes: %w", err)
	}
	return count, nil
}
