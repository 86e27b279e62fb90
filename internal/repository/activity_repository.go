package repository

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/repository/models"
	"study-assistant/internal/util"

	"github.com/jmoiron/sqlx"
)

const activityColumns = `id, user_id, type, document_id, quiz_id, duration_minutes, created_at`

type ActivityDatabaseAdapter struct {
	db *sqlx.DB
}

// NewActivityDatabaseAdapter creates a new instance of ActivityDatabaseAdapter
func NewActivityDatabaseAdapter(db *sqlx.DB) domain.ActivityRepository {
	return &ActivityDatabaseAdapter{db: db}
}

func toDomainActivity(m *models.Activity) *domain.ActivityEvent {
	return &domain.ActivityEvent{
		ID:              m.ID,
		UserID:          m.UserID,
		Type:            domain.ActivityType(m.Type),
		DocumentID:      util.NullStringToPtr(m.DocumentID),
		QuizID:          util.NullStringToPtr(m.QuizID),
		DurationMinutes: m.DurationMinutes,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *ActivityDatabaseAdapter) CreateActivity(ctx context.Context, event *domain.ActivityEvent) error {
	if event.ID == "" {
		event.ID = util.NewULID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	model := models.Activity{
		ID:              event.ID,
		UserID:          event.UserID,
		Type:            string(event.Type),
		DocumentID:      util.PtrToNullString(event.DocumentID),
		QuizID:          util.PtrToNullString(event.QuizID),
		DurationMinutes: event.DurationMinutes,
		CreatedAt:       event.CreatedAt,
	}
	query := `INSERT INTO activity (` + activityColumns + `)
	          VALUES (:id, :user_id, :type, :document_id, :quiz_id, :duration_minutes, :created_at)`
	if _, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

func (r *ActivityDatabaseAdapter) AddDurationToLatest(ctx context.Context, userID, documentID string, minutes int) (bool, error) {
	query := `UPDATE activity SET duration_minutes = duration_minutes + $1
	          WHERE id = (
	              SELECT id FROM activity
	              WHERE user_id = $2 AND document_id = $3
	              ORDER BY created_at DESC
	              LIMIT 1
	          )`
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, minutes, userID, documentID)
	if err != nil {
		return false, fmt.Errorf("failed to add duration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *ActivityDatabaseAdapter) ListRecentActivity(ctx context.Context, userID string, limit int) ([]*domain.ActivityRecord, error) {
	var rows []models.ActivityRecord
	query := `SELECT a.type, a.document_id, d.title AS document_title,
	                 a.quiz_id, q.document_id AS quiz_document_id, d2.title AS quiz_document_title,
	                 a.created_at
	          FROM activity a
	          LEFT JOIN documents d ON a.document_id = d.id
	          LEFT JOIN quizzes q ON a.quiz_id = q.id
	          LEFT JOIN documents d2 ON q.document_id = d2.id
	          WHERE a.user_id = $1
	          ORDER BY a.created_at DESC
	          LIMIT $2`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	records := make([]*domain.ActivityRecord, len(rows))
	for i, row := range rows {
		records[i] = &domain.ActivityRecord{
			Type:              domain.ActivityType(row.Type),
			DocumentID:        util.NullStringToPtr(row.DocumentID),
			DocumentTitle:     util.NullStringToPtr(row.DocumentTitle),
			QuizID:            util.NullStringToPtr(row.QuizID),
			QuizDocumentID:    util.NullStringToPtr(row.QuizDocumentID),
			QuizDocumentTitle: util.NullStringToPtr(row.QuizDocumentTitle),
			CreatedAt:         row.CreatedAt,
		}
	}
	return records, nil
}

func (r *ActivityDatabaseAdapter) ListActivitySince(ctx context.Context, userID string, since time.Time) ([]*domain.ActivityEvent, error) {
	var rows []models.Activity
	query := `SELECT ` + activityColumns + ` FROM activity
	          WHERE user_id = $1 AND created_at >= $2
	          ORDER BY created_at DESC`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	events := make([]*domain.ActivityEvent, len(rows))
	for i := range rows {
		events[i] = toDomainActivity(&rows[i])
	}
	return events, nil
}

func (r *ActivityDatabaseAdapter) TimeSpentByDocument(ctx context.Context, userID string, limit int) ([]domain.DocumentTimeSpent, error) {
	var rows []models.DocumentTimeSpent
	query := `SELECT d.id AS document_id, d.title, COALESCE(SUM(a.duration_minutes), 0) AS minutes
	          FROM activity a
	          JOIN documents d ON a.document_id = d.id
	          WHERE a.user_id = $1 AND a.duration_minutes > 0
	          GROUP BY d.id, d.title
	          ORDER BY minutes DESC
	          LIMIT $2`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to aggregate time spent: %w", err)
	}
	out := make([]domain.DocumentTimeSpent, len(rows))
	for i, row := range rows {
		out[i] = domain.DocumentTimeSpent{DocumentID: row.DocumentID, Title: row.Title, Minutes: row.Minutes}
	}
	return out, nil
}

func (r *ActivityDatabaseAdapter) DailySessionsSince(ctx context.Context, userID string, since time.Time) ([]domain.DailySessions, error) {
	var rows []models.DailySessions
	query := `SELECT DATE(created_at) AS day, COUNT(*) AS count
	          FROM activity
	          WHERE user_id = $1 AND created_at >= $2
	          GROUP BY DATE(created_at)
	          ORDER BY day`
	if err := GetExecutor(ctx, r.db).SelectContext(ctx, &rows, query, userID, since); err != nil {
		return nil, fmt.Errorf("failed to count daily sessions: %w", err)
	}
	out := make([]domain.DailySessions, len(rows))
	for i, row := range rows {
		out[i] = domain.DailySessions{Day: row.Day, Count: row.Count}
	}
	return out, nil
}
