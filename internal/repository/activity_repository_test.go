package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"study-assistant/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_CreateActivity(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewActivityDatabaseAdapter(db)
	docID := "doc1"

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO activity (id, user_id, type, document_id, quiz_id, duration_minutes, created_at)`)).
		WithArgs(sqlmock.AnyArg(), "user1", "document_access", "doc1", nil, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &domain.ActivityEvent{UserID: "user1", Type: domain.ActivityDocumentAccess, DocumentID: &docID}
	require.NoError(t, repo.CreateActivity(context.Background(), event))
	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_AddDurationToLatest(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewActivityDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE activity SET duration_minutes = duration_minutes + $1`)).
		WithArgs(15, "user1", "doc1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE activity SET duration_minutes = duration_minutes + $1`)).
		WithArgs(5, "user1", "doc2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.AddDurationToLatest(context.Background(), "user1", "doc1", 15)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = repo.AddDurationToLatest(context.Background(), "user1", "doc2", 5)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListRecentActivity(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewActivityDatabaseAdapter(db)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"type", "document_id", "document_title", "quiz_id", "quiz_document_id", "quiz_document_title", "created_at"}).
		AddRow("quiz_attempt", nil, nil, "quiz1", "doc1", "Biology", now).
		AddRow("document_access", "doc1", "Biology", nil, nil, nil, now.Add(-time.Minute))
	mock.ExpectQuery(`FROM activity a\s+LEFT JOIN documents d ON a.document_id = d.id`).
		WithArgs("user1", domain.RecentActivityLimit).
		WillReturnRows(rows)

	records, err := repo.ListRecentActivity(context.Background(), "user1", domain.RecentActivityLimit)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ActivityQuizAttempt, records[0].Type)
	assert.Nil(t, records[0].DocumentID)
	require.NotNil(t, records[0].QuizDocumentTitle)
	assert.Equal(t, "Biology", *records[0].QuizDocumentTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_Analytics(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewActivityDatabaseAdapter(db)
	ctx := context.Background()
	since := time.Now().Add(-domain.AnalyticsWindow)
	day := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM activity\s+WHERE user_id = \$1 AND created_at >= \$2\s+ORDER BY created_at DESC`).
		WithArgs("user1", since).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "document_id", "quiz_id", "duration_minutes", "created_at"}).
			AddRow("a1", "user1", "document_access", "doc1", nil, 30, day))
	mock.ExpectQuery(`SUM\(a.duration_minutes\)`).
		WithArgs("user1", domain.TopDocumentsLimit).
		WillReturnRows(sqlmock.NewRows([]string{"document_id", "title", "minutes"}).AddRow("doc1", "Biology", 30))
	mock.ExpectQuery(`GROUP BY DATE\(created_at\)`).
		WithArgs("user1", since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).AddRow(day, 4))

	events, err := repo.ListActivitySince(ctx, "user1", since)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 30, events[0].DurationMinutes)
	require.NotNil(t, events[0].DocumentID)
	assert.Nil(t, events[0].QuizID)

	spent, err := repo.TimeSpentByDocument(ctx, "user1", domain.TopDocumentsLimit)
	require.NoError(t, err)
	assert.Equal(t, []domain.DocumentTimeSpent{{DocumentID: "doc1", Title: "Biology", Minutes: 30}}, spent)

	sessions, err := repo.DailySessionsSince(ctx, "user1", since)
	require.NoError(t, err)
	assert.Equal(t, []domain.DailySessions{{Day: day, Count: 4}}, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}
