package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"study-assistant/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLogActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("valid event", func(t *testing.T) {
		repo := new(MockActivityRepository)
		event := &domain.ActivityEvent{UserID: "u1", Type: domain.ActivityQuizAttempt, QuizID: strPtr("quiz-1")}
		repo.On("CreateActivity", ctx, event).Return(nil).Once()

		require.NoError(t, NewActivityService(repo).LogActivity(ctx, event))
		repo.AssertExpectations(t)
	})

	t.Run("unknown type", func(t *testing.T) {
		repo := new(MockActivityRepository)
		err := NewActivityService(repo).LogActivity(ctx, &domain.ActivityEvent{UserID: "u1", Type: "page_view"})

		assert.True(t, domain.IsValidation(err))
		repo.AssertNotCalled(t, "CreateActivity", mock.Anything, mock.Anything)
	})
}

func TestLogDuration(t *testing.T) {
	ctx := context.Background()

	t.Run("extends the latest event", func(t *testing.T) {
		repo := new(MockActivityRepository)
		repo.On("AddDurationToLatest", ctx, "u1", "doc-1", 15).Return(true, nil).Once()

		require.NoError(t, NewActivityService(repo).LogDuration(ctx, "u1", "doc-1", 15))
		repo.AssertNotCalled(t, "CreateActivity", mock.Anything, mock.Anything)
	})

	t.Run("inserts when no prior event", func(t *testing.T) {
		repo := new(MockActivityRepository)
		repo.On("AddDurationToLatest", ctx, "u1", "doc-1", 5).Return(false, nil).Once()
		repo.On("CreateActivity", ctx, mock.MatchedBy(func(e *domain.ActivityEvent) bool {
			return e.Type == domain.ActivityDocumentAccess &&
				e.DocumentID != nil && *e.DocumentID == "doc-1" &&
				e.DurationMinutes == 5
		})).Return(nil).Once()

		require.NoError(t, NewActivityService(repo).LogDuration(ctx, "u1", "doc-1", 5))
		repo.AssertExpectations(t)
	})

	t.Run("negative minutes", func(t *testing.T) {
		repo := new(MockActivityRepository)
		err := NewActivityService(repo).LogDuration(ctx, "u1", "doc-1", -1)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestRecentActivity(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepository)
	now := time.Now()
	records := []*domain.ActivityRecord{
		{Type: domain.ActivityDocumentAccess, DocumentID: strPtr("doc-1"), DocumentTitle: strPtr("Biology"), CreatedAt: now},
		{Type: domain.ActivityQuizAttempt, QuizID: strPtr("quiz-1"), QuizDocumentID: strPtr("doc-2"), QuizDocumentTitle: strPtr("Chemistry"), CreatedAt: now},
		{Type: "unknown", CreatedAt: now},
	}
	repo.On("ListRecentActivity", ctx, "u1", domain.RecentActivityLimit).Return(records, nil)

	items, err := NewActivityService(repo).RecentActivity(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Accessed Document: Biology", items[0].Title)
	assert.Equal(t, "/documents/doc-1", items[0].Link)
	assert.Equal(t, "Attempted Quiz on: Chemistry", items[1].Title)
	assert.Equal(t, "/documents/doc-2?tab=quizzes", items[1].Link)
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepository)
	fixed := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	since := fixed.Add(-domain.AnalyticsWindow)

	repo.On("ListActivitySince", ctx, "u1", since).Return([]*domain.ActivityEvent{{ID: "a1"}}, nil)
	repo.On("TimeSpentByDocument", ctx, "u1", domain.TopDocumentsLimit).
		Return([]domain.DocumentTimeSpent{{DocumentID: "doc-1", Title: "Biology", Minutes: 42}}, nil)
	repo.On("DailySessionsSince", ctx, "u1", since).
		Return([]domain.DailySessions{{Day: since, Count: 3}}, nil)

	svc := &activityService{repo: repo, now: func() time.Time { return fixed }}
	analytics, err := svc.Analytics(ctx, "u1")

	require.NoError(t, err)
	assert.Len(t, analytics.Activities, 1)
	assert.Equal(t, 42, analytics.TimeSpent[0].Minutes)
	assert.Equal(t, 3, analytics.DailySessions[0].Count)

	t.Run("repository failure", func(t *testing.T) {
		failing := new(MockActivityRepository)
		failing.On("ListActivitySince", ctx, "u1", mock.Anything).Return(nil, errors.New("db down"))

		_, err := NewActivityService(failing).Analytics(ctx, "u1")
		assert.Equal(t, domain.ErrInternal, domain.CodeOf(err))
	})
}
