package service

import (
	"context"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"go.uber.org/zap"
)

// ActivityService records user activity and renders feeds and analytics.
type ActivityService interface {
	LogActivity(ctx context.Context, event *domain.ActivityEvent) error
	LogDuration(ctx context.Context, userID, documentID string, minutes int) error
	RecentActivity(ctx context.Context, userID string) ([]domain.ActivityFeedItem, error)
	Analytics(ctx context.Context, userID string) (*domain.Analytics, error)
}

type activityService struct {
	repo domain.ActivityRepository
	now  func() time.Time
}

func NewActivityService(repo domain.ActivityRepository) ActivityService {
	return &activityService{repo: repo, now: time.Now}
}

func (s *activityService) LogActivity(ctx context.Context, event *domain.ActivityEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if err := s.repo.CreateActivity(ctx, event); err != nil {
		return domain.NewInternalError("Failed to log activity", err)
	}
	return nil
}

// LogDuration extends the newest event for the document, or starts a new
// document_access event carrying the duration.
func (s *activityService) LogDuration(ctx context.Context, userID, documentID string, minutes int) error {
	if userID == "" {
		return domain.NewValidationError("user ID is required")
	}
	if minutes < 0 {
		return domain.NewValidationError("duration must not be negative")
	}

	updated, err := s.repo.AddDurationToLatest(ctx, userID, documentID, minutes)
	if err != nil {
		return domain.NewInternalError("Failed to log duration", err)
	}
	if updated {
		return nil
	}

	logger.Get().Debug("No prior activity for document, inserting one",
		zap.String("user_id", userID), zap.String("document_id", documentID))
	return s.LogActivity(ctx, &domain.ActivityEvent{
		UserID:          userID,
		Type:            domain.ActivityDocumentAccess,
		DocumentID:      &documentID,
		DurationMinutes: minutes,
	})
}

func (s *activityService) RecentActivity(ctx context.Context, userID string) ([]domain.ActivityFeedItem, error) {
	records, err := s.repo.ListRecentActivity(ctx, userID, domain.RecentActivityLimit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load activity", err)
	}

	items := make([]domain.ActivityFeedItem, 0, len(records))
	for _, r := range records {
		if item, ok := r.FeedItem(); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *activityService) Analytics(ctx context.Context, userID string) (*domain.Analytics, error) {
	since := s.now().Add(-domain.AnalyticsWindow)

	activities, err := s.repo.ListActivitySince(ctx, userID, since)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load activity", err)
	}
	timeSpent, err := s.repo.TimeSpentByDocument(ctx, userID, domain.TopDocumentsLimit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load time spent", err)
	}
	sessions, err := s.repo.DailySessionsSince(ctx, userID, since)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load daily sessions", err)
	}

	return &domain.Analytics{
		Activities:    activities,
		TimeSpent:     timeSpent,
		DailySessions: sessions,
	}, nil
}
