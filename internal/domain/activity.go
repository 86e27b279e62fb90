package domain

import (
	"fmt"
	"time"
)

// ActivityType classifies an activity event.
type ActivityType string

const (
	ActivityDocumentAccess ActivityType = "document_access"
	ActivityQuizAttempt    ActivityType = "quiz_attempt"
)

// RecentActivityLimit is the number of events shown in a user's feed.
const RecentActivityLimit = 10

// AnalyticsWindow is the look-back period for analytics.
const AnalyticsWindow = 7 * 24 * time.Hour

// TopDocumentsLimit bounds the time-spent ranking.
const TopDocumentsLimit = 5

// ActivityEvent is an append-only record of user activity.
type ActivityEvent struct {
	ID              string
	UserID          string
	Type            ActivityType
	DocumentID      *string
	QuizID          *string
	DurationMinutes int
	CreatedAt       time.Time
}

// Validate checks the event type and owner.
func (e *ActivityEvent) Validate() error {
	if e.UserID == "" {
		return NewValidationError("user ID is required")
	}
	switch e.Type {
	case ActivityDocumentAccess, ActivityQuizAttempt:
	default:
		return NewValidationError(fmt.Sprintf("invalid activity type: %q", e.Type))
	}
	if e.DurationMinutes < 0 {
		return NewValidationError("duration must not be negative")
	}
	return nil
}

// ActivityRecord is an event joined with the titles it references. Quiz
// attempts resolve their document through the quiz row.
type ActivityRecord struct {
	Type              ActivityType
	DocumentID        *string
	DocumentTitle     *string
	QuizID            *string
	QuizDocumentID    *string
	QuizDocumentTitle *string
	CreatedAt         time.Time
}

// ActivityFeedItem is a rendered entry in the recent activity feed.
type ActivityFeedItem struct {
	Title string
	Date  time.Time
	Link  string
}

// FeedItem renders the record for the activity feed. ok is false for
// records of an unknown type.
func (r *ActivityRecord) FeedItem() (item ActivityFeedItem, ok bool) {
	switch r.Type {
	case ActivityDocumentAccess:
		return ActivityFeedItem{
			Title: "Accessed Document: " + deref(r.DocumentTitle),
			Date:  r.CreatedAt,
			Link:  "/documents/" + deref(r.DocumentID),
		}, true
	case ActivityQuizAttempt:
		title := firstNonEmpty(deref(r.QuizDocumentTitle), deref(r.DocumentTitle), "Unknown")
		docID := firstNonEmpty(deref(r.QuizDocumentID), deref(r.DocumentID))
		return ActivityFeedItem{
			Title: "Attempted Quiz on: " + title,
			Date:  r.CreatedAt,
			Link:  "/documents/" + docID + "?tab=quizzes",
		}, true
	}
	return ActivityFeedItem{}, false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DocumentTimeSpent is the accumulated reading time on one document.
type DocumentTimeSpent struct {
	DocumentID string
	Title      string
	Minutes    int
}

// DailySessions counts events on a calendar day.
type DailySessions struct {
	Day   time.Time
	Count int
}

// Analytics summarises a user's recent activity.
type Analytics struct {
	Activities    []*ActivityEvent
	TimeSpent     []DocumentTimeSpent
	DailySessions []DailySessions
}
