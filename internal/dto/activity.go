package dto

import (
	"time"

	"study-assistant/internal/domain"
)

// AccessRequest records that a user opened a document.
type AccessRequest struct {
	UserID FlexibleID `json:"userId"`
}

// DurationRequest adds reading time to a document.
type DurationRequest struct {
	UserID          FlexibleID `json:"userId"`
	DurationMinutes int        `json:"durationMinutes"`
}

type ActivityFeedItem struct {
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
	Link  string    `json:"link"`
}

type ActivityFeedResponse struct {
	Activities []ActivityFeedItem `json:"activities"`
}

type ActivityEventResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Type            string    `json:"type"`
	DocumentID      *string   `json:"document_id"`
	QuizID          *string   `json:"quiz_id"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
}

type TimeSpentResponse struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Minutes    int    `json:"minutes"`
}

type DailySessionsResponse struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type AnalyticsResponse struct {
	Activities   []ActivityEventResponse `json:"activities"`
	TimeSpent    []TimeSpentResponse     `json:"timeSpent"`
	WeekSessions []DailySessionsResponse `json:"weekSessions"`
}

func NewActivityFeedResponse(items []domain.ActivityFeedItem) ActivityFeedResponse {
	out := make([]ActivityFeedItem, len(items))
	for i, it := range items {
		out[i] = ActivityFeedItem{Title: it.Title, Date: it.Date, Link: it.Link}
	}
	return ActivityFeedResponse{Activities: out}
}

func NewAnalyticsResponse(a *domain.Analytics) AnalyticsResponse {
	resp := AnalyticsResponse{
		Activities:   make([]ActivityEventResponse, len(a.Activities)),
		TimeSpent:    make([]TimeSpentResponse, len(a.TimeSpent)),
		WeekSessions: make([]DailySessionsResponse, len(a.DailySessions)),
	}
	for i, e := range a.Activities {
		resp.Activities[i] = ActivityEventResponse{
			ID:              e.ID,
			UserID:          e.UserID,
			Type:            string(e.Type),
			DocumentID:      e.DocumentID,
			QuizID:          e.QuizID,
			DurationMinutes: e.DurationMinutes,
			CreatedAt:       e.CreatedAt,
		}
	}
	for i, t := range a.TimeSpent {
		resp.TimeSpent[i] = TimeSpentResponse{DocumentID: t.DocumentID, Title: t.Title, Minutes: t.Minutes}
	}
	for i, d := range a.DailySessions {
		resp.WeekSessions[i] = DailySessionsResponse{Day: d.Day.Format(time.DateOnly), Count: d.Count}
	}
	return resp
}
