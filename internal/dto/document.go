package dto

import (
	"time"

	"study-assistant/internal/domain"
)

// DocumentResponse represents an uploaded document in the API response
type DocumentResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Filename   string    `json:"filename"`
	Filesize   int64     `json:"filesize"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func NewDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:         d.ID,
		UserID:     d.OwnerID,
		Title:      d.Title,
		Filename:   d.Filename,
		Filesize:   d.Filesize,
		UploadedAt: d.UploadedAt,
	}
}

func NewDocumentResponses(docs []*domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		out[i] = NewDocumentResponse(d)
	}
	return out
}

type UploadResponse struct {
	Success  bool             `json:"success"`
	Document DocumentResponse `json:"document"`
}

type TextResponse struct {
	Text string `json:"text"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ChatRequest asks a question about a document. DocumentText, when set,
// replaces the stored document's text.
type ChatRequest struct {
	Question     string `json:"question"`
	DocumentText string `json:"documentText"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

type StatsResponse struct {
	Documents  int `json:"documents"`
	Flashcards int `json:"flashcards"`
	Quizzes    int `json:"quizzes"`
}

func NewStatsResponse(s *domain.UserStats) StatsResponse {
	return StatsResponse{Documents: s.Documents, Flashcards: s.Flashcards, Quizzes: s.Quizzes}
}
