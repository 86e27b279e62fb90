// Package models holds the row shapes the sqlx repositories scan into.
package models

import (
	"database/sql"
	"time"
)

type Document struct {
	ID         string    `db:"id"`
	OwnerID    string    `db:"owner_id"`
	Title      string    `db:"title"`
	Filename   string    `db:"filename"`
	Filesize   int64     `db:"filesize"`
	FilePath   string    `db:"file_path"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type FlashcardSet struct {
	ID         string    `db:"id"`
	DocumentID string    `db:"document_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type Flashcard struct {
	ID         string `db:"id"`
	SetID      string `db:"set_id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Difficulty string `db:"difficulty"`
	Position   int    `db:"position"`
}

type Quiz struct {
	ID           string        `db:"id"`
	DocumentID   string        `db:"document_id"`
	NumQuestions int           `db:"num_questions"`
	Score        sql.NullInt64 `db:"score"`
	Completed    bool          `db:"completed"`
	CompletedAt  sql.NullTime  `db:"completed_at"`
	CreatedAt    time.Time     `db:"created_at"`
}

type QuizQuestion struct {
	ID            string        `db:"id"`
	QuizID        string        `db:"quiz_id"`
	Position      int           `db:"position"`
	Question      string        `db:"question"`
	Options       StringSlice   `db:"options"`
	CorrectOption int           `db:"correct_option"`
	UserAnswer    sql.NullInt64 `db:"user_answer"`
}

type Activity struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	Type            string         `db:"type"`
	DocumentID      sql.NullString `db:"document_id"`
	QuizID          sql.NullString `db:"quiz_id"`
	DurationMinutes int            `db:"duration_minutes"`
	CreatedAt       time.Time      `db:"created_at"`
}

// ActivityRecord is an activity row joined with document titles.
type ActivityRecord struct {
	Type              string         `db:"type"`
	DocumentID        sql.NullString `db:"document_id"`
	DocumentTitle     sql.NullString `db:"document_title"`
	QuizID            sql.NullString `db:"quiz_id"`
	QuizDocumentID    sql.NullString `db:"quiz_document_id"`
	QuizDocumentTitle sql.NullString `db:"quiz_document_title"`
	CreatedAt         time.Time      `db:"created_at"`
}

type DocumentTimeSpent struct {
	DocumentID string `db:"document_id"`
	Title      string `db:"title"`
	Minutes    int    `db:"minutes"`
}

type DailySessions struct {
	Day   time.Time `db:"day"`
	Count int       `db:"count"`
}
