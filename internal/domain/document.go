package domain

import "time"

// Document is an uploaded PDF. FilePath is the only link to its content.
type Document struct {
	ID         string
	OwnerID    string
	Title      string
	Filename   string
	Filesize   int64
	FilePath   string
	UploadedAt time.Time
}

// UploadInput carries an uploaded file into the document service.
type UploadInput struct {
	OwnerID  string
	Title    string
	Filename string
	Content  []byte
}

// UserStats counts the artifacts owned by a user.
type UserStats struct {
	Documents  int
	Flashcards int
	Quizzes    int
}
