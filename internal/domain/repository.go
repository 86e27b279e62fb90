package domain

import (
	"context"
	"time"
)

// TransactionManager runs fn inside a database transaction carried by ctx.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// DocumentRepository defines the interface for document persistence.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc *Document) error
	// GetDocumentByID returns nil, nil when the document does not exist.
	GetDocumentByID(ctx context.Context, id string) (*Document, error)
	ListDocumentsByOwner(ctx context.Context, ownerID string) ([]*Document, error)
	ListDocuments(ctx context.Context) ([]*Document, error)
	// DeleteDocument reports whether a row was removed.
	DeleteDocument(ctx context.Context, id string) (bool, error)
	CountDocumentsByOwner(ctx context.Context, ownerID string) (int, error)
}

// FlashcardRepository defines the interface for flashcard set persistence.
type FlashcardRepository interface {
	CreateFlashcardSet(ctx context.Context, set *FlashcardSet) error
	CreateFlashcard(ctx context.Context, card *Flashcard) error
	ListFlashcardSetsByDocument(ctx context.Context, documentID string) ([]*FlashcardSet, error)
	// ListFlashcardsBySet returns cards ordered by position.
	ListFlashcardsBySet(ctx context.Context, setID string) ([]*Flashcard, error)
	DeleteFlashcardsBySet(ctx context.Context, setID string) (int64, error)
	DeleteFlashcardSet(ctx context.Context, setID string) (bool, error)
	CountFlashcardsByOwner(ctx context.Context, ownerID string) (int, error)
}

// QuizRepository defines the interface for quiz persistence.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	CreateQuizQuestion(ctx context.Context, question *QuizQuestion) error
	// GetQuizByID returns nil, nil when the quiz does not exist.
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	ListQuizzesByDocument(ctx context.Context, documentID string) ([]*Quiz, error)
	// ListQuestionsByQuiz returns questions ordered by position.
	ListQuestionsByQuiz(ctx context.Context, quizID string) ([]*QuizQuestion, error)
	UpdateQuestionUserAnswer(ctx context.Context, questionID string, answer int) error
	UpdateQuizResult(ctx context.Context, quizID string, score int, completedAt time.Time) error
	DeleteQuestionsByQuiz(ctx context.Context, quizID string) (int64, error)
	DeleteQuiz(ctx context.Context, quizID string) (bool, error)
	CountQuizzesByOwner(ctx context.Context, ownerID string) (int, error)
}

// ActivityRepository defines the interface for the activity log.
type ActivityRepository interface {
	CreateActivity(ctx context.Context, event *ActivityEvent) error
	// AddDurationToLatest adds minutes to the user's newest event for the
	// document and reports whether such an event existed.
	AddDurationToLatest(ctx context.Context, userID, documentID string, minutes int) (bool, error)
	ListRecentActivity(ctx context.Context, userID string, limit int) ([]*ActivityRecord, error)
	ListActivitySince(ctx context.Context, userID string, since time.Time) ([]*ActivityEvent, error)
	TimeSpentByDocument(ctx context.Context, userID string, limit int) ([]DocumentTimeSpent, error)
	DailySessionsSince(ctx context.Context, userID string, since time.Time) ([]DailySessions, error)
}
