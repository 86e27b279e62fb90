package service

import (
	"context"
	"fmt"
	"time"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/util"

	"go.uber.org/zap"
)

// QuizService drives the quiz lifecycle: Generated, then Submitted.
type QuizService interface {
	GenerateQuiz(ctx context.Context, documentID string, n int) (*domain.Quiz, error)
	ListQuizzes(ctx context.Context, documentID string) ([]*domain.Quiz, error)
	GetQuizQuestions(ctx context.Context, quizID string) ([]*domain.QuizQuestion, error)
	SubmitQuiz(ctx context.Context, quizID string, answers []int) (*domain.QuizResult, error)
	DeleteQuiz(ctx context.Context, quizID string) (bool, error)
}

type quizService struct {
	quizRepo  domain.QuizRepository
	docRepo   domain.DocumentRepository
	texts     DocumentTextService
	generator QuizGenerator
	txManager domain.TransactionManager
}

func NewQuizService(
	quizRepo domain.QuizRepository,
	docRepo domain.DocumentRepository,
	texts DocumentTextService,
	generator QuizGenerator,
	txManager domain.TransactionManager,
) QuizService {
	return &quizService{
		quizRepo:  quizRepo,
		docRepo:   docRepo,
		texts:     texts,
		generator: generator,
		txManager: txManager,
	}
}

// GenerateQuiz stores the quiz and its questions atomically. A quiz whose
// generation produced no questions is still stored.
func (s *quizService) GenerateQuiz(ctx context.Context, documentID string, n int) (*domain.Quiz, error) {
	if err := domain.ValidateQuestionCount(n); err != nil {
		return nil, err
	}

	doc, err := s.docRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load document", err)
	}
	if doc == nil {
		return nil, domain.NewDocumentNotFoundError(documentID)
	}

	text := s.texts.Text(ctx, doc)
	generated := s.generator.Generate(ctx, text, n)
	if len(generated) > n {
		// score is bounded by num_questions, so extra questions are dropped.
		logger.Get().Warn("Model returned more questions than requested",
			zap.String("document_id", documentID),
			zap.Int("requested", n),
			zap.Int("received", len(generated)))
		generated = generated[:n]
	}

	quiz := domain.NewQuiz(util.NewULID(), documentID, n)
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.quizRepo.CreateQuiz(txCtx, quiz); err != nil {
			return err
		}
		for i, g := range generated {
			q := &domain.QuizQuestion{
				ID:            util.NewULID(),
				QuizID:        quiz.ID,
				Position:      i,
				Question:      g.Question,
				Options:       g.Options,
				CorrectOption: g.CorrectOption,
			}
			if err := s.quizRepo.CreateQuizQuestion(txCtx, q); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.String("document_id", documentID),
		zap.Int("requested", n),
		zap.Int("stored_questions", len(generated)))
	return quiz, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, documentID string) ([]*domain.Quiz, error) {
	quizzes, err := s.quizRepo.ListQuizzesByDocument(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	return quizzes, nil
}

func (s *quizService) GetQuizQuestions(ctx context.Context, quizID string) ([]*domain.QuizQuestion, error) {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.quizRepo.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz questions", err)
	}
	return questions, nil
}

// SubmitQuiz scores answers against the stored questions in position order.
// Nothing is written when the answer count does not match. Resubmission
// overwrites the previous result.
func (s *quizService) SubmitQuiz(ctx context.Context, quizID string, answers []int) (*domain.QuizResult, error) {
	l := logger.Get()

	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}

	questions, err := s.quizRepo.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz questions", err)
	}

	score, err := domain.ScoreAnswers(questions, answers)
	if err != nil {
		return nil, err
	}

	if quiz.Completed {
		l.Info("Quiz resubmitted, overwriting previous result",
			zap.String("quiz_id", quizID),
			zap.Intp("previous_score", quiz.Score))
	}

	completedAt := time.Now()
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for _, q := range questions {
			if err := s.quizRepo.UpdateQuestionUserAnswer(txCtx, q.ID, *q.UserAnswer); err != nil {
				return err
			}
		}
		return s.quizRepo.UpdateQuizResult(txCtx, quizID, score, completedAt)
	})
	if err != nil {
		return nil, domain.NewInternalError(fmt.Sprintf("Failed to save result for quiz %s", quizID), err)
	}

	l.Info("Quiz submitted", zap.String("quiz_id", quizID), zap.Int("score", score), zap.Int("total", len(questions)))
	return &domain.QuizResult{Score: score, Total: len(questions), Questions: questions}, nil
}

// DeleteQuiz removes the questions and then the quiz row.
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) (bool, error) {
	var deleted bool
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.quizRepo.DeleteQuestionsByQuiz(txCtx, quizID); err != nil {
			return err
		}
		var err error
		deleted, err = s.quizRepo.DeleteQuiz(txCtx, quizID)
		return err
	})
	if err != nil {
		return false, domain.NewInternalError("Failed to delete quiz", err)
	}
	return deleted, nil
}
