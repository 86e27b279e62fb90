package handler

import (
	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/logger"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizzes   service.QuizService
	activity  service.ActivityService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizzes service.QuizService, activity service.ActivityService) *QuizHandler {
	return &QuizHandler{
		quizzes:   quizzes,
		activity:  activity,
		validator: validation.NewValidator(),
	}
}

// Generate handles POST /api/documents/:id/quizzes/generate
func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateGenerateQuizRequest(req.NumQuestions); len(errs) > 0 {
		return errs
	}

	quiz, err := h.quizzes.GenerateQuiz(c.UserContext(), c.Params("id"), req.NumQuestions)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.GenerateQuizResponse{Quiz: dto.NewQuizResponse(quiz)})
}

// List handles GET /api/documents/:id/quizzes
func (h *QuizHandler) List(c *fiber.Ctx) error {
	quizzes, err := h.quizzes.ListQuizzes(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuizzesResponse(quizzes))
}

// GetQuestions handles GET /api/documents/quizzes/:quizId/questions
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	questions, err := h.quizzes.GetQuizQuestions(c.UserContext(), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizQuestionsResponse{Questions: dto.NewQuizQuestionResponses(questions)})
}

// Submit handles POST /api/documents/quizzes/:quizId/submit and records the
// attempt in the user's activity log.
func (h *QuizHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	userID := req.UserID.String()
	if errs := h.validator.ValidateSubmitQuizRequest(userID, req.Answers); len(errs) > 0 {
		return errs
	}

	quizID := c.Params("quizId")
	result, err := h.quizzes.SubmitQuiz(c.UserContext(), quizID, req.Answers)
	if err != nil {
		return err
	}

	// The submission is already stored; a lost activity row is only logged.
	event := &domain.ActivityEvent{UserID: userID, Type: domain.ActivityQuizAttempt, QuizID: &quizID}
	if err := h.activity.LogActivity(c.UserContext(), event); err != nil {
		logger.Get().Warn("Failed to record quiz attempt",
			zap.String("quiz_id", quizID),
			zap.String("user_id", userID),
			zap.Error(err))
	}

	return c.JSON(dto.NewSubmitQuizResponse(result))
}

// Delete handles DELETE /api/documents/quizzes/:quizId
func (h *QuizHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.quizzes.DeleteQuiz(c.UserContext(), c.Params("quizId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: deleted})
}
