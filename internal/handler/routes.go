package handler

import (
	"study-assistant/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers bundles the route handlers registered by RegisterRoutes.
type Handlers struct {
	Documents  *DocumentHandler
	Flashcards *FlashcardHandler
	Quizzes    *QuizHandler
	Activity   *ActivityHandler
	Health     *HealthHandler
}

// RegisterRoutes mounts the API. Fixed path segments are registered before
// the /:id routes so they are not captured as document ids.
func RegisterRoutes(app *fiber.App, h Handlers) {
	vm := middleware.NewValidationMiddleware()
	docID := vm.ValidateIDParam("id")
	setID := vm.ValidateIDParam("setId")
	quizID := vm.ValidateIDParam("quizId")
	userID := vm.ValidateUserIDParam("userId")

	if h.Health != nil {
		app.Get("/healthz", h.Health.Check)
	}

	docs := app.Group("/api/documents")

	docs.Get("/", h.Documents.ListDocuments)
	docs.Post("/upload", h.Documents.Upload)

	docs.Get("/stats/:userId", userID, h.Documents.Stats)
	docs.Get("/activity/:userId", userID, h.Activity.RecentActivity)
	docs.Get("/analytics/:userId", userID, h.Activity.Analytics)

	docs.Get("/flashcards/:setId", setID, h.Flashcards.GetFlashcards)
	docs.Delete("/flashcards/:setId", setID, h.Flashcards.DeleteSet)

	docs.Get("/quizzes/:quizId/questions", quizID, h.Quizzes.GetQuestions)
	docs.Post("/quizzes/:quizId/submit", quizID, h.Quizzes.Submit)
	docs.Delete("/quizzes/:quizId", quizID, h.Quizzes.Delete)

	docs.Get("/:id", docID, h.Documents.GetDocument)
	docs.Delete("/:id", docID, h.Documents.DeleteDocument)
	docs.Get("/:id/text", docID, h.Documents.GetText)
	docs.Post("/:id/chat", docID, h.Documents.Chat)
	docs.Post("/:id/summary", docID, h.Documents.Summarize)
	docs.Post("/:id/flashcards/generate", docID, h.Flashcards.GenerateSet)
	docs.Get("/:id/flashcards/sets", docID, h.Flashcards.ListSets)
	docs.Post("/:id/quizzes/generate", docID, h.Quizzes.Generate)
	docs.Get("/:id/quizzes", docID, h.Quizzes.List)
	docs.Post("/:id/access", docID, h.Activity.LogAccess)
	docs.Post("/:id/duration", docID, h.Activity.LogDuration)
}
