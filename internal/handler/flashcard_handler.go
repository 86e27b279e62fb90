package handler

import (
	"study-assistant/internal/dto"
	"study-assistant/internal/service"

	"github.com/gofiber/fiber/v2"
)

// FlashcardHandler handles flashcard HTTP requests
type FlashcardHandler struct {
	flashcards service.FlashcardService
}

func NewFlashcardHandler(flashcards service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{flashcards: flashcards}
}

// GenerateSet handles POST /api/documents/:id/flashcards/generate
func (h *FlashcardHandler) GenerateSet(c *fiber.Ctx) error {
	setID, err := h.flashcards.GenerateFlashcardSet(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.GenerateFlashcardsResponse{SetID: setID})
}

// ListSets handles GET /api/documents/:id/flashcards/sets
func (h *FlashcardHandler) ListSets(c *fiber.Ctx) error {
	sets, err := h.flashcards.ListFlashcardSets(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFlashcardSetsResponse(sets))
}

// GetFlashcards handles GET /api/documents/flashcards/:setId
func (h *FlashcardHandler) GetFlashcards(c *fiber.Ctx) error {
	cards, err := h.flashcards.GetFlashcards(c.UserContext(), c.Params("setId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFlashcardsResponse(cards))
}

// DeleteSet handles DELETE /api/documents/flashcards/:setId
func (h *FlashcardHandler) DeleteSet(c *fiber.Ctx) error {
	deleted, err := h.flashcards.DeleteFlashcardSet(c.UserContext(), c.Params("setId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: deleted})
}
