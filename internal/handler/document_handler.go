package handler

import (
	"io"
	"strings"

	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document HTTP requests
type DocumentHandler struct {
	documents service.DocumentService
	validator *validation.Validator
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(documents service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
		validator: validation.NewValidator(),
	}
}

// ListDocuments handles GET /api/documents. With a userId query only that
// user's documents are returned.
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	var (
		docs []*domain.Document
		err  error
	)
	if userID := c.Query("userId"); userID != "" {
		if errs := h.validator.ValidateUserID("userId", userID); len(errs) > 0 {
			return errs
		}
		docs, err = h.documents.ListByOwner(c.UserContext(), userID)
	} else {
		docs, err = h.documents.ListAll(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentResponses(docs))
}

// Upload handles POST /api/documents/upload (multipart: file, title, user_id)
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	userID := c.FormValue("user_id")
	if errs := h.validator.ValidateUserID("user_id", userID); len(errs) > 0 {
		return errs
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return domain.ValidationErrors{domain.NewMissingFieldError("file")}
	}
	f, err := fh.Open()
	if err != nil {
		return domain.NewInternalError("Failed to open uploaded file", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.NewInternalError("Failed to read uploaded file", err)
	}

	doc, err := h.documents.Upload(c.UserContext(), domain.UploadInput{
		OwnerID:  userID,
		Title:    c.FormValue("title"),
		Filename: fh.Filename,
		Content:  content,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		Success:  true,
		Document: dto.NewDocumentResponse(doc),
	})
}

// GetDocument handles GET /api/documents/:id
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	doc, err := h.documents.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentResponse(doc))
}

// DeleteDocument handles DELETE /api/documents/:id
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	deleted, err := h.documents.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: deleted})
}

// GetText handles GET /api/documents/:id/text
func (h *DocumentHandler) GetText(c *fiber.Ctx) error {
	text, err := h.documents.ExtractText(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.TextResponse{Text: text})
}

// Summarize handles POST /api/documents/:id/summary
func (h *DocumentHandler) Summarize(c *fiber.Ctx) error {
	summary, err := h.documents.Summarize(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.SummaryResponse{Summary: summary})
}

// Chat handles POST /api/documents/:id/chat
func (h *DocumentHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Question = strings.TrimSpace(req.Question)
	if errs := h.validator.ValidateChatRequest(req.Question); len(errs) > 0 {
		return errs
	}

	answer, err := h.documents.Chat(c.UserContext(), c.Params("id"), req.Question, req.DocumentText)
	if err != nil {
		return err
	}
	return c.JSON(dto.ChatResponse{Answer: answer})
}

// Stats handles GET /api/documents/stats/:userId
func (h *DocumentHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.documents.Stats(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewStatsResponse(stats))
}
