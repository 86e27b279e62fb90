package handler

import (
	"study-assistant/internal/domain"
	"study-assistant/internal/dto"
	"study-assistant/internal/service"
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ActivityHandler handles activity logging and analytics requests
type ActivityHandler struct {
	activity  service.ActivityService
	validator *validation.Validator
}

func NewActivityHandler(activity service.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activity:  activity,
		validator: validation.NewValidator(),
	}
}

// RecentActivity handles GET /api/documents/activity/:userId
func (h *ActivityHandler) RecentActivity(c *fiber.Ctx) error {
	items, err := h.activity.RecentActivity(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewActivityFeedResponse(items))
}

// Analytics handles GET /api/documents/analytics/:userId
func (h *ActivityHandler) Analytics(c *fiber.Ctx) error {
	analytics, err := h.activity.Analytics(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAnalyticsResponse(analytics))
}

// LogAccess handles POST /api/documents/:id/access
func (h *ActivityHandler) LogAccess(c *fiber.Ctx) error {
	var req dto.AccessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	userID := req.UserID.String()
	if errs := h.validator.ValidateUserID("userId", userID); len(errs) > 0 {
		return errs
	}

	documentID := c.Params("id")
	err := h.activity.LogActivity(c.UserContext(), &domain.ActivityEvent{
		UserID:     userID,
		Type:       domain.ActivityDocumentAccess,
		DocumentID: &documentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// LogDuration handles POST /api/documents/:id/duration
func (h *ActivityHandler) LogDuration(c *fiber.Ctx) error {
	var req dto.DurationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	userID := req.UserID.String()
	if errs := h.validator.ValidateDurationRequest(userID, req.DurationMinutes); len(errs) > 0 {
		return errs
	}

	if err := h.activity.LogDuration(c.UserContext(), userID, c.Params("id"), req.DurationMinutes); err != nil {
		return err
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
