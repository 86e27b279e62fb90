package middleware

import (
	"study-assistant/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateIDParam rejects requests whose path parameter is not an entity id.
func (vm *ValidationMiddleware) ValidateIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateID(param, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}

// ValidateUserIDParam rejects requests with a malformed user id in the path.
func (vm *ValidationMiddleware) ValidateUserIDParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errs := vm.validator.ValidateUserID(param, c.Params(param)); len(errs) > 0 {
			return errs
		}
		return c.Next()
	}
}
