package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the inner payload of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorResponse is the envelope returned on any failed request:
// {"error": {"message": "..."}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// Error writes the standard error envelope with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: ErrorBody{Message: message}})
}

// BadRequest sends a 400 with the standard envelope.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 with the standard envelope.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 with the standard envelope.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 with the standard envelope.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 with the standard envelope.
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
