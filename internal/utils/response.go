package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponseStruct defines the schema for error responses. Errors carries
// one entry per invalid field and is empty for anything but validation
// failures.
type ErrorResponseStruct struct {
	Code    int               `json:"code"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// GeneralError sends an error response with an empty field-error map
func GeneralError(c *fiber.Ctx, code int, title, message string) error {
	return c.Status(code).JSON(ErrorResponseStruct{
		Code:    code,
		Title:   title,
		Message: message,
		Errors:  map[string]string{},
	})
}

// NotFoundResponse sends a 404 with the standard not-found title
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return GeneralError(c, fiber.StatusNotFound, "not-found", message)
}

// BadRequestResponse sends a 400 with the standard bad-request title
func BadRequestResponse(c *fiber.Ctx, message string) error {
	return GeneralError(c, fiber.StatusBadRequest, "bad-request", message)
}

// ValidationErrorResponse sends a 400 carrying the field→message map
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponseStruct{
		Code:    fiber.StatusBadRequest,
		Title:   "bad-request",
		Message: "Validation error",
		Errors:  errors,
	})
}
