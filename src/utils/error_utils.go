// error_utils.go
package utils

import (
	"Backend-Career-Advisor/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleMissing reports unanswered questions by index.
func HandleMissing(c *fiber.Ctx, message string, missing []int) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Status:  fiber.StatusBadRequest,
		Message: message,
		Missing: missing,
	})
}
