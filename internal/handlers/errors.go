package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"portfolio-service/internal/services"
)

const InvalidIDError = "invalid id"

// serviceErrorStatus maps service-layer sentinel errors to HTTP statuses.
func serviceErrorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateSlug):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrProtectedFolder):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidParent),
		errors.Is(err, services.ErrInvalidTime),
		errors.Is(err, services.ErrSelfReference),
		errors.Is(err, services.ErrDuplicateRelated),
		errors.Is(err, services.ErrRelatedNotFound),
		errors.Is(err, services.ErrDifferentCollection),
		errors.Is(err, services.ErrNotProject):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func serviceError(c *fiber.Ctx, err error) error {
	return c.Status(serviceErrorStatus(err)).JSON(fiber.Map{
		"error": true, "message": err.Error(),
	})
}
