package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"portfolio-service/internal/services"
)

func TestServiceErrorStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", gorm.ErrRecordNotFound, fiber.StatusNotFound},
		{"wrapped not found", errors.Wrap(gorm.ErrRecordNotFound, "failed to load"), fiber.StatusNotFound},
		{"duplicate slug", services.ErrDuplicateSlug, fiber.StatusConflict},
		{"protected folder", services.ErrProtectedFolder, fiber.StatusForbidden},
		{"file too large", services.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge},
		{"invalid name", services.ErrInvalidName, fiber.StatusBadRequest},
		{"invalid time", services.ErrInvalidTime, fiber.StatusBadRequest},
		{"cross-collection swap", services.ErrDifferentCollection, fiber.StatusBadRequest},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := serviceErrorStatus(tc.err); got != tc.want {
				t.Errorf("status = %d, want %d", got, tc.want)
			}
		})
	}
}
