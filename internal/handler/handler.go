package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
)

// fail apperr sentinel'lerini HTTP durum kodlarına çevirir
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, apperr.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + param)
	}
	return uint(id), nil
}

// currentUserID auth middleware'den geçmemiş rotalarda 0 döner
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
