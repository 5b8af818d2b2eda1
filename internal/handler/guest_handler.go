package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/service"
	"github.com/snapfolio/snapfolio-backend/pkg/utils"
)

type GuestHandler struct {
	guestService *service.GuestService
}

func NewGuestHandler(guestService *service.GuestService) *GuestHandler {
	return &GuestHandler{guestService: guestService}
}

// RegisterGuest misafirin QR sonrası kendini tanıtması. Dönen token
// cookie olarak set edilir, sonraki yüklemeler aynı misafire bağlanır.
func (h *GuestHandler) RegisterGuest(c *fiber.Ctx) error {
	var req models.RegisterGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	guest, err := h.guestService.RegisterGuest(req)
	if err != nil {
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     guestTokenCookie,
		Value:    guest.GuestToken,
		MaxAge:   service.GuestTokenMaxAge,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(guest, "Guest registered successfully"))
}
