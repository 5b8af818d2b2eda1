package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/service"
	"github.com/snapfolio/snapfolio-backend/pkg/utils"
)

type GuestbookHandler struct {
	guestbookService *service.GuestbookService
	guestService     *service.GuestService
}

func NewGuestbookHandler(guestbookService *service.GuestbookService, guestService *service.GuestService) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookService: guestbookService,
		guestService:     guestService,
	}
}

func (h *GuestbookHandler) AddMessage(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var req models.GuestbookMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	// Token varsa mesaj misafire bağlanır, yoksa anonim kalır
	var guestID *uint
	if guest, err := h.guestService.LookupByToken(c.Cookies(guestTokenCookie)); err == nil {
		guestID = &guest.ID
	}

	entry, err := h.guestbookService.AddMessage(eventID, guestID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(entry, "Message added successfully"))
}

func (h *GuestbookHandler) GetMessages(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	entries, err := h.guestbookService.GetMessages(eventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(entries, "Messages retrieved successfully"))
}

func (h *GuestbookHandler) ReactToMessage(c *fiber.Ctx) error {
	entryID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var req models.GuestbookReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	entry, err := h.guestbookService.ReactToMessage(entryID, req.ReactionType)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(entry, "Reaction added successfully"))
}

func (h *GuestbookHandler) ReactToMedia(c *fiber.Ctx) error {
	var req models.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	reaction, err := h.guestbookService.ReactToMedia(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(reaction, "Reaction added successfully"))
}

func (h *GuestbookHandler) GetMediaReactions(c *fiber.Ctx) error {
	mediaID, err := parseID(c, "mediaId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	reactions, err := h.guestbookService.GetMediaReactions(mediaID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(reactions, "Reactions retrieved successfully"))
}
