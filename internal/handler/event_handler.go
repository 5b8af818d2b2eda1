package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/service"
	"github.com/snapfolio/snapfolio-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.CreateEvent(&req, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *EventHandler) GetEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.GetEvent(eventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

// GetPublicEvent misafirlerin QR linkinden ulaştığı endpoint
func (h *EventHandler) GetPublicEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.GetEventForGuest(eventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(event, "Event retrieved successfully"))
}

func (h *EventHandler) GetMyEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	events, err := h.eventService.GetHostEvents(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	var req models.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	event, err := h.eventService.UpdateEvent(eventID, userID, &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	if err := h.eventService.DeleteEvent(c.Context(), eventID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}

// GenerateQR idempotent: var olan kod tekrar üretilmez
func (h *EventHandler) GenerateQR(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	qr, err := h.eventService.GenerateQR(eventID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(qr, "QR code generated successfully"))
}

func (h *EventHandler) GetArchivedEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	archived, err := h.eventService.GetArchivedEvents(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(archived, "Archived events retrieved successfully"))
}
