package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/realtime"
	"github.com/snapfolio/snapfolio-backend/internal/service"
)

type WebSocketHandler struct {
	hub          *realtime.Hub
	eventService *service.EventService
}

func NewWebSocketHandler(hub *realtime.Hub, eventService *service.EventService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		eventService: eventService,
	}
}

// Upgrade websocket isteği değilse reddeder, etkinliği doğrular
func (h *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(models.ErrorResponse("WebSocket upgrade required"))
	}

	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if _, err := h.eventService.GetEventForGuest(eventID); err != nil {
		return fail(c, err)
	}

	c.Locals("eventID", eventID)
	return c.Next()
}

// Serve bağlantıyı etkinlik odasına kaydeder ve pompaları çalıştırır
func (h *WebSocketHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		eventID := conn.Locals("eventID").(uint)

		client := realtime.NewClient(h.hub, conn, eventID)
		client.Register()
		h.hub.Publish(eventID, realtime.MsgGuestJoined, fiber.Map{"subscribers": h.hub.SubscriberCount(eventID)})

		go client.WritePump()
		client.ReadPump()

		h.hub.Publish(eventID, realtime.MsgGuestLeft, fiber.Map{"subscribers": h.hub.SubscriberCount(eventID)})
	})
}
