package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/service"
	"github.com/snapfolio/snapfolio-backend/pkg/utils"
)

type AlbumHandler struct {
	albumService *service.AlbumService
}

func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

func (h *AlbumHandler) CreateAlbum(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	var req models.AlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := utils.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	album, err := h.albumService.CreateAlbum(eventID, userID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(album, "Album created successfully"))
}

func (h *AlbumHandler) GetEventAlbums(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	albums, err := h.albumService.GetEventAlbums(eventID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(albums, "Albums retrieved successfully"))
}

func (h *AlbumHandler) GetAlbumMedia(c *fiber.Ctx) error {
	albumID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	media, err := h.albumService.GetAlbumMedia(albumID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	responses := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		responses = append(responses, models.NewMediaResponse(&media[i]))
	}
	return c.JSON(models.SuccessResponse(responses, "Album media retrieved successfully"))
}

func (h *AlbumHandler) UpdateAlbum(c *fiber.Ctx) error {
	albumID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	var req models.UpdateAlbumRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	album, err := h.albumService.UpdateAlbum(albumID, userID, req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(album, "Album updated successfully"))
}

func (h *AlbumHandler) DeleteAlbum(c *fiber.Ctx) error {
	albumID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	if err := h.albumService.DeleteAlbum(albumID, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(nil, "Album deleted successfully"))
}

// AssignByDate medyayı etkinlik tarihine göre albüme taşır
func (h *AlbumHandler) AssignByDate(c *fiber.Ctx) error {
	mediaID, err := parseID(c, "mediaId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	media, err := h.albumService.AssignByEventDate(mediaID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(models.NewMediaResponse(media), "Media reassigned successfully"))
}
