package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/internal/service"
)

const guestTokenCookie = "guest_token"

type MediaHandler struct {
	uploadService *service.UploadService
	mediaService  *service.MediaService
	guestService  *service.GuestService
}

func NewMediaHandler(
	uploadService *service.UploadService,
	mediaService *service.MediaService,
	guestService *service.GuestService,
) *MediaHandler {
	return &MediaHandler{
		uploadService: uploadService,
		mediaService:  mediaService,
		guestService:  guestService,
	}
}

// uploadInputFromForm multipart form alanlarını yükleme girdisine çevirir
func uploadInputFromForm(c *fiber.Ctx, eventID, hostID uint) (*service.UploadInput, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, errors.New("no file uploaded")
	}

	input := &service.UploadInput{
		EventID:    eventID,
		HostID:     hostID,
		GuestToken: c.Cookies(guestTokenCookie),
		GuestName:  c.FormValue("guest_name"),
		GuestEmail: c.FormValue("guest_email"),
		FileName:   file.Filename,
		MimeType:   file.Header.Get("Content-Type"),
		FileSize:   file.Size,
	}

	if v := c.FormValue("album_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, errors.New("invalid album_id")
		}
		albumID := uint(id)
		input.AlbumID = &albumID
	}

	if v := c.FormValue("visible_at"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, errors.New("visible_at must be RFC3339")
		}
		input.VisibleAt = &t
	}

	body, err := file.Open()
	if err != nil {
		return nil, errors.New("failed to read uploaded file")
	}
	input.Body = body
	return input, nil
}

// GuestUpload QR linkinden gelen misafir yüklemesi. Yeni misafir
// üretildiyse token cookie olarak set edilir.
func (h *MediaHandler) GuestUpload(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	input, err := uploadInputFromForm(c, eventID, 0)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.uploadService.Upload(c.Context(), *input)
	if err != nil {
		var finalizeErr *apperr.FinalizeError
		if errors.As(err, &finalizeErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Upload could not be finalized"))
		}
		return fail(c, err)
	}

	if result.NewGuest {
		c.Cookie(&fiber.Cookie{
			Name:     guestTokenCookie,
			Value:    result.GuestToken,
			MaxAge:   service.GuestTokenMaxAge,
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}

	return c.JSON(models.SuccessResponse(models.NewMediaResponse(result.Media), "Media uploaded successfully"))
}

// HostUpload oturum açmış host'un kendi etkinliğine yüklemesi
func (h *MediaHandler) HostUpload(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	input, err := uploadInputFromForm(c, eventID, userID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.uploadService.Upload(c.Context(), *input)
	if err != nil {
		var finalizeErr *apperr.FinalizeError
		if errors.As(err, &finalizeErr) {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Upload could not be finalized"))
		}
		return fail(c, err)
	}

	return c.JSON(models.SuccessResponse(models.NewMediaResponse(result.Media), "Media uploaded successfully"))
}

// GetEventMedia misafirler için görünürlük filtresi uygular, host
// kendi etkinliğinde her şeyi görür
func (h *MediaHandler) GetEventMedia(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	media, err := h.mediaService.GetEventMedia(eventID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}

	responses := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		responses = append(responses, models.NewMediaResponse(&media[i]))
	}
	return c.JSON(models.SuccessResponse(responses, "Media retrieved successfully"))
}

func (h *MediaHandler) GetMyMedia(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	media, err := h.mediaService.GetHostMedia(userID)
	if err != nil {
		return fail(c, err)
	}

	responses := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		responses = append(responses, models.NewMediaResponse(&media[i]))
	}
	return c.JSON(models.SuccessResponse(responses, "Media retrieved successfully"))
}

func (h *MediaHandler) ApproveMedia(c *fiber.Ctx) error {
	mediaID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	media, err := h.mediaService.ApproveMedia(mediaID, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(models.NewMediaResponse(media), "Media approved"))
}

func (h *MediaHandler) UpdateVisibility(c *fiber.Ctx) error {
	mediaID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	var req models.UpdateVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	media, err := h.mediaService.UpdateVisibility(mediaID, userID, req.VisibleAt)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(models.NewMediaResponse(media), "Visibility updated"))
}

// ServeFile inline gösterim, DownloadFile indirme semantiği. İkisi de
// aynı yetkilendirme kuralından geçer, indirme ek olarak AllowDownload
// ister ve indirme kaydı düşer.
func (h *MediaHandler) ServeFile(c *fiber.Ctx) error {
	return h.serveContent(c, false)
}

func (h *MediaHandler) DownloadFile(c *fiber.Ctx) error {
	return h.serveContent(c, true)
}

func (h *MediaHandler) serveContent(c *fiber.Ctx, wantsDownload bool) error {
	mediaID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var guestID *uint
	guestName := ""
	if guest, err := h.guestService.LookupByToken(c.Cookies(guestTokenCookie)); err == nil {
		guestID = &guest.ID
		guestName = guest.Name
	}

	reader, media, err := h.mediaService.FetchContent(c.Context(), mediaID, currentUserID(c), guestID, guestName, wantsDownload)
	if err != nil {
		return fail(c, err)
	}
	// Gövde handler döndükten sonra okunur, kapatma fasthttp'e kalır

	c.Set(fiber.HeaderContentType, media.MimeType)
	if wantsDownload {
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+media.FileName+`"`)
	}
	return c.SendStream(reader)
}

// DownloadAllMedia etkinliğin tüm medyasını tek zip dosyası olarak
// indirir, sadece host erişebilir
func (h *MediaHandler) DownloadAllMedia(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}
	userID := c.Locals("userID").(uint)

	archive, err := h.mediaService.EventArchive(c.Context(), eventID, userID)
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="event-%d-media.zip"`, eventID))
	return c.SendStream(archive)
}

// GetLiveFeed etkinliğin en son yüklemeleri
func (h *MediaHandler) GetLiveFeed(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	feed, err := h.mediaService.GetLiveFeed(c.Context(), eventID, currentUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(models.SuccessResponse(feed, "Live feed retrieved successfully"))
}
