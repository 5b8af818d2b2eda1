package service

import (
	"context"
	"fmt"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/pkg/qrcode"
	"github.com/snapfolio/snapfolio-backend/pkg/storage"
	"go.uber.org/zap"
)

type EventService struct {
	eventRepo       EventStore
	mediaRepo       MediaStore
	guestRepo       GuestStore
	downloadRepo    DownloadLogStore
	guestbookRepo   GuestbookStore
	reactionRepo    ReactionStore
	archiveRepo     ArchiveStore
	albumService    *AlbumService
	qrService       *qrcode.QRService
	blobStore       storage.BlobStorage
	cascadeOnDelete bool
	logger          *zap.Logger
}

func NewEventService(
	eventRepo EventStore,
	mediaRepo MediaStore,
	guestRepo GuestStore,
	downloadRepo DownloadLogStore,
	guestbookRepo GuestbookStore,
	reactionRepo ReactionStore,
	archiveRepo ArchiveStore,
	albumService *AlbumService,
	qrService *qrcode.QRService,
	blobStore storage.BlobStorage,
	cascadeOnDelete bool,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo:       eventRepo,
		mediaRepo:       mediaRepo,
		guestRepo:       guestRepo,
		downloadRepo:    downloadRepo,
		guestbookRepo:   guestbookRepo,
		reactionRepo:    reactionRepo,
		archiveRepo:     archiveRepo,
		albumService:    albumService,
		qrService:       qrService,
		blobStore:       blobStore,
		cascadeOnDelete: cascadeOnDelete,
		logger:          logger,
	}
}

func (s *EventService) CreateEvent(req *models.EventRequest, hostID uint) (*models.Event, error) {
	visibility := req.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	event := &models.Event{
		HostID:            hostID,
		Name:              req.Name,
		Description:       req.Description,
		Date:              req.Date,
		Visibility:        visibility,
		AllowDownload:     true,
		AllowSharing:      true,
		AllowGuestUploads: true,
		ExpiresAt:         time.Now().Add(models.DefaultEventLifetime),
	}
	if req.AllowDownload != nil {
		event.AllowDownload = *req.AllowDownload
	}
	if req.AllowSharing != nil {
		event.AllowSharing = *req.AllowSharing
	}
	if req.AllowGuestUploads != nil {
		event.AllowGuestUploads = *req.AllowGuestUploads
	}
	if req.AllowGuestSchedule != nil {
		event.AllowGuestSchedule = *req.AllowGuestSchedule
	}

	created, err := s.eventRepo.Create(event)
	if err != nil {
		return nil, err
	}

	// Varsayılan albümler etkinlikle birlikte hazır gelir
	if err := s.albumService.SeedDefaultAlbums(created.ID); err != nil {
		s.logger.Error("failed to seed default albums",
			zap.Uint("event_id", created.ID),
			zap.Error(err))
	}

	return created, nil
}

func (s *EventService) GetEvent(eventID uint) (*models.Event, error) {
	return s.eventRepo.GetByID(eventID)
}

// GetEventForGuest misafir erişiminde private etkinlikleri gizler
func (s *EventService) GetEventForGuest(eventID uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.Visibility == models.VisibilityPrivate {
		return nil, fmt.Errorf("%w: this event is private", apperr.ErrUnauthorized)
	}
	return event, nil
}

func (s *EventService) GetHostEvents(hostID uint) ([]models.Event, error) {
	return s.eventRepo.GetByHostID(hostID)
}

func (s *EventService) UpdateEvent(eventID, hostID uint, req *models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Visibility != nil {
		event.Visibility = *req.Visibility
	}
	if req.AllowDownload != nil {
		event.AllowDownload = *req.AllowDownload
	}
	if req.AllowSharing != nil {
		event.AllowSharing = *req.AllowSharing
	}
	if req.AllowGuestUploads != nil {
		event.AllowGuestUploads = *req.AllowGuestUploads
	}
	if req.AllowGuestSchedule != nil {
		event.AllowGuestSchedule = *req.AllowGuestSchedule
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent etkinliği siler. cascadeOnDelete açıksa önce bütün
// türev kayıtlar ve blob'lar temizlenir, kapalıysa yalnızca event
// satırı gider (artıklar sweep'e kalır).
func (s *EventService) DeleteEvent(ctx context.Context, eventID, hostID uint) error {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return err
	}
	if event.HostID != hostID {
		return apperr.ErrUnauthorized
	}

	if s.cascadeOnDelete {
		if err := s.cleanupArtifacts(ctx, eventID); err != nil {
			return err
		}
	}

	return s.eventRepo.Delete(eventID)
}

// cleanupArtifacts blob'ları ve türev kayıtları siler. Blob silme
// hataları loglanır ama akışı durdurmaz, kayıt silme hataları döner.
func (s *EventService) cleanupArtifacts(ctx context.Context, eventID uint) error {
	media, err := s.mediaRepo.GetByEventID(eventID)
	if err != nil {
		return err
	}
	for i := range media {
		if err := s.blobStore.Delete(ctx, media[i].BlobKey); err != nil {
			s.logger.Warn("failed to delete blob",
				zap.Uint("event_id", eventID),
				zap.String("blob_key", media[i].BlobKey),
				zap.Error(err))
		}
	}

	// Sıralama FK zincirine göre: önce medyaya bağlı kayıtlar
	if err := s.downloadRepo.DeleteByEventID(eventID); err != nil {
		return err
	}
	if err := s.reactionRepo.DeleteByEventID(eventID); err != nil {
		return err
	}
	if err := s.guestbookRepo.DeleteByEventID(eventID); err != nil {
		return err
	}
	if err := s.mediaRepo.DeleteByEventID(eventID); err != nil {
		return err
	}
	if err := s.albumService.DeleteEventAlbums(eventID); err != nil {
		return err
	}
	if err := s.guestRepo.DeleteByEventID(eventID); err != nil {
		return err
	}
	return nil
}

// GenerateQR idempotenttir: daha önce üretilmiş kod varsa onu döner
func (s *EventService) GenerateQR(eventID, hostID uint) (*models.QRResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	uploadURL := s.qrService.UploadURL(eventID)

	if event.QRCodeURL != "" {
		return &models.QRResponse{QRUploadURL: event.QRCodeURL}, nil
	}

	png, err := s.qrService.GenerateQRCode(uploadURL, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	event.QRCodeURL = uploadURL
	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}

	return &models.QRResponse{
		QRUploadURL: uploadURL,
		QRImage:     png,
	}, nil
}

func (s *EventService) GetArchivedEvents(hostID uint) ([]models.ArchivedEvent, error) {
	return s.archiveRepo.GetByHostID(hostID)
}

// ArchiveExpired süresi dolan etkinlikleri özet kayda çevirir ve
// içerikleriyle birlikte siler. Periyodik sweep tarafından çağrılır.
func (s *EventService) ArchiveExpired(ctx context.Context) error {
	expired, err := s.eventRepo.FindExpired(time.Now())
	if err != nil {
		return err
	}

	for i := range expired {
		event := &expired[i]
		archived := &models.ArchivedEvent{
			OriginalEventID: event.ID,
			HostID:          event.HostID,
			Name:            event.Name,
			Description:     event.Description,
			Date:            event.Date,
			MediaCount:      event.MediaCount,
			ArchivedAt:      time.Now(),
		}
		if err := s.archiveRepo.Create(archived); err != nil {
			s.logger.Error("failed to archive event",
				zap.Uint("event_id", event.ID),
				zap.Error(err))
			continue
		}

		if err := s.cleanupArtifacts(ctx, event.ID); err != nil {
			s.logger.Error("failed to clean up expired event",
				zap.Uint("event_id", event.ID),
				zap.Error(err))
			continue
		}
		if err := s.eventRepo.Delete(event.ID); err != nil {
			s.logger.Error("failed to delete expired event",
				zap.Uint("event_id", event.ID),
				zap.Error(err))
		}
	}
	return nil
}

// RunArchivalSweep arka planda periyodik arşivleme döngüsü
func (s *EventService) RunArchivalSweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.ArchiveExpired(ctx); err != nil {
				s.logger.Error("archival sweep failed", zap.Error(err))
			}
		}
	}
}
