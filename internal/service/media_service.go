package service

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/pkg/storage"
	"go.uber.org/zap"
)

const liveFeedLimit = 10

func liveFeedKey(eventID uint) string {
	return fmt.Sprintf("event:%d:livefeed", eventID)
}

type MediaService struct {
	mediaRepo    MediaStore
	eventRepo    EventStore
	downloadRepo DownloadLogStore
	blobStore    storage.BlobStorage
	redisClient  *redis.Client // nil olabilir, canlı akış DB'ye düşer
	logger       *zap.Logger
}

func NewMediaService(
	mediaRepo MediaStore,
	eventRepo EventStore,
	downloadRepo DownloadLogStore,
	blobStore storage.BlobStorage,
	redisClient *redis.Client,
	logger *zap.Logger,
) *MediaService {
	return &MediaService{
		mediaRepo:    mediaRepo,
		eventRepo:    eventRepo,
		downloadRepo: downloadRepo,
		blobStore:    blobStore,
		redisClient:  redisClient,
		logger:       logger,
	}
}

// GetEventMedia etkinlik medyasını listeler. Misafir görünümü görünürlük
// kapısından geçer (visible_at <= now), host görünümü filtresizdir.
func (s *MediaService) GetEventMedia(eventID uint, hostID uint) ([]models.Media, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	if hostID != 0 && event.HostID == hostID {
		return s.mediaRepo.GetByEventID(eventID)
	}

	if event.Visibility == models.VisibilityPrivate {
		return nil, fmt.Errorf("%w: this event is private", apperr.ErrUnauthorized)
	}
	return s.mediaRepo.GetVisibleByEventID(eventID, time.Now())
}

func (s *MediaService) GetHostMedia(hostID uint) ([]models.Media, error) {
	return s.mediaRepo.GetByHostID(hostID)
}

// ApproveMedia host'un bekleyen medyayı onaylaması
func (s *MediaService) ApproveMedia(mediaID, hostID uint) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(mediaID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(media.EventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	if err := s.mediaRepo.UpdateStatus(mediaID, models.MediaStatusApproved); err != nil {
		return nil, err
	}
	media.Status = models.MediaStatusApproved
	return media, nil
}

// UpdateVisibility host görünürlük zamanını istediği an değiştirebilir,
// geleceğe çekerek görünür medyayı yeniden gizlemek dahil
func (s *MediaService) UpdateVisibility(mediaID, hostID uint, visibleAt time.Time) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(mediaID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(media.EventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	if err := s.mediaRepo.UpdateVisibleAt(mediaID, visibleAt); err != nil {
		return nil, err
	}
	media.VisibleAt = visibleAt
	return media, nil
}

// FetchContent tüm bayt servis yolları için TEK yetkilendirme kuralını
// uygular: medya çağırana görünür olmalı (host kapıyı atlar); indirme
// semantiği ek olarak etkinliğin AllowDownload bayrağını ister ve
// indirme kaydı düşer. Inline gösterim AllowDownload'a takılmaz.
func (s *MediaService) FetchContent(ctx context.Context, mediaID, hostID uint, guestID *uint, guestName string, wantsDownload bool) (io.ReadCloser, *models.Media, error) {
	media, err := s.mediaRepo.GetByID(mediaID)
	if err != nil {
		return nil, nil, err
	}

	event, err := s.eventRepo.GetByID(media.EventID)
	if err != nil {
		return nil, nil, err
	}

	isHost := hostID != 0 && event.HostID == hostID
	if !isHost && !media.IsVisibleAt(time.Now()) {
		// Henüz görünmeyen medya dışarıya yok gibi davranır
		return nil, nil, apperr.ErrNotFound
	}

	if wantsDownload {
		if !isHost && !event.AllowDownload {
			return nil, nil, fmt.Errorf("%w: downloading is disabled for this event", apperr.ErrUnauthorized)
		}

		if guestName == "" {
			guestName = "Anonymous"
		}
		entry := &models.DownloadLog{
			MediaID:   mediaID,
			GuestID:   guestID,
			GuestName: guestName,
		}
		if err := s.downloadRepo.Create(entry); err != nil {
			// İndirme kaydı tutulamazsa indirme yine sürer
			s.logger.Warn("failed to write download log", zap.Uint("media_id", mediaID), zap.Error(err))
		}
	}

	reader, err := s.blobStore.Download(ctx, media.BlobKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}
	return reader, media, nil
}

// EventArchive etkinliğin tüm medyasını tek zip olarak akıtan bir
// okuyucu döner. Sadece host çağırabilir. Blob'lar okuyucu tüketildikçe
// indirilir, indirilemeyen medya atlanıp loglanır.
func (s *MediaService) EventArchive(ctx context.Context, eventID, hostID uint) (io.ReadCloser, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	media, err := s.mediaRepo.GetByEventID(eventID)
	if err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	go func() {
		zw := zip.NewWriter(pw)
		for i := range media {
			m := &media[i]
			reader, err := s.blobStore.Download(ctx, m.BlobKey)
			if err != nil {
				s.logger.Warn("skipping media in event archive",
					zap.Uint("media_id", m.ID),
					zap.String("blob_key", m.BlobKey),
					zap.Error(err))
				continue
			}
			// Aynı dosya adı birden fazla yüklenebilir, medya id'si öne eklenir
			entry, err := zw.Create(fmt.Sprintf("%d-%s", m.ID, m.FileName))
			if err != nil {
				reader.Close()
				pw.CloseWithError(err)
				return
			}
			if _, err := io.Copy(entry, reader); err != nil {
				reader.Close()
				pw.CloseWithError(err)
				return
			}
			reader.Close()
		}
		pw.CloseWithError(zw.Close())
	}()
	return pr, nil
}

// GetLiveFeed en son yüklemeleri döner. Redis varsa oradan okur,
// yoksa veritabanına düşer. Misafir görünümü etkinlik listelemesiyle
// aynı kuraldan geçer: private etkinlik reddedilir, yalnızca görünür
// medya akışa girer. Host yeniden gizlenmiş medyayı da görür.
func (s *MediaService) GetLiveFeed(ctx context.Context, eventID, hostID uint) ([]models.MediaResponse, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	isHost := hostID != 0 && event.HostID == hostID
	if !isHost && event.Visibility == models.VisibilityPrivate {
		return nil, fmt.Errorf("%w: this event is private", apperr.ErrUnauthorized)
	}

	if s.redisClient != nil && !isHost {
		items, err := s.redisClient.LRange(ctx, liveFeedKey(eventID), 0, liveFeedLimit-1).Result()
		if err == nil && len(items) > 0 {
			feed := make([]models.MediaResponse, 0, len(items))
			for _, item := range items {
				var resp models.MediaResponse
				if err := json.Unmarshal([]byte(item), &resp); err != nil {
					continue
				}
				// Cache'e girdikten sonra geleceğe çekilen medya okurken elenir
				if resp.VisibleAt.After(now) {
					continue
				}
				feed = append(feed, resp)
			}
			return feed, nil
		}
		if err != nil {
			s.logger.Warn("live feed cache read failed", zap.Uint("event_id", eventID), zap.Error(err))
		}
	}

	var media []models.Media
	if isHost {
		media, err = s.mediaRepo.GetLatestByEventID(eventID, liveFeedLimit)
	} else {
		media, err = s.mediaRepo.GetLatestVisibleByEventID(eventID, liveFeedLimit, now)
	}
	if err != nil {
		return nil, err
	}
	feed := make([]models.MediaResponse, 0, len(media))
	for i := range media {
		feed = append(feed, models.NewMediaResponse(&media[i]))
	}
	return feed, nil
}
