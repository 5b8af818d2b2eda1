package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type AlbumService struct {
	albumRepo AlbumStore
	eventRepo EventStore
	mediaRepo MediaStore
}

func NewAlbumService(albumRepo AlbumStore, eventRepo EventStore, mediaRepo MediaStore) *AlbumService {
	return &AlbumService{
		albumRepo: albumRepo,
		eventRepo: eventRepo,
		mediaRepo: mediaRepo,
	}
}

// bucketForMime MIME önekini varsayılan albüm ismine eşler.
// Eşleme deterministik: aynı tip her zaman aynı albüme düşer.
func bucketForMime(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return models.AlbumGroupPhotos
	case strings.HasPrefix(mimeType, "video/"):
		return models.AlbumVideos
	default:
		return models.AlbumCandidMoments
	}
}

// ValidateAlbum açıkça verilen albümün etkinliğe ait olduğunu doğrular
func (s *AlbumService) ValidateAlbum(eventID, albumID uint) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("%w: album not found", apperr.ErrInvalidInput)
		}
		return nil, err
	}
	if album.EventID != eventID {
		return nil, fmt.Errorf("%w: album does not belong to this event", apperr.ErrInvalidInput)
	}
	return album, nil
}

// ResolveForMime MIME tipine göre hedef albümü bulur, yoksa oluşturur
func (s *AlbumService) ResolveForMime(eventID uint, mimeType string) (*models.Album, error) {
	name := bucketForMime(mimeType)
	description := fmt.Sprintf("Auto-created album: %s", name)
	return s.albumRepo.GetOrCreate(eventID, name, description, true)
}

// IncrementMediaCount upload coordinator'ın albüm listesine ekleme adımı
func (s *AlbumService) IncrementMediaCount(albumID uint) error {
	return s.albumRepo.IncrementMediaCount(albumID)
}

// SeedDefaultAlbums etkinlik oluşturulurken varsayılan albüm setini hazırlar
func (s *AlbumService) SeedDefaultAlbums(eventID uint) error {
	for _, def := range models.DefaultAlbums {
		if _, err := s.albumRepo.GetOrCreate(eventID, def.Name, def.Description, true); err != nil {
			return fmt.Errorf("failed to seed album %q: %w", def.Name, err)
		}
	}
	return nil
}

// DeleteEventAlbums etkinlik temizliğinde tüm albümleri kaldırır
func (s *AlbumService) DeleteEventAlbums(eventID uint) error {
	return s.albumRepo.DeleteByEventID(eventID)
}

// AssignByEventDate tarih bazlı ikincil kategorizasyon: etkinlik
// tarihinden önce çekilen medya "Behind the Scenes", sonrası "Main Event"
// albümüne taşınır. Varsayılan yükleme yolunda kullanılmaz, host açıkça
// istediğinde çağrılır.
func (s *AlbumService) AssignByEventDate(mediaID, hostID uint) (*models.Media, error) {
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

	name := models.AlbumMainEvent
	if media.CreatedAt.Before(event.Date) {
		name = models.AlbumBehindScenes
	}

	album, err := s.albumRepo.GetOrCreate(event.ID, name, fmt.Sprintf("Auto-created album: %s", name), true)
	if err != nil {
		return nil, err
	}

	if media.AlbumID != nil {
		if *media.AlbumID == album.ID {
			return media, nil
		}
		if err := s.albumRepo.DecrementMediaCount(*media.AlbumID); err != nil {
			return nil, err
		}
	}

	if err := s.mediaRepo.UpdateAlbum(media.ID, album.ID); err != nil {
		return nil, err
	}
	if err := s.albumRepo.IncrementMediaCount(album.ID); err != nil {
		return nil, err
	}

	media.AlbumID = &album.ID
	return media, nil
}

// CreateAlbum host'un elle albüm oluşturması
func (s *AlbumService) CreateAlbum(eventID, hostID uint, req models.AlbumRequest) (*models.Album, error) {
	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	album := &models.Album{
		EventID:     eventID,
		Name:        req.Name,
		Description: req.Description,
		Visibility:  req.Visibility,
	}
	if album.Visibility == "" {
		album.Visibility = models.VisibilityPublic
	}

	created, err := s.albumRepo.Create(album)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%w: an album with this name already exists for the event", apperr.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AlbumService) GetEventAlbums(eventID uint) ([]models.Album, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.albumRepo.GetByEventID(eventID)
}

// GetAlbumMedia albüm içeriğini listeler. Misafir görünümü etkinlik
// listelemesiyle aynı kuraldan geçer: private etkinlik reddedilir,
// görünürlük filtresi uygulanır. Host filtresiz görür.
func (s *AlbumService) GetAlbumMedia(albumID, hostID uint) ([]models.Media, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(album.EventID)
	if err != nil {
		return nil, err
	}

	if hostID != 0 && event.HostID == hostID {
		return s.mediaRepo.GetByAlbumID(albumID)
	}

	if event.Visibility == models.VisibilityPrivate {
		return nil, fmt.Errorf("%w: this event is private", apperr.ErrUnauthorized)
	}
	return s.mediaRepo.GetVisibleByAlbumID(albumID, time.Now())
}

func (s *AlbumService) UpdateAlbum(albumID, hostID uint, req models.UpdateAlbumRequest) (*models.Album, error) {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(album.EventID)
	if err != nil {
		return nil, err
	}
	if event.HostID != hostID {
		return nil, apperr.ErrUnauthorized
	}

	if req.Name != nil {
		album.Name = *req.Name
	}
	if req.Description != nil {
		album.Description = *req.Description
	}
	if req.Visibility != nil {
		album.Visibility = *req.Visibility
	}

	if err := s.albumRepo.Update(album); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: an album with this name already exists for the event", apperr.ErrInvalidInput)
		}
		return nil, err
	}
	return album, nil
}

func (s *AlbumService) DeleteAlbum(albumID, hostID uint) error {
	album, err := s.albumRepo.GetByID(albumID)
	if err != nil {
		return err
	}

	event, err := s.eventRepo.GetByID(album.EventID)
	if err != nil {
		return err
	}
	if event.HostID != hostID {
		return apperr.ErrUnauthorized
	}

	return s.albumRepo.Delete(albumID)
}
