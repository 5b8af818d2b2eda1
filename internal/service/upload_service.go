package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"github.com/snapfolio/snapfolio-backend/pkg/storage"
	"go.uber.org/zap"
)

// AlbumResolver upload coordinator'ın albüm politikasına açılan kapısı
type AlbumResolver interface {
	ValidateAlbum(eventID, albumID uint) (*models.Album, error)
	ResolveForMime(eventID uint, mimeType string) (*models.Album, error)
	IncrementMediaCount(albumID uint) error
}

// GuestResolver misafir kimliğini çözer veya yeni misafir üretir
type GuestResolver interface {
	ResolveOrCreate(eventID uint, token, name, email string) (*models.Guest, bool, error)
}

type UploadInput struct {
	EventID    uint
	AlbumID    *uint
	VisibleAt  *time.Time
	HostID     uint // 0 ise misafir yüklemesi
	GuestToken string
	GuestName  string
	GuestEmail string
	FileName   string
	MimeType   string
	FileSize   int64
	Body       io.Reader
}

type UploadResult struct {
	Media *models.Media
	// Yeni misafir üretildiyse caller bu token'ı cookie olarak vermeli
	GuestToken string
	NewGuest   bool
}

// UploadService yükleme hattını koordine eder: doğrulama, blob yazımı,
// kayıt oluşturma, liste eklemeleri ve fanout. Tüm bağımlılıklar dışarıdan
// verilir, servis kendi yaşam döngüsünü yönetmez.
type UploadService struct {
	eventRepo EventStore
	mediaRepo MediaStore
	albums    AlbumResolver
	guests    GuestResolver
	blobStore storage.BlobStorage
	notifier  Notifier
	logger    *zap.Logger
}

func NewUploadService(
	eventRepo EventStore,
	mediaRepo MediaStore,
	albums AlbumResolver,
	guests GuestResolver,
	blobStore storage.BlobStorage,
	notifier Notifier,
	logger *zap.Logger,
) *UploadService {
	return &UploadService{
		eventRepo: eventRepo,
		mediaRepo: mediaRepo,
		albums:    albums,
		guests:    guests,
		blobStore: blobStore,
		notifier:  notifier,
		logger:    logger,
	}
}

// ComputeVisibleAt görünürlük zamanını hesaplar: istek bir zaman
// vermediyse yükleme anı kullanılır (hemen görünür)
func ComputeVisibleAt(requested *time.Time, now time.Time) time.Time {
	if requested != nil {
		return *requested
	}
	return now
}

// Upload tek bir medya yüklemesini uçtan uca işler.
//
// Sıralama sabittir: blob yazımı medya kaydından, medya kaydı liste
// eklemelerinden, liste eklemeleri fanout'tan önce gelir. Blob yazımı
// başarısız olursa hiçbir kalıcı iz kalmaz. Blob yazıldıktan sonra bir
// kayıt adımı başarısız olursa *apperr.FinalizeError döner ve sahipsiz
// blob'un anahtarı log'a düşer; coordinator blob'u geri silmeyi denemez.
func (s *UploadService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	// Girdi kontrolleri, hiçbir yan etki üretmeden
	if input.Body == nil || input.FileSize <= 0 {
		return nil, fmt.Errorf("%w: empty payload", apperr.ErrInvalidInput)
	}
	if !strings.HasPrefix(input.MimeType, "image/") && !strings.HasPrefix(input.MimeType, "video/") {
		return nil, fmt.Errorf("%w: unsupported media type %q", apperr.ErrInvalidInput, input.MimeType)
	}
	if input.FileName == "" {
		return nil, fmt.Errorf("%w: missing file name", apperr.ErrInvalidInput)
	}

	// Event'i kontrol et
	event, err := s.eventRepo.GetByID(input.EventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	// Yetki kontrolü
	isGuest := input.HostID == 0
	if isGuest && !event.AllowGuestUploads {
		return nil, fmt.Errorf("%w: guest uploads are not allowed for this event", apperr.ErrUnauthorized)
	}
	if !isGuest && event.HostID != input.HostID {
		return nil, fmt.Errorf("%w: not the event host", apperr.ErrUnauthorized)
	}
	if now.After(event.ExpiresAt) {
		return nil, fmt.Errorf("%w: this event has expired", apperr.ErrUnauthorized)
	}

	// Açık albüm verildiyse blob yazımından ÖNCE doğrula,
	// geçersiz istek hiçbir şey yazmadan dönmeli
	var album *models.Album
	if input.AlbumID != nil {
		album, err = s.albums.ValidateAlbum(input.EventID, *input.AlbumID)
		if err != nil {
			return nil, err
		}
	}

	// Misafir kimliğini çöz veya üret
	var guest *models.Guest
	var mintedToken string
	var minted bool
	if isGuest {
		guest, minted, err = s.guests.ResolveOrCreate(input.EventID, input.GuestToken, input.GuestName, input.GuestEmail)
		if err != nil {
			return nil, err
		}
		if minted {
			mintedToken = guest.GuestToken
		}
	}

	// Misafirler etkinlik izin vermedikçe görünürlük planlayamaz
	requestedVisibleAt := input.VisibleAt
	if isGuest && !event.AllowGuestSchedule {
		requestedVisibleAt = nil
	}

	// Blob'u akıt: rastgele id + orijinal isim, benzersiz ama okunabilir
	blobKey := uuid.NewString() + "-" + filepath.Base(input.FileName)
	if err := s.blobStore.Upload(ctx, blobKey, input.Body, input.MimeType); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorage, err)
	}

	// Blob kalıcı; albüm verilmediyse şimdi çöz
	if album == nil {
		album, err = s.albums.ResolveForMime(input.EventID, input.MimeType)
		if err != nil {
			return nil, s.finalizeFailed(input.EventID, blobKey, nil, err)
		}
	}

	media := &models.Media{
		EventID:   input.EventID,
		AlbumID:   &album.ID,
		Type:      models.MediaTypeFromMime(input.MimeType),
		FileName:  input.FileName,
		MimeType:  input.MimeType,
		FileSize:  input.FileSize,
		BlobKey:   blobKey,
		VisibleAt: ComputeVisibleAt(requestedVisibleAt, now),
	}
	if isGuest {
		media.GuestID = &guest.ID
	} else {
		hostID := input.HostID
		media.HostID = &hostID
	}

	// Üç bağımsız yazım: medya kaydı, event listesi, albüm listesi.
	// Hangilerinin bittiğini takip et ki kısmi başarısızlık ayırt edilsin.
	var completed []string

	if err := s.mediaRepo.Create(media); err != nil {
		return nil, s.finalizeFailed(input.EventID, blobKey, completed, err)
	}
	completed = append(completed, apperr.StepMediaRecord)

	if err := s.eventRepo.IncrementMediaCount(event.ID); err != nil {
		return nil, s.finalizeFailed(input.EventID, blobKey, completed, err)
	}
	completed = append(completed, apperr.StepEventAppend)

	if err := s.albums.IncrementMediaCount(album.ID); err != nil {
		return nil, s.finalizeFailed(input.EventID, blobKey, completed, err)
	}

	// Fanout fire-and-forget: başarısızlığı yükleme cevabını etkilemez
	go s.notifier.MediaUploaded(event, media)

	return &UploadResult{
		Media:      media,
		GuestToken: mintedToken,
		NewGuest:   minted,
	}, nil
}

// finalizeFailed sahipsiz kalan blob'u operasyonel olarak bulunabilir
// kılmak için ayrı bir hata tipi döner ve anahtarı log'lar
func (s *UploadService) finalizeFailed(eventID uint, blobKey string, completed []string, err error) error {
	finalizeErr := &apperr.FinalizeError{
		EventID:   eventID,
		BlobKey:   blobKey,
		Completed: completed,
		Err:       err,
	}
	s.logger.Error("upload finalize failed, blob orphaned",
		zap.Uint("event_id", eventID),
		zap.String("blob_key", blobKey),
		zap.Strings("completed_steps", completed),
		zap.Error(err),
	)
	return finalizeErr
}
