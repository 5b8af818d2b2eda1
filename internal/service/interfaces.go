package service

import (
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/models"
)

// Servisler repository'lere bu arayüzler üzerinden bağlanır; böylece
// testlerde entity store, blob store ve fanout birbirinden bağımsız
// olarak stub'lanabilir. Gerçek implementasyonlar internal/repository,
// pkg/storage ve internal/realtime altında.

type EventStore interface {
	Create(event *models.Event) (*models.Event, error)
	GetByID(id uint) (*models.Event, error)
	GetByHostID(hostID uint) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id uint) error
	IncrementMediaCount(id uint) error
	FindExpired(currentTime time.Time) ([]models.Event, error)
}

type AlbumStore interface {
	Create(album *models.Album) (*models.Album, error)
	GetByID(id uint) (*models.Album, error)
	GetByEventID(eventID uint) ([]models.Album, error)
	GetByEventAndName(eventID uint, name string) (*models.Album, error)
	GetOrCreate(eventID uint, name, description string, autoGenerated bool) (*models.Album, error)
	Update(album *models.Album) error
	Delete(id uint) error
	DeleteByEventID(eventID uint) error
	IncrementMediaCount(id uint) error
	DecrementMediaCount(id uint) error
}

type MediaStore interface {
	Create(media *models.Media) error
	GetByID(id uint) (*models.Media, error)
	GetByEventID(eventID uint) ([]models.Media, error)
	GetVisibleByEventID(eventID uint, now time.Time) ([]models.Media, error)
	GetByAlbumID(albumID uint) ([]models.Media, error)
	GetVisibleByAlbumID(albumID uint, now time.Time) ([]models.Media, error)
	GetByHostID(hostID uint) ([]models.Media, error)
	GetLatestByEventID(eventID uint, limit int) ([]models.Media, error)
	GetLatestVisibleByEventID(eventID uint, limit int, now time.Time) ([]models.Media, error)
	UpdateStatus(id uint, status models.MediaStatus) error
	UpdateVisibleAt(id uint, visibleAt time.Time) error
	UpdateAlbum(id uint, albumID uint) error
	DeleteByEventID(eventID uint) error
}

type GuestStore interface {
	Create(guest *models.Guest) error
	GetByID(id uint) (*models.Guest, error)
	GetByToken(token string) (*models.Guest, error)
	DeleteByEventID(eventID uint) error
}

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Update(user *models.User) error
}

type DownloadLogStore interface {
	Create(entry *models.DownloadLog) error
	DeleteByEventID(eventID uint) error
}

type GuestbookStore interface {
	Create(entry *models.GuestbookEntry) error
	GetByEventID(eventID uint) ([]models.GuestbookEntry, error)
	IncrementReaction(id uint, reactionType string) (*models.GuestbookEntry, error)
	DeleteByEventID(eventID uint) error
}

type ReactionStore interface {
	Create(reaction *models.Reaction) error
	GetByMediaID(mediaID uint) ([]models.Reaction, error)
	DeleteByEventID(eventID uint) error
}

type ArchiveStore interface {
	Create(archived *models.ArchivedEvent) error
	GetByHostID(hostID uint) ([]models.ArchivedEvent, error)
}

// Mailer best-effort email gönderimi
type Mailer interface {
	SendWelcomeEmail(email, fullName string) error
	SendNewMediaEmail(email, eventName, mediaType, mediaURL string) error
}

// Publisher etkinlik odasına gerçek zamanlı mesaj yayınlar
type Publisher interface {
	Publish(eventID uint, msgType string, payload interface{})
}

// Notifier yükleme tamamlandıktan sonra fire-and-forget çağrılır
type Notifier interface {
	MediaUploaded(event *models.Event, media *models.Media)
}
