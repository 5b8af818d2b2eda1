package models

import (
	"time"
)

// Otomatik sıralama için varsayılan albüm isimleri
const (
	AlbumGroupPhotos   = "Group Photos"
	AlbumBehindScenes  = "Behind the Scenes"
	AlbumMainEvent     = "Main Event"
	AlbumVideos        = "Videos"
	AlbumCandidMoments = "Candid Moments"
)

// DefaultAlbums her etkinlik oluşturulduğunda hazırlanan albüm seti
var DefaultAlbums = []struct {
	Name        string
	Description string
}{
	{AlbumGroupPhotos, "Photos with multiple faces detected"},
	{AlbumBehindScenes, "Captured before the main event"},
	{AlbumMainEvent, "Captured during the event"},
}

// Album (event_id, name) çifti üzerinde benzersizdir, aynı isimle ikinci
// albüm oluşturulamaz.
type Album struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	EventID         uint       `json:"event_id" gorm:"not null;uniqueIndex:idx_albums_event_name"`
	Name            string     `json:"name" gorm:"not null;uniqueIndex:idx_albums_event_name"`
	Description     string     `json:"description"`
	Visibility      Visibility `json:"visibility" gorm:"default:public"`
	IsAutoGenerated bool       `json:"is_auto_generated" gorm:"default:false"`
	MediaCount      int        `json:"media_count" gorm:"default:0"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AlbumRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Visibility  Visibility `json:"visibility"`
}

type UpdateAlbumRequest struct {
	Name        *string     `json:"name"`
	Description *string     `json:"description"`
	Visibility  *Visibility `json:"visibility"`
}
