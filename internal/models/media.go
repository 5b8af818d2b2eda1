package models

import (
	"strings"
	"time"
)

type MediaType string

const (
	MediaTypePhoto MediaType = "photo"
	MediaTypeVideo MediaType = "video"
)

type MediaStatus string

const (
	MediaStatusPending  MediaStatus = "pending"
	MediaStatusApproved MediaStatus = "approved"
)

// MediaTypeFromMime MIME tipinin önekine göre medya türünü belirler
func MediaTypeFromMime(mimeType string) MediaType {
	if strings.HasPrefix(mimeType, "image/") {
		return MediaTypePhoto
	}
	return MediaTypeVideo
}

type Media struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	EventID   uint        `json:"event_id" gorm:"not null"`
	AlbumID   *uint       `json:"album_id,omitempty"`
	GuestID   *uint       `json:"guest_id,omitempty"`
	HostID    *uint       `json:"host_id,omitempty"`
	Type      MediaType   `json:"type" gorm:"not null"`
	FileName  string      `json:"file_name" gorm:"not null"`
	MimeType  string      `json:"mime_type" gorm:"not null"`
	FileSize  int64       `json:"file_size"`
	BlobKey   string      `json:"-" gorm:"not null;unique"`
	VisibleAt time.Time   `json:"visible_at"`
	Status    MediaStatus `json:"status" gorm:"default:pending"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IsVisibleAt görünürlük kapısı: visible_at geçmişse medya dışarıya açıktır
func (m *Media) IsVisibleAt(now time.Time) bool {
	return !m.VisibleAt.After(now)
}

type MediaResponse struct {
	ID        uint        `json:"id"`
	EventID   uint        `json:"event_id"`
	AlbumID   *uint       `json:"album_id,omitempty"`
	GuestID   *uint       `json:"guest_id,omitempty"`
	Type      MediaType   `json:"type"`
	FileName  string      `json:"file_name"`
	MimeType  string      `json:"mime_type"`
	FileSize  int64       `json:"file_size"`
	VisibleAt time.Time   `json:"visible_at"`
	Status    MediaStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

func NewMediaResponse(m *Media) MediaResponse {
	return MediaResponse{
		ID:        m.ID,
		EventID:   m.EventID,
		AlbumID:   m.AlbumID,
		GuestID:   m.GuestID,
		Type:      m.Type,
		FileName:  m.FileName,
		MimeType:  m.MimeType,
		FileSize:  m.FileSize,
		VisibleAt: m.VisibleAt,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

type UpdateVisibilityRequest struct {
	VisibleAt time.Time `json:"visible_at" validate:"required"`
}
