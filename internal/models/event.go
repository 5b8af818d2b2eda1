package models

import (
	"time"
)

// Etkinlik görünürlüğü için enum tanımı
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Etkinlikler oluşturulduktan 30 gün sonra arşivlenir
const DefaultEventLifetime = 30 * 24 * time.Hour

type Event struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	HostID             uint       `json:"host_id" gorm:"not null"`
	Name               string     `json:"name" gorm:"not null"`
	Description        string     `json:"description" gorm:"not null"`
	Date               time.Time  `json:"date" gorm:"not null"`
	Visibility         Visibility `json:"visibility" gorm:"default:public"`
	AllowDownload      bool       `json:"allow_download" gorm:"default:true"`
	AllowSharing       bool       `json:"allow_sharing" gorm:"default:true"`
	AllowGuestUploads  bool       `json:"allow_guest_uploads" gorm:"default:true"`
	AllowGuestSchedule bool       `json:"allow_guest_schedule" gorm:"default:false"`
	QRCodeURL          string     `json:"qr_code_url,omitempty"`
	ExpiresAt          time.Time  `json:"expires_at"`
	MediaCount         int        `json:"media_count" gorm:"default:0"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type EventRequest struct {
	Name               string     `json:"name" validate:"required"`
	Description        string     `json:"description" validate:"required"`
	Date               time.Time  `json:"date" validate:"required"`
	Visibility         Visibility `json:"visibility"`
	AllowDownload      *bool      `json:"allow_download"`
	AllowSharing       *bool      `json:"allow_sharing"`
	AllowGuestUploads  *bool      `json:"allow_guest_uploads"`
	AllowGuestSchedule *bool      `json:"allow_guest_schedule"`
}

type UpdateEventRequest struct {
	Name               *string     `json:"name"`
	Description        *string     `json:"description"`
	Date               *time.Time  `json:"date"`
	Visibility         *Visibility `json:"visibility"`
	AllowDownload      *bool       `json:"allow_download"`
	AllowSharing       *bool       `json:"allow_sharing"`
	AllowGuestUploads  *bool       `json:"allow_guest_uploads"`
	AllowGuestSchedule *bool       `json:"allow_guest_schedule"`
}

// QRResponse, misafir yükleme URL'i ve PNG görüntüsünü birlikte döner
type QRResponse struct {
	QRUploadURL string `json:"qr_upload_url"`
	QRImage     []byte `json:"qr_image,omitempty"`
}
