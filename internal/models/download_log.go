package models

import (
	"time"
)

// DownloadLog kimin hangi medyayı indirdiğini tutan salt-ekleme kaydı.
// Hiçbir zaman güncellenmez veya silinmez.
type DownloadLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	MediaID   uint      `json:"media_id" gorm:"not null"`
	GuestID   *uint     `json:"guest_id,omitempty"`
	GuestName string    `json:"guest_name"`
	CreatedAt time.Time `json:"created_at"`
}
