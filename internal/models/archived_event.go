package models

import (
	"time"
)

// ArchivedEvent süresi dolan etkinliklerin özet kopyası.
// Canlı Event kaydı silinmeden önce yazılır.
type ArchivedEvent struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	OriginalEventID uint      `json:"original_event_id" gorm:"not null"`
	Name            string    `json:"name" gorm:"not null"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	HostID          uint      `json:"host_id" gorm:"not null"`
	MediaCount      int       `json:"media_count"`
	ArchivedAt      time.Time `json:"archived_at"`
}
