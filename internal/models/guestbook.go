package models

import (
	"time"
)

type GuestbookEntry struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    uint      `json:"event_id" gorm:"not null"`
	GuestID    *uint     `json:"guest_id,omitempty"`
	GuestName  string    `json:"guest_name" gorm:"not null"`
	Message    string    `json:"message" gorm:"not null"`
	LikeCount  int       `json:"like_count" gorm:"default:0"`
	LoveCount  int       `json:"love_count" gorm:"default:0"`
	LaughCount int       `json:"laugh_count" gorm:"default:0"`
	CreatedAt  time.Time `json:"created_at"`
}

type GuestbookMessageRequest struct {
	GuestName string `json:"guest_name" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type GuestbookReactionRequest struct {
	ReactionType string `json:"reaction_type" validate:"required,oneof=like love laugh"`
}

type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionComment ReactionType = "comment"
)

// Reaction medya üzerine bırakılan beğeni veya yorumları tutar
type Reaction struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	MediaID   uint         `json:"media_id" gorm:"not null"`
	GuestID   uint         `json:"guest_id" gorm:"not null"`
	Type      ReactionType `json:"type" gorm:"not null"`
	Comment   string       `json:"comment,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

type ReactionRequest struct {
	MediaID uint         `json:"media_id" validate:"required"`
	GuestID uint         `json:"guest_id" validate:"required"`
	Type    ReactionType `json:"type" validate:"required,oneof=like comment"`
	Comment string       `json:"comment"`
}
