package models

import (
	"time"
)

// Guest hesap gerektirmeden yükleme yapan misafirleri temsil eder.
// GuestToken cookie üzerinden taşınır ve aynı misafirin tekrar eden
// yüklemelerini eşleştirmek için kullanılır.
type Guest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EventID    uint      `json:"event_id" gorm:"not null"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	GuestToken string    `json:"-" gorm:"not null;unique"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterGuestRequest struct {
	EventID uint   `json:"event_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
}
