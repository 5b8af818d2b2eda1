package database

import (
	"log"

	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(databaseURL string) *gorm.DB {
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	// TranslateError açık olmalı: albüm get-or-create akışı
	// gorm.ErrDuplicatedKey'e bakarak yarışı çözüyor
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Album{},
		&models.Media{},
		&models.Guest{},
		&models.DownloadLog{},
		&models.GuestbookEntry{},
		&models.Reaction{},
		&models.ArchivedEvent{},
	)
}
