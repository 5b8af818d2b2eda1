package repository

import (
	"errors"
	"fmt"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type GuestbookRepository struct {
	db *gorm.DB
}

func NewGuestbookRepository(db *gorm.DB) *GuestbookRepository {
	return &GuestbookRepository{db: db}
}

func (r *GuestbookRepository) Create(entry *models.GuestbookEntry) error {
	return r.db.Create(entry).Error
}

func (r *GuestbookRepository) GetByEventID(eventID uint) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&entries).Error
	return entries, err
}

func (r *GuestbookRepository) GetByID(id uint) (*models.GuestbookEntry, error) {
	var entry models.GuestbookEntry
	err := r.db.First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// IncrementReaction reaksiyon sayacını atomik artırır
func (r *GuestbookRepository) IncrementReaction(id uint, reactionType string) (*models.GuestbookEntry, error) {
	column := reactionType + "_count"
	result := r.db.Model(&models.GuestbookEntry{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(fmt.Sprintf("%s + 1", column)))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return r.GetByID(id)
}

func (r *GuestbookRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.GuestbookEntry{}).Error
}
