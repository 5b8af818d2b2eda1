package repository

import (
	"errors"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

func (r *GuestRepository) Create(guest *models.Guest) error {
	return r.db.Create(guest).Error
}

func (r *GuestRepository) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.First(&guest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) GetByToken(token string) (*models.Guest, error) {
	var guest models.Guest
	err := r.db.Where("guest_token = ?", token).First(&guest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *GuestRepository) GetByEventID(eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.Where("event_id = ?", eventID).Find(&guests).Error
	return guests, err
}

func (r *GuestRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Guest{}).Error
}
