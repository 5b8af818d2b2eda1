package repository

import (
	"errors"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) (*models.Event, error) {
	result := r.db.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) GetByID(id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetByHostID(hostID uint) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("host_id = ?", hostID).Order("date desc").Find(&events).Error
	return events, err
}

func (r *EventRepository) Update(event *models.Event) error {
	return r.db.Save(event).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.db.Delete(&models.Event{}, id).Error
}

// IncrementMediaCount atomik sayaç artışı, kayıp güncelleme olmaz
func (r *EventRepository) IncrementMediaCount(id uint) error {
	return r.db.Model(&models.Event{}).Where("id = ?", id).
		UpdateColumn("media_count", gorm.Expr("media_count + 1")).Error
}

// FindExpired belirtilen andan önce süresi dolan etkinlikleri bulur
func (r *EventRepository) FindExpired(currentTime time.Time) ([]models.Event, error) {
	var expiredEvents []models.Event
	err := r.db.Where("expires_at < ?", currentTime).Find(&expiredEvents).Error
	return expiredEvents, err
}
