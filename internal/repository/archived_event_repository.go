package repository

import (
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type ArchivedEventRepository struct {
	db *gorm.DB
}

func NewArchivedEventRepository(db *gorm.DB) *ArchivedEventRepository {
	return &ArchivedEventRepository{db: db}
}

func (r *ArchivedEventRepository) Create(archived *models.ArchivedEvent) error {
	return r.db.Create(archived).Error
}

func (r *ArchivedEventRepository) GetByHostID(hostID uint) ([]models.ArchivedEvent, error) {
	var archived []models.ArchivedEvent
	err := r.db.Where("host_id = ?", hostID).Order("archived_at desc").Find(&archived).Error
	return archived, err
}
