package repository

import (
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type ReactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{db: db}
}

func (r *ReactionRepository) Create(reaction *models.Reaction) error {
	return r.db.Create(reaction).Error
}

func (r *ReactionRepository) GetByMediaID(mediaID uint) ([]models.Reaction, error) {
	var reactions []models.Reaction
	err := r.db.Where("media_id = ?", mediaID).Order("created_at desc").Find(&reactions).Error
	return reactions, err
}

func (r *ReactionRepository) DeleteByEventID(eventID uint) error {
	sub := r.db.Model(&models.Media{}).Select("id").Where("event_id = ?", eventID)
	return r.db.Where("media_id IN (?)", sub).Delete(&models.Reaction{}).Error
}
