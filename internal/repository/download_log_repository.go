package repository

import (
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

// DownloadLogRepository salt-ekleme indirme kaydı. Update/Delete yok,
// sadece cascade temizliği etkinlik silinirken çalışır.
type DownloadLogRepository struct {
	db *gorm.DB
}

func NewDownloadLogRepository(db *gorm.DB) *DownloadLogRepository {
	return &DownloadLogRepository{db: db}
}

func (r *DownloadLogRepository) Create(entry *models.DownloadLog) error {
	return r.db.Create(entry).Error
}

func (r *DownloadLogRepository) GetByMediaID(mediaID uint) ([]models.DownloadLog, error) {
	var logs []models.DownloadLog
	err := r.db.Where("media_id = ?", mediaID).Order("created_at desc").Find(&logs).Error
	return logs, err
}

func (r *DownloadLogRepository) DeleteByEventID(eventID uint) error {
	sub := r.db.Model(&models.Media{}).Select("id").Where("event_id = ?", eventID)
	return r.db.Where("media_id IN (?)", sub).Delete(&models.DownloadLog{}).Error
}
