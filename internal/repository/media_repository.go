package repository

import (
	"errors"
	"time"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type MediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(media *models.Media) error {
	return r.db.Create(media).Error
}

func (r *MediaRepository) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	err := r.db.First(&media, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

// GetByEventID etkinliğin tüm medyasını döner (host görünümü, filtre yok)
func (r *MediaRepository) GetByEventID(eventID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&media).Error
	return media, err
}

// GetVisibleByEventID sadece visible_at'i geçmiş medyayı döner (misafir görünümü)
func (r *MediaRepository) GetVisibleByEventID(eventID uint, now time.Time) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("event_id = ? AND visible_at <= ?", eventID, now).
		Order("created_at desc").Find(&media).Error
	return media, err
}

func (r *MediaRepository) GetByAlbumID(albumID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("album_id = ?", albumID).Order("created_at desc").Find(&media).Error
	return media, err
}

// GetVisibleByAlbumID albüm listelemesinin misafir görünümü, görünürlük
// filtresi uygulanır
func (r *MediaRepository) GetVisibleByAlbumID(albumID uint, now time.Time) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("album_id = ? AND visible_at <= ?", albumID, now).
		Order("created_at desc").Find(&media).Error
	return media, err
}

func (r *MediaRepository) GetByHostID(hostID uint) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("host_id = ?", hostID).Order("created_at desc").Find(&media).Error
	return media, err
}

// GetLatestByEventID canlı akış için en son yüklemeleri döner
func (r *MediaRepository) GetLatestByEventID(eventID uint, limit int) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at desc").Limit(limit).Find(&media).Error
	return media, err
}

// GetLatestVisibleByEventID canlı akışın misafir görünümü, planlanmış
// medya görünene kadar akışa girmez
func (r *MediaRepository) GetLatestVisibleByEventID(eventID uint, limit int, now time.Time) ([]models.Media, error) {
	var media []models.Media
	err := r.db.Where("event_id = ? AND visible_at <= ?", eventID, now).
		Order("created_at desc").Limit(limit).Find(&media).Error
	return media, err
}

func (r *MediaRepository) Update(media *models.Media) error {
	return r.db.Save(media).Error
}

func (r *MediaRepository) UpdateStatus(id uint, status models.MediaStatus) error {
	return r.db.Model(&models.Media{}).Where("id = ?", id).
		UpdateColumn("status", status).Error
}

func (r *MediaRepository) UpdateVisibleAt(id uint, visibleAt time.Time) error {
	return r.db.Model(&models.Media{}).Where("id = ?", id).
		UpdateColumn("visible_at", visibleAt).Error
}

func (r *MediaRepository) UpdateAlbum(id uint, albumID uint) error {
	return r.db.Model(&models.Media{}).Where("id = ?", id).
		UpdateColumn("album_id", albumID).Error
}

func (r *MediaRepository) Delete(id uint) error {
	return r.db.Delete(&models.Media{}, id).Error
}

func (r *MediaRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Media{}).Error
}
