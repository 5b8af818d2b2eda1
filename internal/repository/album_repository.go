package repository

import (
	"errors"

	"github.com/snapfolio/snapfolio-backend/internal/apperr"
	"github.com/snapfolio/snapfolio-backend/internal/models"
	"gorm.io/gorm"
)

type AlbumRepository struct {
	db *gorm.DB
}

func NewAlbumRepository(db *gorm.DB) *AlbumRepository {
	return &AlbumRepository{db: db}
}

func (r *AlbumRepository) Create(album *models.Album) (*models.Album, error) {
	if err := r.db.Create(album).Error; err != nil {
		return nil, err
	}
	return album, nil
}

func (r *AlbumRepository) GetByID(id uint) (*models.Album, error) {
	var album models.Album
	err := r.db.First(&album, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

func (r *AlbumRepository) GetByEventID(eventID uint) ([]models.Album, error) {
	var albums []models.Album
	err := r.db.Where("event_id = ?", eventID).Order("created_at asc").Find(&albums).Error
	return albums, err
}

func (r *AlbumRepository) GetByEventAndName(eventID uint, name string) (*models.Album, error) {
	var album models.Album
	err := r.db.Where("event_id = ? AND name = ?", eventID, name).First(&album).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &album, nil
}

// GetOrCreate (event_id, name) için albümü döner, yoksa oluşturur.
// Aynı anda iki istek aynı albümü oluşturmaya çalışırsa unique index
// ikinciyi düşürür ve kazananın kaydı yeniden okunur.
func (r *AlbumRepository) GetOrCreate(eventID uint, name, description string, autoGenerated bool) (*models.Album, error) {
	album, err := r.GetByEventAndName(eventID, name)
	if err == nil {
		return album, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	created := &models.Album{
		EventID:         eventID,
		Name:            name,
		Description:     description,
		IsAutoGenerated: autoGenerated,
	}
	err = r.db.Create(created).Error
	if err == nil {
		return created, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Yarışı kaybettik, kazananın albümünü oku
		return r.GetByEventAndName(eventID, name)
	}
	return nil, err
}

func (r *AlbumRepository) Update(album *models.Album) error {
	return r.db.Save(album).Error
}

func (r *AlbumRepository) Delete(id uint) error {
	return r.db.Delete(&models.Album{}, id).Error
}

func (r *AlbumRepository) DeleteByEventID(eventID uint) error {
	return r.db.Where("event_id = ?", eventID).Delete(&models.Album{}).Error
}

func (r *AlbumRepository) IncrementMediaCount(id uint) error {
	return r.db.Model(&models.Album{}).Where("id = ?", id).
		UpdateColumn("media_count", gorm.Expr("media_count + 1")).Error
}

func (r *AlbumRepository) DecrementMediaCount(id uint) error {
	return r.db.Model(&models.Album{}).Where("id = ? AND media_count > 0", id).
		UpdateColumn("media_count", gorm.Expr("media_count - 1")).Error
}
