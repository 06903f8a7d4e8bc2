package repo

import (
	"Closetly/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhotoRepository — хранение загруженных изображений.
type PhotoRepository interface {
	// CreateIfAbsent пытается создать запись. Если существует — ничего не делает.
	// Возвращает created=true если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, photo *model.Photo) (created bool, err error)
	GetByID(ctx context.Context, id string) (*model.Photo, error)
}

type photoRepo struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepo{db: db}
}

func (r *photoRepo) CreateIfAbsent(ctx context.Context, photo *model.Photo) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}).Create(photo)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *photoRepo) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
