package repo

import (
	"Closetly/internal/model"
	"context"

	"gorm.io/gorm"
)

// ItemRepository — контракт доступа к вещам.
type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	GetByID(ctx context.Context, id string) (*model.Item, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Item, error)

	SetLatestPost(ctx context.Context, itemID, postID string) error

	// TransferOwner переписывает владельца через compare-and-swap по версии.
	// Возвращает число затронутых строк: 0 означает, что версия устарела.
	TransferOwner(ctx context.Context, itemID string, expectedVersion int64, prevOwner, newOwner string) (int64, error)

	// Delete — компенсирующее удаление при неудачной публикации объявления.
	Delete(ctx context.Context, id string) error
}

type itemRepo struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("current_owner = ?", owner).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *itemRepo) SetLatestPost(ctx context.Context, itemID, postID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", itemID).
		Update("latest_post_id", postID).Error
}

func (r *itemRepo) TransferOwner(ctx context.Context, itemID string, expectedVersion int64, prevOwner, newOwner string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ? AND version = ?", itemID, expectedVersion).
		Updates(map[string]any{
			"previous_owner": prevOwner,
			"current_owner":  newOwner,
			"version":        expectedVersion + 1,
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *itemRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{}).Error
}
