package repo

import (
	"Closetly/internal/model"
	"context"

	"gorm.io/gorm"
)

// PostRepository — контракт доступа к постам.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, id string) (*model.Post, error)

	// ListByItem — история вещи, новые сверху.
	ListByItem(ctx context.Context, itemID string) ([]model.Post, error)
	// ListAll — кандидаты для общей ленты.
	ListAll(ctx context.Context) ([]model.Post, error)

	// HasTransferPost — существует ли у вещи пост передачи с данным получателем.
	// Используется для проверки пары погашающих постов при обмене.
	HasTransferPost(ctx context.Context, itemID, receiver string) (bool, error)

	// Delete — компенсирующее удаление при неудачной публикации объявления.
	Delete(ctx context.Context, id string) error
}

type postRepo struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepo{db: db}
}

func (r *postRepo) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepo) ListByItem(ctx context.Context, itemID string) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepo) HasTransferPost(ctx context.Context, itemID, receiver string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("item_id = ? AND receiver = ?", itemID, receiver).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}
