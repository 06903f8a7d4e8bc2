package repo

import (
	"Closetly/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// EngagementRepository — лайки и комментарии постов.
type EngagementRepository interface {
	// ToggleLike ставит лайк, если его не было, иначе снимает.
	// Возвращает итоговое состояние: liked=true — лайк стоит.
	ToggleLike(ctx context.Context, postID, username string) (liked bool, err error)
	CountLikes(ctx context.Context, postID string) (int64, error)

	AddComment(ctx context.Context, comment *model.Comment) error
	ListComments(ctx context.Context, postID string) ([]model.Comment, error)
	CountComments(ctx context.Context, postID string) (int64, error)
}

type engagementRepo struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepo{db: db}
}

func (r *engagementRepo) ToggleLike(ctx context.Context, postID, username string) (bool, error) {
	var existing model.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ? AND username = ?", postID, username).
		First(&existing).Error
	switch {
	case err == nil:
		if err := r.db.WithContext(ctx).Delete(&existing).Error; err != nil {
			return true, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		l := &model.Like{PostID: postID, Username: username}
		if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, err
	}
}

func (r *engagementRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}

func (r *engagementRepo) AddComment(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *engagementRepo) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (r *engagementRepo) CountComments(ctx context.Context, postID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}
