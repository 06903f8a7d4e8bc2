package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"
)

// CountInvalidator сбрасывает закешированные счётчики поста после записи.
type CountInvalidator interface {
	Invalidate(ctx context.Context, postID string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, string) {}

// EngagementService — лайки и комментарии.
type EngagementService struct {
	engagement repo.EngagementRepository
	posts      repo.PostRepository
	invalidate CountInvalidator
}

func NewEngagementService(engagement repo.EngagementRepository, posts repo.PostRepository, invalidate CountInvalidator) *EngagementService {
	if invalidate == nil {
		invalidate = noopInvalidator{}
	}
	return &EngagementService{engagement: engagement, posts: posts, invalidate: invalidate}
}

// ToggleLike переключает лайк actor на посте.
func (s *EngagementService) ToggleLike(ctx context.Context, actor, postID string) (bool, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return false, wrapNotFound(err, "post "+postID)
	}
	liked, err := s.engagement.ToggleLike(ctx, postID, actor)
	if err != nil {
		return false, err
	}
	s.invalidate.Invalidate(ctx, postID)
	return liked, nil
}

// AddComment добавляет комментарий к посту.
func (s *EngagementService) AddComment(ctx context.Context, actor, postID, body string) (*model.Comment, error) {
	if body == "" {
		return nil, validationf("comment body is required")
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, wrapNotFound(err, "post "+postID)
	}
	c := &model.Comment{PostID: postID, Username: actor, Body: body}
	if err := s.engagement.AddComment(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate.Invalidate(ctx, postID)
	return c, nil
}

// Comments — комментарии поста в порядке добавления.
func (s *EngagementService) Comments(ctx context.Context, postID string) ([]model.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return nil, wrapNotFound(err, "post "+postID)
	}
	return s.engagement.ListComments(ctx, postID)
}
