package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ListingService — публикация вещей и их история.
type ListingService struct {
	items  repo.ItemRepository
	posts  repo.PostRepository
	photos repo.PhotoRepository
	logger *zap.SugaredLogger
}

func NewListingService(items repo.ItemRepository, posts repo.PostRepository, photos repo.PhotoRepository, logger *zap.SugaredLogger) *ListingService {
	return &ListingService{items: items, posts: posts, photos: photos, logger: logger}
}

// CreateListingRequest — новая вещь с первым постом-историей.
type CreateListingRequest struct {
	Title string
	Brand string
	Size  string
	Wear  string

	Story      string
	PictureURL *string
}

// CreateListing создаёт вещь и её первый пост, затем проставляет
// latest_post_id. Транзакции нет: при сбое позднего шага уже созданные
// строки удаляются компенсирующими delete, сами delete не проверяются —
// при их сбое остаётся осиротевшая запись.
func (s *ListingService) CreateListing(ctx context.Context, owner string, req CreateListingRequest) (*model.Item, *model.Post, error) {
	if req.Title == "" {
		return nil, nil, validationf("title is required")
	}

	item := &model.Item{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Brand:         req.Brand,
		Size:          req.Size,
		Wear:          req.Wear,
		CurrentOwner:  owner,
		OriginalOwner: owner,
		Version:       1,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, nil, err
	}

	post := &model.Post{
		ID:         uuid.NewString(),
		ItemID:     item.ID,
		Giver:      owner,
		Story:      req.Story,
		PictureURL: req.PictureURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Warnw("listing post failed, removing item", "item_id", item.ID, "error", err)
		_ = s.items.Delete(ctx, item.ID)
		return nil, nil, err
	}

	if err := s.items.SetLatestPost(ctx, item.ID, post.ID); err != nil {
		s.logger.Warnw("latest_post_id update failed, removing pair", "item_id", item.ID, "error", err)
		_ = s.posts.Delete(ctx, post.ID)
		_ = s.items.Delete(ctx, item.ID)
		return nil, nil, err
	}

	item.LatestPostID = &post.ID
	return item, post, nil
}

// Closet — вещи пользователя, новые сверху.
func (s *ListingService) Closet(ctx context.Context, owner string) ([]model.Item, error) {
	return s.items.ListByOwner(ctx, owner)
}

// GetItem возвращает вещь по идентификатору.
func (s *ListingService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "item "+id)
	}
	return item, nil
}

// History — посты вещи, новые сверху.
func (s *ListingService) History(ctx context.Context, itemID string) ([]model.Post, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, wrapNotFound(err, "item "+itemID)
	}
	return s.posts.ListByItem(ctx, itemID)
}

// SavePhoto сохраняет изображение и возвращает его id и публичный путь.
func (s *ListingService) SavePhoto(ctx context.Context, data []byte, contentType string) (string, string, error) {
	if len(data) == 0 {
		return "", "", validationf("empty photo")
	}
	id := uuid.NewString()
	if _, err := s.photos.CreateIfAbsent(ctx, &model.Photo{ID: id, Data: data, ContentType: contentType}); err != nil {
		return "", "", err
	}
	return id, PhotoURL(id), nil
}

// GetPhoto возвращает изображение по идентификатору.
func (s *ListingService) GetPhoto(ctx context.Context, id string) (*model.Photo, error) {
	p, err := s.photos.GetByID(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "photo "+id)
	}
	return p, nil
}

// PhotoURL — публичный путь изображения.
func PhotoURL(id string) string {
	return "/media/" + id
}
