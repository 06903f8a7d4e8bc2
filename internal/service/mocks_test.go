package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// Моки репозиториев для сервисных тестов.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) AddFriend(ctx context.Context, username, friend string) error {
	return m.Called(ctx, username, friend).Error(0)
}

func (m *mockUserRepo) ListFriends(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	args := m.Called(ctx, owner)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) SetLatestPost(ctx context.Context, itemID, postID string) error {
	return m.Called(ctx, itemID, postID).Error(0)
}

func (m *mockItemRepo) TransferOwner(ctx context.Context, itemID string, expectedVersion int64, prevOwner, newOwner string) (int64, error) {
	args := m.Called(ctx, itemID, expectedVersion, prevOwner, newOwner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

type mockPostRepo struct{ mock.Mock }

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error {
	return m.Called(ctx, post).Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListByItem(ctx context.Context, itemID string) ([]model.Post, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPostRepo) HasTransferPost(ctx context.Context, itemID, receiver string) (bool, error) {
	args := m.Called(ctx, itemID, receiver)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PostRepository = (*mockPostRepo)(nil)

type mockOfferRepo struct{ mock.Mock }

func (m *mockOfferRepo) Create(ctx context.Context, offer *model.Offer) error {
	return m.Called(ctx, offer).Error(0)
}

func (m *mockOfferRepo) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOfferRepo) UpdateStatus(ctx context.Context, id string, status model.OfferStatus, postCreated bool) error {
	return m.Called(ctx, id, status, postCreated).Error(0)
}

func (m *mockOfferRepo) SetPostCreated(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOfferRepo) RejectOtherPending(ctx context.Context, itemID, exceptID string) (int64, error) {
	args := m.Called(ctx, itemID, exceptID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOfferRepo) HasPendingInvolvingItem(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *mockOfferRepo) ListIncoming(ctx context.Context, username string) ([]model.Offer, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOfferRepo) ListOutgoing(ctx context.Context, username string) ([]model.Offer, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.OfferRepository = (*mockOfferRepo)(nil)

type mockPhotoRepo struct{ mock.Mock }

func (m *mockPhotoRepo) CreateIfAbsent(ctx context.Context, photo *model.Photo) (bool, error) {
	args := m.Called(ctx, photo)
	return args.Bool(0), args.Error(1)
}

func (m *mockPhotoRepo) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PhotoRepository = (*mockPhotoRepo)(nil)

// staticCounts — провайдер счётчиков с фиксированной таблицей значений.
type staticCounts struct {
	likes    map[string]int64
	comments map[string]int64
}

func (c *staticCounts) Counts(_ context.Context, postID string) (int64, int64, error) {
	return c.likes[postID], c.comments[postID], nil
}

var _ CountsProvider = (*staticCounts)(nil)
