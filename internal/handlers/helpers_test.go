package handlers_test

import (
	"Closetly/internal/config"
	"Closetly/internal/handlers"
	"Closetly/internal/middleware"
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"Closetly/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) AddFriend(ctx context.Context, username, friend string) error {
	return m.Called(ctx, username, friend).Error(0)
}
func (m *hMockUserRepo) ListFriends(ctx context.Context, username string) ([]string, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}
func (m *hMockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) ListByOwner(ctx context.Context, owner string) ([]model.Item, error) {
	args := m.Called(ctx, owner)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) SetLatestPost(ctx context.Context, itemID, postID string) error {
	return m.Called(ctx, itemID, postID).Error(0)
}
func (m *hMockItemRepo) TransferOwner(ctx context.Context, itemID string, expectedVersion int64, prevOwner, newOwner string) (int64, error) {
	args := m.Called(ctx, itemID, expectedVersion, prevOwner, newOwner)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockItemRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

type hMockPostRepo struct{ mock.Mock }

func (m *hMockPostRepo) Create(ctx context.Context, post *model.Post) error {
	return m.Called(ctx, post).Error(0)
}
func (m *hMockPostRepo) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockPostRepo) ListByItem(ctx context.Context, itemID string) ([]model.Post, error) {
	args := m.Called(ctx, itemID)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockPostRepo) ListAll(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Post); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockPostRepo) HasTransferPost(ctx context.Context, itemID, receiver string) (bool, error) {
	args := m.Called(ctx, itemID, receiver)
	return args.Bool(0), args.Error(1)
}
func (m *hMockPostRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PostRepository = (*hMockPostRepo)(nil)

type hMockOfferRepo struct{ mock.Mock }

func (m *hMockOfferRepo) Create(ctx context.Context, offer *model.Offer) error {
	return m.Called(ctx, offer).Error(0)
}
func (m *hMockOfferRepo) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockOfferRepo) UpdateStatus(ctx context.Context, id string, status model.OfferStatus, postCreated bool) error {
	return m.Called(ctx, id, status, postCreated).Error(0)
}
func (m *hMockOfferRepo) SetPostCreated(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *hMockOfferRepo) RejectOtherPending(ctx context.Context, itemID, exceptID string) (int64, error) {
	args := m.Called(ctx, itemID, exceptID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockOfferRepo) HasPendingInvolvingItem(ctx context.Context, itemID string) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}
func (m *hMockOfferRepo) ListIncoming(ctx context.Context, username string) ([]model.Offer, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockOfferRepo) ListOutgoing(ctx context.Context, username string) ([]model.Offer, error) {
	args := m.Called(ctx, username)
	if v, ok := args.Get(0).([]model.Offer); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.OfferRepository = (*hMockOfferRepo)(nil)

type hMockPhotoRepo struct{ mock.Mock }

func (m *hMockPhotoRepo) CreateIfAbsent(ctx context.Context, photo *model.Photo) (bool, error) {
	args := m.Called(ctx, photo)
	return args.Bool(0), args.Error(1)
}
func (m *hMockPhotoRepo) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Photo); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.PhotoRepository = (*hMockPhotoRepo)(nil)

type hMockEngagementRepo struct{ mock.Mock }

func (m *hMockEngagementRepo) ToggleLike(ctx context.Context, postID, username string) (bool, error) {
	args := m.Called(ctx, postID, username)
	return args.Bool(0), args.Error(1)
}
func (m *hMockEngagementRepo) CountLikes(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *hMockEngagementRepo) AddComment(ctx context.Context, comment *model.Comment) error {
	return m.Called(ctx, comment).Error(0)
}
func (m *hMockEngagementRepo) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if v, ok := args.Get(0).([]model.Comment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockEngagementRepo) CountComments(ctx context.Context, postID string) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.EngagementRepository = (*hMockEngagementRepo)(nil)

// testRepos — все моки одного роутера.
type testRepos struct {
	users      *hMockUserRepo
	items      *hMockItemRepo
	posts      *hMockPostRepo
	offers     *hMockOfferRepo
	photos     *hMockPhotoRepo
	engagement *hMockEngagementRepo
}

func newTestRouter(t *testing.T) (http.Handler, *config.Config, *testRepos) {
	t.Helper()
	cfg := &config.Config{AuthSecret: "test-secret", PhotoMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	reps := &testRepos{
		users:      &hMockUserRepo{},
		items:      &hMockItemRepo{},
		posts:      &hMockPostRepo{},
		offers:     &hMockOfferRepo{},
		photos:     &hMockPhotoRepo{},
		engagement: &hMockEngagementRepo{},
	}

	userSvc := service.NewUserService(reps.users)
	listingSvc := service.NewListingService(reps.items, reps.posts, reps.photos, logger)
	offerSvc := service.NewOfferService(reps.offers, reps.items, reps.posts, logger)
	feedSvc := service.NewFeedService(reps.posts, reps.users, &service.RepoCounts{Engagement: reps.engagement})
	engagementSvc := service.NewEngagementService(reps.engagement, reps.posts, nil)

	h := handlers.NewHandler(userSvc, listingSvc, offerSvc, feedSvc, engagementSvc, logger, cfg)
	return h.Router, cfg, reps
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, username, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, username, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
