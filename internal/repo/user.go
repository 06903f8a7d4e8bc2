package repo

import (
	"Closetly/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository — контракт доступа к пользователям и записям дружбы.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// AddFriend добавляет одностороннюю запись дружбы. Повтор — no-op.
	AddFriend(ctx context.Context, username, friend string) error
	// ListFriends возвращает друзей пользователя (только его собственные записи).
	ListFriends(ctx context.Context, username string) ([]string, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) AddFriend(ctx context.Context, username, friend string) error {
	f := &model.Friendship{Username: username, Friend: friend}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "friend"}},
		DoNothing: true,
	}).Create(f).Error
}

func (r *userRepo) ListFriends(ctx context.Context, username string) ([]string, error) {
	var friends []string
	err := r.db.WithContext(ctx).
		Model(&model.Friendship{}).
		Where("username = ?", username).
		Pluck("friend", &friends).Error
	if err != nil {
		return nil, err
	}
	return friends, nil
}
