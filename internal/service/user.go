package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — регистрация, вход и список друзей.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, &model.User{Username: username, Password: string(hash)})
}

// Login проверяет пару логин/пароль.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// AddFriend добавляет одностороннюю запись дружбы actor → friend.
func (s *UserService) AddFriend(ctx context.Context, actor, friend string) error {
	if friend == "" || friend == actor {
		return validationf("invalid friend username")
	}
	if _, err := s.repo.GetUserByUsername(ctx, friend); err != nil {
		return wrapNotFound(err, "user "+friend)
	}
	return s.repo.AddFriend(ctx, actor, friend)
}

// Friends возвращает друзей пользователя.
func (s *UserService) Friends(ctx context.Context, username string) ([]string, error) {
	return s.repo.ListFriends(ctx, username)
}
