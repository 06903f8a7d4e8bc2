package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Ошибки уровня сервисов. Хендлеры отображают их в HTTP-статусы,
// всё прочее считается ошибкой хранилища и уходит как 500.
var (
	// ErrValidation — входные данные не проходят предусловие операции.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — запись отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — операция не применима к текущему состоянию
	// (не-pending предложение, устаревшая версия вещи). Повторяемая.
	ErrConflict = errors.New("conflict")
	// ErrForbidden — действие доступно только другой стороне предложения.
	ErrForbidden = errors.New("forbidden")

	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// validationf оборачивает ErrValidation с пояснением.
func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

// wrapNotFound переводит gorm.ErrRecordNotFound в ErrNotFound,
// остальные ошибки хранилища пропускает как есть.
func wrapNotFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}
