package handlers

import (
	"Closetly/internal/middleware"
	"Closetly/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON сериализует ответ. Ошибку энкодера чинить уже поздно.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError отображает ошибки сервисов в HTTP-статусы.
func writeServiceError(logger *zap.SugaredLogger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrConflict), errors.Is(err, service.ErrUsernameTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		logger.Errorw("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// requireUser достаёт username из контекста; иначе 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, ok := middleware.GetUsernameFromContext(r.Context())
	if !ok || name == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return name, true
}
