package handlers

import (
	"Closetly/internal/config"
	"Closetly/internal/middleware"
	"Closetly/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler — регистрация, вход, друзья.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Register регистрирует пользователя и сразу ставит auth-cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, user.Username, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Register: can't set auth cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

// Login проверяет учётные данные и ставит auth-cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	if err := middleware.SetLoginCookie(w, user.ID, user.Username, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: can't set auth cookie", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}

type addFriendRequest struct {
	Username string `json:"username"`
}

// AddFriend добавляет друга текущему пользователю.
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	if err := h.UserService.AddFriend(r.Context(), actor, req.Username); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"friend": req.Username})
}

// Friends возвращает список друзей текущего пользователя.
func (h *UserHandler) Friends(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	friends, err := h.UserService.Friends(r.Context(), actor)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	if friends == nil {
		friends = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"friends": friends})
}
