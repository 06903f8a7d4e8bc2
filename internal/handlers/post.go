package handlers

import (
	"Closetly/internal/model"
	"Closetly/internal/service"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PostHandler — лайки и комментарии.
type PostHandler struct {
	EngagementService *service.EngagementService
	Logger            *zap.SugaredLogger
}

func NewPostHandler(engagementService *service.EngagementService, logger *zap.SugaredLogger) *PostHandler {
	return &PostHandler{EngagementService: engagementService, Logger: logger}
}

// ToggleLike переключает лайк текущего пользователя.
func (h *PostHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	liked, err := h.EngagementService.ToggleLike(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"liked": liked})
}

type addCommentRequest struct {
	Body string `json:"body"`
}

type commentDTO struct {
	ID        int64  `json:"id"`
	PostID    string `json:"post_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

func toCommentDTO(c model.Comment) commentDTO {
	return commentDTO{
		ID:        c.ID,
		PostID:    c.PostID,
		Username:  c.Username,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// AddComment добавляет комментарий.
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	c, err := h.EngagementService.AddComment(r.Context(), actor, chi.URLParam(r, "id"), req.Body)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentDTO(*c))
}

// Comments — комментарии поста.
func (h *PostHandler) Comments(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	comments, err := h.EngagementService.Comments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	out := make([]commentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentDTO(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": out})
}
