package handlers

import (
	"Closetly/internal/model"
	"Closetly/internal/service"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// FeedHandler — лента постов.
type FeedHandler struct {
	FeedService *service.FeedService
	Logger      *zap.SugaredLogger
}

func NewFeedHandler(feedService *service.FeedService, logger *zap.SugaredLogger) *FeedHandler {
	return &FeedHandler{FeedService: feedService, Logger: logger}
}

type postDTO struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	Giver         string  `json:"giver"`
	Receiver      *string `json:"receiver,omitempty"`
	Story         string  `json:"story"`
	PictureURL    *string `json:"picture_url,omitempty"`
	CreatedAt     string  `json:"created_at"`
	Likes         int64   `json:"likes"`
	CommentsCount int64   `json:"comments_count"`
}

func toPostDTO(p model.Post) postDTO {
	return postDTO{
		ID:            p.ID,
		ItemID:        p.ItemID,
		Giver:         p.Giver,
		Receiver:      p.Receiver,
		Story:         p.Story,
		PictureURL:    p.PictureURL,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		Likes:         p.Likes,
		CommentsCount: p.CommentsCount,
	}
}

// Feed отдаёт ленту. Параметры: scope=all|friends, mode=chronological|ranked.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	viewer, ok := requireUser(w, r)
	if !ok {
		return
	}

	scope := service.FeedScope(r.URL.Query().Get("scope"))
	mode := service.FeedMode(r.URL.Query().Get("mode"))

	posts, err := h.FeedService.Build(r.Context(), viewer, scope, mode)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	out := make([]postDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostDTO(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": out})
}
