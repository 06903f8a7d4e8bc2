package handlers

import (
	"Closetly/internal/config"
	"Closetly/internal/model"
	"Closetly/internal/service"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler — вещи, их история и загрузка фото.
type ItemHandler struct {
	ListingService *service.ListingService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewItemHandler(listingService *service.ListingService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ListingService: listingService, Logger: logger, Config: cfg}
}

type createListingRequest struct {
	Title      string  `json:"title"`
	Brand      string  `json:"brand"`
	Size       string  `json:"size"`
	Wear       string  `json:"wear"`
	Story      string  `json:"story"`
	PictureURL *string `json:"picture_url,omitempty"`
}

type itemDTO struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Brand         string  `json:"brand,omitempty"`
	Size          string  `json:"size,omitempty"`
	Wear          string  `json:"wear,omitempty"`
	CurrentOwner  string  `json:"current_owner"`
	OriginalOwner string  `json:"original_owner"`
	PreviousOwner *string `json:"previous_owner,omitempty"`
	LatestPostID  *string `json:"latest_post_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func toItemDTO(it model.Item) itemDTO {
	return itemDTO{
		ID:            it.ID,
		Title:         it.Title,
		Brand:         it.Brand,
		Size:          it.Size,
		Wear:          it.Wear,
		CurrentOwner:  it.CurrentOwner,
		OriginalOwner: it.OriginalOwner,
		PreviousOwner: it.PreviousOwner,
		LatestPostID:  it.LatestPostID,
		CreatedAt:     it.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// CreateListing публикует новую вещь с первым постом.
func (h *ItemHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	item, post, err := h.ListingService.CreateListing(r.Context(), owner, service.CreateListingRequest{
		Title:      req.Title,
		Brand:      req.Brand,
		Size:       req.Size,
		Wear:       req.Wear,
		Story:      req.Story,
		PictureURL: req.PictureURL,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"item": toItemDTO(*item),
		"post": toPostDTO(*post),
	})
}

// Closet — вещи текущего пользователя.
func (h *ItemHandler) Closet(w http.ResponseWriter, r *http.Request) {
	owner, ok := requireUser(w, r)
	if !ok {
		return
	}

	items, err := h.ListingService.Closet(r.Context(), owner)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	out := make([]itemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toItemDTO(it))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// GetItem — карточка вещи.
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	item, err := h.ListingService.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemDTO(*item))
}

// History — посты вещи, новые сверху.
func (h *ItemHandler) History(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	posts, err := h.ListingService.History(r.Context(), chi.URLParam(r, "id"))
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

// UploadPhoto принимает multipart/form-data с полем photo.
func (h *ItemHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.PhotoMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("UploadPhoto: invalid multipart form", "error", err)
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		h.Logger.Warnw("UploadPhoto: missing photo file", "error", err)
		http.Error(w, "missing photo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("UploadPhoto: failed to read photo", "error", err)
		http.Error(w, "failed to read photo", http.StatusBadRequest)
		return
	}
	maxPhoto := int64(h.Config.PhotoMaxSizeMB) * 1024 * 1024
	if int64(len(data)) > maxPhoto {
		h.Logger.Warnw("UploadPhoto: payload too large", "size", len(data), "limit", maxPhoto)
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	id, url, err := h.ListingService.SavePhoto(r.Context(), data, contentType)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":   id,
		"url":  url,
		"size": len(data),
	})
}

// ServePhoto отдаёт изображение по публичному URL.
func (h *ItemHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	photo, err := h.ListingService.GetPhoto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	w.Header().Set("Content-Type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(photo.Data)
}
