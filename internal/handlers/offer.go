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

// OfferHandler — жизненный цикл предложений.
type OfferHandler struct {
	OfferService *service.OfferService
	Logger       *zap.SugaredLogger
}

func NewOfferHandler(offerService *service.OfferService, logger *zap.SugaredLogger) *OfferHandler {
	return &OfferHandler{OfferService: offerService, Logger: logger}
}

type submitOfferRequest struct {
	ItemID       string  `json:"item_id"`
	OfferType    string  `json:"offer_type"`
	SwapItemID   *string `json:"swap_item_id,omitempty"`
	LendDuration *string `json:"lend_duration,omitempty"`
	Message      *string `json:"message,omitempty"`
}

type offerDTO struct {
	ID           string  `json:"id"`
	ItemID       string  `json:"item_id"`
	FromUser     string  `json:"from_user"`
	ToUser       string  `json:"to_user"`
	OfferType    string  `json:"offer_type"`
	Status       string  `json:"status"`
	PostCreated  bool    `json:"post_created"`
	SwapItemID   *string `json:"swap_item_id,omitempty"`
	LendDuration *string `json:"lend_duration,omitempty"`
	Message      *string `json:"message,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func toOfferDTO(o model.Offer) offerDTO {
	return offerDTO{
		ID:           o.ID,
		ItemID:       o.ItemID,
		FromUser:     o.FromUser,
		ToUser:       o.ToUser,
		OfferType:    string(o.OfferType),
		Status:       string(o.Status),
		PostCreated:  o.PostCreated,
		SwapItemID:   o.SwapItemID,
		LendDuration: o.LendDuration,
		Message:      o.Message,
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Submit создаёт pending-предложение.
func (h *OfferHandler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req submitOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	offer, err := h.OfferService.Submit(r.Context(), actor, service.SubmitOfferRequest{
		ItemID:       req.ItemID,
		OfferType:    model.OfferType(req.OfferType),
		SwapItemID:   req.SwapItemID,
		LendDuration: req.LendDuration,
		Message:      req.Message,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toOfferDTO(*offer))
}

// List — входящие или исходящие предложения (?box=incoming|outgoing).
func (h *OfferHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	box := r.URL.Query().Get("box")
	offers, err := h.OfferService.List(r.Context(), actor, box)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	out := make([]offerDTO, 0, len(offers))
	for _, o := range offers {
		out = append(out, toOfferDTO(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"offers": out})
}

// Accept принимает предложение.
func (h *OfferHandler) Accept(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	offer, err := h.OfferService.Accept(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferDTO(*offer))
}

// Reject отклоняет предложение.
func (h *OfferHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	offer, err := h.OfferService.Reject(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, toOfferDTO(*offer))
}

type dischargePostRequest struct {
	Story      string  `json:"story"`
	PictureURL *string `json:"picture_url,omitempty"`
}

// DischargePost создаёт погашающий пост по принятому предложению.
func (h *OfferHandler) DischargePost(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req dischargePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	post, err := h.OfferService.CreateDischargePost(r.Context(), actor, chi.URLParam(r, "id"), req.Story, req.PictureURL)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostDTO(*post))
}
