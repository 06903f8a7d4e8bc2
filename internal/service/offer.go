package service

import (
	"Closetly/internal/model"
	"Closetly/internal/repo"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OfferService — машина состояний предложения и её эффекты на владение
// вещью. Переходы: pending → accepted | rejected; у accepted есть
// подсостояние post_created. Из rejected и из accepted с post_created=true
// выхода нет.
type OfferService struct {
	offers repo.OfferRepository
	items  repo.ItemRepository
	posts  repo.PostRepository
	logger *zap.SugaredLogger
}

func NewOfferService(offers repo.OfferRepository, items repo.ItemRepository, posts repo.PostRepository, logger *zap.SugaredLogger) *OfferService {
	return &OfferService{offers: offers, items: items, posts: posts, logger: logger}
}

// SubmitOfferRequest — заявка на создание предложения.
type SubmitOfferRequest struct {
	ItemID       string
	OfferType    model.OfferType
	SwapItemID   *string
	LendDuration *string
	Message      *string
}

// Submit создаёт pending-предложение от actor на чужую вещь.
func (s *OfferService) Submit(ctx context.Context, actor string, req SubmitOfferRequest) (*model.Offer, error) {
	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		return nil, wrapNotFound(err, "item "+req.ItemID)
	}
	if item.CurrentOwner == actor {
		return nil, validationf("cannot offer on your own item")
	}

	offer := &model.Offer{
		ID:          uuid.NewString(),
		ItemID:      item.ID,
		FromUser:    actor,
		ToUser:      item.CurrentOwner,
		OfferType:   req.OfferType,
		Status:      model.OfferPending,
		PostCreated: false,
		Message:     req.Message,
	}

	// Исчерпывающая проверка по типу предложения.
	switch req.OfferType {
	case model.OfferGiveaway:
		// дополнительных полей нет

	case model.OfferLend:
		if req.LendDuration == nil || *req.LendDuration == "" {
			return nil, validationf("lend offer requires a duration")
		}
		offer.LendDuration = req.LendDuration

	case model.OfferSwap:
		if req.SwapItemID == nil || *req.SwapItemID == "" {
			return nil, validationf("swap offer requires a swap item")
		}
		swapItem, err := s.items.GetByID(ctx, *req.SwapItemID)
		if err != nil {
			return nil, wrapNotFound(err, "swap item "+*req.SwapItemID)
		}
		if swapItem.CurrentOwner != actor {
			return nil, validationf("swap item %s is not owned by %s", swapItem.ID, actor)
		}
		busy, err := s.offers.HasPendingInvolvingItem(ctx, swapItem.ID)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, validationf("swap item %s has a pending transfer", swapItem.ID)
		}
		offer.SwapItemID = req.SwapItemID

	default:
		return nil, validationf("unknown offer type %q", req.OfferType)
	}

	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

// Accept принимает pending-предложение. Последовательность шагов
// best-effort: каждый шаг — отдельная запись в хранилище, успешные шаги
// при сбое последующих не откатываются. Передача владения идёт через CAS
// по версии вещи: устаревшая версия даёт ErrConflict (можно повторить).
func (s *OfferService) Accept(ctx context.Context, actor, offerID string) (*model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, wrapNotFound(err, "offer "+offerID)
	}
	if offer.Status != model.OfferPending {
		return nil, fmt.Errorf("%w: offer %s is %s", ErrConflict, offerID, offer.Status)
	}

	item, err := s.items.GetByID(ctx, offer.ItemID)
	if err != nil {
		return nil, wrapNotFound(err, "item "+offer.ItemID)
	}
	if item.CurrentOwner != actor {
		return nil, fmt.Errorf("%w: only the current owner may accept", ErrForbidden)
	}

	// Шаг 1: предложение принято, обязательство поста открыто.
	if err := s.offers.UpdateStatus(ctx, offer.ID, model.OfferAccepted, false); err != nil {
		return nil, err
	}

	// Шаг 2: остальные pending-предложения на эту вещь отклоняются.
	if n, err := s.offers.RejectOtherPending(ctx, offer.ItemID, offer.ID); err != nil {
		return nil, err
	} else if n > 0 {
		s.logger.Infow("rejected competing offers", "item_id", offer.ItemID, "count", n)
	}

	// Шаги 3-4: передача владения, previous_owner = владелец до вызова.
	n, err := s.items.TransferOwner(ctx, item.ID, item.Version, item.CurrentOwner, offer.FromUser)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: item %s changed concurrently, retry", ErrConflict, item.ID)
	}

	offer.Status = model.OfferAccepted
	offer.PostCreated = false
	return offer, nil
}

// Reject отклоняет pending-предложение. Эффектов на вещь нет.
func (s *OfferService) Reject(ctx context.Context, actor, offerID string) (*model.Offer, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, wrapNotFound(err, "offer "+offerID)
	}
	if offer.Status != model.OfferPending {
		return nil, fmt.Errorf("%w: offer %s is %s", ErrConflict, offerID, offer.Status)
	}
	if offer.ToUser != actor {
		return nil, fmt.Errorf("%w: only the current owner may reject", ErrForbidden)
	}

	if err := s.offers.UpdateStatus(ctx, offer.ID, model.OfferRejected, false); err != nil {
		return nil, err
	}
	offer.Status = model.OfferRejected
	return offer, nil
}

// List возвращает предложения пользователя: box=incoming|outgoing.
func (s *OfferService) List(ctx context.Context, actor, box string) ([]model.Offer, error) {
	switch box {
	case "", "incoming":
		return s.offers.ListIncoming(ctx, actor)
	case "outgoing":
		return s.offers.ListOutgoing(ctx, actor)
	default:
		return nil, validationf("unknown offer box %q", box)
	}
}

// NeedsPost — чистый предикат: по принятому предложению ещё не создан пост.
func NeedsPost(offer *model.Offer) bool {
	return offer.Status == model.OfferAccepted && !offer.PostCreated
}

// CreateDischargePost создаёт погашающий пост по принятому предложению и
// закрывает обязательство. Для не-swap достаточно одного поста. Для swap
// обязательство парное: пара закрывается, когда у обеих вещей есть пост
// передачи с соответствующим получателем, и только в этот момент встречная
// вещь переходит к прежнему владельцу.
func (s *OfferService) CreateDischargePost(ctx context.Context, actor, offerID, story string, pictureURL *string) (*model.Post, error) {
	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, wrapNotFound(err, "offer "+offerID)
	}
	if !NeedsPost(offer) {
		return nil, fmt.Errorf("%w: offer %s has no open post obligation", ErrConflict, offerID)
	}

	// Какую вещь получил actor в рамках этого предложения.
	var itemID, giver string
	switch {
	case actor == offer.FromUser:
		itemID, giver = offer.ItemID, offer.ToUser
	case actor == offer.ToUser && offer.OfferType == model.OfferSwap && offer.SwapItemID != nil:
		itemID, giver = *offer.SwapItemID, offer.FromUser
	default:
		return nil, fmt.Errorf("%w: %s is not an acquiring party of this offer", ErrForbidden, actor)
	}

	receiver := actor
	post := &model.Post{
		ID:         uuid.NewString(),
		ItemID:     itemID,
		Giver:      giver,
		Receiver:   &receiver,
		Story:      story,
		PictureURL: pictureURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.items.SetLatestPost(ctx, itemID, post.ID); err != nil {
		// компенсирующее удаление, намеренно без проверки результата
		_ = s.posts.Delete(ctx, post.ID)
		return nil, err
	}

	if offer.OfferType != model.OfferSwap {
		if err := s.offers.SetPostCreated(ctx, offer.ID); err != nil {
			return nil, err
		}
		return post, nil
	}

	// Парное погашение swap-предложения.
	gotMain, err := s.posts.HasTransferPost(ctx, offer.ItemID, offer.FromUser)
	if err != nil {
		return nil, err
	}
	gotSwap, err := s.posts.HasTransferPost(ctx, *offer.SwapItemID, offer.ToUser)
	if err != nil {
		return nil, err
	}
	if !gotMain || !gotSwap {
		s.logger.Infow("swap pair not yet discharged",
			"offer_id", offer.ID, "main_posted", gotMain, "swap_posted", gotSwap)
		return post, nil
	}

	if err := s.offers.SetPostCreated(ctx, offer.ID); err != nil {
		return nil, err
	}

	// Встречная вещь уходит прежнему владельцу запрошенной.
	swapItem, err := s.items.GetByID(ctx, *offer.SwapItemID)
	if err != nil {
		return nil, wrapNotFound(err, "swap item "+*offer.SwapItemID)
	}
	n, err := s.items.TransferOwner(ctx, swapItem.ID, swapItem.Version, swapItem.CurrentOwner, offer.ToUser)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: swap item %s changed concurrently, retry", ErrConflict, swapItem.ID)
	}

	return post, nil
}
