package repo

import (
	"Closetly/internal/model"
	"context"

	"gorm.io/gorm"
)

// OfferRepository — контракт доступа к предложениям.
// Единственная таблица offers: легаси-имя swap_offers сюда не переносим.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	GetByID(ctx context.Context, id string) (*model.Offer, error)

	UpdateStatus(ctx context.Context, id string, status model.OfferStatus, postCreated bool) error
	SetPostCreated(ctx context.Context, id string) error

	// RejectOtherPending отклоняет все прочие pending-предложения на ту же вещь.
	RejectOtherPending(ctx context.Context, itemID, exceptID string) (int64, error)

	// HasPendingInvolvingItem — есть ли pending-предложение, где вещь фигурирует
	// как предмет или как встречная вещь обмена.
	HasPendingInvolvingItem(ctx context.Context, itemID string) (bool, error)

	ListIncoming(ctx context.Context, username string) ([]model.Offer, error)
	ListOutgoing(ctx context.Context, username string) ([]model.Offer, error)
}

type offerRepo struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepo{db: db}
}

func (r *offerRepo) Create(ctx context.Context, offer *model.Offer) error {
	return r.db.WithContext(ctx).Create(offer).Error
}

func (r *offerRepo) GetByID(ctx context.Context, id string) (*model.Offer, error) {
	var o model.Offer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepo) UpdateStatus(ctx context.Context, id string, status model.OfferStatus, postCreated bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"post_created": postCreated,
		}).Error
}

func (r *offerRepo) SetPostCreated(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("id = ?", id).
		Update("post_created", true).Error
}

func (r *offerRepo) RejectOtherPending(ctx context.Context, itemID, exceptID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("item_id = ? AND status = ? AND id <> ?", itemID, model.OfferPending, exceptID).
		Update("status", model.OfferRejected)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *offerRepo) HasPendingInvolvingItem(ctx context.Context, itemID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Offer{}).
		Where("status = ? AND (item_id = ? OR swap_item_id = ?)", model.OfferPending, itemID, itemID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *offerRepo) ListIncoming(ctx context.Context, username string) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Where("to_user = ?", username).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}

func (r *offerRepo) ListOutgoing(ctx context.Context, username string) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Where("from_user = ?", username).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, err
}
