package repo

import (
	"Closetly/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOfferRepository_StatusTransitions(t *testing.T) {
	db := newTestDB(t)
	r := NewOfferRepository(db)
	ctx := context.Background()

	id := uuid.NewString()
	err := r.Create(ctx, &model.Offer{
		ID: id, ItemID: uuid.NewString(), FromUser: "or_amy", ToUser: "or_bo",
		OfferType: model.OfferGiveaway, Status: model.OfferPending,
	})
	assert.NoError(t, err)

	assert.NoError(t, r.UpdateStatus(ctx, id, model.OfferAccepted, false))
	got, err := r.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, model.OfferAccepted, got.Status)
	assert.False(t, got.PostCreated)

	assert.NoError(t, r.SetPostCreated(ctx, id))
	got, _ = r.GetByID(ctx, id)
	assert.True(t, got.PostCreated)
}

func TestOfferRepository_RejectOtherPending(t *testing.T) {
	db := newTestDB(t)
	r := NewOfferRepository(db)
	ctx := context.Background()

	itemID := uuid.NewString()
	winner, loser := uuid.NewString(), uuid.NewString()
	otherItem := uuid.NewString()

	for _, o := range []*model.Offer{
		{ID: winner, ItemID: itemID, FromUser: "or_amy", ToUser: "or_bo", OfferType: model.OfferGiveaway, Status: model.OfferPending},
		{ID: loser, ItemID: itemID, FromUser: "or_cy", ToUser: "or_bo", OfferType: model.OfferGiveaway, Status: model.OfferPending},
		{ID: otherItem, ItemID: uuid.NewString(), FromUser: "or_cy", ToUser: "or_bo", OfferType: model.OfferGiveaway, Status: model.OfferPending},
	} {
		assert.NoError(t, r.Create(ctx, o))
	}

	n, err := r.RejectOtherPending(ctx, itemID, winner)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, _ := r.GetByID(ctx, winner)
	assert.Equal(t, model.OfferPending, got.Status)
	got, _ = r.GetByID(ctx, loser)
	assert.Equal(t, model.OfferRejected, got.Status)
	// предложение на другую вещь не задето
	got, _ = r.GetByID(ctx, otherItem)
	assert.Equal(t, model.OfferPending, got.Status)
}

func TestOfferRepository_HasPendingInvolvingItem(t *testing.T) {
	db := newTestDB(t)
	r := NewOfferRepository(db)
	ctx := context.Background()

	itemID, swapItemID := uuid.NewString(), uuid.NewString()
	offerID := uuid.NewString()
	assert.NoError(t, r.Create(ctx, &model.Offer{
		ID: offerID, ItemID: itemID, FromUser: "or_amy", ToUser: "or_bo",
		OfferType: model.OfferSwap, SwapItemID: &swapItemID, Status: model.OfferPending,
	}))

	// вещь занята и как предмет, и как встречная вещь обмена
	busy, err := r.HasPendingInvolvingItem(ctx, itemID)
	assert.NoError(t, err)
	assert.True(t, busy)
	busy, err = r.HasPendingInvolvingItem(ctx, swapItemID)
	assert.NoError(t, err)
	assert.True(t, busy)

	busy, err = r.HasPendingInvolvingItem(ctx, uuid.NewString())
	assert.NoError(t, err)
	assert.False(t, busy)

	// после отклонения вещь свободна
	assert.NoError(t, r.UpdateStatus(ctx, offerID, model.OfferRejected, false))
	busy, err = r.HasPendingInvolvingItem(ctx, swapItemID)
	assert.NoError(t, err)
	assert.False(t, busy)
}

func TestOfferRepository_Boxes(t *testing.T) {
	db := newTestDB(t)
	r := NewOfferRepository(db)
	ctx := context.Background()

	in, out := uuid.NewString(), uuid.NewString()
	assert.NoError(t, r.Create(ctx, &model.Offer{ID: in, ItemID: uuid.NewString(), FromUser: "or_dee", ToUser: "or_box", OfferType: model.OfferGiveaway, Status: model.OfferPending}))
	assert.NoError(t, r.Create(ctx, &model.Offer{ID: out, ItemID: uuid.NewString(), FromUser: "or_box", ToUser: "or_dee", OfferType: model.OfferGiveaway, Status: model.OfferPending}))

	incoming, err := r.ListIncoming(ctx, "or_box")
	assert.NoError(t, err)
	assert.Len(t, incoming, 1)
	assert.Equal(t, in, incoming[0].ID)

	outgoing, err := r.ListOutgoing(ctx, "or_box")
	assert.NoError(t, err)
	assert.Len(t, outgoing, 1)
	assert.Equal(t, out, outgoing[0].ID)
}
