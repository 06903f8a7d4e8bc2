package model

import "time"

// OfferType — тип предложения. Тегированный тип вместо «голых» строк,
// ветвления по нему делаются исчерпывающим switch.
type OfferType string

const (
	OfferGiveaway OfferType = "giveaway"
	OfferLend     OfferType = "lend"
	OfferSwap     OfferType = "swap"
)

// OfferStatus — статус предложения.
type OfferStatus string

const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// Offer — предложение получить вещь (подарок, аренда или обмен).
// Создаётся получателем в статусе pending; владелец вещи принимает или
// отклоняет. После accepted остаётся обязательство создать пост
// (PostCreated=false до его выполнения).
type Offer struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	ItemID string `gorm:"type:uuid;not null;index"`

	FromUser string `gorm:"not null;index"` // кто просит вещь
	ToUser   string `gorm:"not null;index"` // текущий владелец вещи

	OfferType OfferType   `gorm:"not null"`
	Status    OfferStatus `gorm:"not null;default:pending;index"`

	PostCreated bool `gorm:"not null;default:false"`

	// Только для swap: вещь, которую предлагает FromUser взамен.
	SwapItemID *string `gorm:"type:uuid;index"`
	// Только для lend: срок (пресет или произвольный текст).
	LendDuration *string
	Message      *string

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
