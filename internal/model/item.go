package model

import "time"

// Item — вещь, отслеживаемая через передачи владения.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Title string `gorm:"not null"`
	Brand string
	Size  string
	Wear  string // состояние/износ, свободный текст

	// CurrentOwner всегда отражает последнюю завершённую передачу;
	// PreviousOwner — владелец непосредственно перед ней.
	CurrentOwner  string  `gorm:"not null;index"`
	OriginalOwner string  `gorm:"not null"`
	PreviousOwner *string

	LatestPostID *string `gorm:"type:uuid"`

	// Version — столбец для compare-and-swap при передаче владения.
	// Обновление владельца проходит только при совпадении версии.
	Version int64 `gorm:"not null;default:1"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
