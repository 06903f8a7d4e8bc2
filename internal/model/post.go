package model

import "time"

// Post — неизменяемая запись истории вещи: история + опциональное фото.
// Постов у вещи может быть много, последний отражён в Item.LatestPostID.
type Post struct {
	ID     string `gorm:"primaryKey;type:uuid"`
	ItemID string `gorm:"type:uuid;not null;index"`

	Giver    string  `gorm:"not null;index"`
	Receiver *string `gorm:"index"`

	Story      string
	PictureURL *string

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Производные счётчики, заполняются из таблиц likes/comments (или кеша).
	Likes         int64 `gorm:"-" json:"likes"`
	CommentsCount int64 `gorm:"-" json:"comments_count"`
}

// Like — лайк пользователя на посте, не более одного на пару (post, user).
type Like struct {
	ID       int64  `gorm:"primaryKey"`
	PostID   string `gorm:"type:uuid;index:idx_like,unique;not null"`
	Username string `gorm:"index:idx_like,unique;not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Comment — комментарий к посту.
type Comment struct {
	ID       int64  `gorm:"primaryKey"`
	PostID   string `gorm:"type:uuid;not null;index"`
	Username string `gorm:"not null"`
	Body     string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
