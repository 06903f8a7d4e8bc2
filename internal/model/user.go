package model

import "time"

// User — серверная модель пользователя.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Friendship — односторонняя запись дружбы: Username считает Friend своим другом.
// Симметрия не навязывается схемой, каждая сторона хранит свою запись.
type Friendship struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"index:idx_friendship,unique;not null"`
	Friend   string `gorm:"index:idx_friendship,unique;not null"`
}
