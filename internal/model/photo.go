package model

// Photo — загруженное изображение. Отдаётся по публичному URL /media/{id}.
type Photo struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Data        []byte `gorm:"not null"`
	ContentType string `gorm:"not null"`
}
