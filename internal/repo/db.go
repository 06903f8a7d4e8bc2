package repo

import (
	"Closetly/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB открывает соединение с Postgres и прогоняет автомиграции схемы.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Friendship{},
		&model.Item{},
		&model.Post{},
		&model.Offer{},
		&model.Like{},
		&model.Comment{},
		&model.Photo{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
