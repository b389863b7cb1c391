package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;uniqueIndex;not null"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	FullName     string `gorm:"size:150"`
	Telephone    string `gorm:"size:50"`
	CreatedAt    time.Time

	Messages  []Message
	Favorites []Favorite
}
