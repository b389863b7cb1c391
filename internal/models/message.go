package models

import "time"

type Message struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"index;not null"`
	User       User
	PropertyID uint `gorm:"index;not null"`
	Property   Property
	Content    string    `gorm:"type:text;not null"`
	SentDate   time.Time `gorm:"index;not null"`
	CreatedAt  time.Time
}
