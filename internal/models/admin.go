package models

import "time"

type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Username     string `gorm:"size:100"`
	Status       string `gorm:"size:20;not null;default:ACTIVE"`
	CreatedAt    time.Time

	Properties []Property
}
