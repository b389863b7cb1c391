package models

import "time"

type Photo struct {
	ID         uint   `gorm:"primaryKey"`
	PropertyID uint   `gorm:"index;not null"`
	URL        string `gorm:"size:500;not null"`
	OrderNum   int    `gorm:"not null;default:0"`
	CreatedAt  time.Time
}
