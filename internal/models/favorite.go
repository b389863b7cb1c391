package models

import "time"

// The composite unique index is the authoritative guard against a user
// favoriting the same property twice; the existence pre-check in the handler
// only exists to return a friendly 409.
type Favorite struct {
	ID         uint `gorm:"primaryKey"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_favorites_user_property"`
	User       User
	PropertyID uint `gorm:"not null;uniqueIndex:idx_favorites_user_property"`
	Property   Property
	DateAdded  time.Time `gorm:"not null"`
	CreatedAt  time.Time
}
