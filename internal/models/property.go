package models

import "time"

type PropertyType string

const (
	PropertyTypeHouse PropertyType = "HOUSE"
	PropertyTypeLand  PropertyType = "LAND"
)

type ListingType string

const (
	ListingTypeSale ListingType = "SALE"
	ListingTypeRent ListingType = "RENT"
)

const StatusActive = "ACTIVE"

type Property struct {
	ID          uint    `gorm:"primaryKey"`
	AdminID     uint    `gorm:"index;not null"`
	Admin       Admin   `gorm:"foreignKey:AdminID"`
	Title       string  `gorm:"size:200;not null"`
	Area        float64 `gorm:"not null"`
	Rooms       int
	Location    string  `gorm:"size:255;index"`
	Price       float64 `gorm:"not null;index"`
	Description string  `gorm:"type:text"`
	Contact     string  `gorm:"size:100"`
	// Free-text status; search only ever returns StatusActive.
	Status      string       `gorm:"size:20;not null;default:ACTIVE;index"`
	Type        PropertyType `gorm:"size:10;not null"`
	ListingType ListingType  `gorm:"size:10;not null"`

	Photos    []Photo
	Messages  []Message
	Favorites []Favorite

	CreatedAt       time.Time
	PublicationDate time.Time
	UpdatedAt       time.Time
}
