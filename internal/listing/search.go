package listing

import (
	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"
)

// SearchCriteria holds independently-optional filters. Unset fields impose no
// constraint; set fields are combined with AND. Ranges are inclusive.
type SearchCriteria struct {
	Title       *string              `json:"title"`
	Location    *string              `json:"location"`
	MinPrice    *float64             `json:"minPrice"`
	MaxPrice    *float64             `json:"maxPrice"`
	MinArea     *float64             `json:"minArea"`
	MaxArea     *float64             `json:"maxArea"`
	MinRooms    *int                 `json:"minRooms"`
	MaxRooms    *int                 `json:"maxRooms"`
	Type        *models.PropertyType `json:"type"`
	ListingType *models.ListingType  `json:"listingType"`
}

// SearchProperties applies the criteria over published listings only: results
// are always restricted to status ACTIVE, whatever the caller sends. No match
// is an empty slice, never an error.
func SearchProperties(criteria SearchCriteria) ([]models.Property, error) {
	q := withRelations(database.DB).Where("status = ?", models.StatusActive)

	if criteria.Title != nil && *criteria.Title != "" {
		q = q.Where("title LIKE ?", "%"+*criteria.Title+"%")
	}
	if criteria.Location != nil && *criteria.Location != "" {
		q = q.Where("location LIKE ?", "%"+*criteria.Location+"%")
	}
	if criteria.MinPrice != nil {
		q = q.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		q = q.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.MinArea != nil {
		q = q.Where("area >= ?", *criteria.MinArea)
	}
	if criteria.MaxArea != nil {
		q = q.Where("area <= ?", *criteria.MaxArea)
	}
	if criteria.MinRooms != nil {
		q = q.Where("rooms >= ?", *criteria.MinRooms)
	}
	if criteria.MaxRooms != nil {
		q = q.Where("rooms <= ?", *criteria.MaxRooms)
	}
	if criteria.Type != nil {
		q = q.Where("type = ?", *criteria.Type)
	}
	if criteria.ListingType != nil {
		q = q.Where("listing_type = ?", *criteria.ListingType)
	}

	properties := make([]models.Property, 0)
	if err := q.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}
