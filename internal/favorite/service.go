package favorite

import (
	"errors"
	"fmt"
	"time"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPropertyNotFound = errors.New("property not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyFavorited = errors.New("property already in favorites")
)

// AddFavorite inserts the (user, property) pair. The existence check gives a
// clean conflict error on the common path; the unique index on the table is
// what actually guarantees at-most-once under concurrent requests.
func AddFavorite(userID, propertyID uint) (*models.Favorite, error) {
	var count int64
	database.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count)
	if count > 0 {
		return nil, ErrAlreadyFavorited
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}

	var property models.Property
	if err := database.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrPropertyNotFound, propertyID)
	}

	fav := models.Favorite{
		UserID:     userID,
		PropertyID: propertyID,
		DateAdded:  time.Now(),
	}
	if err := database.DB.Create(&fav).Error; err != nil {
		// Lost the race against a concurrent insert of the same pair.
		return nil, ErrAlreadyFavorited
	}

	fav.User = user
	fav.Property = property
	return &fav, nil
}

func RemoveFavorite(userID, propertyID uint) error {
	var fav models.Favorite
	err := database.DB.
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&fav).Error
	if err != nil {
		return fmt.Errorf("%w: user %d, property %d", ErrFavoriteNotFound, userID, propertyID)
	}

	return database.DB.Delete(&fav).Error
}
