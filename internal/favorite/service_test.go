package favorite

import (
	"testing"
	"time"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) (models.User, models.Property) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	admin := models.Admin{Email: "agent@example.com", PasswordHash: "x", Status: models.StatusActive}
	require.NoError(t, db.Create(&admin).Error)

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	property := models.Property{
		AdminID:     admin.ID,
		Title:       "Small house",
		Area:        90,
		Price:       90000,
		Location:    "Fes",
		Status:      models.StatusActive,
		Type:        models.PropertyTypeHouse,
		ListingType: models.ListingTypeRent,
	}
	require.NoError(t, db.Create(&property).Error)

	return user, property
}

func TestAddFavorite(t *testing.T) {
	user, property := setupTestDB(t)

	fav, err := AddFavorite(user.ID, property.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fav.UserID)
	assert.Equal(t, property.ID, fav.PropertyID)
	assert.WithinDuration(t, time.Now(), fav.DateAdded, 5*time.Second)
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	user, property := setupTestDB(t)

	_, err := AddFavorite(user.ID, property.ID)
	require.NoError(t, err)

	_, err = AddFavorite(user.ID, property.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	var count int64
	database.DB.Model(&models.Favorite{}).
		Where("user_id = ? AND property_id = ?", user.ID, property.ID).
		Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestAddFavoriteUnknownIDs(t *testing.T) {
	user, property := setupTestDB(t)

	_, err := AddFavorite(9999, property.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = AddFavorite(user.ID, 9999)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	user, property := setupTestDB(t)

	_, err := AddFavorite(user.ID, property.ID)
	require.NoError(t, err)
	require.NoError(t, RemoveFavorite(user.ID, property.ID))

	var count int64
	database.DB.Model(&models.Favorite{}).Count(&count)
	assert.Zero(t, count)
}

func TestRemoveFavoriteMissingPair(t *testing.T) {
	user, property := setupTestDB(t)

	err := RemoveFavorite(user.ID, property.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)

	// Store unchanged.
	var count int64
	database.DB.Model(&models.Favorite{}).Count(&count)
	assert.Zero(t, count)
}
