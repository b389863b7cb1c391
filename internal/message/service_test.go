package message

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

	user := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	property := models.Property{
		AdminID:     admin.ID,
		Title:       "Duplex",
		Area:        120,
		Price:       175000,
		Location:    "Tanger",
		Status:      models.StatusActive,
		Type:        models.PropertyTypeHouse,
		ListingType: models.ListingTypeSale,
	}
	require.NoError(t, db.Create(&property).Error)

	return user, property
}

func TestCreateMessage(t *testing.T) {
	user, property := setupTestDB(t)

	msg, err := CreateMessage(user.ID, property.ID, "Is this still available?")
	require.NoError(t, err)
	assert.Equal(t, "Is this still available?", msg.Content)
	assert.WithinDuration(t, time.Now(), msg.SentDate, 5*time.Second)
}

func TestCreateMessageUnknownIDs(t *testing.T) {
	user, property := setupTestDB(t)

	_, err := CreateMessage(9999, property.ID, "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = CreateMessage(user.ID, 9999, "hello")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestMessagesByPropertyNewestFirst(t *testing.T) {
	user, property := setupTestDB(t)

	older := models.Message{
		UserID:     user.ID,
		PropertyID: property.ID,
		Content:    "first",
		SentDate:   time.Now().Add(-time.Hour),
	}
	require.NoError(t, database.DB.Create(&older).Error)

	newer := models.Message{
		UserID:     user.ID,
		PropertyID: property.ID,
		Content:    "second",
		SentDate:   time.Now(),
	}
	require.NoError(t, database.DB.Create(&newer).Error)

	messages, err := MessagesByProperty(property.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "second", messages[0].Content)
	assert.Equal(t, "first", messages[1].Content)
}

func TestDeleteMessage(t *testing.T) {
	user, property := setupTestDB(t)

	msg, err := CreateMessage(user.ID, property.ID, "bye")
	require.NoError(t, err)

	require.NoError(t, DeleteMessage(msg.ID))
	assert.ErrorIs(t, DeleteMessage(msg.ID), ErrMessageNotFound)
}
