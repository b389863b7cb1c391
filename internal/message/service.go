package message

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
	ErrMessageNotFound  = errors.New("message not found")
)

func CreateMessage(userID, propertyID uint, content string) (*models.Message, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
	}

	var property models.Property
	if err := database.DB.First(&property, "id = ?", propertyID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrPropertyNotFound, propertyID)
	}

	msg := models.Message{
		UserID:     userID,
		PropertyID: propertyID,
		Content:    content,
		SentDate:   time.Now(),
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("could not create message: %w", err)
	}

	msg.User = user
	msg.Property = property
	return &msg, nil
}

// MessagesByProperty returns the property's messages newest first.
func MessagesByProperty(propertyID uint) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	err := database.DB.Preload("User").Preload("Property").
		Where("property_id = ?", propertyID).
		Order("sent_date DESC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func DeleteMessage(id uint) error {
	var msg models.Message
	if err := database.DB.First(&msg, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: id %d", ErrMessageNotFound, id)
	}
	return database.DB.Delete(&msg).Error
}
