package message

import (
	"errors"
	"strconv"
	"strings"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateMessageRequest struct {
	UserID     uint   `json:"userId"`
	PropertyID uint   `json:"propertyId"`
	Content    string `json:"content"`
}

type MessageResponse struct {
	ID               uint   `json:"id"`
	Content          string `json:"content"`
	UserID           uint   `json:"userId"`
	Username         string `json:"username"`
	PropertyID       uint   `json:"propertyId"`
	PropertyLocation string `json:"propertyLocation"`
	SentDate         string `json:"sentDate"`
	CreatedAt        string `json:"createdAt"`
}

func toResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:               m.ID,
		Content:          m.Content,
		UserID:           m.UserID,
		Username:         m.User.Username,
		PropertyID:       m.PropertyID,
		PropertyLocation: m.Property.Location,
		SentDate:         m.SentDate.Format("2006-01-02 15:04:05"),
		CreatedAt:        m.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func listResponse(messages []models.Message) []MessageResponse {
	res := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		res = append(res, toResponse(&messages[i]))
	}
	return res
}

func ListMessagesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var messages []models.Message
		if err := database.DB.Preload("User").Preload("Property").Find(&messages).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list messages")
		}
		return c.JSON(listResponse(messages))
	}
}

func GetMessageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var msg models.Message
		if err := database.DB.Preload("User").Preload("Property").First(&msg, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Message not found with id "+id)
		}
		return c.JSON(toResponse(&msg))
	}
}

func ListMessagesByUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		var messages []models.Message
		if err := database.DB.Preload("User").Preload("Property").
			Where("user_id = ?", userID).Find(&messages).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list messages")
		}
		return c.JSON(listResponse(messages))
	}
}

func ListMessagesByPropertyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		propertyID, err := strconv.ParseUint(c.Params("propertyId"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid propertyId")
		}

		messages, err := MessagesByProperty(uint(propertyID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list messages")
		}
		return c.JSON(listResponse(messages))
	}
}

func ListMessagesByUserAndPropertyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		propertyID := c.Params("propertyId")

		var messages []models.Message
		if err := database.DB.Preload("User").Preload("Property").
			Where("user_id = ? AND property_id = ?", userID, propertyID).
			Order("sent_date DESC").
			Find(&messages).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list messages")
		}
		return c.JSON(listResponse(messages))
	}
}

func CreateMessageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateMessageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Content = strings.TrimSpace(body.Content)
		if body.UserID == 0 || body.PropertyID == 0 || body.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "userId, propertyId and content are required")
		}

		msg, err := CreateMessage(body.UserID, body.PropertyID, body.Content)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrPropertyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create message")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(msg))
	}
}

func DeleteMessageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		if err := DeleteMessage(uint(id)); err != nil {
			if errors.Is(err, ErrMessageNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete message")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
