package favorite

import (
	"errors"
	"strconv"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FavoriteResponse struct {
	ID               uint   `json:"id"`
	UserID           uint   `json:"userId"`
	Username         string `json:"username"`
	PropertyID       uint   `json:"propertyId"`
	PropertyLocation string `json:"propertyLocation"`
	DateAdded        string `json:"dateAdded"`
	CreatedAt        string `json:"createdAt"`
}

func toResponse(f *models.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:               f.ID,
		UserID:           f.UserID,
		Username:         f.User.Username,
		PropertyID:       f.PropertyID,
		PropertyLocation: f.Property.Location,
		DateAdded:        f.DateAdded.Format("2006-01-02 15:04:05"),
		CreatedAt:        f.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func listResponse(favorites []models.Favorite) []FavoriteResponse {
	res := make([]FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		res = append(res, toResponse(&favorites[i]))
	}
	return res
}

func parsePairParams(c *fiber.Ctx) (uint, uint, error) {
	userID, err := strconv.ParseUint(c.Params("userId"), 10, 32)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid userId")
	}
	propertyID, err := strconv.ParseUint(c.Params("propertyId"), 10, 32)
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Invalid propertyId")
	}
	return uint(userID), uint(propertyID), nil
}

func ListFavoritesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var favorites []models.Favorite
		if err := database.DB.Preload("User").Preload("Property").Find(&favorites).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list favorites")
		}
		return c.JSON(listResponse(favorites))
	}
}

func GetFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var fav models.Favorite
		if err := database.DB.Preload("User").Preload("Property").First(&fav, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Favorite not found with id "+id)
		}
		return c.JSON(toResponse(&fav))
	}
}

func ListFavoritesByUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")

		var favorites []models.Favorite
		if err := database.DB.Preload("User").Preload("Property").
			Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list favorites")
		}
		return c.JSON(listResponse(favorites))
	}
}

func ListFavoritesByPropertyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		propertyID := c.Params("propertyId")

		var favorites []models.Favorite
		if err := database.DB.Preload("User").Preload("Property").
			Where("property_id = ?", propertyID).Find(&favorites).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list favorites")
		}
		return c.JSON(listResponse(favorites))
	}
}

func AddFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, propertyID, err := parsePairParams(c)
		if err != nil {
			return err
		}

		fav, err := AddFavorite(userID, propertyID)
		if err != nil {
			switch {
			case errors.Is(err, ErrAlreadyFavorited):
				return fiber.NewError(fiber.StatusConflict, "Property already in favorites")
			case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrPropertyNotFound):
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Could not add favorite")
			}
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(fav))
	}
}

func RemoveFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, propertyID, err := parsePairParams(c)
		if err != nil {
			return err
		}

		if err := RemoveFavorite(userID, propertyID); err != nil {
			if errors.Is(err, ErrFavoriteNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not remove favorite")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func DeleteFavoriteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var fav models.Favorite
		if err := database.DB.First(&fav, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Favorite not found with id "+id)
		}

		if err := database.DB.Delete(&fav).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete favorite")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
