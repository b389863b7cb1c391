package admin

import (
	"log"
	"strconv"
	"strings"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/listing"
	"immobilier-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type AdminResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Status   string `json:"status"`
}

type UpdateAdminRequest struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Status   *string `json:"status"`
}

func toResponse(a *models.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Username:  a.Username,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListAdminsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var admins []models.Admin
		if err := database.DB.Find(&admins).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list admins")
		}

		res := make([]AdminResponse, 0, len(admins))
		for i := range admins {
			res = append(res, toResponse(&admins[i]))
		}
		return c.JSON(res)
	}
}

func GetAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var admin models.Admin
		if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Admin not found with id "+id)
		}
		return c.JSON(toResponse(&admin))
	}
}

func CreateAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		body.Username = strings.TrimSpace(body.Username)

		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}

		var count int64
		database.DB.Model(&models.Admin{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "An admin with this email already exists")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not hash password")
		}

		status := strings.TrimSpace(body.Status)
		if status == "" {
			status = models.StatusActive
		}

		admin := models.Admin{
			Email:        body.Email,
			Username:     body.Username,
			PasswordHash: string(hash),
			Status:       status,
		}
		if err := database.DB.Create(&admin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create admin")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&admin))
	}
}

func UpdateAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var admin models.Admin
		if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Admin not found with id "+id)
		}

		var body UpdateAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Email != nil {
			email := strings.TrimSpace(strings.ToLower(*body.Email))
			if email == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Email cannot be empty")
			}
			var count int64
			database.DB.Model(&models.Admin{}).
				Where("email = ? AND id <> ?", email, admin.ID).Count(&count)
			if count > 0 {
				return fiber.NewError(fiber.StatusConflict, "An admin with this email already exists")
			}
			admin.Email = email
		}
		if body.Username != nil {
			admin.Username = strings.TrimSpace(*body.Username)
		}
		if body.Status != nil {
			admin.Status = strings.TrimSpace(*body.Status)
		}

		if err := database.DB.Save(&admin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update admin")
		}

		return c.JSON(toResponse(&admin))
	}
}

// DeleteAdminHandler removes the admin and every property it owns, photos and
// files included, through the listing cascade.
func DeleteAdminHandler(files listing.FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
		}

		var admin models.Admin
		if err := database.DB.First(&admin, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Admin not found with id "+c.Params("id"))
		}

		properties, err := listing.ListPropertiesByAdmin(uint(id))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load admin properties")
		}
		for _, p := range properties {
			if err := listing.DeleteProperty(p.ID, files); err != nil {
				log.Printf("Could not delete property %d of admin %d: %v", p.ID, id, err)
				return fiber.NewError(fiber.StatusInternalServerError, "Could not delete admin properties")
			}
		}

		if err := database.DB.Delete(&admin).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete admin")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
