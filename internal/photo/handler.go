package photo

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path"
	"strconv"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"
	"immobilier-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type PhotoResponse struct {
	ID         uint   `json:"id"`
	URL        string `json:"url"`
	OrderNum   int    `json:"order"`
	PropertyID uint   `json:"propertyId"`
	CreatedAt  string `json:"createdAt"`
}

type CreatePhotoRequest struct {
	URL        string `json:"url"`
	OrderNum   int    `json:"order"`
	PropertyID uint   `json:"propertyId"`
}

type UpdatePhotoRequest struct {
	URL      *string `json:"url"`
	OrderNum *int    `json:"order"`
}

func toResponse(p *models.Photo) PhotoResponse {
	return PhotoResponse{
		ID:         p.ID,
		URL:        p.URL,
		OrderNum:   p.OrderNum,
		PropertyID: p.PropertyID,
		CreatedAt:  p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ListPhotosHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var photos []models.Photo
		if err := database.DB.Order("property_id ASC, order_num ASC").Find(&photos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list photos")
		}

		res := make([]PhotoResponse, 0, len(photos))
		for i := range photos {
			res = append(res, toResponse(&photos[i]))
		}
		return c.JSON(res)
	}
}

func GetPhotoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var photo models.Photo
		if err := database.DB.First(&photo, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Photo not found with id "+id)
		}
		return c.JSON(toResponse(&photo))
	}
}

func ListPhotosByPropertyHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		propertyID := c.Params("propertyId")

		var photos []models.Photo
		if err := database.DB.Where("property_id = ?", propertyID).Order("order_num ASC").Find(&photos).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list photos")
		}

		res := make([]PhotoResponse, 0, len(photos))
		for i := range photos {
			res = append(res, toResponse(&photos[i]))
		}
		return c.JSON(res)
	}
}

func CreatePhotoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreatePhotoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.URL == "" || body.PropertyID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "url and propertyId are required")
		}

		var property models.Property
		if err := database.DB.First(&property, "id = ?", body.PropertyID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Property not found with id "+strconv.FormatUint(uint64(body.PropertyID), 10))
		}

		photo := models.Photo{
			PropertyID: body.PropertyID,
			URL:        body.URL,
			OrderNum:   body.OrderNum,
		}
		if err := database.DB.Create(&photo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create photo")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&photo))
	}
}

func UpdatePhotoHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var photo models.Photo
		if err := database.DB.First(&photo, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Photo not found with id "+id)
		}

		var body UpdatePhotoRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.URL != nil {
			if *body.URL == "" {
				return fiber.NewError(fiber.StatusBadRequest, "url cannot be empty")
			}
			photo.URL = *body.URL
		}
		if body.OrderNum != nil {
			photo.OrderNum = *body.OrderNum
		}

		if err := database.DB.Save(&photo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update photo")
		}

		return c.JSON(toResponse(&photo))
	}
}

func DeletePhotoHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var photo models.Photo
		if err := database.DB.First(&photo, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Photo not found with id "+id)
		}

		if err := database.DB.Delete(&photo).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete photo")
		}

		// Best-effort file removal once the record is gone.
		name := path.Base(photo.URL)
		if err := store.Delete(name); err != nil {
			log.Printf("Could not delete file %s of photo %s: %v", name, id, err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// UploadPhotoHandler stores the multipart file on disk, then records a Photo
// pointing at the download endpoint. The stored file is cleaned up when the
// database insert fails, so uploads never leak orphaned files.
func UploadPhotoHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Missing file")
		}

		propertyID, err := strconv.ParseUint(c.FormValue("propertyId"), 10, 32)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid propertyId")
		}
		orderNum, err := strconv.Atoi(c.FormValue("order", "0"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order")
		}

		var property models.Property
		if err := database.DB.First(&property, "id = ?", propertyID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Property not found with id "+c.FormValue("propertyId"))
		}

		src, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Could not read uploaded file")
		}
		defer src.Close()

		name, err := store.Save(src, fileHeader.Filename)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidName) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid file name")
			}
			log.Printf("Could not store uploaded file %s: %v", fileHeader.Filename, err)
			return fiber.NewError(fiber.StatusInternalServerError, "Could not store file")
		}

		photo := models.Photo{
			PropertyID: uint(propertyID),
			URL:        c.BaseURL() + "/api/photos/download/" + name,
			OrderNum:   orderNum,
		}
		if err := database.DB.Create(&photo).Error; err != nil {
			if derr := store.Delete(name); derr != nil {
				log.Printf("Could not clean up file %s after failed insert: %v", name, derr)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create photo")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(&photo))
	}
}

// DownloadPhotoHandler streams a stored file. The content type is sniffed
// from the file itself rather than assumed from the name.
func DownloadPhotoHandler(store *storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("file")

		filePath, err := store.Resolve(name)
		if err != nil {
			if errors.Is(err, storage.ErrInvalidName) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid file name")
			}
			return fiber.NewError(fiber.StatusNotFound, "File not found: "+name)
		}

		f, err := os.Open(filePath)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not open file")
		}

		head := make([]byte, 512)
		n, _ := f.Read(head)
		if _, err := f.Seek(0, 0); err != nil {
			f.Close()
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read file")
		}

		stat, err := f.Stat()
		if err != nil {
			f.Close()
			return fiber.NewError(fiber.StatusInternalServerError, "Could not read file")
		}

		c.Set(fiber.HeaderContentType, http.DetectContentType(head[:n]))
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
		return c.SendStream(f, int(stat.Size()))
	}
}
