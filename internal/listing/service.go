package listing

import (
	"errors"
	"fmt"
	"log"
	"path"
	"time"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrAdminNotFound    = errors.New("admin not found")
)

// FileStore is the slice of the blob store the cascade delete needs.
type FileStore interface {
	Delete(name string) error
}

type PhotoInput struct {
	URL      string
	OrderNum int
}

type PropertyInput struct {
	Title       string
	Area        float64
	Rooms       int
	Location    string
	Price       float64
	Description string
	Contact     string
	Status      string
	Type        models.PropertyType
	ListingType models.ListingType
	AdminID     uint
}

// CreateProperty persists a new listing and its photos in one transaction.
// Photo order values are taken verbatim from the caller.
func CreateProperty(in PropertyInput, photos []PhotoInput) (*models.Property, error) {
	var admin models.Admin
	if err := database.DB.First(&admin, "id = ?", in.AdminID).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrAdminNotFound, in.AdminID)
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	now := time.Now()
	property := models.Property{
		AdminID:         in.AdminID,
		Title:           in.Title,
		Area:            in.Area,
		Rooms:           in.Rooms,
		Location:        in.Location,
		Price:           in.Price,
		Description:     in.Description,
		Contact:         in.Contact,
		Status:          status,
		Type:            in.Type,
		ListingType:     in.ListingType,
		CreatedAt:       now,
		PublicationDate: now,
		UpdatedAt:       now,
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("could not start transaction: %w", tx.Error)
	}

	if err := tx.Create(&property).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not create property: %w", err)
	}
	for _, p := range photos {
		photo := models.Photo{
			PropertyID: property.ID,
			URL:        p.URL,
			OrderNum:   p.OrderNum,
		}
		if err := tx.Create(&photo).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not create photo: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit property creation: %w", err)
	}

	return GetPropertyByID(property.ID)
}

// UpdateProperty overwrites all descriptive fields. A non-nil photo slice
// (including an empty one) fully replaces the existing photo set; nil leaves
// the photos untouched.
func UpdateProperty(id uint, in PropertyInput, photos []PhotoInput) (*models.Property, error) {
	var property models.Property
	if err := database.DB.First(&property, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrPropertyNotFound, id)
	}

	property.Title = in.Title
	property.Area = in.Area
	property.Rooms = in.Rooms
	property.Location = in.Location
	property.Price = in.Price
	property.Description = in.Description
	property.Contact = in.Contact
	property.Status = in.Status
	property.Type = in.Type
	property.ListingType = in.ListingType
	property.UpdatedAt = time.Now()

	tx := database.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("could not start transaction: %w", tx.Error)
	}

	if err := tx.Save(&property).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not update property: %w", err)
	}

	// Replace-all semantics: a supplied photo list, even an empty one,
	// throws away the previous set.
	if photos != nil {
		if err := tx.Where("property_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not delete old photos: %w", err)
		}
		for _, p := range photos {
			photo := models.Photo{
				PropertyID: id,
				URL:        p.URL,
				OrderNum:   p.OrderNum,
			}
			if err := tx.Create(&photo).Error; err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("could not create photo: %w", err)
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("could not commit property update: %w", err)
	}

	return GetPropertyByID(id)
}

// DeleteProperty removes the listing, its photo rows and their backing files.
// The database delete commits first; file removal happens afterwards so a
// rollback can never leave photo rows pointing at deleted files. File
// removal failures are logged, never propagated.
func DeleteProperty(id uint, files FileStore) error {
	var property models.Property
	if err := database.DB.First(&property, "id = ?", id).Error; err != nil {
		return fmt.Errorf("%w: id %d", ErrPropertyNotFound, id)
	}

	var photos []models.Photo
	if err := database.DB.Where("property_id = ?", id).Find(&photos).Error; err != nil {
		return fmt.Errorf("could not load photos of property %d: %w", id, err)
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("could not start transaction: %w", tx.Error)
	}

	if err := tx.Where("property_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete photos of property %d: %w", id, err)
	}
	if err := tx.Where("property_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete favorites of property %d: %w", id, err)
	}
	if err := tx.Where("property_id = ?", id).Delete(&models.Message{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete messages of property %d: %w", id, err)
	}
	if err := tx.Delete(&property).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("could not delete property %d: %w", id, err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("could not commit property deletion: %w", err)
	}

	if files != nil {
		for _, photo := range photos {
			name := path.Base(photo.URL)
			if err := files.Delete(name); err != nil {
				log.Printf("Could not delete file %s of property %d: %v", name, id, err)
			}
		}
	}

	return nil
}

func GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	if err := withRelations(database.DB).First(&property, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("%w: id %d", ErrPropertyNotFound, id)
	}
	return &property, nil
}

func ListProperties() ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := withRelations(database.DB).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func ListPropertiesByAdmin(adminID uint) ([]models.Property, error) {
	properties := make([]models.Property, 0)
	if err := withRelations(database.DB).Where("admin_id = ?", adminID).Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// withRelations preloads the owning admin and the photos in display order.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Admin").Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	})
}
