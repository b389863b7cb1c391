package listing

import (
	"errors"
	"strconv"
	"strings"

	"immobilier-backend/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type PhotoPayload struct {
	URL      string `json:"url" validate:"required"`
	OrderNum int    `json:"order" validate:"gte=0"`
}

type PropertyRequest struct {
	Title       string              `json:"title" validate:"required"`
	Area        float64             `json:"area" validate:"required,gt=0"`
	Rooms       int                 `json:"rooms" validate:"gte=0"`
	Location    string              `json:"location" validate:"required"`
	Price       float64             `json:"price" validate:"required,gt=0"`
	Description string              `json:"description"`
	Contact     string              `json:"contact"`
	Status      string              `json:"status"`
	Type        models.PropertyType `json:"type" validate:"required,oneof=HOUSE LAND"`
	ListingType models.ListingType  `json:"listingType" validate:"required,oneof=SALE RENT"`
	AdminID     uint                `json:"adminId" validate:"required"`
	// nil: keep existing photos on update; non-nil (even empty): replace all.
	Photos []PhotoPayload `json:"photos" validate:"omitempty,dive"`
}

type PhotoResponse struct {
	ID         uint   `json:"id"`
	URL        string `json:"url"`
	OrderNum   int    `json:"order"`
	PropertyID uint   `json:"propertyId"`
	CreatedAt  string `json:"createdAt"`
}

type PropertyResponse struct {
	ID              uint            `json:"id"`
	Title           string          `json:"title"`
	Area            float64         `json:"area"`
	Rooms           int             `json:"rooms"`
	Location        string          `json:"location"`
	Price           float64         `json:"price"`
	Description     string          `json:"description"`
	Contact         string          `json:"contact"`
	Status          string          `json:"status"`
	Type            string          `json:"type"`
	ListingType     string          `json:"listingType"`
	AdminID         uint            `json:"adminId"`
	AdminUsername   string          `json:"adminUsername"`
	Photos          []PhotoResponse `json:"photos"`
	PublicationDate string          `json:"publicationDate"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

const timeLayout = "2006-01-02 15:04:05"

func toResponse(p *models.Property) PropertyResponse {
	photos := make([]PhotoResponse, 0, len(p.Photos))
	for _, photo := range p.Photos {
		photos = append(photos, PhotoResponse{
			ID:         photo.ID,
			URL:        photo.URL,
			OrderNum:   photo.OrderNum,
			PropertyID: photo.PropertyID,
			CreatedAt:  photo.CreatedAt.Format(timeLayout),
		})
	}

	return PropertyResponse{
		ID:              p.ID,
		Title:           p.Title,
		Area:            p.Area,
		Rooms:           p.Rooms,
		Location:        p.Location,
		Price:           p.Price,
		Description:     p.Description,
		Contact:         p.Contact,
		Status:          p.Status,
		Type:            string(p.Type),
		ListingType:     string(p.ListingType),
		AdminID:         p.AdminID,
		AdminUsername:   p.Admin.Username,
		Photos:          photos,
		PublicationDate: p.PublicationDate.Format(timeLayout),
		CreatedAt:       p.CreatedAt.Format(timeLayout),
		UpdatedAt:       p.UpdatedAt.Format(timeLayout),
	}
}

func toResponses(properties []models.Property) []PropertyResponse {
	res := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		res = append(res, toResponse(&properties[i]))
	}
	return res
}

func parseRequest(c *fiber.Ctx) (*PropertyRequest, error) {
	var body PropertyRequest
	if err := c.BodyParser(&body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(&body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid value for field(s): "+strings.Join(fields, ", "))
		}
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	return &body, nil
}

func toInput(body *PropertyRequest) (PropertyInput, []PhotoInput) {
	in := PropertyInput{
		Title:       strings.TrimSpace(body.Title),
		Area:        body.Area,
		Rooms:       body.Rooms,
		Location:    strings.TrimSpace(body.Location),
		Price:       body.Price,
		Description: body.Description,
		Contact:     body.Contact,
		Status:      strings.TrimSpace(body.Status),
		Type:        body.Type,
		ListingType: body.ListingType,
		AdminID:     body.AdminID,
	}

	var photos []PhotoInput
	if body.Photos != nil {
		photos = make([]PhotoInput, 0, len(body.Photos))
		for _, p := range body.Photos {
			photos = append(photos, PhotoInput{URL: p.URL, OrderNum: p.OrderNum})
		}
	}

	return in, photos
}

func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// ----------------------------------------
// Public endpoints
// ----------------------------------------

func ListPublicHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		properties, err := ListProperties()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list properties")
		}
		return c.JSON(toResponses(properties))
	}
}

func GetPublicHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		property, err := GetPropertyByID(id)
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Property not found with id "+c.Params("id"))
		}
		return c.JSON(toResponse(property))
	}
}

func SearchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var criteria SearchCriteria
		if err := c.BodyParser(&criteria); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid search criteria")
		}

		properties, err := SearchProperties(criteria)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Search failed")
		}
		return c.JSON(toResponses(properties))
	}
}

// ----------------------------------------
// Admin-only management endpoints
// ----------------------------------------

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, err := parseRequest(c)
		if err != nil {
			return err
		}

		in, photos := toInput(body)
		property, err := CreateProperty(in, photos)
		if err != nil {
			if errors.Is(err, ErrAdminNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create property")
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(property))
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		body, err := parseRequest(c)
		if err != nil {
			return err
		}

		in, photos := toInput(body)
		property, err := UpdateProperty(id, in, photos)
		if err != nil {
			if errors.Is(err, ErrPropertyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update property")
		}

		return c.JSON(toResponse(property))
	}
}

func DeleteHandler(files FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return err
		}

		if err := DeleteProperty(id, files); err != nil {
			if errors.Is(err, ErrPropertyNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete property")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ListByAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := parseID(c, "adminId")
		if err != nil {
			return err
		}

		properties, err := ListPropertiesByAdmin(adminID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list properties")
		}
		return c.JSON(toResponses(properties))
	}
}
