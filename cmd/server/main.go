package main

import (
	"log"
	"strings"

	"immobilier-backend/internal/admin"
	"immobilier-backend/internal/auth"
	"immobilier-backend/internal/config"
	"immobilier-backend/internal/database"
	"immobilier-backend/internal/favorite"
	"immobilier-backend/internal/listing"
	"immobilier-backend/internal/message"
	"immobilier-backend/internal/photo"
	"immobilier-backend/internal/storage"
	"immobilier-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	store, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Could not initialize photo storage: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/login/admin", auth.LoginAdminHandler(cfg))
	api.Post("/auth/login/user", auth.LoginUserHandler(cfg))

	// Public registration
	api.Post("/users", users.RegisterUserHandler())

	// Public listing browse & search
	api.Get("/annonces/public/all", listing.ListPublicHandler())
	api.Get("/annonces/public/:id", listing.GetPublicHandler())
	api.Post("/annonces/public/search", listing.SearchHandler())

	// Public photo reads & binary download
	api.Get("/photos/download/:file", photo.DownloadPhotoHandler(store))
	api.Get("/photos/property/:propertyId", photo.ListPhotosByPropertyHandler())

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// User accounts
	protected.Get("/users/:id", users.GetUserHandler())
	protected.Put("/users/:id", users.UpdateUserHandler())
	protected.Delete("/users/:id", users.DeleteUserHandler())

	// Favorites
	protected.Get("/favorites", favorite.ListFavoritesHandler())
	protected.Get("/favorites/user/:userId", favorite.ListFavoritesByUserHandler())
	protected.Get("/favorites/property/:propertyId", favorite.ListFavoritesByPropertyHandler())
	protected.Get("/favorites/:id", favorite.GetFavoriteHandler())
	protected.Post("/favorites/user/:userId/property/:propertyId", favorite.AddFavoriteHandler())
	protected.Delete("/favorites/user/:userId/property/:propertyId", favorite.RemoveFavoriteHandler())
	protected.Delete("/favorites/:id", favorite.DeleteFavoriteHandler())

	// Messages
	protected.Get("/messages", message.ListMessagesHandler())
	protected.Get("/messages/user/:userId/property/:propertyId", message.ListMessagesByUserAndPropertyHandler())
	protected.Get("/messages/user/:userId", message.ListMessagesByUserHandler())
	protected.Get("/messages/property/:propertyId", message.ListMessagesByPropertyHandler())
	protected.Get("/messages/:id", message.GetMessageHandler())
	protected.Post("/messages", message.CreateMessageHandler())
	protected.Delete("/messages/:id", message.DeleteMessageHandler())

	// Admin-only routes
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireUserType(auth.UserTypeAdmin))

	// Admin accounts
	adminRoutes.Get("/admin", admin.ListAdminsHandler())
	adminRoutes.Get("/admin/:id", admin.GetAdminHandler())
	adminRoutes.Post("/admin", admin.CreateAdminHandler())
	adminRoutes.Put("/admin/:id", admin.UpdateAdminHandler())
	adminRoutes.Delete("/admin/:id", admin.DeleteAdminHandler(store))
	adminRoutes.Get("/users", users.ListUsersHandler())

	// Listing management
	adminRoutes.Post("/annonces", listing.CreateHandler())
	adminRoutes.Put("/annonces/:id", listing.UpdateHandler())
	adminRoutes.Delete("/annonces/:id", listing.DeleteHandler(store))
	adminRoutes.Get("/annonces/admin/:adminId", listing.ListByAdminHandler())

	// Photo management
	adminRoutes.Get("/photos", photo.ListPhotosHandler())
	adminRoutes.Get("/photos/:id", photo.GetPhotoHandler())
	adminRoutes.Post("/photos", photo.CreatePhotoHandler())
	adminRoutes.Post("/photos/upload", photo.UploadPhotoHandler(store))
	adminRoutes.Put("/photos/:id", photo.UpdatePhotoHandler())
	adminRoutes.Delete("/photos/:id", photo.DeletePhotoHandler(store))

	log.Println("Server listening on port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
