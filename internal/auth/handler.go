package auth

import (
	"errors"
	"strings"

	"immobilier-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	ID       uint   `json:"id"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}

func LoginAdminHandler(cfg *config.Config) fiber.Handler {
	return loginHandler(cfg, AuthenticateAdmin)
}

func LoginUserHandler(cfg *config.Config) fiber.Handler {
	return loginHandler(cfg, AuthenticateUser)
}

// MeHandler echoes the principal carried by the verified token.
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"principalId": c.Locals(CtxPrincipalIDKey),
			"userType":    c.Locals(CtxUserTypeKey),
		})
	}
}

func loginHandler(cfg *config.Config, authenticate func(secret, email, password string) (*LoginResult, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))
		if body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Email and password are required")
		}

		result, err := authenticate(cfg.JWTSecret, body.Email, body.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate token")
		}

		return c.JSON(LoginResponse{
			Token:    result.Token,
			Type:     "Bearer",
			ID:       result.PrincipalID,
			Username: result.Username,
			UserType: string(result.UserType),
		})
	}
}
