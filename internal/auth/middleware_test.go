package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"immobilier-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{JWTSecret: testSecret}

	app := fiber.New()
	app.Get("/open", JWTMiddleware(cfg), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/admin-only", JWTMiddleware(cfg), RequireUserType(UserTypeAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := testApp(t)

	token, err := GenerateToken(testSecret, 7, "alice@example.com", UserTypeUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	app := testApp(t)

	resp := doRequest(t, app, "/open", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "/open", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsTamperedToken(t *testing.T) {
	app := testApp(t)

	token, err := GenerateToken("another-secret-also-32-characters!!", 7, "x@example.com", UserTypeUser)
	require.NoError(t, err)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsExpiredToken(t *testing.T) {
	app := testApp(t)

	claims := &JWTCustomClaims{
		PrincipalID: 7,
		Email:       "x@example.com",
		UserType:    UserTypeUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	resp := doRequest(t, app, "/open", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireUserType(t *testing.T) {
	app := testApp(t)

	userToken, err := GenerateToken(testSecret, 7, "alice@example.com", UserTypeUser)
	require.NoError(t, err)
	adminToken, err := GenerateToken(testSecret, 1, "agent@example.com", UserTypeAdmin)
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin-only", "Bearer "+userToken)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "/admin-only", "Bearer "+adminToken)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
