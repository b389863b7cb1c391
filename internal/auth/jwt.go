package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type UserType string

const (
	UserTypeAdmin UserType = "ADMIN"
	UserTypeUser  UserType = "USER"
)

type JWTCustomClaims struct {
	PrincipalID uint     `json:"principal_id"`
	Email       string   `json:"email"`
	UserType    UserType `json:"user_type"`
	jwt.RegisteredClaims
}

const tokenTTL = 24 * time.Hour

func GenerateToken(secret string, principalID uint, email string, userType UserType) (string, error) {
	claims := &JWTCustomClaims{
		PrincipalID: principalID,
		Email:       email,
		UserType:    userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
