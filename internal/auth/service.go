package auth

import (
	"errors"

	"immobilier-backend/internal/database"
	"immobilier-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type LoginResult struct {
	Token       string
	PrincipalID uint
	Username    string
	UserType    UserType
}

func AuthenticateAdmin(secret, email, password string) (*LoginResult, error) {
	var admin models.Admin
	if err := database.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(secret, admin.ID, admin.Email, UserTypeAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		PrincipalID: admin.ID,
		Username:    admin.Username,
		UserType:    UserTypeAdmin,
	}, nil
}

func AuthenticateUser(secret, email, password string) (*LoginResult, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := GenerateToken(secret, user.ID, user.Email, UserTypeUser)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		PrincipalID: user.ID,
		Username:    user.Username,
		UserType:    UserTypeUser,
	}, nil
}

// DetermineUserType checks both principal stores, admins taking precedence.
// Returns "" when the email matches neither.
func DetermineUserType(email string) UserType {
	var count int64
	database.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return UserTypeAdmin
	}

	database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return UserTypeUser
	}

	return ""
}
