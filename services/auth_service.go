package services

import (
	"errors"
	"strings"
	"time"

	"annapurna-backend/models"
	"annapurna-backend/utils"

	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a user and returns a signed token. Emails are unique
// case-insensitively, so they are stored lowercase.
func (s *AuthService) Register(name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{Name: name, Email: email, Password: hash}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}
	return utils.GenerateJWT(user.ID)
}

func (s *AuthService) Login(email, password string) (string, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		// Same answer for unknown email and wrong password.
		return "", ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWT(user.ID)
}

func (s *AuthService) Profile(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword stores a short-lived reset code and mails it. It succeeds
// silently for unknown emails so the endpoint never reveals whether an
// account exists.
func (s *AuthService) ForgotPassword(email string) error {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	code := utils.GenerateRandomToken(6)
	user.ResetToken = code
	user.ResetTokenExp = time.Now().Add(resetTokenTTL)
	if err := s.db.Save(&user).Error; err != nil {
		return err
	}
	return utils.SendResetEmail(user.Email, code)
}

// ResetPassword consumes a reset code and replaces the password.
func (s *AuthService) ResetPassword(code, newPassword string) error {
	if code == "" {
		return ErrInvalidResetToken
	}

	var user models.User
	if err := s.db.Where("reset_token = ?", code).First(&user).Error; err != nil {
		return ErrInvalidResetToken
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
