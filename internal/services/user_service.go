package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "teatally/internal/errors"
	"teatally/internal/models"
)

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// RegisterFromTelegram creates a user on first bot contact or refreshes the
// stored name fields on subsequent contacts. Users are never deleted.
func (s *userService) RegisterFromTelegram(telegramID int64, username, fullName string) (*models.User, error) {
	if telegramID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "telegram_id is required")
	}

	var user models.User
	err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = models.User{
				TelegramID: telegramID,
				Username:   username,
				FullName:   fullName,
			}
			if err := s.db.Create(&user).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			return &user, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	// Refresh name fields, keep the admin flag untouched
	user.Username = username
	user.FullName = fullName
	if err := s.db.Save(&user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &user, nil
}

// GetByTelegramID retrieves a user by their Telegram account ID
func (s *userService) GetByTelegramID(telegramID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetByID retrieves a user by ID
func (s *userService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}
