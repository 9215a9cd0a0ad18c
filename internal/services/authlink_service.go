package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "teatally/internal/errors"
	"teatally/internal/middleware"
	"teatally/internal/models"
)

const tokenLength = 32

// DefaultSingleUsePolicy marks which purposes consume their link on first
// resolution. Rating and result pages stay reusable until expiry so a page
// reload does not lock the participant out; the admin panel link is burned
// on use.
var DefaultSingleUsePolicy = map[models.LinkPurpose]bool{
	models.PurposeRatingPage: false,
	models.PurposeResultPage: false,
	models.PurposeAdminPanel: true,
}

// authLinkService handles the auth-link lifecycle.
type authLinkService struct {
	db        *gorm.DB
	baseURL   string
	ttl       time.Duration
	singleUse map[models.LinkPurpose]bool
}

// NewAuthLinkService creates a new AuthLinkServicer. A nil singleUse map
// falls back to DefaultSingleUsePolicy.
func NewAuthLinkService(db *gorm.DB, baseURL string, ttl time.Duration, singleUse map[models.LinkPurpose]bool) AuthLinkServicer {
	if singleUse == nil {
		singleUse = DefaultSingleUsePolicy
	}
	return &authLinkService{db: db, baseURL: baseURL, ttl: ttl, singleUse: singleUse}
}

// Issue persists a new auth link for the user behind the given Telegram
// identity and returns the link together with its frontend URL.
func (s *authLinkService) Issue(telegramID int64, purpose models.LinkPurpose, context map[string]string) (*models.AuthLink, string, error) {
	if !purpose.Valid() {
		return nil, "", apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown link purpose")
	}

	var user models.User
	if err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrUserNotFound
		}
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if purpose == models.PurposeAdminPanel && !user.IsAdmin {
		return nil, "", apperrors.WithMessage(apperrors.ErrForbidden, "admin panel links require the admin flag")
	}

	token, err := generateToken(tokenLength)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	link := &models.AuthLink{
		Token:     token,
		UserID:    user.ID,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := link.SetContext(context); err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Create(link).Error; err != nil {
		return nil, "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	link.User = &user

	return link, s.baseURL + "/a/" + token, nil
}

// Resolve looks up a token and returns the bound user, purpose, and context.
// Expired links fail with TOKEN_EXPIRED. For single-use purposes, consumption
// is an atomic conditional update on used_at so that of two concurrent
// resolutions exactly one succeeds and the other observes TOKEN_USED.
func (s *authLinkService) Resolve(token string) (*ResolvedLink, error) {
	var link models.AuthLink
	if err := s.db.Where("token = ?", token).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if !time.Now().Before(link.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	if s.singleUse[link.Purpose] {
		if link.UsedAt != nil {
			return nil, apperrors.ErrTokenUsed
		}
		// Compare-and-set at the store layer: multiple backend instances
		// may race on the same token, so in-process locking is not enough.
		result := s.db.Model(&models.AuthLink{}).
			Where("id = ? AND used_at IS NULL", link.ID).
			Update("used_at", time.Now())
		if result.Error != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, apperrors.ErrTokenUsed
		}
	}

	var user models.User
	if err := s.db.First(&user, link.UserID).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	context, err := link.ContextMap()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resolved := &ResolvedLink{
		User:    &user,
		Purpose: link.Purpose,
		Context: context,
	}

	if link.Purpose == models.PurposeAdminPanel {
		adminToken, err := middleware.GenerateAdminToken(&user)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		resolved.AdminToken = adminToken
	}

	return resolved, nil
}

// generateToken generates a random hex token of the specified length
func generateToken(length int) (string, error) {
	bytes := make([]byte, length/2+1)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
