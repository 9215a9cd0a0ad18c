package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "teatally/internal/errors"
	"teatally/internal/models"
)

// ratingService handles rating submission and retrieval.
type ratingService struct {
	db *gorm.DB
}

// NewRatingService creates a new RatingServicer.
func NewRatingService(db *gorm.DB) RatingServicer {
	return &ratingService{db: db}
}

// Submit validates the dimension values against the sample's tasting and
// upserts the rating keyed by (user, sample). A resubmission replaces the
// previously stored values.
func (s *ratingService) Submit(userID, sampleID uint, values map[string]int) (*models.Rating, error) {
	if len(values) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "at least one dimension value is required")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var sample models.TeaSample
	if err := s.db.First(&sample, sampleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSampleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var dimensions []models.RatingDimension
	if err := s.db.Where("tasting_id = ?", sample.TastingID).Find(&dimensions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	byCode := make(map[string]models.RatingDimension, len(dimensions))
	for _, d := range dimensions {
		byCode[d.Code] = d
	}

	for code, value := range values {
		dim, ok := byCode[code]
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrUnknownDimension,
				fmt.Sprintf("dimension %q is not declared for this tasting", code))
		}
		if value < dim.MinValue || value > dim.MaxValue {
			return nil, apperrors.WithMessage(apperrors.ErrValueOutOfRange,
				fmt.Sprintf("value %d for %q is outside %d..%d", value, code, dim.MinValue, dim.MaxValue))
		}
	}

	// Upsert by (user, sample)
	var rating models.Rating
	err := s.db.Where("user_id = ? AND tea_sample_id = ?", userID, sampleID).First(&rating).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		rating = models.Rating{UserID: userID, TeaSampleID: sampleID}
	}

	if err := rating.SetValues(values); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Save(&rating).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &rating, nil
}

// GetUserRatings returns the user's ratings for all samples of a tasting,
// ordered by sample position.
func (s *ratingService) GetUserRatings(userID, tastingID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Joins("JOIN tea_samples ON tea_samples.id = ratings.tea_sample_id").
		Where("ratings.user_id = ? AND tea_samples.tasting_id = ?", userID, tastingID).
		Order("tea_samples.position ASC").
		Preload("TeaSample").
		Find(&ratings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ratings, nil
}
