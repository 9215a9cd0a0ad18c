package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "teatally/internal/errors"
	"teatally/internal/models"
	"teatally/internal/pagination"
)

// tastingService handles tasting, sample, and dimension business logic.
type tastingService struct {
	db *gorm.DB
}

// NewTastingService creates a new TastingServicer.
func NewTastingService(db *gorm.DB) TastingServicer {
	return &tastingService{db: db}
}

// CreateTasting creates a new tasting event owned by the given admin user.
func (s *tastingService) CreateTasting(createdByID uint, title, description string, scheduledAt *time.Time) (*models.Tasting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}

	tasting := &models.Tasting{
		Title:       title,
		Description: description,
		ScheduledAt: scheduledAt,
		CreatedByID: createdByID,
	}
	if err := s.db.Create(tasting).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tasting, nil
}

// UpdateTasting updates title, description, and schedule of a tasting.
// Empty fields are left unchanged.
func (s *tastingService) UpdateTasting(tastingID uint, title, description string, scheduledAt *time.Time) (*models.Tasting, error) {
	tasting, err := s.loadTasting(tastingID)
	if err != nil {
		return nil, err
	}

	if title = strings.TrimSpace(title); title != "" {
		tasting.Title = title
	}
	if description != "" {
		tasting.Description = description
	}
	if scheduledAt != nil {
		tasting.ScheduledAt = scheduledAt
	}

	if err := s.db.Save(tasting).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return tasting, nil
}

// GetTastingByID retrieves a tasting with its samples and dimensions preloaded.
func (s *tastingService) GetTastingByID(tastingID uint) (*models.Tasting, error) {
	var tasting models.Tasting
	err := s.db.
		Preload("Samples", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Dimensions").
		First(&tasting, tastingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTastingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tasting, nil
}

// ListTastings returns tastings newest first, paginated.
func (s *tastingService) ListTastings(page pagination.PageRequest) (*pagination.PageResponse[models.Tasting], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Tasting{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tastings []models.Tasting
	err := s.db.
		Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&tastings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(tastings, page.Page, page.PageSize, total)
	return &resp, nil
}

// AddSample adds a tea sample to a tasting at an explicit position.
func (s *tastingService) AddSample(tastingID uint, name, description string, position int) (*models.TeaSample, error) {
	if _, err := s.loadTasting(tastingID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "sample name is required")
	}
	if position < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "position must be positive")
	}

	var count int64
	s.db.Model(&models.TeaSample{}).
		Where("tasting_id = ? AND position = ?", tastingID, position).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicatePosition
	}

	sample := &models.TeaSample{
		TastingID:   tastingID,
		Name:        name,
		Description: description,
		Position:    position,
	}
	if err := s.db.Create(sample).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return sample, nil
}

// UpdateSample updates a sample's name, description, or position.
func (s *tastingService) UpdateSample(sampleID uint, name, description string, position *int) (*models.TeaSample, error) {
	var sample models.TeaSample
	if err := s.db.First(&sample, sampleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSampleNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if name = strings.TrimSpace(name); name != "" {
		sample.Name = name
	}
	if description != "" {
		sample.Description = description
	}
	if position != nil {
		if *position < 1 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "position must be positive")
		}
		var count int64
		s.db.Model(&models.TeaSample{}).
			Where("tasting_id = ? AND position = ? AND id != ?", sample.TastingID, *position, sample.ID).
			Count(&count)
		if count > 0 {
			return nil, apperrors.ErrDuplicatePosition
		}
		sample.Position = *position
	}

	if err := s.db.Save(&sample).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &sample, nil
}

// ListSamples returns a tasting's samples ordered by position.
func (s *tastingService) ListSamples(tastingID uint) ([]models.TeaSample, error) {
	if _, err := s.loadTasting(tastingID); err != nil {
		return nil, err
	}

	var samples []models.TeaSample
	err := s.db.
		Where("tasting_id = ?", tastingID).
		Order("position ASC").
		Find(&samples).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return samples, nil
}

// AddDimension declares a rating dimension for a tasting. The code must be
// unique within the tasting and the range must be non-empty.
func (s *tastingService) AddDimension(tastingID uint, code, name string, minValue, maxValue int) (*models.RatingDimension, error) {
	if _, err := s.loadTasting(tastingID); err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "dimension code is required")
	}
	if name = strings.TrimSpace(name); name == "" {
		name = code
	}
	if minValue >= maxValue {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "min_value must be less than max_value")
	}

	var count int64
	s.db.Model(&models.RatingDimension{}).
		Where("tasting_id = ? AND code = ?", tastingID, code).
		Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateCode
	}

	dimension := &models.RatingDimension{
		TastingID: tastingID,
		Code:      code,
		Name:      name,
		MinValue:  minValue,
		MaxValue:  maxValue,
	}
	if err := s.db.Create(dimension).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return dimension, nil
}

// ListDimensions returns a tasting's declared dimensions in creation order.
func (s *tastingService) ListDimensions(tastingID uint) ([]models.RatingDimension, error) {
	if _, err := s.loadTasting(tastingID); err != nil {
		return nil, err
	}

	var dimensions []models.RatingDimension
	err := s.db.
		Where("tasting_id = ?", tastingID).
		Order("id ASC").
		Find(&dimensions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return dimensions, nil
}

func (s *tastingService) loadTasting(tastingID uint) (*models.Tasting, error) {
	var tasting models.Tasting
	if err := s.db.First(&tasting, tastingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTastingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &tasting, nil
}
