package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	apperrors "teatally/internal/errors"
	"teatally/internal/logger"
	"teatally/internal/models"
)

// Verdict thresholds on the sample's overall mean, assuming the common
// 0..10 dimension scale.
const (
	verdictOutstanding = 8.0
	verdictSolid       = 6.0
	verdictMiddling    = 4.0
)

// summaryService computes aggregations over submitted ratings.
type summaryService struct {
	db *gorm.DB
}

// NewSummaryService creates a new SummaryServicer.
func NewSummaryService(db *gorm.DB) SummaryServicer {
	return &summaryService{db: db}
}

// TastingSummary computes per-sample and per-dimension arithmetic means for
// a tasting plus a rule-based textual verdict per sample.
func (s *summaryService) TastingSummary(tastingID uint) (*TastingSummary, error) {
	tasting, dimensions, samples, ratings, err := s.loadTastingData(tastingID)
	if err != nil {
		return nil, err
	}

	// Values grouped by (sample, dimension) and by dimension overall
	type cell struct {
		sum   int
		count int
	}
	sampleCells := make(map[uint]map[string]*cell)
	overallCells := make(map[string]*cell)
	participants := make(map[uint]struct{})
	sampleRatings := make(map[uint]int)

	for _, r := range ratings {
		values, err := r.Values()
		if err != nil {
			logger.Get().Warnw("skipping undecodable rating", "rating_id", r.ID, "error", err)
			continue
		}
		participants[r.UserID] = struct{}{}
		sampleRatings[r.TeaSampleID]++

		cells, ok := sampleCells[r.TeaSampleID]
		if !ok {
			cells = make(map[string]*cell)
			sampleCells[r.TeaSampleID] = cells
		}
		for code, value := range values {
			if cells[code] == nil {
				cells[code] = &cell{}
			}
			cells[code].sum += value
			cells[code].count++
			if overallCells[code] == nil {
				overallCells[code] = &cell{}
			}
			overallCells[code].sum += value
			overallCells[code].count++
		}
	}

	summary := &TastingSummary{
		TastingID:    tasting.ID,
		Title:        tasting.Title,
		Participants: len(participants),
		Samples:      make([]SampleSummary, 0, len(samples)),
		Dimensions:   make([]DimensionAverage, 0, len(dimensions)),
	}

	for _, dim := range dimensions {
		c := overallCells[dim.Code]
		avg := DimensionAverage{Code: dim.Code, Name: dim.Name}
		if c != nil && c.count > 0 {
			avg.Average = round2(float64(c.sum) / float64(c.count))
			avg.Count = c.count
		}
		summary.Dimensions = append(summary.Dimensions, avg)
	}

	for _, sample := range samples {
		ss := SampleSummary{
			SampleID: sample.ID,
			Name:     sample.Name,
			Position: sample.Position,
			Ratings:  sampleRatings[sample.ID],
		}

		var dimSum float64
		var dimCount int
		for _, dim := range dimensions {
			c := sampleCells[sample.ID][dim.Code]
			avg := DimensionAverage{Code: dim.Code, Name: dim.Name}
			if c != nil && c.count > 0 {
				avg.Average = round2(float64(c.sum) / float64(c.count))
				avg.Count = c.count
				dimSum += avg.Average
				dimCount++
			}
			ss.Dimensions = append(ss.Dimensions, avg)
		}

		if dimCount > 0 {
			ss.Overall = round2(dimSum / float64(dimCount))
			ss.Verdict = verdictFor(ss.Overall, sample.Name)
		}

		summary.Samples = append(summary.Samples, ss)
	}

	return summary, nil
}

// UserProfile returns the user's own values per sample next to the group
// means, shaped for a radar chart.
func (s *summaryService) UserProfile(userID, tastingID uint) (*UserProfile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary, err := s.TastingSummary(tastingID)
	if err != nil {
		return nil, err
	}

	var ratings []models.Rating
	err = s.db.
		Joins("JOIN tea_samples ON tea_samples.id = ratings.tea_sample_id").
		Where("ratings.user_id = ? AND tea_samples.tasting_id = ?", userID, tastingID).
		Find(&ratings).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	ownValues := make(map[uint]map[string]int, len(ratings))
	for _, r := range ratings {
		values, err := r.Values()
		if err != nil {
			logger.Get().Warnw("skipping undecodable rating", "rating_id", r.ID, "error", err)
			continue
		}
		ownValues[r.TeaSampleID] = values
	}

	profile := &UserProfile{
		UserID:    user.ID,
		UserName:  user.DisplayName(),
		TastingID: tastingID,
		Entries:   make([]ProfileEntry, 0, len(summary.Samples)),
	}

	for _, ss := range summary.Samples {
		entry := ProfileEntry{
			SampleID:   ss.SampleID,
			SampleName: ss.Name,
			Position:   ss.Position,
			Values:     ownValues[ss.SampleID],
			GroupMeans: make(map[string]float64, len(ss.Dimensions)),
		}
		for _, dim := range ss.Dimensions {
			if dim.Count > 0 {
				entry.GroupMeans[dim.Code] = dim.Average
			}
		}
		profile.Entries = append(profile.Entries, entry)
	}

	return profile, nil
}

// ExportCSV renders one row per (user, sample) rating with a column per
// dimension code, in dimension declaration order.
func (s *summaryService) ExportCSV(tastingID uint) ([]byte, error) {
	_, dimensions, samples, ratings, err := s.loadTastingData(tastingID)
	if err != nil {
		return nil, err
	}

	sampleByID := make(map[uint]models.TeaSample, len(samples))
	for _, sample := range samples {
		sampleByID[sample.ID] = sample
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"telegram_id", "taster", "sample", "position"}
	for _, dim := range dimensions {
		header = append(header, dim.Code)
	}
	if err := w.Write(header); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	for _, r := range ratings {
		values, err := r.Values()
		if err != nil {
			logger.Get().Warnw("skipping undecodable rating", "rating_id", r.ID, "error", err)
			continue
		}
		sample := sampleByID[r.TeaSampleID]

		row := []string{"", "", sample.Name, strconv.Itoa(sample.Position)}
		if r.User != nil {
			row[0] = strconv.FormatInt(r.User.TelegramID, 10)
			row[1] = r.User.DisplayName()
		}
		for _, dim := range dimensions {
			if value, ok := values[dim.Code]; ok {
				row = append(row, strconv.Itoa(value))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf.Bytes(), nil
}

// loadTastingData fetches the tasting, its dimensions and samples, and all
// ratings submitted for its samples.
func (s *summaryService) loadTastingData(tastingID uint) (*models.Tasting, []models.RatingDimension, []models.TeaSample, []models.Rating, error) {
	var tasting models.Tasting
	if err := s.db.First(&tasting, tastingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, apperrors.ErrTastingNotFound
		}
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var dimensions []models.RatingDimension
	if err := s.db.Where("tasting_id = ?", tastingID).Order("id ASC").Find(&dimensions).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var samples []models.TeaSample
	if err := s.db.Where("tasting_id = ?", tastingID).Order("position ASC").Find(&samples).Error; err != nil {
		return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	sampleIDs := make([]uint, 0, len(samples))
	for _, sample := range samples {
		sampleIDs = append(sampleIDs, sample.ID)
	}

	var ratings []models.Rating
	if len(sampleIDs) > 0 {
		if err := s.db.Where("tea_sample_id IN ?", sampleIDs).Preload("User").Find(&ratings).Error; err != nil {
			return nil, nil, nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &tasting, dimensions, samples, ratings, nil
}

// verdictFor maps a sample's overall mean to a short textual verdict.
func verdictFor(overall float64, name string) string {
	switch {
	case overall >= verdictOutstanding:
		return fmt.Sprintf("%s stood out as a group favourite", name)
	case overall >= verdictSolid:
		return fmt.Sprintf("%s was solidly received", name)
	case overall >= verdictMiddling:
		return fmt.Sprintf("%s split the table", name)
	default:
		return fmt.Sprintf("%s did not convince the table", name)
	}
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
