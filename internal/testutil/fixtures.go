package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"teatally/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a registered user with a unique Telegram ID.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return createUser(t, db, false)
}

// CreateTestAdmin creates a registered user carrying the admin flag.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return createUser(t, db, true)
}

func createUser(t *testing.T, db *gorm.DB, isAdmin bool) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		TelegramID: 1000000 + n,
		Username:   fmt.Sprintf("taster%d", n),
		FullName:   fmt.Sprintf("Taster %d", n),
		IsAdmin:    isAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTasting creates a tasting owned by the given user.
func CreateTestTasting(t *testing.T, db *gorm.DB, createdByID uint) *models.Tasting {
	t.Helper()

	tasting := &models.Tasting{
		Title:       fmt.Sprintf("Test Tasting %d", nextID()),
		CreatedByID: createdByID,
	}
	if err := db.Create(tasting).Error; err != nil {
		t.Fatalf("failed to create test tasting: %v", err)
	}
	return tasting
}

// CreateTestSample creates a tea sample at the given position.
func CreateTestSample(t *testing.T, db *gorm.DB, tastingID uint, position int) *models.TeaSample {
	t.Helper()

	sample := &models.TeaSample{
		TastingID: tastingID,
		Name:      fmt.Sprintf("Test Sample %d", nextID()),
		Position:  position,
	}
	if err := db.Create(sample).Error; err != nil {
		t.Fatalf("failed to create test sample: %v", err)
	}
	return sample
}

// CreateTestDimension declares a 0..10 dimension with the given code.
func CreateTestDimension(t *testing.T, db *gorm.DB, tastingID uint, code string) *models.RatingDimension {
	t.Helper()

	dimension := &models.RatingDimension{
		TastingID: tastingID,
		Code:      code,
		Name:      code,
		MinValue:  0,
		MaxValue:  10,
	}
	if err := db.Create(dimension).Error; err != nil {
		t.Fatalf("failed to create test dimension: %v", err)
	}
	return dimension
}

// CreateTestRating stores a rating with the given dimension values.
func CreateTestRating(t *testing.T, db *gorm.DB, userID, sampleID uint, values map[string]int) *models.Rating {
	t.Helper()

	rating := &models.Rating{
		UserID:      userID,
		TeaSampleID: sampleID,
	}
	if err := rating.SetValues(values); err != nil {
		t.Fatalf("failed to encode rating values: %v", err)
	}
	if err := db.Create(rating).Error; err != nil {
		t.Fatalf("failed to create test rating: %v", err)
	}
	return rating
}

// CreateTestAuthLink stores an auth link with the given token, expiring one
// hour from now.
func CreateTestAuthLink(t *testing.T, db *gorm.DB, userID uint, purpose models.LinkPurpose, token string) *models.AuthLink {
	t.Helper()

	link := &models.AuthLink{
		Token:     token,
		UserID:    userID,
		Purpose:   purpose,
		Context:   "{}",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("failed to create test auth link: %v", err)
	}
	return link
}
