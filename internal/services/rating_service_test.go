package services

import (
	"testing"

	"teatally/internal/testutil"
)

func TestSubmitRating(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")
		testutil.CreateTestDimension(t, db, tasting.ID, "body")

		rating, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 8, "body": 6})
		testutil.AssertNoError(t, err)

		if rating.ID == 0 {
			t.Fatal("expected non-zero rating ID")
		}
		values, err := rating.Values()
		testutil.AssertNoError(t, err)
		if values["aroma"] != 8 || values["body"] != 6 {
			t.Errorf("expected stored values aroma=8 body=6, got %v", values)
		}
	})

	t.Run("resubmission_replaces_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")
		testutil.CreateTestDimension(t, db, tasting.ID, "body")

		first, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 3, "body": 4})
		testutil.AssertNoError(t, err)

		second, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 9})
		testutil.AssertNoError(t, err)

		if second.ID != first.ID {
			t.Errorf("expected resubmission to reuse rating %d, got %d", first.ID, second.ID)
		}

		values, err := second.Values()
		testutil.AssertNoError(t, err)
		if values["aroma"] != 9 {
			t.Errorf("expected aroma 9, got %d", values["aroma"])
		}
		if _, ok := values["body"]; ok {
			t.Error("expected resubmission to replace values wholesale, body survived")
		}

		var count int64
		db.Table("ratings").Where("user_id = ? AND tea_sample_id = ?", user.ID, sample.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected a single rating row per (user, sample), got %d", count)
		}
	})

	t.Run("empty_values", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Submit(user.ID, 1, map[string]int{})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("user_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)

		_, err := svc.Submit(99999, 1, map[string]int{"aroma": 5})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("sample_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.Submit(user.ID, 99999, map[string]int{"aroma": 5})
		testutil.AssertAppError(t, err, "SAMPLE_NOT_FOUND")
	})

	t.Run("unknown_dimension", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")

		_, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 5, "sparkle": 7})
		testutil.AssertAppError(t, err, "UNKNOWN_DIMENSION")
	})

	t.Run("value_out_of_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")

		_, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 11})
		testutil.AssertAppError(t, err, "VALUE_OUT_OF_RANGE")

		_, err = svc.Submit(user.ID, sample.ID, map[string]int{"aroma": -1})
		testutil.AssertAppError(t, err, "VALUE_OUT_OF_RANGE")
	})

	t.Run("boundary_values_accepted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")

		_, err := svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 0})
		testutil.AssertNoError(t, err)
		_, err = svc.Submit(user.ID, sample.ID, map[string]int{"aroma": 10})
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_dimension_from_other_tasting", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		other := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, other.ID, "sweetness")

		_, err := svc.Submit(user.ID, sample.ID, map[string]int{"sweetness": 5})
		testutil.AssertAppError(t, err, "UNKNOWN_DIMENSION")
	})
}

func TestGetUserRatings(t *testing.T) {
	t.Run("ordered_by_sample_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		second := testutil.CreateTestSample(t, db, tasting.ID, 2)
		first := testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestRating(t, db, user.ID, second.ID, map[string]int{"aroma": 5})
		testutil.CreateTestRating(t, db, user.ID, first.ID, map[string]int{"aroma": 7})

		ratings, err := svc.GetUserRatings(user.ID, tasting.ID)
		testutil.AssertNoError(t, err)

		if len(ratings) != 2 {
			t.Fatalf("expected 2 ratings, got %d", len(ratings))
		}
		if ratings[0].TeaSampleID != first.ID {
			t.Error("expected ratings ordered by sample position")
		}
		if ratings[0].TeaSample == nil {
			t.Error("expected sample to be preloaded")
		}
	})

	t.Run("excludes_other_tastings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRatingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		user := testutil.CreateTestUser(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		other := testutil.CreateTestTasting(t, db, admin.ID)
		inTasting := testutil.CreateTestSample(t, db, tasting.ID, 1)
		elsewhere := testutil.CreateTestSample(t, db, other.ID, 1)
		testutil.CreateTestRating(t, db, user.ID, inTasting.ID, map[string]int{"aroma": 5})
		testutil.CreateTestRating(t, db, user.ID, elsewhere.ID, map[string]int{"aroma": 9})

		ratings, err := svc.GetUserRatings(user.ID, tasting.ID)
		testutil.AssertNoError(t, err)

		if len(ratings) != 1 {
			t.Fatalf("expected 1 rating, got %d", len(ratings))
		}
		if ratings[0].TeaSampleID != inTasting.ID {
			t.Errorf("expected rating for sample %d, got %d", inTasting.ID, ratings[0].TeaSampleID)
		}
	})
}
