package services

import (
	"testing"
	"time"

	"teatally/internal/pagination"
	"teatally/internal/testutil"
)

func TestCreateTasting(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)

		when := time.Now().Add(48 * time.Hour)
		tasting, err := svc.CreateTasting(admin.ID, "Spring Oolongs", "Four Taiwanese oolongs", &when)
		testutil.AssertNoError(t, err)

		if tasting.ID == 0 {
			t.Fatal("expected non-zero tasting ID")
		}
		if tasting.Title != "Spring Oolongs" {
			t.Errorf("expected title Spring Oolongs, got %s", tasting.Title)
		}
		if tasting.CreatedByID != admin.ID {
			t.Errorf("expected creator %d, got %d", admin.ID, tasting.CreatedByID)
		}
		if tasting.ScheduledAt == nil {
			t.Error("expected scheduled time to be stored")
		}
	})

	t.Run("empty_title", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)

		_, err := svc.CreateTasting(admin.ID, "   ", "", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateTasting(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		updated, err := svc.UpdateTasting(tasting.ID, "Renamed", "", nil)
		testutil.AssertNoError(t, err)

		if updated.Title != "Renamed" {
			t.Errorf("expected title Renamed, got %s", updated.Title)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)

		_, err := svc.UpdateTasting(99999, "Renamed", "", nil)
		testutil.AssertAppError(t, err, "TASTING_NOT_FOUND")
	})
}

func TestGetTastingByID(t *testing.T) {
	t.Run("preloads_samples_and_dimensions", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		testutil.CreateTestSample(t, db, tasting.ID, 2)
		testutil.CreateTestSample(t, db, tasting.ID, 1)
		testutil.CreateTestDimension(t, db, tasting.ID, "aroma")

		got, err := svc.GetTastingByID(tasting.ID)
		testutil.AssertNoError(t, err)

		if len(got.Samples) != 2 {
			t.Fatalf("expected 2 samples, got %d", len(got.Samples))
		}
		if got.Samples[0].Position != 1 || got.Samples[1].Position != 2 {
			t.Error("expected samples ordered by position")
		}
		if len(got.Dimensions) != 1 {
			t.Errorf("expected 1 dimension, got %d", len(got.Dimensions))
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)

		_, err := svc.GetTastingByID(99999)
		testutil.AssertAppError(t, err, "TASTING_NOT_FOUND")
	})
}

func TestListTastings(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTastingService(db)
	admin := testutil.CreateTestAdmin(t, db)

	for i := 0; i < 3; i++ {
		testutil.CreateTestTasting(t, db, admin.ID)
	}

	resp, err := svc.ListTastings(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if len(resp.Data) != 2 {
		t.Errorf("expected 2 items on first page, got %d", len(resp.Data))
	}
	if resp.TotalItems < 3 {
		t.Errorf("expected at least 3 total items, got %d", resp.TotalItems)
	}
}

func TestAddSample(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		sample, err := svc.AddSample(tasting.ID, "Dong Ding", "Medium roast", 1)
		testutil.AssertNoError(t, err)

		if sample.Position != 1 {
			t.Errorf("expected position 1, got %d", sample.Position)
		}
		if sample.TastingID != tasting.ID {
			t.Errorf("expected tasting ID %d, got %d", tasting.ID, sample.TastingID)
		}
	})

	t.Run("duplicate_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		_, err := svc.AddSample(tasting.ID, "Dong Ding", "", 1)
		testutil.AssertNoError(t, err)

		_, err = svc.AddSample(tasting.ID, "Baozhong", "", 1)
		testutil.AssertAppError(t, err, "DUPLICATE_POSITION")
	})

	t.Run("same_position_different_tastings", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		first := testutil.CreateTestTasting(t, db, admin.ID)
		second := testutil.CreateTestTasting(t, db, admin.ID)

		_, err := svc.AddSample(first.ID, "Dong Ding", "", 1)
		testutil.AssertNoError(t, err)
		_, err = svc.AddSample(second.ID, "Baozhong", "", 1)
		testutil.AssertNoError(t, err)
	})

	t.Run("invalid_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		_, err := svc.AddSample(tasting.ID, "Dong Ding", "", 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("tasting_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)

		_, err := svc.AddSample(99999, "Dong Ding", "", 1)
		testutil.AssertAppError(t, err, "TASTING_NOT_FOUND")
	})
}

func TestUpdateSample(t *testing.T) {
	t.Run("move_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)

		newPos := 3
		updated, err := svc.UpdateSample(sample.ID, "", "", &newPos)
		testutil.AssertNoError(t, err)

		if updated.Position != 3 {
			t.Errorf("expected position 3, got %d", updated.Position)
		}
	})

	t.Run("move_onto_taken_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		testutil.CreateTestSample(t, db, tasting.ID, 1)
		second := testutil.CreateTestSample(t, db, tasting.ID, 2)

		taken := 1
		_, err := svc.UpdateSample(second.ID, "", "", &taken)
		testutil.AssertAppError(t, err, "DUPLICATE_POSITION")
	})

	t.Run("keep_own_position", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)
		sample := testutil.CreateTestSample(t, db, tasting.ID, 1)

		same := 1
		_, err := svc.UpdateSample(sample.ID, "Renamed", "", &same)
		testutil.AssertNoError(t, err)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)

		_, err := svc.UpdateSample(99999, "Renamed", "", nil)
		testutil.AssertAppError(t, err, "SAMPLE_NOT_FOUND")
	})
}

func TestAddDimension(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		dim, err := svc.AddDimension(tasting.ID, "aroma", "Aroma", 0, 10)
		testutil.AssertNoError(t, err)

		if dim.Code != "aroma" {
			t.Errorf("expected code aroma, got %s", dim.Code)
		}
		if dim.MinValue != 0 || dim.MaxValue != 10 {
			t.Errorf("expected range 0..10, got %d..%d", dim.MinValue, dim.MaxValue)
		}
	})

	t.Run("name_defaults_to_code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		dim, err := svc.AddDimension(tasting.ID, "body", "", 0, 10)
		testutil.AssertNoError(t, err)

		if dim.Name != "body" {
			t.Errorf("expected name to default to code, got %s", dim.Name)
		}
	})

	t.Run("duplicate_code", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		_, err := svc.AddDimension(tasting.ID, "aroma", "Aroma", 0, 10)
		testutil.AssertNoError(t, err)

		_, err = svc.AddDimension(tasting.ID, "aroma", "Nose", 1, 5)
		testutil.AssertAppError(t, err, "DUPLICATE_CODE")
	})

	t.Run("empty_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTastingService(db)
		admin := testutil.CreateTestAdmin(t, db)
		tasting := testutil.CreateTestTasting(t, db, admin.ID)

		_, err := svc.AddDimension(tasting.ID, "aroma", "Aroma", 5, 5)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestListSamplesAndDimensions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTastingService(db)
	admin := testutil.CreateTestAdmin(t, db)
	tasting := testutil.CreateTestTasting(t, db, admin.ID)
	testutil.CreateTestSample(t, db, tasting.ID, 3)
	testutil.CreateTestSample(t, db, tasting.ID, 1)
	testutil.CreateTestDimension(t, db, tasting.ID, "aroma")
	testutil.CreateTestDimension(t, db, tasting.ID, "body")

	samples, err := svc.ListSamples(tasting.ID)
	testutil.AssertNoError(t, err)
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Position != 1 {
		t.Error("expected samples ordered by position")
	}

	dimensions, err := svc.ListDimensions(tasting.ID)
	testutil.AssertNoError(t, err)
	if len(dimensions) != 2 {
		t.Fatalf("expected 2 dimensions, got %d", len(dimensions))
	}
	if dimensions[0].Code != "aroma" {
		t.Error("expected dimensions in declaration order")
	}
}
