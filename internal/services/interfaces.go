package services

import (
	"time"

	"teatally/internal/models"
	"teatally/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	RegisterFromTelegram(telegramID int64, username, fullName string) (*models.User, error)
	GetByTelegramID(telegramID int64) (*models.User, error)
	GetByID(id uint) (*models.User, error)
}

// ResolvedLink is the outcome of a successful auth-link resolution.
type ResolvedLink struct {
	User    *models.User      `json:"user"`
	Purpose models.LinkPurpose `json:"purpose"`
	Context map[string]string `json:"context"`
	// AdminToken carries a signed admin session JWT when the purpose
	// is admin_panel, empty otherwise.
	AdminToken string `json:"admin_token,omitempty"`
}

// AuthLinkServicer defines the contract for the auth-link lifecycle.
type AuthLinkServicer interface {
	Issue(telegramID int64, purpose models.LinkPurpose, context map[string]string) (*models.AuthLink, string, error)
	Resolve(token string) (*ResolvedLink, error)
}

// TastingServicer defines the contract for tasting, sample, and dimension CRUD.
type TastingServicer interface {
	CreateTasting(createdByID uint, title, description string, scheduledAt *time.Time) (*models.Tasting, error)
	UpdateTasting(tastingID uint, title, description string, scheduledAt *time.Time) (*models.Tasting, error)
	GetTastingByID(tastingID uint) (*models.Tasting, error)
	ListTastings(page pagination.PageRequest) (*pagination.PageResponse[models.Tasting], error)
	AddSample(tastingID uint, name, description string, position int) (*models.TeaSample, error)
	UpdateSample(sampleID uint, name, description string, position *int) (*models.TeaSample, error)
	ListSamples(tastingID uint) ([]models.TeaSample, error)
	AddDimension(tastingID uint, code, name string, minValue, maxValue int) (*models.RatingDimension, error)
	ListDimensions(tastingID uint) ([]models.RatingDimension, error)
}

// RatingServicer defines the contract for rating submission and retrieval.
type RatingServicer interface {
	Submit(userID, sampleID uint, values map[string]int) (*models.Rating, error)
	GetUserRatings(userID, tastingID uint) ([]models.Rating, error)
}

// DimensionAverage is the arithmetic mean of one dimension's values.
type DimensionAverage struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// SampleSummary aggregates all ratings of one tea sample.
type SampleSummary struct {
	SampleID   uint               `json:"sample_id"`
	Name       string             `json:"name"`
	Position   int                `json:"position"`
	Ratings    int                `json:"ratings"`
	Dimensions []DimensionAverage `json:"dimensions"`
	Overall    float64            `json:"overall"`
	Verdict    string             `json:"verdict"`
}

// TastingSummary aggregates a whole tasting: per-sample breakdowns plus
// overall per-dimension means across all samples.
type TastingSummary struct {
	TastingID    uint               `json:"tasting_id"`
	Title        string             `json:"title"`
	Participants int                `json:"participants"`
	Samples      []SampleSummary    `json:"samples"`
	Dimensions   []DimensionAverage `json:"dimensions"`
}

// ProfileEntry holds one user's values for one sample next to the group means.
type ProfileEntry struct {
	SampleID   uint               `json:"sample_id"`
	SampleName string             `json:"sample_name"`
	Position   int                `json:"position"`
	Values     map[string]int     `json:"values"`
	GroupMeans map[string]float64 `json:"group_means"`
}

// UserProfile is the radar-chart payload for one user in one tasting.
type UserProfile struct {
	UserID    uint           `json:"user_id"`
	UserName  string         `json:"user_name"`
	TastingID uint           `json:"tasting_id"`
	Entries   []ProfileEntry `json:"entries"`
}

// SummaryServicer defines the contract for aggregation and export.
type SummaryServicer interface {
	TastingSummary(tastingID uint) (*TastingSummary, error)
	UserProfile(userID, tastingID uint) (*UserProfile, error)
	ExportCSV(tastingID uint) ([]byte, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
