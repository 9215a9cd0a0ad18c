package models

import "time"

// Tasting is a named event grouping tea samples and the dimensions
// participants rate them on. Only admins create and edit tastings.
type Tasting struct {
	Base
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedByID uint       `gorm:"not null;index" json:"created_by_id"`

	CreatedBy  *User             `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Samples    []TeaSample       `gorm:"foreignKey:TastingID" json:"samples,omitempty"`
	Dimensions []RatingDimension `gorm:"foreignKey:TastingID" json:"dimensions,omitempty"`
}
