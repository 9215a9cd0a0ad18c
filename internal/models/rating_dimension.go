package models

// RatingDimension defines a named numeric axis for one tasting, with a
// bounded integer range. The code is the key ratings reference in their
// data mapping and is unique within the tasting.
type RatingDimension struct {
	Base
	TastingID uint   `gorm:"not null;index;uniqueIndex:idx_tasting_code" json:"tasting_id"`
	Code      string `gorm:"not null;size:50;uniqueIndex:idx_tasting_code" json:"code"`
	Name      string `gorm:"not null" json:"name"`
	MinValue  int    `gorm:"not null;default:0" json:"min_value"`
	MaxValue  int    `gorm:"not null;default:10" json:"max_value"`

	Tasting *Tasting `gorm:"foreignKey:TastingID" json:"tasting,omitempty"`
}
