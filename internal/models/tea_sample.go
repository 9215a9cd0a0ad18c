package models

// TeaSample belongs to exactly one tasting and is ordered within it by
// an explicit position index, unique per tasting.
type TeaSample struct {
	Base
	TastingID   uint   `gorm:"not null;index;uniqueIndex:idx_tasting_position" json:"tasting_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Position    int    `gorm:"not null;uniqueIndex:idx_tasting_position" json:"position"`

	Tasting *Tasting `gorm:"foreignKey:TastingID" json:"tasting,omitempty"`
	Ratings []Rating `gorm:"foreignKey:TeaSampleID" json:"ratings,omitempty"`
}
