package models

import "encoding/json"

// Rating holds one user's scores for one tea sample as a mapping from
// dimension code to integer value, stored as a JSON column for BI
// flexibility. At most one rating exists per (user, sample) pair;
// resubmission replaces the previous values.
type Rating struct {
	Base
	UserID      uint   `gorm:"not null;uniqueIndex:idx_user_sample" json:"user_id"`
	TeaSampleID uint   `gorm:"not null;uniqueIndex:idx_user_sample" json:"tea_sample_id"`
	Data        string `gorm:"type:jsonb;not null" json:"-"`

	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TeaSample *TeaSample `gorm:"foreignKey:TeaSampleID" json:"tea_sample,omitempty"`
}

// Values decodes the stored dimension-code → value mapping.
func (r *Rating) Values() (map[string]int, error) {
	values := make(map[string]int)
	if r.Data == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(r.Data), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// SetValues encodes the dimension-code → value mapping into the Data column.
func (r *Rating) SetValues(values map[string]int) error {
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	r.Data = string(data)
	return nil
}

// MarshalJSON inlines the decoded value mapping as "data".
func (r Rating) MarshalJSON() ([]byte, error) {
	values, err := r.Values()
	if err != nil {
		return nil, err
	}
	type alias Rating
	return json.Marshal(struct {
		alias
		Values map[string]int `json:"data"`
	}{alias(r), values})
}
