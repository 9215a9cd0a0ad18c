package models

// User represents a participant identified by their Telegram account.
// Users are created on first bot contact and updated on subsequent
// contacts; they are never deleted.
type User struct {
	Base
	TelegramID int64  `gorm:"uniqueIndex;not null" json:"telegram_id"`
	Username   string `json:"username,omitempty"`
	FullName   string `json:"full_name,omitempty"`
	IsAdmin    bool   `gorm:"default:false" json:"is_admin"`

	Ratings   []Rating   `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
	AuthLinks []AuthLink `gorm:"foreignKey:UserID" json:"auth_links,omitempty"`
}

// DisplayName returns the best human-readable name for the user.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Anonymous taster"
}
